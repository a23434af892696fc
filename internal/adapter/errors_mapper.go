// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// loginPage is the path fragment Gazelle redirects to whenever a session is
// missing or rejected.
const loginPage = "login.php"

// maxErrorBody bounds how much of an error body is kept in [HTTPError].
const maxErrorBody = 512

// finalURL returns the URL of the last request in the redirect chain.
func finalURL(resp *resty.Response) string {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Request == nil {
		return ""
	}
	return resp.RawResponse.Request.URL.String()
}

// redirectedToLogin reports whether the response was served by login.php.
func redirectedToLogin(resp *resty.Response) bool {
	return strings.Contains(finalURL(resp), loginPage)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return &HTTPError{StatusCode: resp.StatusCode(), Body: body}
}
