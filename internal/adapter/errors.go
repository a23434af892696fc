// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionInvalid is returned when a request ends up on login.php,
	// meaning the tracker no longer accepts the session cookies.
	ErrSessionInvalid = errors.New("invalid session, redirected to login")

	// ErrInvalidCredentials is returned when the login form answers with the
	// login page again.
	ErrInvalidCredentials = errors.New("invalid username/password, failed to login")

	// ErrHTTPStatus matches every [*HTTPError] through [errors.Is].
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrEmptyHost is returned by [NewHTTPGazelleAdapter] for an empty host.
	ErrEmptyHost = errors.New("empty host")
)

// Status-class sentinels an [*HTTPError] unwraps to, so callers can write
// errors.Is(err, adapter.ErrNotFound) without comparing status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// HTTPError reports a non-2xx answer from ajax.php.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Is makes every HTTPError match [ErrHTTPStatus].
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// Unwrap returns the status-class sentinel for well-known codes, nil
// otherwise.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return nil
	}
}
