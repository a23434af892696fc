// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrCredentialsMissing is returned by [Manager.Establish] when a fresh
	// login is needed but the username or password is empty.
	ErrCredentialsMissing = errors.New("credentials missing: username and password are required to log in")

	// ErrMalformedCookies is returned by [DecodeCookies] for blobs that are
	// not a JSON list of cookie records.
	ErrMalformedCookies = errors.New("malformed cookie blob")
)
