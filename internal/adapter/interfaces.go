// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the request dispatcher for the Gazelle tracker API.
//
// [GazelleAdapter] owns the HTTP session (connection reuse plus cookie jar)
// and knows exactly two endpoints: the login form at login.php and the
// generic action endpoint at ajax.php. Any response that lands on login.php
// is reported as [ErrSessionInvalid]; non-2xx answers become [*HTTPError].
// The adapter never retries and never re-authenticates on its own.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-gazelle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gazelle_adapter_mock.go -package=mock

// GazelleAdapter defines the transport contract used by the session manager
// and the endpoint methods.
type GazelleAdapter interface {
	// Login posts creds to login.php. Returns [ErrInvalidCredentials] when
	// the tracker answers with the login page again.
	Login(ctx context.Context, creds models.Credentials) error

	// Call sends GET ajax.php?action=<action> with params overlaid by
	// special (special wins on key collision) and returns the decoded JSON
	// body unchanged.
	Call(ctx context.Context, action string, params, special models.Params) (models.Response, error)

	// Cookies returns a snapshot of every live cookie the tracker has set.
	Cookies() []*http.Cookie

	// SetCookies loads previously persisted cookies into the jar.
	SetCookies(cookies []*http.Cookie)

	// Host returns the normalised base URL of the tracker.
	Host() string
}
