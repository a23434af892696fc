// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gazelle

import (
	"github.com/MKhiriev/go-gazelle/internal/adapter"
	"github.com/MKhiriev/go-gazelle/internal/session"
	"github.com/MKhiriev/go-gazelle/internal/store"
)

// Errors returned by [New] and the endpoint methods. Match them with
// [errors.Is]; use [errors.As] with *[HTTPError] for the status code.
var (
	ErrCredentialsMissing = session.ErrCredentialsMissing
	ErrInvalidCredentials = adapter.ErrInvalidCredentials
	ErrSessionInvalid     = adapter.ErrSessionInvalid
	ErrHTTPStatus         = adapter.ErrHTTPStatus

	ErrBlobNotFound     = store.ErrBlobNotFound
	ErrStoreUnavailable = store.ErrStoreUnavailable
)

// HTTPError reports a non-2xx answer from ajax.php.
type HTTPError = adapter.HTTPError
