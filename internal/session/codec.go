// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-gazelle/models"
)

// EncodeCookies serialises a cookie jar snapshot into the blob written to
// the session store: a JSON list of [models.CookieState].
func EncodeCookies(cookies []*http.Cookie) ([]byte, error) {
	states := make([]models.CookieState, 0, len(cookies))
	for _, c := range cookies {
		state := models.CookieState{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
		if !c.Expires.IsZero() {
			expires := c.Expires.UTC()
			state.Expires = &expires
		}
		states = append(states, state)
	}

	data, err := json.Marshal(states)
	if err != nil {
		return nil, fmt.Errorf("encode cookies: %w", err)
	}
	return data, nil
}

// DecodeCookies is the inverse of [EncodeCookies]. Records without a name
// are rejected.
func DecodeCookies(data []byte) ([]*http.Cookie, error) {
	var states []models.CookieState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCookies, err)
	}

	cookies := make([]*http.Cookie, 0, len(states))
	for i, s := range states {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: record %d has no name", ErrMalformedCookies, i)
		}

		c := &http.Cookie{
			Name:     s.Name,
			Value:    s.Value,
			Domain:   s.Domain,
			Path:     s.Path,
			Secure:   s.Secure,
			HttpOnly: s.HTTPOnly,
		}
		if s.Expires != nil {
			c.Expires = *s.Expires
		}
		cookies = append(cookies, c)
	}

	return cookies, nil
}
