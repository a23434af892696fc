// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec_RoundTrip(t *testing.T) {
	expires := time.Date(2027, 1, 2, 3, 4, 5, 0, time.UTC)
	in := []*http.Cookie{
		{Name: "session", Value: "abc", Domain: "tracker.example", Path: "/", Expires: expires, Secure: true, HttpOnly: true},
		{Name: "keeplogged", Value: "1", Domain: "tracker.example", Path: "/"},
	}

	data, err := EncodeCookies(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"session","value":"abc","domain":"tracker.example","path":"/","expires":"2027-01-02T03:04:05Z","secure":true,"http_only":true},
		{"name":"keeplogged","value":"1","domain":"tracker.example","path":"/"}
	]`, string(data))

	out, err := DecodeCookies(data)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0].Name, out[0].Name)
	assert.Equal(t, in[0].Value, out[0].Value)
	assert.True(t, expires.Equal(out[0].Expires))
	assert.True(t, out[0].Secure)
	assert.True(t, out[0].HttpOnly)
	assert.True(t, out[1].Expires.IsZero())
}

func TestEncodeCookies_Empty(t *testing.T) {
	data, err := EncodeCookies(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeCookies_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "session=abc"},
		{"object", `{"name":"session"}`},
		{"nameless record", `[{"value":"abc"}]`},
		{"truncated", `[{"name":"session"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCookies([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedCookies)
		})
	}
}
