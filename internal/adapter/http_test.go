// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/internal/trackertest"
	"github.com/MKhiriev/go-gazelle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpGazelleAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpGazelleAdapter {
	t.Helper()

	a, err := NewHTTPGazelleAdapter(Config{Host: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGazelleAdapter)
}

func loggedInAdapter(t *testing.T, srv *trackertest.Server) *httpGazelleAdapter {
	t.Helper()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"}))
	return a
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := newTestAdapter(t, srv.URL)

	err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	cookies := a.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, trackertest.SessionCookie, cookies[0].Name)
	assert.Equal(t, srv.SessionValue(), cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestLogin_SendsFormFields(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"}))

	forms := srv.LoginForms()
	require.Len(t, forms, 1)
	assert.Equal(t, "alice", forms[0].Get("username"))
	assert.Equal(t, "secret", forms[0].Get("password"))
	assert.Equal(t, "", forms[0].Get("twofa"))
	assert.True(t, forms[0].Has("twofa"))
	assert.Equal(t, "Log+in", forms[0].Get("login"))
	assert.Equal(t, DefaultUserAgent, srv.UserAgents()[0])
}

func TestLogin_SendsTwoFA(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	srv.TwoFA = "123456"
	a := newTestAdapter(t, srv.URL)

	err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret", TwoFA: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "123456", srv.LoginForms()[0].Get("twofa"))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := newTestAdapter(t, srv.URL)

	err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, a.Cookies())
}

func TestLogin_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "login request")
}

// ── Call ─────────────────────────────────────────────────────────────────────

func TestCall_Success(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := loggedInAdapter(t, srv)

	resp, err := a.Call(context.Background(), "user", models.Params{"id": "42"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status())

	queries := srv.Queries()
	require.Len(t, queries, 1)
	assert.Equal(t, "user", queries[0].Get("action"))
	assert.Equal(t, "42", queries[0].Get("id"))
	assert.Equal(t, DefaultUserAgent, srv.UserAgents()[len(srv.UserAgents())-1])
}

func TestCall_SpecialOverridesParams(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := loggedInAdapter(t, srv)

	_, err := a.Call(context.Background(), "subscriptions",
		models.Params{"showunread": "1"},
		models.Params{"showunread": "0"},
	)
	require.NoError(t, err)

	queries := srv.Queries()
	require.Len(t, queries, 1)
	assert.Equal(t, []string{"0"}, queries[0]["showunread"])
}

func TestCall_CustomUserAgent(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a, err := NewHTTPGazelleAdapter(Config{Host: srv.URL, UserAgent: "go-gazelle/test"}, nil)
	require.NoError(t, err)

	require.NoError(t, a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"}))
	_, err = a.Call(context.Background(), "index", nil, nil)
	require.NoError(t, err)

	for _, ua := range srv.UserAgents() {
		assert.Equal(t, "go-gazelle/test", ua)
	}
}

func TestCall_NoSession(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := newTestAdapter(t, srv.URL)

	_, err := a.Call(context.Background(), "index", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestCall_SessionInvalidRegardlessOfStatus(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	srv.SetLoginPageStatus(http.StatusInternalServerError)
	a := newTestAdapter(t, srv.URL)

	_, err := a.Call(context.Background(), "index", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionInvalid)
	assert.NotErrorIs(t, err, ErrHTTPStatus)
}

func TestCall_ExpiredSession(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	a := loggedInAdapter(t, srv)
	srv.Expire()

	_, err := a.Call(context.Background(), "index", nil, nil)

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestCall_HTTPError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"too many requests", http.StatusTooManyRequests, ErrTooManyRequests},
		{"internal server error", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"teapot", http.StatusTeapot, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := trackertest.New(t, "alice", "secret")
			srv.SetActionStatus("torrent", tt.status)
			a := loggedInAdapter(t, srv)

			_, err := a.Call(context.Background(), "torrent", models.Params{"id": "1"}, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHTTPStatus)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.status, httpErr.StatusCode)
		})
	}
}

func TestCall_DecodeError(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	srv.SetActionBody("index", "<html>not json</html>")
	a := loggedInAdapter(t, srv)

	_, err := a.Call(context.Background(), "index", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode index response")
}

func TestCall_ReturnsBodyVerbatim(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	srv.SetActionBody("user", `{"status":"success","response":{"id":9007199254740993,"username":"bob"}}`)
	a := loggedInAdapter(t, srv)

	resp, err := a.Call(context.Background(), "user", models.Params{"id": "2"}, nil)
	require.NoError(t, err)

	payload, ok := resp.Payload().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("9007199254740993"), payload["id"])
	assert.Equal(t, "bob", payload["username"])
}

func TestCall_NonObjectBody(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	srv.SetActionBody("announcements", `[{"id":1},{"id":2}]`)
	a := loggedInAdapter(t, srv)

	resp, err := a.Call(context.Background(), "announcements", nil, nil)
	require.NoError(t, err)

	items, ok := resp.Value().([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, map[string]any{"id": json.Number("1")}, items[0])
	assert.Empty(t, resp.Status())
}

// ── Cookies ──────────────────────────────────────────────────────────────────

func TestSetCookies_RestoresSession(t *testing.T) {
	srv := trackertest.New(t, "alice", "secret")
	first := loggedInAdapter(t, srv)

	second := newTestAdapter(t, srv.URL)
	second.SetCookies(first.Cookies())

	_, err := second.Call(context.Background(), "index", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.LoginCount())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://tracker.example", "https://tracker.example", false},
		{"valid http with port", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "tracker.example", "https://tracker.example", false},
		{"trailing slash", "https://tracker.example/", "https://tracker.example", false},
		{"sub path", "https://example.org/gazelle/", "https://example.org/gazelle", false},
		{"empty", "  ", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPGazelleAdapter_EmptyHost(t *testing.T) {
	_, err := NewHTTPGazelleAdapter(Config{}, nil)
	assert.ErrorIs(t, err, ErrEmptyHost)
}
