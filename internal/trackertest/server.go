// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package trackertest provides an in-process fake Gazelle tracker for tests.
//
// The fake mimics the only behaviour the client relies on: login.php sets a
// session cookie and redirects to index.php on good credentials, and
// redirects back to login.php otherwise; ajax.php redirects to login.php
// when the session cookie is missing or stale and answers JSON when it is
// valid.
package trackertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// SessionCookie is the name of the cookie the fake issues on login.
const SessionCookie = "session"

// Server is a running fake tracker. The zero value is not usable; create
// one with [New].
type Server struct {
	*httptest.Server

	Username string
	Password string
	TwoFA    string

	mu         sync.Mutex
	generation int
	loginForms []url.Values
	queries    []url.Values
	userAgents []string
	statuses   map[string]int
	bodies     map[string]string
	pageStatus int
}

// New starts a fake tracker accepting username/password with an empty
// second factor. The server is closed when the test ends.
func New(t testing.TB, username, password string) *Server {
	t.Helper()

	s := &Server{
		Username:   username,
		Password:   password,
		generation: 1,
		statuses:   make(map[string]int),
		bodies:     make(map[string]string),
	}

	r := chi.NewRouter()
	r.Post("/login.php", s.handleLogin)
	r.Get("/login.php", s.handleLoginPage)
	r.Get("/index.php", s.handleIndexPage)
	r.Get("/ajax.php", s.handleAjax)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SessionValue is the cookie value currently accepted by the fake.
func (s *Server) SessionValue() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionValueLocked()
}

func (s *Server) sessionValueLocked() string {
	return "sess-" + strconv.Itoa(s.generation)
}

// Expire invalidates every session issued so far, as if the tracker had
// logged the user out server-side.
func (s *Server) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
}

// SetActionStatus makes ajax.php answer action with status and an empty
// JSON object body.
func (s *Server) SetActionStatus(action string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[action] = status
}

// SetActionBody makes ajax.php answer action with the raw body.
func (s *Server) SetActionBody(action, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[action] = body
}

// SetLoginPageStatus makes GET login.php answer with status instead of 200.
func (s *Server) SetLoginPageStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageStatus = status
}

// LoginForms returns every form posted to login.php, in order.
func (s *Server) LoginForms() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.loginForms...)
}

// LoginCount is len(LoginForms()).
func (s *Server) LoginCount() int {
	return len(s.LoginForms())
}

// Queries returns the query of every request made to ajax.php, in order.
func (s *Server) Queries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

// UserAgents returns the User-Agent header of every login and ajax
// request, in order.
func (s *Server) UserAgents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.userAgents...)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.loginForms = append(s.loginForms, r.PostForm)
	s.userAgents = append(s.userAgents, r.UserAgent())
	ok := r.PostForm.Get("username") == s.Username &&
		r.PostForm.Get("password") == s.Password &&
		r.PostForm.Get("twofa") == s.TwoFA
	value := s.sessionValueLocked()
	s.mu.Unlock()

	if !ok {
		http.Redirect(w, r, "/login.php", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: value, Path: "/", HttpOnly: true})
	http.Redirect(w, r, "/index.php", http.StatusFound)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	status := s.pageStatus
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html")
	if status != 0 {
		w.WriteHeader(status)
	}
	_, _ = w.Write([]byte("<html><form action=\"login.php\"></form></html>"))
}

func (s *Server) handleIndexPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte("<html>index</html>"))
}

func (s *Server) handleAjax(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	action := query.Get("action")

	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.userAgents = append(s.userAgents, r.UserAgent())
	valid := false
	if c, err := r.Cookie(SessionCookie); err == nil {
		valid = c.Value == s.sessionValueLocked()
	}
	status, hasStatus := s.statuses[action]
	body, hasBody := s.bodies[action]
	s.mu.Unlock()

	if !valid {
		http.Redirect(w, r, "/login.php", http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case hasStatus:
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	case hasBody:
		_, _ = w.Write([]byte(body))
	default:
		params := make(map[string]string, len(query))
		for k := range query {
			params[k] = query.Get(k)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "success",
			"response": map[string]any{"action": action, "params": params},
		})
	}
}
