// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/internal/utils"
	"github.com/MKhiriev/go-gazelle/models"
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is the desktop browser string sent when none is
// configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/74.0.3729.169 Safari/537.36"

const (
	loginPath = "/login.php"
	ajaxPath  = "/ajax.php"

	// loginButton is the literal value of the submit button on the login
	// form. It is sent as-is and form-encoded like any other field.
	loginButton = "Log+in"

	maxRedirects = 10
)

// Config holds the settings for [NewHTTPGazelleAdapter].
type Config struct {
	// Host is the tracker base URL, e.g. "https://tracker.example".
	Host string
	// UserAgent overrides [DefaultUserAgent] when non-empty.
	UserAgent string
	// Timeout bounds each request; zero keeps the transport default.
	Timeout time.Duration
}

type httpGazelleAdapter struct {
	client *utils.HTTPClient
	jar    *sessionJar

	host      string
	hostURL   *url.URL
	userAgent string

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewHTTPGazelleAdapter constructs the resty-backed [GazelleAdapter].
// It normalises cfg.Host, installs a fresh cookie jar and follows up to ten
// redirects so that the final URL of every response can be inspected.
//
// Returns an error if cfg.Host is empty or cannot be parsed as a URL.
func NewHTTPGazelleAdapter(cfg Config, log *logger.Logger) (GazelleAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid gazelle host: %w", err)
	}
	hostURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gazelle host: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if log == nil {
		log = logger.Nop()
	}

	jar, err := newSessionJar()
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &httpGazelleAdapter{
		client:    client,
		jar:       jar,
		host:      baseURL,
		hostURL:   hostURL,
		userAgent: userAgent,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyHost
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Host implements [GazelleAdapter].
func (h *httpGazelleAdapter) Host() string {
	return h.host
}

// Cookies implements [GazelleAdapter].
func (h *httpGazelleAdapter) Cookies() []*http.Cookie {
	return h.jar.All()
}

// SetCookies implements [GazelleAdapter]. Cookies are attributed to the
// tracker host, which is the only site the jar ever talks to.
func (h *httpGazelleAdapter) SetCookies(cookies []*http.Cookie) {
	h.jar.SetCookies(h.hostURL, cookies)
}

// Login implements [GazelleAdapter]. It posts the login form; the tracker
// answers a good login with a redirect away from login.php, so a final URL
// still on login.php means the credentials were rejected.
func (h *httpGazelleAdapter) Login(ctx context.Context, creds models.Credentials) error {
	log := h.logger.With().
		Str("request_id", h.ids.Generate()).
		Str("action", "login").
		Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", h.userAgent).
		SetFormData(map[string]string{
			"username": creds.Username,
			"password": creds.Password,
			"twofa":    creds.TwoFA,
			"login":    loginButton,
		}).
		Post(loginPath)
	if err != nil {
		log.Err(err).Msg("login request failed")
		return fmt.Errorf("login request: %w", err)
	}

	if redirectedToLogin(resp) {
		log.Warn().Int("status", resp.StatusCode()).Msg("login rejected")
		return ErrInvalidCredentials
	}

	log.Info().Int("status", resp.StatusCode()).Msg("logged in")
	return nil
}

// Call implements [GazelleAdapter].
func (h *httpGazelleAdapter) Call(ctx context.Context, action string, params, special models.Params) (models.Response, error) {
	query := models.Params{"action": action}.Merge(params).Merge(special)

	log := h.logger.With().
		Str("request_id", h.ids.Generate()).
		Str("action", action).
		Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", h.userAgent).
		SetQueryParams(query).
		Get(ajaxPath)
	if err != nil {
		log.Err(err).Msg("ajax request failed")
		return models.Response{}, fmt.Errorf("%s request: %w", action, err)
	}

	if redirectedToLogin(resp) {
		log.Warn().Int("status", resp.StatusCode()).Msg("session rejected")
		return models.Response{}, ErrSessionInvalid
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode()).Msg("ajax request returned error status")
		return models.Response{}, fmt.Errorf("%s: %w", action, err)
	}

	var out models.Response
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		log.Err(err).Msg("decode ajax response")
		return models.Response{}, fmt.Errorf("decode %s response: %w", action, err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Str("api_status", out.Status()).
		Dur("took", resp.Time()).
		Msg("ajax request done")
	return out, nil
}
