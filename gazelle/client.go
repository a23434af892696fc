// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gazelle is a client for the JSON API of Gazelle based trackers.
//
// [New] returns an authenticated [Client]: it reuses the session cookies
// persisted by an earlier run when the tracker still accepts them, and logs
// in with the configured credentials otherwise. Each endpoint method maps to
// one ajax.php action and returns the decoded JSON object as is.
//
//	c, err := gazelle.New(ctx, "https://tracker.example",
//		gazelle.WithCredentials(models.Credentials{Username: "alice", Password: "secret"}))
//	if err != nil {
//		return err
//	}
//	user, err := c.User(ctx, 42, nil)
package gazelle

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gazelle/internal/adapter"
	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/internal/session"
	"github.com/MKhiriev/go-gazelle/internal/store"
	"github.com/MKhiriev/go-gazelle/models"
)

// DefaultUserAgent is sent with every request unless [WithUserAgent] is used.
const DefaultUserAgent = adapter.DefaultUserAgent

// Client talks to one tracker on behalf of one account. It is not safe for
// concurrent use.
type Client struct {
	adapter adapter.GazelleAdapter
	session *session.Manager
	logger  *logger.Logger
}

type options struct {
	creds     models.Credentials
	userAgent string
	timeout   time.Duration
	store     SessionStore
	logger    *logger.Logger
}

// Option configures [New].
type Option func(*options)

// WithCredentials sets the account used when a fresh login is needed.
func WithCredentials(creds models.Credentials) Option {
	return func(o *options) { o.creds = creds }
}

// WithUserAgent replaces [DefaultUserAgent].
func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

// WithStore sets where session cookies are persisted. The default is a
// [FileStore] in the user's configuration directory.
func WithStore(s SessionStore) Option {
	return func(o *options) { o.store = s }
}

// WithLogger enables logging; by default the client is silent.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout bounds every HTTP request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New connects to host and makes sure the returned client holds a session
// the tracker accepts. It fails with [ErrCredentialsMissing] when a login is
// needed but no complete credentials were given, and with
// [ErrInvalidCredentials] when the tracker rejects them.
func New(ctx context.Context, host string, opts ...Option) (*Client, error) {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	a, err := adapter.NewHTTPGazelleAdapter(adapter.Config{
		Host:      host,
		UserAgent: o.userAgent,
		Timeout:   o.timeout,
	}, o.logger)
	if err != nil {
		return nil, err
	}

	if o.store == nil {
		fs, err := store.NewFileStore("")
		if err != nil {
			return nil, err
		}
		o.store = fs
	}

	return newClient(ctx, a, o.store, o.creds, o.logger)
}

func newClient(ctx context.Context, a adapter.GazelleAdapter, s SessionStore, creds models.Credentials, log *logger.Logger) (*Client, error) {
	m := session.NewManager(a, s, log)
	if err := m.Establish(ctx, creds); err != nil {
		return nil, err
	}

	return &Client{adapter: a, session: m, logger: log}, nil
}

// Host returns the normalised tracker URL.
func (c *Client) Host() string {
	return c.adapter.Host()
}

// Call invokes any ajax.php action. Values in special override params of the
// same name, including "action".
func (c *Client) Call(ctx context.Context, action string, params, special models.Params) (models.Response, error) {
	return c.adapter.Call(ctx, action, params, special)
}

// ForgetSession deletes the persisted session cookies, so the next [New]
// logs in again. The session held by c stays usable.
func (c *Client) ForgetSession(ctx context.Context) error {
	if err := c.session.Forget(ctx); err != nil {
		return err
	}
	c.logger.Info().Str("host", c.Host()).Msg("persisted session forgotten")
	return nil
}
