// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session makes sure a [adapter.GazelleAdapter] holds a valid
// tracker session.
//
// A persisted cookie blob is reused when the tracker still accepts it;
// otherwise the manager logs in with the supplied credentials and
// overwrites the blob. Nothing is retried.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gazelle/internal/adapter"
	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/internal/store"
	"github.com/MKhiriev/go-gazelle/models"
)

// CookiesKey is the store key the cookie blob is saved under.
const CookiesKey = "cookies"

// checkAction is a cheap authenticated action used to test a restored session.
const checkAction = "index"

// Manager restores, validates and persists the session of one adapter.
type Manager struct {
	adapter adapter.GazelleAdapter
	store   store.BlobStore
	logger  *logger.Logger
}

func NewManager(a adapter.GazelleAdapter, s store.BlobStore, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{adapter: a, store: s, logger: log}
}

// Establish leaves the adapter with a session the tracker accepts.
//
// Persisted cookies are loaded and checked with the index action first. Only
// when there are none, or the tracker rejects them, does it log in with
// creds and save the new cookies. Probe failures other than
// [adapter.ErrSessionInvalid] are returned unchanged.
func (m *Manager) Establish(ctx context.Context, creds models.Credentials) error {
	restored, err := m.restore(ctx)
	if err != nil {
		return err
	}

	if restored {
		_, err = m.adapter.Call(ctx, checkAction, nil, nil)
		if err == nil {
			m.logger.Debug().Str("host", m.adapter.Host()).Msg("persisted session accepted")
			return nil
		}
		if !errors.Is(err, adapter.ErrSessionInvalid) {
			return err
		}
		m.logger.Info().Str("host", m.adapter.Host()).Msg("persisted session rejected, logging in")
	}

	if !creds.Complete() {
		return ErrCredentialsMissing
	}

	if err = m.adapter.Login(ctx, creds); err != nil {
		return err
	}

	return m.Persist(ctx)
}

// restore loads the persisted cookies into the adapter. It reports false
// when there is nothing usable to restore; an unreadable blob is logged and
// treated as absent.
func (m *Manager) restore(ctx context.Context) (bool, error) {
	data, err := m.store.Load(ctx, CookiesKey)
	switch {
	case errors.Is(err, store.ErrBlobNotFound):
		m.logger.Debug().Msg("no persisted session")
		return false, nil
	case errors.Is(err, store.ErrBlobCorrupt):
		m.logger.Warn().Err(err).Msg("persisted session unreadable, ignoring it")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("load session: %w", err)
	}

	cookies, err := DecodeCookies(data)
	if err != nil {
		m.logger.Warn().Err(err).Msg("persisted session unreadable, ignoring it")
		return false, nil
	}

	m.adapter.SetCookies(cookies)
	return true, nil
}

// Persist overwrites the stored blob with the adapter's current cookies.
func (m *Manager) Persist(ctx context.Context) error {
	data, err := EncodeCookies(m.adapter.Cookies())
	if err != nil {
		return err
	}

	if err = m.store.Save(ctx, CookiesKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.logger.Debug().Msg("session persisted")
	return nil
}

// Forget deletes the persisted blob so the next [Manager.Establish] logs in.
func (m *Manager) Forget(ctx context.Context) error {
	if err := m.store.Delete(ctx, CookiesKey); err != nil {
		return fmt.Errorf("forget session: %w", err)
	}
	return nil
}
