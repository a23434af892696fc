// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gazelle/gazelle"
	"github.com/MKhiriev/go-gazelle/internal/config"
	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/internal/tui"
	"github.com/MKhiriev/go-gazelle/internal/utils"
	"github.com/MKhiriev/go-gazelle/models"
	"github.com/spf13/cobra"
)

// promptCredentials is replaced in tests.
var promptCredentials = func(ctx context.Context, host string, creds models.Credentials) (models.Credentials, error) {
	return tui.PromptCredentials(ctx, host, creds)
}

// endpointFunc performs one API call with an established client.
type endpointFunc func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error)

// runEndpoint returns a cobra RunE that loads the configuration, connects
// and prints the result of fn.
func runEndpoint(fn endpointFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		extra, err := extraParams(cmd)
		if err != nil {
			return err
		}

		env, err := newEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		ctx := env.log.WithContext(cmd.Context())

		client, err := env.connect(ctx)
		if err != nil {
			return err
		}

		resp, err := fn(ctx, client, extra)
		if err != nil {
			env.log.Err(err).Str("func", "runEndpoint").Str("command", cmd.Name()).Msg("request failed")
			return err
		}

		return printResponse(cmd, resp)
	}
}

// environment is everything a subcommand needs before talking to the
// tracker.
type environment struct {
	cfg         *config.ClientConfig
	log         *logger.Logger
	store       gazelle.SessionStore
	close       func()
	interactive bool
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	interactive, err := cmd.Flags().GetBool(flagInteractive)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("gazelle", cfg.App.LogDir)
	log.Logger = log.With().Str("run_id", utils.NewUUIDGenerator().Generate()).Logger()

	s, closeStore, err := openStore(cmd.Context(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "newEnvironment").Str("driver", cfg.Storage.Driver).Msg("error opening session store")
		return nil, err
	}

	return &environment{cfg: cfg, log: log, store: s, close: closeStore, interactive: interactive}, nil
}

// connect returns a client holding a valid session, prompting for
// credentials first when --interactive is set and some are missing.
func (e *environment) connect(ctx context.Context) (*gazelle.Client, error) {
	creds := e.cfg.Credentials

	opts := []gazelle.Option{
		gazelle.WithStore(e.store),
		gazelle.WithLogger(e.log),
		gazelle.WithUserAgent(e.cfg.App.UserAgent),
		gazelle.WithTimeout(e.cfg.Adapter.RequestTimeout),
	}

	client, err := gazelle.New(ctx, e.cfg.Adapter.Host, append(opts, gazelle.WithCredentials(creds))...)
	if err == nil || !e.interactive || !errors.Is(err, gazelle.ErrCredentialsMissing) {
		return client, err
	}

	creds, err = promptCredentials(ctx, e.cfg.Adapter.Host, creds)
	if err != nil {
		return nil, err
	}
	return gazelle.New(ctx, e.cfg.Adapter.Host, append(opts, gazelle.WithCredentials(creds))...)
}

// extraParams parses every --param key=value pair.
func extraParams(cmd *cobra.Command) (models.Params, error) {
	raw, err := cmd.Flags().GetStringArray(flagParam)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	extra := make(models.Params, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q, want key=value", ErrInvalidParam, kv)
		}
		extra[key] = value
	}
	return extra, nil
}
