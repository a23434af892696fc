// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gazelle/gazelle"
	"github.com/MKhiriev/go-gazelle/internal/session"
	"github.com/MKhiriev/go-gazelle/internal/tui"
	"github.com/MKhiriev/go-gazelle/models"
	"github.com/spf13/cobra"
)

func newCallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call <action>",
		Short: "Call any ajax.php action",
		Long: `Call any ajax.php action. Query parameters are given with -p.

Examples:
  gazelle call top10 -p type=tags -p limit=25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := args[0]
			return runEndpoint(func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Call(ctx, action, nil, extra)
			})(cmd, args)
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		Long:  "Delete the persisted session cookies so that the next command logs in again.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			ctx := env.log.WithContext(cmd.Context())
			if err = env.store.Delete(ctx, session.CookiesKey); err != nil {
				env.log.Err(err).Str("func", "logout").Msg("error deleting persisted session")
				return fmt.Errorf("forget session: %w", err)
			}
			env.log.Info().Str("host", env.cfg.Adapter.Host).Msg("persisted session forgotten")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "session forgotten")
			return err
		},
	}
}

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBuildInfo(gazelle.Version, info))
			return err
		},
	}
}
