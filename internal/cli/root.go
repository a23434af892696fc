// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli builds the cobra command tree of the gazelle binary. Every
// ajax.php endpoint gets a subcommand that prints the decoded response as
// JSON on stdout; logs go to a file so the output stays pipeable.
package cli

import (
	"github.com/MKhiriev/go-gazelle/internal/config"
	"github.com/MKhiriev/go-gazelle/models"
	"github.com/spf13/cobra"
)

// Flag names owned by the command tree itself. Connection and storage
// flags come from [config.RegisterFlags].
const (
	flagParam       = "param"
	flagCopy        = "copy"
	flagCompact     = "compact"
	flagInteractive = "interactive"
	flagPage        = "page"
	flagType        = "type"
	flagLimit       = "limit"
	flagAll         = "all"
)

// NewRootCommand returns the gazelle command with every subcommand attached.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "gazelle",
		Short: "Gazelle tracker API client",
		Long: `Command line client for the JSON API of Gazelle based trackers.

The session cookies of the first successful login are persisted and reused
by later runs until the tracker rejects them.

Examples:
  # Basic data about the logged in account
  gazelle index -H https://tracker.example -u alice --password secret

  # A user profile, copied to the clipboard
  gazelle user 42 --copy

  # Any action, with extra query parameters
  gazelle call browse -p searchstr=foo -p page=2`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	config.RegisterFlags(pf)
	pf.StringArrayP(flagParam, "p", nil, "Extra query parameter as key=value; overrides the command's own values")
	pf.Bool(flagCopy, false, "Copy the JSON output to the clipboard")
	pf.Bool(flagCompact, false, "Print JSON on a single line")
	pf.BoolP(flagInteractive, "i", false, "Prompt for missing credentials")

	root.AddCommand(endpointCommands()...)
	root.AddCommand(
		newCallCommand(),
		newLogoutCommand(),
		newVersionCommand(info),
	)

	return root
}
