// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointCommands_FlagReadErrors(t *testing.T) {
	commands := make(map[string]*cobra.Command)
	for _, c := range endpointCommands() {
		commands[c.Name()] = c
	}

	tests := []struct {
		name string
		args []string
		flag string
	}{
		{name: "inbox", flag: flagPage},
		{name: "top10", flag: flagType},
		{name: "usersearch", args: []string{"alice"}, flag: flagPage},
		{name: "requests", flag: flagPage},
		{name: "torrents", flag: flagPage},
		{name: "bookmarks", flag: flagType},
		{name: "subscriptions", flag: flagAll},
		{name: "forum", args: []string{"1"}, flag: flagPage},
		{name: "thread", args: []string{"1"}, flag: flagPage},
		{name: "request", args: []string{"1"}, flag: flagPage},
		{name: "notifications", flag: flagPage},
		{name: "similar-artists", args: []string{"1"}, flag: flagLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := commands[tt.name]
			require.True(t, ok)

			// same RunE, none of the flags it reads
			bare := &cobra.Command{Use: tt.name, RunE: src.RunE}
			err := bare.RunE(bare, tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "flag accessed but not defined: "+tt.flag)
		})
	}
}
