// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newFlagSet(t,
		"-c", "/etc/gazelle.json",
		"-H", "https://tracker.example",
		"--timeout", "1m",
		"--user-agent", "go-gazelle/test",
		"--log-dir", "/tmp/logs",
		"-u", "alice",
		"--password", "secret",
		"--twofa", "654321",
		"--store", "sqlite",
		"--store-dir", "/tmp/store",
		"--dsn", "file:sessions.db",
		"--secret", "s3cret",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/etc/gazelle.json", cfg.JSONFilePath)
	assert.Equal(t, "https://tracker.example", cfg.Adapter.Host)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "go-gazelle/test", cfg.App.UserAgent)
	assert.Equal(t, "/tmp/logs", cfg.App.LogDir)
	assert.Equal(t, Auth{Username: "alice", Password: "secret", TwoFA: "654321"}, cfg.Auth)
	assert.Equal(t, Storage{Driver: "sqlite", Dir: "/tmp/store", DSN: "file:sessions.db", Secret: "s3cret"}, cfg.Storage)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnregisteredFlagsAreEmpty(t *testing.T) {
	fs := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	fs.String(FlagHost, "", "")
	require.NoError(t, fs.Parse([]string{"--host", "tracker.example"}))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, "tracker.example", cfg.Adapter.Host)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseFlags_WrongType(t *testing.T) {
	fs := pflag.NewFlagSet("wrong", pflag.ContinueOnError)
	fs.Int(FlagHost, 0, "")

	_, err := parseFlags(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading flags")
}
