// Package config loads, merges and validates the configuration of the
// gazelle command.
//
// Configuration is assembled from three sources. For every field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file, JSON or TOML by extension (path from --config or CONFIG)
//
// The entry point is [GetClientConfig].
package config
