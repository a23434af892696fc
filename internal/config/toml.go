// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

func parseConfigFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var fileCfg StructuredJSONConfig
	meta, err := toml.DecodeFile(tomlFilePath, &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("error decoding toml configs: unknown key %q", undecoded[0].String())
	}

	return fileCfg.structured(), nil
}
