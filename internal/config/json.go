// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the config file, in JSON or TOML.
type StructuredJSONConfig struct {
	App struct {
		UserAgent string `json:"user_agent" toml:"user_agent"`
		LogDir    string `json:"log_dir" toml:"log_dir"`
	} `json:"app,omitempty" toml:"app"`

	Adapter struct {
		Host           string   `json:"host" toml:"host"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Auth struct {
		Username string `json:"username" toml:"username"`
		Password string `json:"password" toml:"password"`
		TwoFA    string `json:"twofa" toml:"twofa"`
	} `json:"auth,omitempty" toml:"auth"`

	Storage struct {
		Driver string `json:"driver" toml:"driver"`
		Dir    string `json:"dir" toml:"dir"`
		DSN    string `json:"dsn" toml:"dsn"`
		Secret string `json:"secret" toml:"secret"`
	} `json:"storage,omitempty" toml:"storage"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.structured(), nil
}

func (c *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			UserAgent: c.App.UserAgent,
			LogDir:    c.App.LogDir,
		},
		Adapter: Adapter{
			Host:           c.Adapter.Host,
			RequestTimeout: time.Duration(c.Adapter.RequestTimeout),
		},
		Auth: Auth{
			Username: c.Auth.Username,
			Password: c.Auth.Password,
			TwoFA:    c.Auth.TwoFA,
		},
		Storage: Storage{
			Driver: c.Storage.Driver,
			Dir:    c.Storage.Dir,
			DSN:    c.Storage.DSN,
			Secret: c.Storage.Secret,
		},
	}

	return cfg
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

// UnmarshalText accepts duration strings such as "30s"; TOML files use it.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
