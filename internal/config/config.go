// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/parley/internal/model"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete parley configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version"`

	// DefaultModel is selected at session start
	DefaultModel string `toml:"default_model"`

	// Models is the fixed list of selectable model identifiers
	Models []string `toml:"models"`

	// Endpoint configuration
	Endpoint EndpointConfig `toml:"endpoint"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// EndpointConfig contains the inference endpoint configuration.
type EndpointConfig struct {
	// URL is the base URL of the inference endpoint
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds. Zero disables the
	// operation-level timeout; a hung request then holds the session in its
	// sending state until the transport gives up.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Markdown enables glamour rendering of assistant turns
	Markdown bool `toml:"markdown"`
	// SyntaxTheme is the chroma style used for code blocks in plain mode
	SyntaxTheme string `toml:"syntax_theme"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	models := make([]string, len(model.DefaultModels))
	copy(models, model.DefaultModels)

	return &Config{
		Version:      "1",
		DefaultModel: model.DefaultModel(),
		Models:       models,
		Endpoint: EndpointConfig{
			URL:         "http://127.0.0.1:8000",
			TimeoutSecs: 0,
		},
		UI: UIConfig{
			Markdown:    true,
			SyntaxTheme: "monokai",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the parley configuration directory (~/.parley).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".parley"), nil
}

// Path returns the path of the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default location, applies
// environment overrides, and validates the result. A missing file is not an
// error; defaults are used.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file: defaults plus env overrides.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies PARLEY_* environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("PARLEY_ENDPOINT"); v != "" {
		c.Endpoint.URL = v
	}
	if v := os.Getenv("PARLEY_MODEL"); v != "" {
		c.DefaultModel = v
	}
	if v := os.Getenv("PARLEY_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			c.Endpoint.TimeoutSecs = secs
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for consistency, repairing what it
// reasonably can: an unknown default model is added to the list rather
// than rejected, since the controller treats identifiers as opaque.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint url %q", c.Endpoint.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint url must be http or https, got %q", u.Scheme)
	}

	if c.Endpoint.TimeoutSecs < 0 {
		return fmt.Errorf("timeout_secs must be >= 0, got %d", c.Endpoint.TimeoutSecs)
	}

	if len(c.Models) == 0 {
		c.Models = append([]string(nil), model.DefaultModels...)
	}
	if c.DefaultModel == "" {
		c.DefaultModel = c.Models[0]
	}
	if !model.IsKnownModel(c.DefaultModel, c.Models) {
		c.Models = append([]string{c.DefaultModel}, c.Models...)
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default location, creating the
// config directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
