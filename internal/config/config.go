// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the glimpse display layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Display represents the display configuration.
type Display struct {
	// Enabled toggles all rendering; when false every hook passes events
	// through untouched.
	Enabled bool `toml:"enabled"`

	// MaxParamLen is the max display width for inline parameters.
	MaxParamLen int `toml:"max_param_len"`

	// MaxResultLen is the max display width for result summaries and
	// preview lines.
	MaxResultLen int `toml:"max_result_len"`

	// ContextLines is the number of unchanged context lines shown at each
	// boundary of an edit preview.
	ContextLines int `toml:"context_lines"`

	// MaxDiffLines caps the changed lines shown per side of an edit
	// preview; lines beyond the cap collapse into an elision marker.
	MaxDiffLines int `toml:"max_diff_lines"`

	// IndentSubAgents indents output produced inside sub-agent sessions.
	IndentSubAgents bool `toml:"indent_sub_agents"`

	// ShowAgentName prefixes sub-agent output with the agent name.
	ShowAgentName bool `toml:"show_agent_name"`

	// ShowThinking renders thinking-block indicators and condensed text.
	ShowThinking bool `toml:"show_thinking"`

	// ShowTokenUsage renders the token usage footer after responses.
	ShowTokenUsage bool `toml:"show_token_usage"`
}

// Default returns the default display configuration.
func Default() *Display {
	return &Display{
		Enabled:         true,
		MaxParamLen:     50,
		MaxResultLen:    60,
		ContextLines:    2,
		MaxDiffLines:    4,
		IndentSubAgents: true,
		ShowAgentName:   true,
		ShowThinking:    true,
		ShowTokenUsage:  true,
	}
}

// =============================================================================
// CONFIG PATHS
// =============================================================================

// ConfigDir returns the glimpse configuration directory (~/.glimpse).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".glimpse"), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path, or from the default location
// when path is empty. A missing file is not an error: defaults are
// returned with environment overrides and validation applied.
func Load(path string) (*Display, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := ConfigPath()
		if err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg.
func LoadTOML(cfg *Display, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Save writes the configuration to path as TOML, creating the parent
// directory when needed.
func Save(cfg *Display, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies GLIMPSE_* environment variables on top of the
// loaded configuration.
func (c *Display) ApplyEnvOverrides() {
	applyEnvBool("GLIMPSE_ENABLED", &c.Enabled)
	applyEnvInt("GLIMPSE_MAX_PARAM_LEN", &c.MaxParamLen)
	applyEnvInt("GLIMPSE_MAX_RESULT_LEN", &c.MaxResultLen)
	applyEnvInt("GLIMPSE_CONTEXT_LINES", &c.ContextLines)
	applyEnvInt("GLIMPSE_MAX_DIFF_LINES", &c.MaxDiffLines)
	applyEnvBool("GLIMPSE_INDENT_SUB_AGENTS", &c.IndentSubAgents)
	applyEnvBool("GLIMPSE_SHOW_AGENT_NAME", &c.ShowAgentName)
	applyEnvBool("GLIMPSE_SHOW_THINKING", &c.ShowThinking)
	applyEnvBool("GLIMPSE_SHOW_TOKEN_USAGE", &c.ShowTokenUsage)
}

// applyEnvBool sets dst from an environment variable when set and parseable.
func applyEnvBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

// applyEnvInt sets dst from an environment variable when set and parseable.
func applyEnvInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate clamps out-of-range values to usable bounds. Negative limits
// become zero so downstream code never sees a negative cap or window.
func (c *Display) Validate() {
	if c.MaxParamLen < 0 {
		c.MaxParamLen = 0
	}
	if c.MaxResultLen < 0 {
		c.MaxResultLen = 0
	}
	if c.ContextLines < 0 {
		c.ContextLines = 0
	}
	if c.MaxDiffLines < 0 {
		c.MaxDiffLines = 0
	}
}
