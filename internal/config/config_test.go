// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the glimpse display layer.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 50, cfg.MaxParamLen)
	assert.Equal(t, 60, cfg.MaxResultLen)
	assert.Equal(t, 2, cfg.ContextLines)
	assert.Equal(t, 4, cfg.MaxDiffLines)
	assert.True(t, cfg.IndentSubAgents)
	assert.True(t, cfg.ShowAgentName)
	assert.True(t, cfg.ShowThinking)
	assert.True(t, cfg.ShowTokenUsage)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "enabled = false\nmax_param_len = 70\ncontext_lines = 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 70, cfg.MaxParamLen)
	assert.Equal(t, 3, cfg.ContextLines)
	// Untouched fields keep defaults.
	assert.Equal(t, 60, cfg.MaxResultLen)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("enabled = {{"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GLIMPSE_ENABLED", "false")
	t.Setenv("GLIMPSE_MAX_DIFF_LINES", "8")
	t.Setenv("GLIMPSE_SHOW_THINKING", "0")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 8, cfg.MaxDiffLines)
	assert.False(t, cfg.ShowThinking)
}

func TestApplyEnvOverrides_IgnoresUnparseable(t *testing.T) {
	t.Setenv("GLIMPSE_MAX_PARAM_LEN", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 50, cfg.MaxParamLen)
}

func TestValidate_ClampsNegatives(t *testing.T) {
	cfg := &Display{
		MaxParamLen:  -1,
		MaxResultLen: -10,
		ContextLines: -2,
		MaxDiffLines: -4,
	}
	cfg.Validate()

	assert.Equal(t, 0, cfg.MaxParamLen)
	assert.Equal(t, 0, cfg.MaxResultLen)
	assert.Equal(t, 0, cfg.ContextLines)
	assert.Equal(t, 0, cfg.MaxDiffLines)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.MaxParamLen = 42
	cfg.ShowTokenUsage = false
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
