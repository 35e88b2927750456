// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the glimpse display layer.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - path passed explicitly by the caller
//   - ~/.glimpse/config.toml
//   - Built-in defaults
//
// Environment overrides use the GLIMPSE_ prefix, e.g. GLIMPSE_ENABLED=0 or
// GLIMPSE_MAX_PARAM_LEN=70.
package config
