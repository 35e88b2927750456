// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides terminal detection and handling for the glimpse binary.
//
// This package contains the utilities that decide how output is written:
// TTY detection for stdin/stdout, terminal width detection for wrapping,
// and color output control honoring NO_COLOR and FORCE_COLOR.
package cli
