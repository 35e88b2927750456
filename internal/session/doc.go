// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides session identity parsing and token accounting.
//
// Agent sessions carry ids like "abc123_foundation:explorer": a root id,
// an underscore, and an agent name when the session belongs to a
// sub-agent. This package extracts that structure and accumulates the
// token usage reported at the end of each response.
package session
