// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
//
// Each tool invocation produces at most two lines of output: a call line
// ("→ edit_file: internal/diff/diff.go") and a result line ("✓ 1 edit").
// Edits additionally get a bounded unified-diff preview and file writes a
// content preview. Rendering is driven by an open registry of per-tool
// renderers with a generic fallback, so new tools display sensibly
// without touching the dispatch core.
//
// The package also renders thinking-block indicators and a token-usage
// footer, and exposes hook handlers for mounting on a session event bus.
package display
