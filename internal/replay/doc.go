// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package replay feeds JSONL transcripts of session events through a
// hook bus. Each transcript line is one event envelope:
//
//	{"event": "tool:pre", "data": {"tool_name": "bash", ...}}
//
// Blank lines are skipped; a malformed line aborts the replay with its
// line number.
package replay
