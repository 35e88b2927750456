// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides session identity parsing and token accounting.
package session

import (
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION IDENTITY
// =============================================================================

// NewID returns a fresh session id.
func NewID() string {
	return "session_" + uuid.NewString()
}

// IsSubAgent reports whether a session id belongs to a sub-agent.
// Sub-agent ids contain an underscore separator and do not use the
// top-level "session_" prefix.
func IsSubAgent(sessionID string) bool {
	return strings.Contains(sessionID, "_") && !strings.HasPrefix(sessionID, "session_")
}

// ParseAgent extracts the agent name from a sub-agent session id like
// "abc123_foundation:explorer". Returns "" when the id carries no agent
// name (the name must contain a ":" qualifier).
func ParseAgent(sessionID string) string {
	if sessionID == "" || !strings.Contains(sessionID, "_") {
		return ""
	}
	idx := strings.LastIndex(sessionID, "_")
	name := sessionID[idx+1:]
	if !strings.Contains(name, ":") {
		return ""
	}
	return name
}

// =============================================================================
// TOKEN USAGE
// =============================================================================

// Usage holds the token counts reported for a single response.
type Usage struct {
	InputTokens         int
	OutputTokens        int
	CacheReadTokens     int
	CacheCreationTokens int
}

// TotalInput returns the full input token count. With caching enabled the
// reported input tokens cover only the uncacheable portion, so the cache
// read and creation counts are added back in.
func (u Usage) TotalInput() int {
	return u.InputTokens + u.CacheReadTokens + u.CacheCreationTokens
}

// CachePercent returns the percentage of input tokens served from cache,
// or 0 when there was no input.
func (u Usage) CachePercent() int {
	total := u.TotalInput()
	if total == 0 {
		return 0
	}
	return u.CacheReadTokens * 100 / total
}

// Add accumulates another usage record into u.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CacheReadTokens += other.CacheReadTokens
	u.CacheCreationTokens += other.CacheCreationTokens
}
