// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
package display

import (
	"github.com/jeranaias/glimpse/internal/session"
)

// =============================================================================
// RENDER CONTEXT
// =============================================================================

// Phase marks whether a tool event is the call or its result.
type Phase int

const (
	// PhaseCall is the pre-execution event carrying the tool input
	PhaseCall Phase = iota
	// PhaseResult is the post-execution event carrying the tool response
	PhaseResult
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseCall:
		return "call"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Context carries everything a renderer needs for one tool event.
type Context struct {
	ToolName   string
	Input      map[string]any
	Result     any
	SessionID  string
	IsSubAgent bool
	AgentName  string
	Phase      Phase
}

// FromEvent builds a render context from raw hook event data.
// The result value is taken from "tool_response" or "result", and a
// nested "output" field is unwrapped when present.
func FromEvent(data map[string]any, phase Phase) *Context {
	sessionID := getString(data, "session_id")

	var result any
	if v, ok := data["tool_response"]; ok {
		result = v
	} else {
		result = data["result"]
	}
	if m, ok := result.(map[string]any); ok {
		if output, ok := m["output"]; ok {
			result = output
		}
	}

	toolName := getString(data, "tool_name")
	if toolName == "" {
		toolName = "unknown"
	}

	return &Context{
		ToolName:   toolName,
		Input:      getMap(data, "tool_input"),
		Result:     result,
		SessionID:  sessionID,
		IsSubAgent: session.IsSubAgent(sessionID),
		AgentName:  session.ParseAgent(sessionID),
		Phase:      phase,
	}
}

// ResultMap returns the result as a map, or nil when it is not one.
func (c *Context) ResultMap() map[string]any {
	m, _ := c.Result.(map[string]any)
	return m
}

// InputString returns a string field from the tool input.
func (c *Context) InputString(key string) string {
	return getString(c.Input, key)
}

// InputBool returns a bool field from the tool input.
func (c *Context) InputBool(key string) bool {
	v, _ := c.Input[key].(bool)
	return v
}

// =============================================================================
// PAYLOAD ACCESS HELPERS
// =============================================================================

// getString reads a string field from an event payload.
func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// getMap reads a nested map field from an event payload.
func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	nested, _ := m[key].(map[string]any)
	return nested
}

// getInt reads a numeric field from an event payload. JSON decoding
// produces float64, but values built in-process may be int.
func getInt(m map[string]any, key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
