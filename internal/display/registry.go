// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
package display

import (
	"sort"
	"sync"

	"github.com/jeranaias/glimpse/internal/config"
)

// =============================================================================
// SUMMARIES
// =============================================================================

// Status tags a summary with how it should be presented.
type Status int

const (
	// StatusOK is a plain summary
	StatusOK Status = iota
	// StatusFail marks a failed result
	StatusFail
	// StatusWarn marks a result with warnings
	StatusWarn
	// StatusDiff requests an edit preview below the call line
	StatusDiff
	// StatusWritePreview requests a content preview below the call line
	StatusWritePreview
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFail:
		return "fail"
	case StatusWarn:
		return "warn"
	case StatusDiff:
		return "diff"
	case StatusWritePreview:
		return "write-preview"
	default:
		return "unknown"
	}
}

// Summary is a renderer's one-line output for a tool event.
type Summary struct {
	Text   string
	Status Status
}

// Renderer produces a summary for a tool event, or nil when there is
// nothing useful to show (the line is then rendered bare).
type Renderer func(ctx *Context, cfg *config.Display) *Summary

// =============================================================================
// RENDERER REGISTRY
// =============================================================================

// Registry maps tool names to renderers. The set is open: new tools
// register at runtime and unknown tools fall back to a generic renderer.
// Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	fallback  Renderer
}

// NewRegistry creates a registry pre-populated with the built-in tool
// renderers and the generic fallback.
func NewRegistry() *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
		fallback:  renderGeneric,
	}

	// File operations
	r.register("read_file", renderFileOp)
	r.register("write_file", renderFileOp)
	r.register("edit_file", renderEditFile)
	// Search
	r.register("grep", renderSearch)
	r.register("glob", renderSearch)
	// Execution
	r.register("bash", renderBash)
	r.register("python_check", renderPythonCheck)
	// Task management
	r.register("todo", renderTodo)
	r.register("task", renderTask)
	// Web
	r.register("web_fetch", renderWeb)
	r.register("web_search", renderWeb)
	// Recipes
	r.register("recipes", renderRecipes)
	// Shadow environments
	r.register("shadow", renderShadow)
	// Skills
	r.register("load_skill", renderLoadSkill)

	return r
}

// register adds a renderer without locking; used during construction.
func (r *Registry) register(toolName string, renderer Renderer) {
	r.renderers[toolName] = renderer
}

// Register adds or replaces the renderer for a tool.
func (r *Registry) Register(toolName string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[toolName] = renderer
}

// Lookup returns the renderer for a tool, falling back to the generic
// renderer for unknown tools.
func (r *Registry) Lookup(toolName string) Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.renderers[toolName]; ok {
		return renderer
	}
	return r.fallback
}

// Tools returns the sorted list of tools with dedicated renderers.
func (r *Registry) Tools() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		tools = append(tools, name)
	}
	sort.Strings(tools)
	return tools
}
