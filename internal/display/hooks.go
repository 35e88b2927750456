// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
package display

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jeranaias/glimpse/internal/cli"
	"github.com/jeranaias/glimpse/internal/config"
	"github.com/jeranaias/glimpse/internal/hooks"
	"github.com/jeranaias/glimpse/internal/session"
	"github.com/jeranaias/glimpse/internal/ui/styles"
	"github.com/jeranaias/glimpse/internal/util"
)

// =============================================================================
// HOOK ADAPTER
// =============================================================================

const (
	// MountPriority is where the display handlers sit in the hook chain,
	// after validation hooks and before logging hooks.
	MountPriority = 4

	// thinkingMaxLines caps the wrapped thinking lines shown per block.
	thinkingMaxLines = 5
)

// Hooks renders tool activity in response to session events. One value
// serves a whole session; it is safe for concurrent emission.
type Hooks struct {
	cfg      *config.Display
	theme    *styles.Theme
	registry *Registry
	width    int

	mu       sync.Mutex
	out      io.Writer
	thinking map[int]string // active thinking blocks, index -> agent name
}

// NewHooks creates a display hook adapter writing to out. width is the
// terminal width used for wrapping thinking text.
func NewHooks(cfg *config.Display, theme *styles.Theme, out io.Writer, width int) *Hooks {
	return &Hooks{
		cfg:      cfg,
		theme:    theme,
		registry: NewRegistry(),
		width:    width,
		out:      out,
		thinking: make(map[int]string),
	}
}

// Registry exposes the renderer registry so callers can register
// renderers for their own tools.
func (h *Hooks) Registry() *Registry {
	return h.registry
}

// Manifest describes a mounted display module.
type Manifest struct {
	Name    string
	Version string
	Tools   []string
}

// Mount registers the display handlers on a bus and reports what was
// mounted.
func (h *Hooks) Mount(bus *hooks.Bus) Manifest {
	bus.Register("tool:pre", h.HandleToolPre, MountPriority)
	bus.Register("tool:post", h.HandleToolPost, MountPriority)
	bus.Register("content_block:start", h.HandleBlockStart, MountPriority)
	bus.Register("content_block:end", h.HandleBlockEnd, MountPriority)

	return Manifest{
		Name:    "glimpse-display",
		Version: "0.1.0",
		Tools:   h.registry.Tools(),
	}
}

// =============================================================================
// TOOL EVENTS
// =============================================================================

// HandleToolPre renders the call line for a tool invocation, plus a diff
// or content preview for edits and writes. Marks the payload so later
// hooks know the event was already displayed.
func (h *Hooks) HandleToolPre(ctx context.Context, event string, data map[string]any) (hooks.Result, error) {
	if !h.cfg.Enabled {
		return hooks.Continue(), nil
	}
	// The dedicated todo UI hook owns todo display.
	if getString(data, "tool_name") == "todo" {
		return hooks.Continue(), nil
	}

	rc := FromEvent(data, PhaseCall)
	summary := h.registry.Lookup(rc.ToolName)(rc, h.cfg)

	var text string
	var status Status
	if summary != nil {
		text = summary.Text
		status = summary.Status
	}

	h.mu.Lock()
	h.write("\n" + h.formatLine(rc, text, StatusOK) + "\n")

	switch status {
	case StatusDiff:
		oldStr := rc.InputString("old_string")
		newStr := rc.InputString("new_string")
		if oldStr != "" || newStr != "" {
			block := RenderDiffBlock(oldStr, newStr, h.cfg, h.theme, h.cfg.MaxResultLen)
			h.writeBlock(block, h.indentPrefix(rc))
		}
	case StatusWritePreview:
		if content := rc.InputString("content"); content != "" {
			block := RenderWritePreview(content, h.theme, h.cfg.MaxResultLen)
			h.writeBlock(block, h.indentPrefix(rc))
		}
	}
	h.mu.Unlock()

	return hooks.Modify(markDisplayed(data)), nil
}

// HandleToolPost renders the result line for a tool invocation.
func (h *Hooks) HandleToolPost(ctx context.Context, event string, data map[string]any) (hooks.Result, error) {
	if !h.cfg.Enabled {
		return hooks.Continue(), nil
	}
	if getString(data, "tool_name") == "todo" {
		return hooks.Continue(), nil
	}

	rc := FromEvent(data, PhaseResult)
	summary := h.registry.Lookup(rc.ToolName)(rc, h.cfg)

	var text string
	var status Status
	if summary != nil {
		text = summary.Text
		status = summary.Status
	}

	h.mu.Lock()
	h.write(h.formatLine(rc, text, status) + "\n")
	h.mu.Unlock()

	return hooks.Modify(markDisplayed(data)), nil
}

// markDisplayed copies the payload and tags it so downstream hooks can
// skip their own rendering.
func markDisplayed(data map[string]any) map[string]any {
	modified := make(map[string]any, len(data)+1)
	for k, v := range data {
		modified[k] = v
	}
	modified["hook_metadata"] = map[string]any{"concise_displayed": true}
	return modified
}

// =============================================================================
// CONTENT BLOCK EVENTS
// =============================================================================

// HandleBlockStart shows a thinking indicator when a thinking block opens.
func (h *Hooks) HandleBlockStart(ctx context.Context, event string, data map[string]any) (hooks.Result, error) {
	if !h.cfg.Enabled || !h.cfg.ShowThinking {
		return hooks.Continue(), nil
	}

	blockType := getString(data, "block_type")
	index, hasIndex := getInt(data, "block_index")
	if !hasIndex || (blockType != "thinking" && blockType != "reasoning") {
		return hooks.Continue(), nil
	}

	agent := session.ParseAgent(getString(data, "session_id"))

	h.mu.Lock()
	h.thinking[index] = agent
	indicator := h.theme.Thinking.Render(styles.Icons.Think + " Thinking...")
	if agent != "" {
		h.write("\n  " + h.theme.AgentTag.Render("["+agent+"]") + " " + indicator + "\n")
	} else {
		h.write("\n" + indicator + "\n")
	}
	h.mu.Unlock()

	return hooks.Continue(), nil
}

// HandleBlockEnd shows condensed thinking text for tracked blocks and,
// after the final block, the token-usage footer.
func (h *Hooks) HandleBlockEnd(ctx context.Context, event string, data map[string]any) (hooks.Result, error) {
	if !h.cfg.Enabled {
		return hooks.Continue(), nil
	}

	index, hasIndex := getInt(data, "block_index")
	block := getMap(data, "block")

	h.mu.Lock()
	if agent, tracked := h.thinking[index]; hasIndex && tracked {
		blockType := getString(block, "type")
		if blockType == "thinking" || blockType == "reasoning" {
			text := getString(block, "thinking")
			if text == "" {
				text = getString(block, "text")
			}
			if text != "" && h.cfg.ShowThinking {
				h.writeThinking(text, agent)
			}
			delete(h.thinking, index)
		}
	}
	h.mu.Unlock()

	total, hasTotal := getInt(data, "total_blocks")
	if hasIndex && hasTotal && index == total-1 && h.cfg.ShowTokenUsage {
		if usage := getMap(data, "usage"); usage != nil {
			agent := session.ParseAgent(getString(data, "session_id"))
			h.mu.Lock()
			h.writeUsage(usage, agent)
			h.mu.Unlock()
		}
	}

	return hooks.Continue(), nil
}

// writeThinking renders up to thinkingMaxLines wrapped lines of thinking
// text, then a count of what was left out. Caller holds the lock.
func (h *Hooks) writeThinking(text string, agent string) {
	indent := ""
	if agent != "" {
		indent = "  "
	}
	baseIndent := indent + "   "
	wrapWidth := h.width - 7

	lines := strings.Split(strings.TrimSpace(text), "\n")
	shown := 0
	for _, line := range lines {
		if shown >= thinkingMaxLines {
			break
		}
		for _, wrapped := range strings.Split(cli.WrapText(line, wrapWidth), "\n") {
			if shown >= thinkingMaxLines {
				break
			}
			h.write(h.theme.ThinkingText.Render(baseIndent+wrapped) + "\n")
			shown++
		}
	}

	if len(lines) > thinkingMaxLines {
		more := "(+" + util.IntToString(len(lines)-thinkingMaxLines) + " more lines)"
		h.write(h.theme.ThinkingText.Render(baseIndent+more) + "\n")
	}
}

// writeUsage renders the token-usage footer. With prompt caching active,
// input_tokens counts only the uncached portion, so the total is the sum
// across all three input counters. Caller holds the lock.
func (h *Hooks) writeUsage(usage map[string]any, agent string) {
	inputTokens, _ := getInt(usage, "input_tokens")
	outputTokens, _ := getInt(usage, "output_tokens")
	cacheRead, _ := getInt(usage, "cache_read_input_tokens")
	cacheCreate, _ := getInt(usage, "cache_creation_input_tokens")

	u := session.Usage{
		InputTokens:         inputTokens,
		OutputTokens:        outputTokens,
		CacheReadTokens:     cacheRead,
		CacheCreationTokens: cacheCreate,
	}

	cacheInfo := ""
	switch {
	case u.CacheReadTokens > 0:
		cacheInfo = " (" + util.IntToString(u.CachePercent()) + "% cached)"
	case u.CacheCreationTokens > 0:
		cacheInfo = " (caching...)"
	}

	indent := ""
	if agent != "" {
		indent = "  "
	}
	footer := indent + "└─ " + util.CompactNumber(u.TotalInput()) + " tokens in" +
		cacheInfo + " · " + util.CompactNumber(u.OutputTokens) + " out"
	h.write(h.theme.UsageFooter.Render(footer) + "\n\n")
}

// =============================================================================
// LINE FORMATTING
// =============================================================================

// formatLine builds one display line: sub-agent indentation and tag,
// then the call arrow or the status icon, then the summary text.
func (h *Hooks) formatLine(rc *Context, text string, status Status) string {
	var b strings.Builder

	if rc.IsSubAgent && h.cfg.IndentSubAgents {
		b.WriteString("  ")
		if h.cfg.ShowAgentName && rc.AgentName != "" {
			b.WriteString(h.theme.AgentTag.Render("[" + rc.AgentName + "]"))
			b.WriteString(" ")
		}
	}

	if rc.Phase == PhaseCall {
		b.WriteString(h.theme.CallLine.Render(styles.Icons.Tool + " " + rc.ToolName + ":"))
		if text != "" {
			b.WriteString(" ")
			b.WriteString(h.theme.Param.Render(text))
		}
		return b.String()
	}

	switch status {
	case StatusFail:
		b.WriteString(h.theme.ResultFail.Render(styles.Icons.Fail))
		if text != "" {
			b.WriteString(" ")
			b.WriteString(h.theme.ResultFail.Render(text))
		}
	case StatusWarn:
		b.WriteString(h.theme.ResultWarn.Render(styles.Icons.Warn))
		if text != "" {
			b.WriteString(" ")
			b.WriteString(h.theme.ResultWarn.Render(text))
		}
	default:
		b.WriteString(h.theme.ResultOK.Render(styles.Icons.OK))
		if text != "" {
			b.WriteString(" ")
			b.WriteString(h.theme.ResultText.Render(text))
		}
	}
	return b.String()
}

// indentPrefix returns the per-line prefix for preview blocks under a
// sub-agent's call line.
func (h *Hooks) indentPrefix(rc *Context) string {
	if rc.IsSubAgent && h.cfg.IndentSubAgents {
		return "  "
	}
	return ""
}

// write sends a chunk to the output. Caller holds the lock.
func (h *Hooks) write(s string) {
	io.WriteString(h.out, s)
}

// writeBlock writes a multi-line preview block with a per-line indent
// prefix. Caller holds the lock.
func (h *Hooks) writeBlock(block, prefix string) {
	if block == "" {
		return
	}
	for _, line := range strings.Split(block, "\n") {
		h.write(prefix + line + "\n")
	}
}
