// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
package display

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/glimpse/internal/config"
	"github.com/jeranaias/glimpse/internal/hooks"
	"github.com/jeranaias/glimpse/internal/ui/styles"
)

// newTestHooks builds a hook adapter writing into a buffer.
func newTestHooks(cfg *config.Display) (*Hooks, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewHooks(cfg, styles.NewTheme(), &buf, 80), &buf
}

func TestHooks_ToolPreRendersCallLine(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	res, err := h.HandleToolPre(context.Background(), "tool:pre", map[string]any{
		"tool_name":  "bash",
		"tool_input": map[string]any{"command": "ls -la"},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "→ bash: ls -la")
	assert.Equal(t, hooks.ActionModify, res.Action)

	meta, ok := res.Data["hook_metadata"].(map[string]any)
	require.True(t, ok, "payload must carry hook metadata")
	assert.Equal(t, true, meta["concise_displayed"])
}

func TestHooks_ToolPostRendersResultLine(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleToolPost(context.Background(), "tool:post", map[string]any{
		"tool_name":     "bash",
		"tool_response": map[string]any{"returncode": float64(1), "stderr": "boom"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✗ exit 1: boom")
}

func TestHooks_SkipsTodo(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	res, err := h.HandleToolPre(context.Background(), "tool:pre", map[string]any{
		"tool_name": "todo",
	})
	require.NoError(t, err)
	assert.Equal(t, hooks.ActionContinue, res.Action)

	res, err = h.HandleToolPost(context.Background(), "tool:post", map[string]any{
		"tool_name": "todo",
	})
	require.NoError(t, err)
	assert.Equal(t, hooks.ActionContinue, res.Action)
	assert.Empty(t, buf.String())
}

func TestHooks_DisabledPassthrough(t *testing.T) {
	cfg := config.Default()
	cfg.Enabled = false
	h, buf := newTestHooks(cfg)

	res, err := h.HandleToolPre(context.Background(), "tool:pre", map[string]any{
		"tool_name":  "bash",
		"tool_input": map[string]any{"command": "ls"},
	})
	require.NoError(t, err)
	assert.Equal(t, hooks.ActionContinue, res.Action)
	assert.Empty(t, buf.String())
}

func TestHooks_EditRendersDiffPreview(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleToolPre(context.Background(), "tool:pre", map[string]any{
		"tool_name": "edit_file",
		"tool_input": map[string]any{
			"file_path":  "main.go",
			"old_string": "ctx\nold line\nctx2",
			"new_string": "ctx\nnew line\nctx2",
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "→ edit_file: main.go")
	assert.Contains(t, out, "- old line")
	assert.Contains(t, out, "+ new line")
	assert.Contains(t, out, "ctx")
}

func TestHooks_WriteRendersContentPreview(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleToolPre(context.Background(), "tool:pre", map[string]any{
		"tool_name": "write_file",
		"tool_input": map[string]any{
			"file_path": "notes.txt",
			"content":   "alpha\nbeta",
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "→ write_file: notes.txt")
	assert.Contains(t, out, "  alpha")
	assert.Contains(t, out, "  beta")
}

func TestHooks_SubAgentIndentation(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleToolPre(context.Background(), "tool:pre", map[string]any{
		"tool_name":  "grep",
		"tool_input": map[string]any{"pattern": "x"},
		"session_id": "abc123_foundation:explorer",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "  [foundation:explorer] → grep: x")
}

func TestHooks_ThinkingFlow(t *testing.T) {
	h, buf := newTestHooks(config.Default())
	ctx := context.Background()

	_, err := h.HandleBlockStart(ctx, "content_block:start", map[string]any{
		"block_type":  "thinking",
		"block_index": float64(0),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Thinking...")

	buf.Reset()
	_, err = h.HandleBlockEnd(ctx, "content_block:end", map[string]any{
		"block_index": float64(0),
		"block": map[string]any{
			"type":     "thinking",
			"thinking": "first thought\nsecond thought",
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "first thought")
	assert.Contains(t, out, "second thought")
	assert.NotContains(t, out, "more lines")
}

func TestHooks_ThinkingTruncatesLongBlocks(t *testing.T) {
	h, buf := newTestHooks(config.Default())
	ctx := context.Background()

	_, err := h.HandleBlockStart(ctx, "content_block:start", map[string]any{
		"block_type":  "thinking",
		"block_index": 1,
	})
	require.NoError(t, err)
	buf.Reset()

	lines := make([]string, 9)
	for i := range lines {
		lines[i] = "thought"
	}
	_, err = h.HandleBlockEnd(ctx, "content_block:end", map[string]any{
		"block_index": 1,
		"block": map[string]any{
			"type":     "thinking",
			"thinking": strings.Join(lines, "\n"),
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, thinkingMaxLines, strings.Count(out, "thought"))
	assert.Contains(t, out, "(+4 more lines)")
}

func TestHooks_UntrackedBlockEndIsSilent(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleBlockEnd(context.Background(), "content_block:end", map[string]any{
		"block_index": 3,
		"block":       map[string]any{"type": "text"},
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestHooks_UsageFooter(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleBlockEnd(context.Background(), "content_block:end", map[string]any{
		"block_index":  float64(1),
		"total_blocks": float64(2),
		"block":        map[string]any{"type": "text"},
		"usage": map[string]any{
			"input_tokens":                float64(1000),
			"output_tokens":               float64(1200),
			"cache_read_input_tokens":     float64(10000),
			"cache_creation_input_tokens": float64(2000),
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "└─ 13k tokens in")
	assert.Contains(t, out, "(76% cached)")
	assert.Contains(t, out, "· 1k out")
}

func TestHooks_UsageFooterCaching(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleBlockEnd(context.Background(), "content_block:end", map[string]any{
		"block_index":  0,
		"total_blocks": 1,
		"block":        map[string]any{"type": "text"},
		"usage": map[string]any{
			"input_tokens":                500,
			"output_tokens":               100,
			"cache_creation_input_tokens": 400,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(caching...)")
}

func TestHooks_UsageFooterOnlyAfterLastBlock(t *testing.T) {
	h, buf := newTestHooks(config.Default())

	_, err := h.HandleBlockEnd(context.Background(), "content_block:end", map[string]any{
		"block_index":  0,
		"total_blocks": 3,
		"block":        map[string]any{"type": "text"},
		"usage":        map[string]any{"input_tokens": 100},
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestHooks_Mount(t *testing.T) {
	h, buf := newTestHooks(config.Default())
	bus := hooks.NewBus()

	manifest := h.Mount(bus)
	assert.Equal(t, "glimpse-display", manifest.Name)
	assert.Contains(t, manifest.Tools, "edit_file")

	for _, event := range []string{"tool:pre", "tool:post", "content_block:start", "content_block:end"} {
		assert.Equal(t, 1, bus.HandlerCount(event), event)
	}

	final, err := bus.Emit(context.Background(), "tool:pre", map[string]any{
		"tool_name":  "glob",
		"tool_input": map[string]any{"pattern": "*.go"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "→ glob: *.go")

	meta, ok := final["hook_metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, meta["concise_displayed"])
}
