// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
package display

import (
	"strings"

	"github.com/jeranaias/glimpse/internal/config"
	"github.com/jeranaias/glimpse/internal/diff"
	"github.com/jeranaias/glimpse/internal/ui/styles"
	"github.com/jeranaias/glimpse/internal/util"
)

// =============================================================================
// EDIT PREVIEWS
// =============================================================================

// previewIndent indents preview lines under their call line.
const previewIndent = "  "

// RenderDiffBlock renders a bounded diff preview for an edit: common
// context around the change, removed lines, added lines, with per-side
// elision markers when a side exceeds the configured cap. lineWidth is
// the display-width budget for each line's content. Returns the empty
// string when old and new content are identical.
func RenderDiffBlock(oldContent, newContent string, cfg *config.Display, theme *styles.Theme, lineWidth int) string {
	split := diff.SplitContext(oldContent, newContent)
	if !split.Changed() {
		return ""
	}

	plan := diff.BuildRenderPlan(split, cfg.ContextLines, cfg.MaxDiffLines)

	var b strings.Builder
	for _, seg := range plan.Segments() {
		b.WriteString(previewIndent)
		switch seg.Kind {
		case diff.SegmentRemovedElision:
			b.WriteString(theme.DiffRemovedElision.Render("... (+" + util.IntToString(seg.Count) + ")"))
		case diff.SegmentAddedElision:
			b.WriteString(theme.DiffAddedElision.Render("... (+" + util.IntToString(seg.Count) + ")"))
		default:
			line := seg.Kind.Prefix() + " " + util.TruncateLine(seg.Content, lineWidth)
			switch seg.Kind {
			case diff.SegmentRemoved:
				b.WriteString(theme.DiffRemovedLine.Render(line))
			case diff.SegmentAdded:
				b.WriteString(theme.DiffAddedLine.Render(line))
			default:
				b.WriteString(theme.DiffContext.Render(line))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// =============================================================================
// WRITE PREVIEWS
// =============================================================================

const (
	// writePreviewHead is the number of leading lines shown for a write.
	writePreviewHead = 7
	// writePreviewTail is the number of trailing lines shown after an elision.
	writePreviewTail = 2
)

// RenderWritePreview renders the head and tail of content about to be
// written, with an elision marker between them when the body is long.
// lineWidth is the display-width budget for each line's content. Returns
// the empty string for empty content.
func RenderWritePreview(content string, theme *styles.Theme, lineWidth int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	lines := diff.SplitLines(content)

	render := func(b *strings.Builder, line string) {
		b.WriteString(previewIndent)
		b.WriteString(theme.Preview.Render(util.TruncateLine(line, lineWidth)))
		b.WriteString("\n")
	}

	var b strings.Builder
	if len(lines) <= writePreviewHead+writePreviewTail {
		for _, line := range lines {
			render(&b, line)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	for _, line := range lines[:writePreviewHead] {
		render(&b, line)
	}
	elided := len(lines) - writePreviewHead - writePreviewTail
	b.WriteString(previewIndent)
	b.WriteString(theme.Preview.Render("... (" + util.FormatCount(elided, "line", "") + " elided) ..."))
	b.WriteString("\n")
	for _, line := range lines[len(lines)-writePreviewTail:] {
		render(&b, line)
	}
	return strings.TrimRight(b.String(), "\n")
}
