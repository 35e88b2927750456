// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the glimpse display layer.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is the single-character marker appended to truncated text.
const Ellipsis = "…"

// UNICODE: Width-aware truncation preserves multi-byte characters.
// All truncation counts terminal cells, not bytes, so CJK and emoji
// content never gets cut mid-character or blows past the column budget.

// Truncate flattens a string to a single line and truncates it to the
// given display width. Embedded newlines become spaces and surrounding
// whitespace is trimmed before measuring. When the result is wider than
// maxWidth it is cut to maxWidth-1 cells and the ellipsis is appended.
// Truncation is lossy and never reversed.
func Truncate(s string, maxWidth int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// TruncateLine truncates a single line to the given display width without
// touching embedded whitespace. Used for diff and preview lines where
// leading indentation is significant.
func TruncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// FirstLine returns the first line of a blob truncated to maxWidth, plus
// the count of remaining lines.
func FirstLine(s string, maxWidth int) (string, int) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	first := Truncate(lines[0], maxWidth)
	return first, len(lines) - 1
}
