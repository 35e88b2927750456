// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the glimpse display layer.
package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}
}

func TestTheme_StylesRenderPlainWithoutColor(t *testing.T) {
	restore := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	defer lipgloss.SetColorProfile(restore)

	theme := NewTheme()

	// With colors disabled, rendering must pass content through untouched.
	if got := theme.ToolName.Render("edit_file"); got != "edit_file" {
		t.Errorf("Expected plain 'edit_file', got %q", got)
	}
	if got := theme.DiffRemovedLine.Render("- old"); got != "- old" {
		t.Errorf("Expected plain '- old', got %q", got)
	}
}

func TestIcons(t *testing.T) {
	if Icons.OK == "" || Icons.Fail == "" || Icons.Tool == "" {
		t.Error("Status icons must not be empty")
	}
	if Icons.OK == Icons.Fail {
		t.Error("Success and failure icons must differ")
	}
}
