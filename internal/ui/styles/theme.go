// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the glimpse display layer.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the display layer.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// TOOL CALL LINE STYLES
	// ==========================================================================

	CallLine lipgloss.Style
	ToolName lipgloss.Style
	Param    lipgloss.Style
	AgentTag lipgloss.Style

	// ==========================================================================
	// RESULT LINE STYLES
	// ==========================================================================

	ResultOK   lipgloss.Style
	ResultFail lipgloss.Style
	ResultWarn lipgloss.Style
	ResultText lipgloss.Style

	// ==========================================================================
	// DIFF PREVIEW STYLES
	// ==========================================================================

	DiffContext       lipgloss.Style
	DiffAddedLine     lipgloss.Style
	DiffRemovedLine   lipgloss.Style
	DiffAddedElision  lipgloss.Style
	DiffRemovedElision lipgloss.Style

	// ==========================================================================
	// PREVIEW AND THINKING STYLES
	// ==========================================================================

	Preview     lipgloss.Style
	Thinking    lipgloss.Style
	ThinkingText lipgloss.Style
	UsageFooter lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Tool call lines
	t.CallLine = lipgloss.NewStyle().
		Foreground(Cyan)

	t.ToolName = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.Param = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.AgentTag = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Result lines
	t.ResultOK = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ResultFail = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ResultWarn = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.ResultText = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Diff previews
	t.DiffContext = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DiffAddedLine = lipgloss.NewStyle().
		Foreground(DiffAdded).
		Bold(true)

	t.DiffRemovedLine = lipgloss.NewStyle().
		Foreground(DiffRemoved).
		Bold(true)

	t.DiffAddedElision = lipgloss.NewStyle().
		Foreground(DiffAdded)

	t.DiffRemovedElision = lipgloss.NewStyle().
		Foreground(DiffRemoved)

	// Write previews and thinking blocks
	t.Preview = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Thinking = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.UsageFooter = lipgloss.NewStyle().
		Foreground(TextMuted)
}
