// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the glimpse display layer.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Agent tags, thinking indicator
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Tool names, call lines
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success results
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Failed results, deleted diff lines
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warning results
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// DIFF COLORS
// =============================================================================

// DiffAdded - Added lines in edit previews
var DiffAdded = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}

// DiffRemoved - Removed lines in edit previews
var DiffRemoved = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Overlay - Separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Parameters, context lines, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// STATUS ICONS
// =============================================================================

// IconSet holds the status icons shown next to tool calls and results.
type IconSet struct {
	Tool   string
	OK     string
	Fail   string
	Warn   string
	Run    string
	File   string
	Search string
	Think  string
	Tokens string
}

// Icons provides the status icons for the display layer.
var Icons = IconSet{
	Tool:   "→",
	OK:     "✓",
	Fail:   "✗",
	Warn:   "!",
	Run:    "▶",
	File:   "◇",
	Search: "○",
	Think:  "💭",
	Tokens: "📊",
}
