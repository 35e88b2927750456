// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the glimpse display layer.

This package defines the color palette and the theme applied to tool call
lines, result lines, diff previews, and the token-usage footer. All colors
use Lip Gloss AdaptiveColor for automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Cyan - Tool names and call lines
  - Emerald - Success results
  - Rose - Failed results
  - Amber - Warning results
  - Purple - Agent tags and thinking indicator

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text (parameters, context lines)

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	line := theme.ToolName.Render("edit_file")

The theme detects the terminal's color profile and dark background via
termenv; rendering degrades to plain text on dumb terminals.
*/
package styles
