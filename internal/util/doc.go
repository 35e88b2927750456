// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the glimpse display layer.
//
// This package contains the shared text helpers used by every renderer
// for parameter previews, result summaries, and diff lines.
//
// # Key Functions
//
// String Utilities:
//   - Truncate: width-aware single-line truncation with ellipsis
//   - FirstLine: first line of a blob plus the count of remaining lines
//
// Formatting:
//   - FormatCount: count with pluralized noun ("1 line", "3 lines")
//   - CompactNumber: compact magnitude formatting (1234 -> "1k")
//   - IntToString, Int64ToString: numeric to string conversion
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.Truncate(longText, 50)
//
//	// Summarize multi-line output
//	first, remaining := util.FirstLine(output, 60)
package util
