// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the glimpse display layer.
package util

import "strconv"

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// Int64ToString converts an int64 to string.
// Uses strconv.FormatInt for optimal performance.
func Int64ToString(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatCount formats a count with a pluralized noun: "1 line", "3 lines".
// An empty plural defaults to singular + "s".
func FormatCount(n int, singular, plural string) string {
	if plural == "" {
		plural = singular + "s"
	}
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// CompactNumber formats a number compactly: 1234 -> "1k", 1234567 -> "1.2M".
// Sub-thousand values are returned as-is.
func CompactNumber(n int) string {
	switch {
	case n >= 1_000_000:
		s := strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64)
		return trimZero(s) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "k"
	default:
		return strconv.Itoa(n)
	}
}

// FormatThousands formats a number with thousand separators: 12345 -> "12,345".
func FormatThousands(n int) string {
	if n < 0 {
		return "-" + FormatThousands(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// trimZero drops a trailing ".0" from a fixed-point string.
func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
