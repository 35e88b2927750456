// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff provides common-context diff summarization for edit previews.
//
// This package computes a minimal, bounded-size view of an in-place text
// edit: the longest run of lines shared at the start and end of the old
// and new content, and the changed region between them. It deliberately
// does not compute a full line-level diff; the output is meant for a
// one-glance terminal preview, not a patch.
//
// # Key Types
//
//   - ContextSplit: common leading/trailing context plus both changed sides
//   - RenderPlan: a ContextSplit truncated to display limits with elision counts
//   - Segment: a single display-ready line or elision marker
//
// # Usage
//
// Split an edit and build a bounded preview:
//
//	split := diff.SplitContext(oldContent, newContent)
//	plan := diff.BuildRenderPlan(split, 2, 4)
//	for _, seg := range plan.Segments() {
//		fmt.Println(seg.Kind.Prefix() + seg.Content)
//	}
package diff
