// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff provides common-context diff summarization for edit previews.
package diff

import "strings"

// =============================================================================
// SEGMENT TYPES
// =============================================================================

// SegmentKind represents the kind of a display segment.
type SegmentKind int

const (
	// SegmentContext represents unchanged context lines
	SegmentContext SegmentKind = iota
	// SegmentRemoved represents lines present only in the old content
	SegmentRemoved
	// SegmentAdded represents lines present only in the new content
	SegmentAdded
	// SegmentRemovedElision marks omitted removed lines, carrying the count
	SegmentRemovedElision
	// SegmentAddedElision marks omitted added lines, carrying the count
	SegmentAddedElision
)

// String returns the string representation of a segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentContext:
		return "context"
	case SegmentRemoved:
		return "removed"
	case SegmentAdded:
		return "added"
	case SegmentRemovedElision:
		return "removed-elision"
	case SegmentAddedElision:
		return "added-elision"
	default:
		return "unknown"
	}
}

// Prefix returns the diff prefix character for this segment kind.
// Elision markers carry no prefix; their text is built from the count.
func (k SegmentKind) Prefix() string {
	switch k {
	case SegmentRemoved:
		return "-"
	case SegmentAdded:
		return "+"
	default:
		return " "
	}
}

// Segment is a single display-ready element of a diff preview.
// For elision kinds Content is empty and Count holds the number of
// omitted lines; for all other kinds Count is zero.
type Segment struct {
	Kind    SegmentKind
	Content string
	Count   int
}

// =============================================================================
// CONTEXT SPLIT
// =============================================================================

// ContextSplit is the result of comparing two line sequences: the longest
// common prefix and suffix of lines, and the differing middle region on
// each side. Reassembling Leading + OldChanged + Trailing yields the old
// lines exactly; Leading + NewChanged + Trailing yields the new lines.
type ContextSplit struct {
	Leading    []string // lines common to both sequences' start
	OldChanged []string // old-only lines in the differing middle region
	NewChanged []string // new-only lines in the differing middle region
	Trailing   []string // lines common to both sequences' end
}

// OldLines reassembles the old line sequence from the split.
func (s ContextSplit) OldLines() []string {
	out := make([]string, 0, len(s.Leading)+len(s.OldChanged)+len(s.Trailing))
	out = append(out, s.Leading...)
	out = append(out, s.OldChanged...)
	out = append(out, s.Trailing...)
	return out
}

// NewLines reassembles the new line sequence from the split.
func (s ContextSplit) NewLines() []string {
	out := make([]string, 0, len(s.Leading)+len(s.NewChanged)+len(s.Trailing))
	out = append(out, s.Leading...)
	out = append(out, s.NewChanged...)
	out = append(out, s.Trailing...)
	return out
}

// Changed reports whether the split contains any changed lines.
func (s ContextSplit) Changed() bool {
	return len(s.OldChanged) > 0 || len(s.NewChanged) > 0
}

// Stats returns the number of added and removed lines in the split.
func (s ContextSplit) Stats() (added, removed int) {
	return len(s.NewChanged), len(s.OldChanged)
}

// SplitLines splits text into lines on "\n". Empty text yields a single
// empty-string line; a non-null input never produces an empty sequence.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// SplitContext splits old and new content into lines and computes the
// common-context split between them. Cost is linear in the smaller of the
// two line counts.
func SplitContext(oldContent, newContent string) ContextSplit {
	return splitSequences(SplitLines(oldContent), SplitLines(newContent))
}

// splitSequences computes the common prefix and suffix of two line
// sequences. The suffix scan is clamped to min(len) - prefixLen so the
// two windows never claim the same elements.
func splitSequences(oldLines, newLines []string) ContextSplit {
	minLen := len(oldLines)
	if len(newLines) < minLen {
		minLen = len(newLines)
	}

	prefixLen := 0
	for prefixLen < minLen && oldLines[prefixLen] == newLines[prefixLen] {
		prefixLen++
	}

	suffixLen := 0
	for suffixLen < minLen-prefixLen &&
		oldLines[len(oldLines)-1-suffixLen] == newLines[len(newLines)-1-suffixLen] {
		suffixLen++
	}

	split := ContextSplit{
		Leading: oldLines[:prefixLen],
	}

	oldEnd := len(oldLines)
	newEnd := len(newLines)
	if suffixLen > 0 {
		split.Trailing = oldLines[len(oldLines)-suffixLen:]
		oldEnd -= suffixLen
		newEnd -= suffixLen
	}

	split.OldChanged = oldLines[prefixLen:oldEnd]
	split.NewChanged = newLines[prefixLen:newEnd]

	return split
}

// =============================================================================
// RENDER PLAN
// =============================================================================

// RenderPlan is a ContextSplit truncated to display limits. Context beyond
// the window is silently dropped (the lines nearest the change are kept);
// changed lines beyond the cap are replaced by an elision count. A plan is
// built fresh per render call and has no independent lifecycle.
type RenderPlan struct {
	Leading       []string
	Removed       []string
	RemovedElided int // omitted old-side lines, 0 when none
	Added         []string
	AddedElided   int // omitted new-side lines, 0 when none
	Trailing      []string
}

// BuildRenderPlan bounds a split for display. contextWindow is the number
// of context lines kept at each boundary; maxChangedLines caps each
// changed side independently. Both must be non-negative; that is the
// caller's contract and is not validated here.
func BuildRenderPlan(split ContextSplit, contextWindow, maxChangedLines int) RenderPlan {
	plan := RenderPlan{
		Leading:  split.Leading,
		Removed:  split.OldChanged,
		Added:    split.NewChanged,
		Trailing: split.Trailing,
	}

	// Leading context keeps the lines nearest the change. Dropped lines
	// get no marker: distance from the edit makes them irrelevant.
	if len(plan.Leading) > contextWindow {
		plan.Leading = plan.Leading[len(plan.Leading)-contextWindow:]
	}
	if len(plan.Trailing) > contextWindow {
		plan.Trailing = plan.Trailing[:contextWindow]
	}

	if len(plan.Removed) > maxChangedLines {
		plan.RemovedElided = len(plan.Removed) - maxChangedLines
		plan.Removed = plan.Removed[:maxChangedLines]
	}
	if len(plan.Added) > maxChangedLines {
		plan.AddedElided = len(plan.Added) - maxChangedLines
		plan.Added = plan.Added[:maxChangedLines]
	}

	return plan
}

// Segments returns the plan as an ordered sequence of display-ready
// segments: leading context, removals (with elision marker), additions
// (with elision marker), trailing context.
func (p RenderPlan) Segments() []Segment {
	segs := make([]Segment, 0,
		len(p.Leading)+len(p.Removed)+len(p.Added)+len(p.Trailing)+2)

	for _, line := range p.Leading {
		segs = append(segs, Segment{Kind: SegmentContext, Content: line})
	}
	for _, line := range p.Removed {
		segs = append(segs, Segment{Kind: SegmentRemoved, Content: line})
	}
	if p.RemovedElided > 0 {
		segs = append(segs, Segment{Kind: SegmentRemovedElision, Count: p.RemovedElided})
	}
	for _, line := range p.Added {
		segs = append(segs, Segment{Kind: SegmentAdded, Content: line})
	}
	if p.AddedElided > 0 {
		segs = append(segs, Segment{Kind: SegmentAddedElision, Count: p.AddedElided})
	}
	for _, line := range p.Trailing {
		segs = append(segs, Segment{Kind: SegmentContext, Content: line})
	}

	return segs
}
