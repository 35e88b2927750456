// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package replay feeds JSONL transcripts of session events through a
// hook bus.
package replay

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jeranaias/glimpse/internal/hooks"
)

// maxLineBytes bounds a single transcript line; file writes can carry
// whole source files in their payload.
const maxLineBytes = 4 * 1024 * 1024

// Event is one transcript line: an event name and its payload.
type Event struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// Run reads JSONL events from r and emits each on the bus in order.
// Stops at the first malformed line, handler error, or context
// cancellation.
func Run(ctx context.Context, r io.Reader, bus *hooks.Bus) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return fmt.Errorf("transcript line %d: invalid event: %w", lineNo, err)
		}
		if ev.Event == "" {
			return fmt.Errorf("transcript line %d: missing event name", lineNo)
		}

		if _, err := bus.Emit(ctx, ev.Event, ev.Data); err != nil {
			return fmt.Errorf("transcript line %d: emit %q: %w", lineNo, ev.Event, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}
	return nil
}
