// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hooks provides a priority-ordered event bus for session events.
package hooks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// =============================================================================
// HANDLER RESULTS
// =============================================================================

// Action tags the outcome of a handler.
type Action int

const (
	// ActionContinue passes the payload through unchanged
	ActionContinue Action = iota
	// ActionModify replaces the payload seen by later handlers
	ActionModify
)

// String returns the string representation of an action.
func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionModify:
		return "modify"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome returned by a handler.
type Result struct {
	Action Action
	Data   map[string]any // replacement payload, set only for ActionModify
}

// Continue returns a result that leaves the payload untouched.
func Continue() Result {
	return Result{Action: ActionContinue}
}

// Modify returns a result that replaces the payload for later handlers.
func Modify(data map[string]any) Result {
	return Result{Action: ActionModify, Data: data}
}

// Handler processes an event payload and reports whether it modified it.
type Handler func(ctx context.Context, event string, data map[string]any) (Result, error)

// =============================================================================
// BUS
// =============================================================================

// Subscription identifies a registered handler for later removal.
type Subscription string

// subscription binds a handler to its priority and registration order.
type subscription struct {
	id       Subscription
	priority int
	seq      int
	handler  Handler
}

// Bus dispatches events to handlers in ascending priority order.
// Registration order breaks priority ties, so dispatch is deterministic.
// Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]subscription
	nextSeq  int
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscription),
	}
}

// Register subscribes a handler to an event at the given priority and
// returns a subscription id for Unregister.
func (b *Bus) Register(event string, h Handler, priority int) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := subscription{
		id:       Subscription(uuid.NewString()),
		priority: priority,
		seq:      b.nextSeq,
		handler:  h,
	}
	b.nextSeq++

	chain := append(b.handlers[event], sub)
	sort.SliceStable(chain, func(i, j int) bool {
		if chain[i].priority != chain[j].priority {
			return chain[i].priority < chain[j].priority
		}
		return chain[i].seq < chain[j].seq
	})
	b.handlers[event] = chain

	return sub.id
}

// Unregister removes a subscription from every event chain.
func (b *Bus) Unregister(id Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for event, chain := range b.handlers {
		for i, sub := range chain {
			if sub.id == id {
				b.handlers[event] = append(chain[:i:i], chain[i+1:]...)
				break
			}
		}
	}
}

// Emit runs the event's handler chain, threading the payload through each
// stage. A Modify result replaces the payload for the rest of the chain;
// the final payload is returned. A handler error stops the chain.
func (b *Bus) Emit(ctx context.Context, event string, data map[string]any) (map[string]any, error) {
	b.mu.RLock()
	chain := make([]subscription, len(b.handlers[event]))
	copy(chain, b.handlers[event])
	b.mu.RUnlock()

	for _, sub := range chain {
		if err := ctx.Err(); err != nil {
			return data, err
		}

		result, err := sub.handler(ctx, event, data)
		if err != nil {
			return data, fmt.Errorf("handler for %q failed: %w", event, err)
		}
		if result.Action == ActionModify && result.Data != nil {
			data = result.Data
		}
	}

	return data, nil
}

// HandlerCount returns the number of handlers registered for an event.
func (b *Bus) HandlerCount(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event])
}
