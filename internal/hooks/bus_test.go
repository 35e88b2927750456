// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hooks provides a priority-ordered event bus for session events.
package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PriorityOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	record := func(name string) Handler {
		return func(ctx context.Context, event string, data map[string]any) (Result, error) {
			order = append(order, name)
			return Continue(), nil
		}
	}

	bus.Register("tool:pre", record("late"), 10)
	bus.Register("tool:pre", record("early"), 1)
	bus.Register("tool:pre", record("mid"), 4)

	_, err := bus.Emit(context.Background(), "tool:pre", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "mid", "late"}, order)
}

func TestBus_StableWithinPriority(t *testing.T) {
	bus := NewBus()
	var order []string

	for _, name := range []string{"a", "b", "c"} {
		name := name
		bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
			order = append(order, name)
			return Continue(), nil
		}, 4)
	}

	_, err := bus.Emit(context.Background(), "ev", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestBus_ModifyThreadsPayload(t *testing.T) {
	bus := NewBus()

	bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		modified := map[string]any{"seen": true}
		for k, v := range data {
			modified[k] = v
		}
		return Modify(modified), nil
	}, 1)

	var sawModified bool
	bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		sawModified = data["seen"] == true
		return Continue(), nil
	}, 2)

	final, err := bus.Emit(context.Background(), "ev", map[string]any{"original": 1})
	require.NoError(t, err)

	assert.True(t, sawModified, "later handler should see modified payload")
	assert.Equal(t, true, final["seen"])
	assert.Equal(t, 1, final["original"])
}

func TestBus_ContinueLeavesPayload(t *testing.T) {
	bus := NewBus()
	bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		return Continue(), nil
	}, 1)

	payload := map[string]any{"k": "v"}
	final, err := bus.Emit(context.Background(), "ev", payload)
	require.NoError(t, err)
	assert.Equal(t, payload, final)
}

func TestBus_HandlerErrorStopsChain(t *testing.T) {
	bus := NewBus()
	boom := errors.New("boom")

	bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		return Result{}, boom
	}, 1)

	var called bool
	bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		called = true
		return Continue(), nil
	}, 2)

	_, err := bus.Emit(context.Background(), "ev", nil)
	assert.ErrorIs(t, err, boom)
	assert.False(t, called, "handlers after the failure must not run")
}

func TestBus_Unregister(t *testing.T) {
	bus := NewBus()
	var calls int

	sub := bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		calls++
		return Continue(), nil
	}, 1)

	_, err := bus.Emit(context.Background(), "ev", nil)
	require.NoError(t, err)

	bus.Unregister(sub)
	assert.Equal(t, 0, bus.HandlerCount("ev"))

	_, err = bus.Emit(context.Background(), "ev", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestBus_EmitUnknownEvent(t *testing.T) {
	bus := NewBus()
	payload := map[string]any{"k": "v"}

	final, err := bus.Emit(context.Background(), "no-such-event", payload)
	require.NoError(t, err)
	assert.Equal(t, payload, final)
}

func TestBus_CancelledContext(t *testing.T) {
	bus := NewBus()
	bus.Register("ev", func(ctx context.Context, event string, data map[string]any) (Result, error) {
		t.Error("handler must not run with cancelled context")
		return Continue(), nil
	}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bus.Emit(ctx, "ev", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
