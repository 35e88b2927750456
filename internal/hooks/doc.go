// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hooks provides a priority-ordered event bus for session events.
//
// Handlers subscribe to named events with a priority; emission runs them
// in ascending priority order. Each handler returns a tagged result:
// Continue passes the payload through unchanged, Modify replaces the
// payload seen by every later handler in the chain. The final payload is
// returned to the emitter.
//
// # Usage
//
//	bus := hooks.NewBus()
//	sub := bus.Register("tool:pre", handler, 4)
//	data, err := bus.Emit(ctx, "tool:pre", payload)
//	bus.Unregister(sub)
package hooks
