// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lucky Picker API.

# Handler Types

Each handler is a struct over the option store, and the wheel where needed:

  - OptionsHandler: List, add, remove and reorder wheel options
  - SpinHandler: Start a spin and report wheel state
  - HistoryHandler: Grouped spin history and clearing it
  - SettingsHandler: Sound, vibration and spin duration
  - StatsHandler: Selection counts per option

Handlers are created via constructor functions:

	spinHandler := handlers.NewSpinHandler(st, wh)

# Spin Flow

A spin is accepted only when the wheel is idle and has options:

	POST /spin → 202 with spin_id, from/target rotation and timings
	           → 409 when empty or already spinning

The selection is not part of the response. Once duration plus the settle
delay has elapsed the wheel resolves the option under the pointer, and the
handler appends it to history and bumps its selection count. Clients read
it back from GET /spin or GET /history.

# Errors

Failures use the shared JSON error shape:

	{"error": "Conflict", "message": "Wheel is already spinning"}
*/
package handlers
