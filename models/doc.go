// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Option: one wheel slice (id, text, color). Identity is by ID only.
  - HistoryRecord: immutable log entry of one spin outcome
  - Settings: sound/vibration flags and spin duration

HistoryRecord keeps the camelCase JSON field names used by the stored
history slot (totalOptions, timeString) so existing data decodes unchanged.

# Request Types

  - AddOptionRequest: text, color (color optional)
  - ReorderOptionsRequest: from (indices), to (offset)
  - UpdateSettingsRequest: partial settings, nil fields untouched

# Response Types

  - SpinResponse: spin_id, rotations, duration
  - WheelStatusResponse: state, rotation, last_result
  - HistoryResponse: records grouped into today, yesterday, earlier
  - StatsResponse: per-option selection counts
  - ErrorResponse: error, message

# Constants

Wheel states:

	StateIdle     = "idle"
	StateSpinning = "spinning"

Spin duration (seconds): default 3.0, clamped to [1.0, 5.0].
*/
package models
