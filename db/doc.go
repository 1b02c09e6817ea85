// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL backend and creates its schema.

# Opening

Open picks the driver from the configured database type, pings and creates
the schema:

	conn, err := db.Open(cfg)

Drivers:

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq

In-memory sqlite URLs are limited to one connection so every query sees
the same database.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_entry: one row per storage slot (name → serialized value)

Slots written by the option store:

	savedOptions           JSON array of options
	savedHistory           JSON array of history records
	optionSelectionCounts  JSON object, option id → count
	soundEnabled           JSON bool
	vibrationEnabled       JSON bool
	spinDuration           JSON number
*/
package db
