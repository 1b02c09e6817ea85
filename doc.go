// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lucky Picker API server.

Lucky Picker is a spinning decision wheel: keep a list of options, spin,
and the option under the pointer when the wheel settles is the pick.
Results are kept in a day-grouped history with per-option counts.

# Starting the Server

With no configuration the server stores everything in a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."
	go run . -t redis -d "redis://localhost:6379/0"

# Configuration

Settings come from flags, then environment (a .env file is loaded first),
then defaults:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres, redis or memory (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:luckypicker.db)
  - API_KEY (--api-key): Required in X-API-Key for write routes when set
  - LOG_LEVEL (--log-level): debug, info, warn or error
  - LOG_FILE (--log-file): Also write JSON logs to a rotated file

# Architecture

  - wheel: Spin state machine and pointer resolution
  - store: Options, history, counts and settings over a key-value store
  - kv: SQL, Redis and in-memory key-value backends
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, API key and JSON helpers
  - metrics: Prometheus collectors
  - models: Domain, request and response types
  - auth: ID generation and API key checks
  - db: SQL connection and schema
  - logging: slog setup with file rotation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
