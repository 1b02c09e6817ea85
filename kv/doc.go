// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kv provides the key-value storage the option store persists into.

# Backends

  - SQLStore: kv_entry table on sqlite or postgres (see package db)
  - RedisStore: one string key per slot, prefixed with "luckypicker:"
  - MemoryStore: in-process map, for tests and throwaway runs

Open selects the backend from the configuration:

	store, closeFn, err := kv.Open(ctx, cfg)
	defer closeFn()

Values are opaque bytes; callers own the serialization.
*/
package kv
