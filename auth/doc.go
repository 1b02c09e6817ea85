// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides random identifiers and API key checks.

# Identifiers

GenerateID returns hex-encoded random bytes, used for spin ids:

	id, err := auth.GenerateID(8) // 16 hex chars

Options and history records use UUIDs instead (see package store).

# API Key

When API_KEY is configured, write routes require it in the X-API-Key
header. ValidateAPIKey compares in constant time and rejects empty keys:

	if err := auth.ValidateAPIKey(r.Header.Get("X-API-Key"), cfg.APIKey); err != nil {
		// 401
	}
*/
package auth
