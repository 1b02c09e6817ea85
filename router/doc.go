// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Lucky Picker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, wh, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Options (mutations require X-API-Key when one is configured):

	GET    /options         - Current wheel order
	POST   /options         - Append an option
	DELETE /options/{index} - Remove by position
	POST   /options/reorder - Move a set of positions

Spinning:

	POST /spin - Start a spin, returns the animation plan
	GET  /spin - Wheel state and the last settled result

History, settings and statistics:

	GET    /history  - Results grouped by day
	DELETE /history  - Clear all results
	GET    /settings
	PUT    /settings - Partial update
	GET    /stats    - Selection counts per option
*/
package router
