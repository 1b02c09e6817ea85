// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lucky-picker/cliparse"
	"github.com/danielhkuo/lucky-picker/handlers"
	"github.com/danielhkuo/lucky-picker/metrics"
	"github.com/danielhkuo/lucky-picker/middleware"
	"github.com/danielhkuo/lucky-picker/store"
	"github.com/danielhkuo/lucky-picker/wheel"
)

func NewRouter(st *store.Store, wh *wheel.Wheel, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	optionsHandler := handlers.NewOptionsHandler(st)
	historyHandler := handlers.NewHistoryHandler(st)
	spinHandler := handlers.NewSpinHandler(st, wh)
	settingsHandler := handlers.NewSettingsHandler(st)
	statsHandler := handlers.NewStatsHandler(st)

	// guarded wraps mutating routes with the API key check
	guarded := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAPIKey(cfg.APIKey, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Option list
	mux.HandleFunc("GET /options", middleware.WithLogging(optionsHandler.ListOptions))
	mux.HandleFunc("POST /options", guarded(optionsHandler.AddOption))
	mux.HandleFunc("DELETE /options/{index}", guarded(optionsHandler.RemoveOption))
	mux.HandleFunc("POST /options/reorder", guarded(optionsHandler.ReorderOptions))

	// Spinning
	mux.HandleFunc("POST /spin", guarded(spinHandler.Spin))
	mux.HandleFunc("GET /spin", middleware.WithLogging(spinHandler.GetStatus))

	// History
	mux.HandleFunc("GET /history", middleware.WithLogging(historyHandler.GetHistory))
	mux.HandleFunc("DELETE /history", guarded(historyHandler.ClearHistory))

	// Settings and statistics
	mux.HandleFunc("GET /settings", middleware.WithLogging(settingsHandler.GetSettings))
	mux.HandleFunc("PUT /settings", guarded(settingsHandler.UpdateSettings))
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))

	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lucky-picker API v1"))
	})

	return mux
}
