// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/lucky-picker/middleware"
	"github.com/danielhkuo/lucky-picker/models"
	"github.com/danielhkuo/lucky-picker/store"
)

type HistoryHandler struct {
	store *store.Store
}

func NewHistoryHandler(st *store.Store) *HistoryHandler {
	return &HistoryHandler{store: st}
}

// GetHistory handles GET /history
// Records are grouped into today, yesterday and earlier
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	groups := h.store.HistoryGroups()

	resp := models.HistoryResponse{
		Today:     toEntries(groups.Today),
		Yesterday: toEntries(groups.Yesterday),
		Earlier:   toEntries(groups.Earlier),
	}
	resp.Total = len(resp.Today) + len(resp.Yesterday) + len(resp.Earlier)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ClearHistory handles DELETE /history
func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.store.ClearHistory(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func toEntries(records []models.HistoryRecord) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, len(records))
	for i, rec := range records {
		entries[i] = models.HistoryEntry{
			HistoryRecord: rec,
			Ago:           humanize.Time(rec.Date),
		}
	}
	return entries
}
