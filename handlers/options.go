// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/lucky-picker/middleware"
	"github.com/danielhkuo/lucky-picker/models"
	"github.com/danielhkuo/lucky-picker/store"
)

type OptionsHandler struct {
	store *store.Store
}

func NewOptionsHandler(st *store.Store) *OptionsHandler {
	return &OptionsHandler{store: st}
}

// ListOptions handles GET /options
func (h *OptionsHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Options())
}

// AddOption handles POST /options
func (h *OptionsHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	opt, ok := h.store.AddOption(r.Context(), req.Text, req.Color)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, opt)
}

// RemoveOption handles DELETE /options/{index}
func (h *OptionsHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	if !h.store.RemoveOption(r.Context(), index) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No option at that index")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderOptions handles POST /options/reorder
func (h *OptionsHandler) ReorderOptions(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderOptionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.From) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "from is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.Reorder(r.Context(), req.From, req.To))
}
