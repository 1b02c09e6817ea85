// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lucky-picker/auth"
	"github.com/danielhkuo/lucky-picker/middleware"
	"github.com/danielhkuo/lucky-picker/models"
	"github.com/danielhkuo/lucky-picker/store"
	"github.com/danielhkuo/lucky-picker/wheel"
)

type SpinHandler struct {
	store *store.Store
	wheel *wheel.Wheel
}

func NewSpinHandler(st *store.Store, wh *wheel.Wheel) *SpinHandler {
	return &SpinHandler{store: st, wheel: wh}
}

// Spin handles POST /spin
// The response only carries the animation plan; the selection is recorded
// once the wheel settles and is available from GET /spin.
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	spinID, err := auth.GenerateID(8)
	if err != nil {
		slog.Error("failed to generate spin ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start spin")
		return
	}

	plan, err := h.wheel.Spin(spinID, h.store.Options(), h.record)
	switch {
	case errors.Is(err, wheel.ErrNoOptions):
		middleware.ErrorResponse(w, http.StatusConflict, "Add at least one option before spinning")
		return
	case errors.Is(err, wheel.ErrSpinning):
		middleware.ErrorResponse(w, http.StatusConflict, "Wheel is already spinning")
		return
	case errors.Is(err, wheel.ErrClosed):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Server is shutting down")
		return
	case err != nil:
		slog.Error("failed to start spin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start spin")
		return
	}

	slog.Info("spin started", "spin_id", spinID, "target_rotation", plan.Target)

	middleware.JSONResponse(w, http.StatusAccepted, models.SpinResponse{
		SpinID:          plan.SpinID,
		FromRotation:    plan.From,
		TargetRotation:  plan.Target,
		DurationSeconds: plan.Duration.Seconds(),
		SettleSeconds:   plan.Settle.Seconds(),
	})
}

// GetStatus handles GET /spin
func (h *SpinHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.wheel.Status())
}

// record runs on the wheel's timer once a spin settles.
func (h *SpinHandler) record(res models.SpinResult) {
	ctx := context.Background()
	h.store.AddHistory(ctx, res.Option, res.TotalOptions)
	h.store.RecordSelection(ctx, res.Option)
}
