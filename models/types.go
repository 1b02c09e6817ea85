// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Wheel state constants
const (
	StateIdle     = "idle"
	StateSpinning = "spinning"
)

// Spin duration bounds, in seconds
const (
	DefaultSpinDuration = 3.0
	MinSpinDuration     = 1.0
	MaxSpinDuration     = 5.0
)

// Domain types

type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"` // hex, e.g. "#FF4136"
}

// Equal reports whether two options are the same option. Text and color
// are ignored.
func (o Option) Equal(other Option) bool {
	return o.ID == other.ID
}

type HistoryRecord struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Result       Option    `json:"result"`
	TotalOptions int       `json:"totalOptions"`
	TimeString   string    `json:"timeString"`
}

type Settings struct {
	SoundEnabled     bool    `json:"sound_enabled"`
	VibrationEnabled bool    `json:"vibration_enabled"`
	SpinDuration     float64 `json:"spin_duration"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:     true,
		VibrationEnabled: true,
		SpinDuration:     DefaultSpinDuration,
	}
}

// ClampSpinDuration keeps d within [MinSpinDuration, MaxSpinDuration].
func ClampSpinDuration(d float64) float64 {
	if d < MinSpinDuration {
		return MinSpinDuration
	}
	if d > MaxSpinDuration {
		return MaxSpinDuration
	}
	return d
}

// Request types

type AddOptionRequest struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type ReorderOptionsRequest struct {
	From []int `json:"from"`
	To   int   `json:"to"`
}

// nil fields are left unchanged
type UpdateSettingsRequest struct {
	SoundEnabled     *bool    `json:"sound_enabled,omitempty"`
	VibrationEnabled *bool    `json:"vibration_enabled,omitempty"`
	SpinDuration     *float64 `json:"spin_duration,omitempty"`
}

// Response types

type SpinResponse struct {
	SpinID          string  `json:"spin_id"`
	FromRotation    float64 `json:"from_rotation"`
	TargetRotation  float64 `json:"target_rotation"`
	DurationSeconds float64 `json:"duration_seconds"`
	SettleSeconds   float64 `json:"settle_seconds"`
}

type SpinResult struct {
	SpinID       string    `json:"spin_id"`
	Index        int       `json:"index"`
	Option       Option    `json:"option"`
	TotalOptions int       `json:"total_options"`
	ResolvedAt   time.Time `json:"resolved_at"`
}

type WheelStatusResponse struct {
	State      string      `json:"state"`
	Rotation   float64     `json:"rotation"`
	LastResult *SpinResult `json:"last_result,omitempty"`
}

type HistoryEntry struct {
	HistoryRecord
	Ago string `json:"ago"` // e.g. "3 minutes ago"
}

type HistoryResponse struct {
	Total     int            `json:"total"`
	Today     []HistoryEntry `json:"today"`
	Yesterday []HistoryEntry `json:"yesterday"`
	Earlier   []HistoryEntry `json:"earlier"`
}

type OptionCount struct {
	Option Option `json:"option"`
	Count  int    `json:"count"`
}

type StatsResponse struct {
	TotalSpins int           `json:"total_spins"`
	Options    []OptionCount `json:"options"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
