// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/danielhkuo/lucky-picker/models"
)

// Loaded is the outcome of decoding one storage slot.
type Loaded[T any] struct {
	Value     T
	Defaulted bool  // Value is the fallback
	Err       error // decode error, if that is why we defaulted
}

// LoadOrDefault decodes data into T. When the slot was never written or
// does not decode, the fallback is returned instead.
func LoadOrDefault[T any](data []byte, found bool, fallback T) Loaded[T] {
	if !found {
		return Loaded[T]{Value: fallback, Defaulted: true}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return Loaded[T]{Value: fallback, Defaulted: true, Err: err}
	}
	return Loaded[T]{Value: v}
}

// DefaultOptions is the wheel shown before the user saves any options.
// Every call returns fresh ids.
func DefaultOptions() []models.Option {
	defaults := []struct{ text, color string }{
		{"Hot Pot", "#FF4136"},
		{"Sushi", "#0074D9"},
		{"Pizza", "#2ECC40"},
		{"Burger", "#FFDC00"},
		{"Fried Rice", "#B10DC9"},
		{"BBQ", "#FF851B"},
		{"Salad", "#01FF70"},
		{"Noodles", "#F012BE"},
	}

	options := make([]models.Option, len(defaults))
	for i, d := range defaults {
		options[i] = models.Option{ID: uuid.NewString(), Text: d.text, Color: d.color}
	}
	return options
}
