// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"

	"github.com/danielhkuo/lucky-picker/kv"
	"github.com/danielhkuo/lucky-picker/metrics"
	"github.com/danielhkuo/lucky-picker/models"
)

// Storage slot names
const (
	KeyOptions          = "savedOptions"
	KeyHistory          = "savedHistory"
	KeySelectionCounts  = "optionSelectionCounts"
	KeySoundEnabled     = "soundEnabled"
	KeyVibrationEnabled = "vibrationEnabled"
	KeySpinDuration     = "spinDuration"
)

type EventKind int

const (
	OptionsChanged EventKind = iota
	HistoryChanged
	SettingsChanged
	StatsChanged
)

func (k EventKind) String() string {
	switch k {
	case OptionsChanged:
		return "options"
	case HistoryChanged:
		return "history"
	case SettingsChanged:
		return "settings"
	case StatsChanged:
		return "stats"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
}

// Store owns the option list, the spin history, selection counts and
// settings. Every mutation is written through to the key-value store;
// write failures are logged and dropped.
type Store struct {
	kv  kv.Store
	now func() time.Time

	mu       sync.Mutex
	options  []models.Option
	history  []models.HistoryRecord
	counts   map[string]int
	settings models.Settings

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// Open loads every slot from kvs, falling back to defaults for anything
// missing or unreadable, and resets selection counts.
func Open(ctx context.Context, kvs kv.Store) *Store {
	s := &Store{
		kv:     kvs,
		now:    time.Now,
		counts: make(map[string]int),
		subs:   make(map[int]func(Event)),
	}

	s.options = load(ctx, kvs, KeyOptions, DefaultOptions()).Value
	s.history = load(ctx, kvs, KeyHistory, []models.HistoryRecord{}).Value

	defaults := models.DefaultSettings()
	s.settings = models.Settings{
		SoundEnabled:     load(ctx, kvs, KeySoundEnabled, defaults.SoundEnabled).Value,
		VibrationEnabled: load(ctx, kvs, KeyVibrationEnabled, defaults.VibrationEnabled).Value,
		SpinDuration:     models.ClampSpinDuration(load(ctx, kvs, KeySpinDuration, defaults.SpinDuration).Value),
	}

	// Counts only make sense for the option set of the current session
	if err := kvs.Delete(ctx, KeySelectionCounts); err != nil {
		slog.Warn("failed to reset selection counts", "error", err)
	}

	metrics.SetOptionCount(len(s.options))
	metrics.SetHistoryCount(len(s.history))

	slog.Info("option store loaded", "options", len(s.options), "history", len(s.history))
	return s
}

func load[T any](ctx context.Context, kvs kv.Store, key string, fallback T) Loaded[T] {
	data, found, err := kvs.Get(ctx, key)
	if err != nil {
		slog.Warn("failed to read slot, using default", "slot", key, "error", err)
		found = false
	}

	res := LoadOrDefault(data, found, fallback)
	if res.Err != nil {
		slog.Warn("failed to decode slot, using default", "slot", key, "error", res.Err)
	}
	return res
}

// SetClock replaces the time source. Used by tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Subscribe registers fn for change notifications. fn runs on the
// goroutine that made the change, after the store lock is released.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(kind EventKind) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(Event{Kind: kind})
	}
}

// persist must be called with s.mu held so writes land in mutation order.
func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to encode slot", "slot", key, "error", err)
		metrics.PersistFailed(key)
		return
	}

	// A client hanging up must not cancel the write
	if err := s.kv.Set(context.WithoutCancel(ctx), key, data); err != nil {
		slog.Warn("failed to save slot", "slot", key, "error", err)
		metrics.PersistFailed(key)
	}
}

// Options

func (s *Store) Options() []models.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Option(nil), s.options...)
}

// AddOption appends a new option. Blank text is rejected with ok=false.
// An empty color is replaced by the next unused palette color.
func (s *Store) AddOption(ctx context.Context, text, color string) (models.Option, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Option{}, false
	}

	s.mu.Lock()
	if color == "" {
		existing := make([]string, len(s.options))
		for i, o := range s.options {
			existing[i] = o.Color
		}
		color = NextColor(existing)
	}

	opt := models.Option{ID: uuid.NewString(), Text: text, Color: color}
	s.options = append(s.options, opt)
	s.persist(ctx, KeyOptions, s.options)
	s.resetCountsLocked(ctx)
	n := len(s.options)
	s.mu.Unlock()

	metrics.SetOptionCount(n)
	slog.Info("option added", "option_id", opt.ID, "options", n)

	s.notify(OptionsChanged)
	s.notify(StatsChanged)
	return opt, true
}

// RemoveOption deletes the option at index. Out-of-range indexes change
// nothing and return false.
func (s *Store) RemoveOption(ctx context.Context, index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.options) {
		s.mu.Unlock()
		return false
	}

	removed := s.options[index]
	s.options = append(s.options[:index:index], s.options[index+1:]...)
	s.persist(ctx, KeyOptions, s.options)
	s.resetCountsLocked(ctx)
	n := len(s.options)
	s.mu.Unlock()

	metrics.SetOptionCount(n)
	slog.Info("option removed", "option_id", removed.ID, "options", n)

	s.notify(OptionsChanged)
	s.notify(StatsChanged)
	return true
}

// Reorder moves the options at fromIndices so they start at offset
// toIndex of the original list, keeping their relative order. Invalid
// source indexes are ignored and toIndex is clamped to [0, len].
func (s *Store) Reorder(ctx context.Context, fromIndices []int, toIndex int) []models.Option {
	s.mu.Lock()
	moved, changed := move(s.options, fromIndices, toIndex)
	if changed {
		s.options = moved
		s.persist(ctx, KeyOptions, s.options)
	}
	out := append([]models.Option(nil), s.options...)
	s.mu.Unlock()

	if changed {
		s.notify(OptionsChanged)
	}
	return out
}

func move[T any](items []T, from []int, to int) ([]T, bool) {
	n := len(items)
	if to < 0 {
		to = 0
	}
	if to > n {
		to = n
	}

	selected := make(map[int]bool, len(from))
	for _, i := range from {
		if i >= 0 && i < n {
			selected[i] = true
		}
	}
	if len(selected) == 0 {
		return items, false
	}

	picked := make([]T, 0, len(selected))
	rest := make([]T, 0, n-len(selected))
	insertAt := to
	for i, it := range items {
		if selected[i] {
			picked = append(picked, it)
			if i < to {
				insertAt--
			}
			continue
		}
		rest = append(rest, it)
	}

	out := make([]T, 0, n)
	out = append(out, rest[:insertAt]...)
	out = append(out, picked...)
	out = append(out, rest[insertAt:]...)
	return out, true
}

// History

func (s *Store) History() []models.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HistoryRecord(nil), s.history...)
}

// AddHistory appends a record for result. currentOptionCount is the size
// of the option list the selection was made from.
func (s *Store) AddHistory(ctx context.Context, result models.Option, currentOptionCount int) models.HistoryRecord {
	s.mu.Lock()
	now := s.now()
	rec := models.HistoryRecord{
		ID:           uuid.NewString(),
		Date:         now,
		Result:       result,
		TotalOptions: currentOptionCount,
		TimeString:   FormatTime(now),
	}
	s.history = append(s.history, rec)
	s.persist(ctx, KeyHistory, s.history)
	n := len(s.history)
	s.mu.Unlock()

	metrics.SetHistoryCount(n)
	s.notify(HistoryChanged)
	return rec
}

func (s *Store) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	s.history = []models.HistoryRecord{}
	s.persist(ctx, KeyHistory, s.history)
	s.mu.Unlock()

	metrics.SetHistoryCount(0)
	slog.Info("history cleared")
	s.notify(HistoryChanged)
}

// FormatTime renders t as HH:mm.
func FormatTime(t time.Time) string {
	return strftime.Format("%H:%M", t)
}

// Selection counts

// RecordSelection counts one more pick of opt, keyed by option id.
func (s *Store) RecordSelection(ctx context.Context, opt models.Option) {
	s.mu.Lock()
	s.counts[opt.ID]++
	s.persist(ctx, KeySelectionCounts, s.counts)
	s.mu.Unlock()

	s.notify(StatsChanged)
}

func (s *Store) SelectionCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// Stats pairs every current option with its selection count, in wheel order.
func (s *Store) Stats() models.StatsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.StatsResponse{Options: make([]models.OptionCount, len(s.options))}
	for i, o := range s.options {
		c := s.counts[o.ID]
		resp.Options[i] = models.OptionCount{Option: o, Count: c}
		resp.TotalSpins += c
	}
	return resp
}

func (s *Store) resetCountsLocked(ctx context.Context) {
	s.counts = make(map[string]int)
	if err := s.kv.Delete(context.WithoutCancel(ctx), KeySelectionCounts); err != nil {
		slog.Warn("failed to reset selection counts", "error", err)
		metrics.PersistFailed(KeySelectionCounts)
	}
}

// Settings

func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings applies the non-nil fields of req. Spin duration is
// clamped to the allowed range.
func (s *Store) UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) models.Settings {
	s.mu.Lock()
	if req.SoundEnabled != nil {
		s.settings.SoundEnabled = *req.SoundEnabled
		s.persist(ctx, KeySoundEnabled, s.settings.SoundEnabled)
	}
	if req.VibrationEnabled != nil {
		s.settings.VibrationEnabled = *req.VibrationEnabled
		s.persist(ctx, KeyVibrationEnabled, s.settings.VibrationEnabled)
	}
	if req.SpinDuration != nil {
		s.settings.SpinDuration = models.ClampSpinDuration(*req.SpinDuration)
		s.persist(ctx, KeySpinDuration, s.settings.SpinDuration)
	}
	out := s.settings
	s.mu.Unlock()

	s.notify(SettingsChanged)
	return out
}
