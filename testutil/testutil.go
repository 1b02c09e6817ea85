// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/lucky-picker/cliparse"
	"github.com/danielhkuo/lucky-picker/db"
	"github.com/danielhkuo/lucky-picker/kv"
	"github.com/danielhkuo/lucky-picker/models"
	"github.com/danielhkuo/lucky-picker/store"
	"github.com/danielhkuo/lucky-picker/wheel"
)

// TestDBURL is an in-memory SQLite database, private to the connection
const TestDBURL = "file::memory:"

// SetupTestDB opens a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.TypeSQLite,
		LogLevel:     "error",
	}
}

// NewTestStore opens a store over an in-memory key-value store holding
// one option per label. With no labels the option list starts empty.
func NewTestStore(t *testing.T, labels ...string) (*store.Store, *kv.MemoryStore) {
	t.Helper()

	mem := kv.NewMemoryStore()
	opts := make([]models.Option, len(labels))
	for i, l := range labels {
		opts[i] = models.Option{ID: "opt-" + l, Text: l, Color: "#FF4136"}
	}
	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("Failed to encode options: %v", err)
	}
	if err := mem.Set(context.Background(), store.KeyOptions, data); err != nil {
		t.Fatalf("Failed to seed options: %v", err)
	}

	return store.Open(context.Background(), mem), mem
}

// FixedRNG draws the same values on every spin
type FixedRNG struct {
	Turns    int
	Fraction float64
}

func (r FixedRNG) IntN(n int) int   { return r.Turns % n }
func (r FixedRNG) Float64() float64 { return r.Fraction }

type manualTimer struct {
	mu      sync.Mutex
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

// ManualScheduler holds scheduled spin completions until FireAll is called
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
	timers  []*manualTimer
	Delays  []time.Duration
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) wheel.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTimer{}
	s.pending = append(s.pending, f)
	s.timers = append(s.timers, t)
	s.Delays = append(s.Delays, d)
	return t
}

// FireAll runs every completion that has not been stopped
func (s *ManualScheduler) FireAll() {
	s.mu.Lock()
	pending, timers := s.pending, s.timers
	s.pending, s.timers = nil, nil
	s.mu.Unlock()

	for i, f := range pending {
		if timers[i].Stop() {
			f()
		}
	}
}

// NewTestWheel returns a wheel with deterministic draws whose completions
// only run when the scheduler fires them
func NewTestWheel(rng wheel.RNG) (*wheel.Wheel, *ManualScheduler) {
	sched := &ManualScheduler{}
	w := wheel.New(rng)
	w.SetScheduler(sched.AfterFunc)
	return w, sched
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
