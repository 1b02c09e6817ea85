// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/danielhkuo/lucky-picker/metrics"
	"github.com/danielhkuo/lucky-picker/models"
)

var (
	ErrNoOptions = errors.New("no options to spin")
	ErrSpinning  = errors.New("wheel is already spinning")
	ErrClosed    = errors.New("wheel is closed")
)

// SettleDelay is added to the animation before the result is delivered.
const SettleDelay = 500 * time.Millisecond

const (
	minTurns = 2
	maxTurns = 5

	// The pointer sits at the top (270° in the wheel frame) while the wheel
	// turns clockwise, hence 360 + 270.
	pointerOffset = 630.0
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float in [0, 1).
	Float64() float64
}

// Timer is the handle of a scheduled completion.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func stdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Plan describes an accepted spin: the client animates from From to
// Target over Duration, then waits Settle for the result.
type Plan struct {
	SpinID   string
	From     float64
	Target   float64
	Duration time.Duration
	Settle   time.Duration
}

// Wheel is the spin state machine. It is Idle until Spin is accepted,
// Spinning until the completion fires, then Idle again.
type Wheel struct {
	rng       RNG
	afterFunc AfterFunc
	now       func() time.Time

	mu       sync.Mutex
	state    string
	rotation float64 // cumulative degrees, never reset
	duration time.Duration
	timer    Timer
	gen      uint64
	closed   bool
	last     *models.SpinResult
}

func New(rng RNG) *Wheel {
	return &Wheel{
		rng:       rng,
		afterFunc: stdAfterFunc,
		now:       time.Now,
		state:     models.StateIdle,
		duration:  seconds(models.DefaultSpinDuration),
	}
}

// SetScheduler replaces the timer source. Used by tests.
func (w *Wheel) SetScheduler(af AfterFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.afterFunc = af
}

// SetDuration sets the animation length for later spins, in seconds,
// clamped to the allowed range.
func (w *Wheel) SetDuration(secs float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.duration = seconds(models.ClampSpinDuration(secs))
}

func (w *Wheel) Duration() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.duration
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Spin starts a spin over options. It is ignored, returning an error and
// never calling onEnd, when options is empty, a spin is in flight or the
// wheel is closed. Otherwise onEnd is called exactly once, after
// Duration+SettleDelay, with the selected option.
func (w *Wheel) Spin(spinID string, options []models.Option, onEnd func(models.SpinResult)) (Plan, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.closed:
		return Plan{}, ErrClosed
	case len(options) == 0:
		metrics.SpinRejected("no_options")
		return Plan{}, ErrNoOptions
	case w.state == models.StateSpinning:
		metrics.SpinRejected("spinning")
		return Plan{}, ErrSpinning
	}

	turns := minTurns + w.rng.IntN(maxTurns-minTurns+1)
	offset := w.rng.Float64() * 360

	plan := Plan{
		SpinID:   spinID,
		From:     w.rotation,
		Target:   w.rotation + float64(turns)*360 + offset,
		Duration: w.duration,
		Settle:   SettleDelay,
	}

	// The wheel resolves against the list it was spun with
	snapshot := append([]models.Option(nil), options...)

	w.state = models.StateSpinning
	w.rotation = plan.Target
	w.gen++
	gen := w.gen
	w.timer = w.afterFunc(plan.Duration+plan.Settle, func() {
		w.finish(gen, spinID, snapshot, plan.Target, onEnd)
	})

	metrics.SpinStarted()
	slog.Debug("spin started", "spin_id", spinID, "target", plan.Target, "options", len(snapshot))
	return plan, nil
}

func (w *Wheel) finish(gen uint64, spinID string, options []models.Option, target float64, onEnd func(models.SpinResult)) {
	w.mu.Lock()
	if w.closed || gen != w.gen || w.state != models.StateSpinning {
		w.mu.Unlock()
		return
	}

	idx := ResolveIndex(target, len(options))
	res := models.SpinResult{
		SpinID:       spinID,
		Index:        idx,
		Option:       options[idx],
		TotalOptions: len(options),
		ResolvedAt:   w.now(),
	}
	w.state = models.StateIdle
	w.timer = nil
	w.last = &res
	w.mu.Unlock()

	metrics.SpinResolved()
	slog.Info("spin resolved", "spin_id", spinID, "index", idx, "option_id", res.Option.ID)

	if onEnd != nil {
		onEnd(res)
	}
}

// Close cancels a pending completion. A completion racing with Close is
// dropped, and later spins are rejected.
func (w *Wheel) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.closed = true
	w.state = models.StateIdle
}

func (w *Wheel) Status() models.WheelStatusResponse {
	w.mu.Lock()
	defer w.mu.Unlock()

	status := models.WheelStatusResponse{State: w.state, Rotation: w.rotation}
	if w.last != nil {
		last := *w.last
		status.LastResult = &last
	}
	return status
}

// ResolveIndex maps a wheel rotation in degrees to the index of the slice
// under the pointer. Slice i covers [i*360/count, (i+1)*360/count) in the
// wheel's own frame. It returns -1 when count is not positive.
func ResolveIndex(rotation float64, count int) int {
	if count <= 0 {
		return -1
	}
	if count == 1 {
		return 0
	}

	final := math.Mod(rotation, 360)
	pointer := math.Mod(pointerOffset-final, 360)
	if pointer < 0 {
		pointer += 360
	}

	slice := 360.0 / float64(count)
	idx := int(math.Floor(pointer/slice)) % count
	if idx < 0 || idx >= count {
		return 0
	}
	return idx
}
