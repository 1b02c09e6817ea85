// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters and gauges for the wheel and
// the option store. Metric names follow luckypicker_<name>.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelReason = "reason"
	labelSlot   = "slot"
)

var (
	spinsStarted  = promauto.NewCounter(prometheus.CounterOpts{Name: "luckypicker_spins_started_total", Help: "Spins accepted by the wheel"})
	spinsResolved = promauto.NewCounter(prometheus.CounterOpts{Name: "luckypicker_spins_resolved_total", Help: "Spins that delivered a selection"})
	spinsRejected = promauto.NewCounterVec(prometheus.CounterOpts{Name: "luckypicker_spins_rejected_total", Help: "Spin requests ignored"}, []string{labelReason})

	optionCount  = promauto.NewGauge(prometheus.GaugeOpts{Name: "luckypicker_options", Help: "Options currently on the wheel"})
	historyCount = promauto.NewGauge(prometheus.GaugeOpts{Name: "luckypicker_history_records", Help: "Records in the spin history"})

	persistFailures = promauto.NewCounterVec(prometheus.CounterOpts{Name: "luckypicker_persist_failures_total", Help: "Dropped writes to local storage"}, []string{labelSlot})
)

func SpinStarted()  { spinsStarted.Inc() }
func SpinResolved() { spinsResolved.Inc() }

func SpinRejected(reason string) {
	spinsRejected.With(prometheus.Labels{labelReason: reason}).Inc()
}

func SetOptionCount(n int)  { optionCount.Set(float64(n)) }
func SetHistoryCount(n int) { historyCount.Set(float64(n)) }

func PersistFailed(slot string) {
	persistFailures.With(prometheus.Labels{labelSlot: slot}).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
