// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/danielhkuo/lucky-picker/models"
)

type HistoryGroups struct {
	Today     []models.HistoryRecord
	Yesterday []models.HistoryRecord
	Earlier   []models.HistoryRecord
}

// GroupHistory buckets records by calendar day in now's location.
// Records dated today or later go to today; anything before yesterday goes
// to earlier. Each group keeps insertion order.
func GroupHistory(records []models.HistoryRecord, now time.Time) HistoryGroups {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var g HistoryGroups
	for _, r := range records {
		d := r.Date.In(loc)
		switch {
		case !d.Before(todayStart):
			g.Today = append(g.Today, r)
		case !d.Before(yesterdayStart):
			g.Yesterday = append(g.Yesterday, r)
		default:
			g.Earlier = append(g.Earlier, r)
		}
	}
	return g
}

// HistoryGroups groups the current history relative to the store clock.
func (s *Store) HistoryGroups() HistoryGroups {
	s.mu.Lock()
	now := s.now()
	records := append([]models.HistoryRecord(nil), s.history...)
	s.mu.Unlock()

	return GroupHistory(records, now)
}
