// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/lucky-picker/models"
	"github.com/danielhkuo/lucky-picker/testutil"
)

func TestGetStats(t *testing.T) {
	st, _ := testutil.NewTestStore(t, "A", "B", "C")
	handler := NewStatsHandler(st)
	ctx := t.Context()

	opts := st.Options()
	st.RecordSelection(ctx, opts[1])
	st.RecordSelection(ctx, opts[1])
	st.RecordSelection(ctx, opts[2])

	w := httptest.NewRecorder()
	handler.GetStats(w, testutil.MakeRequest("GET", "/stats", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalSpins != 3 {
		t.Errorf("Expected 3 spins, got %d", resp.TotalSpins)
	}
	want := []int{0, 2, 1}
	if len(resp.Options) != len(want) {
		t.Fatalf("Expected %d options, got %d", len(want), len(resp.Options))
	}
	for i, c := range want {
		if resp.Options[i].Count != c {
			t.Errorf("Option %s: expected count %d, got %d", resp.Options[i].Option.Text, c, resp.Options[i].Count)
		}
	}
}

func TestGetStats_ResetWhenOptionsChange(t *testing.T) {
	st, _ := testutil.NewTestStore(t, "A", "B")
	handler := NewStatsHandler(st)
	ctx := t.Context()

	st.RecordSelection(ctx, st.Options()[0])
	st.AddOption(ctx, "C", "")

	w := httptest.NewRecorder()
	handler.GetStats(w, testutil.MakeRequest("GET", "/stats", nil, nil))

	var resp models.StatsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TotalSpins != 0 {
		t.Errorf("Expected counts reset, got %d spins", resp.TotalSpins)
	}
}
