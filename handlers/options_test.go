// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/lucky-picker/models"
	"github.com/danielhkuo/lucky-picker/testutil"
)

func optionTexts(opts []models.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Text
	}
	return out
}

func TestListOptions(t *testing.T) {
	st, _ := testutil.NewTestStore(t, "A", "B", "C")
	handler := NewOptionsHandler(st)

	w := httptest.NewRecorder()
	handler.ListOptions(w, testutil.MakeRequest("GET", "/options", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var opts []models.Option
	testutil.AssertJSON(t, w, &opts)
	if got := strings.Join(optionTexts(opts), ","); got != "A,B,C" {
		t.Errorf("Expected A,B,C, got %s", got)
	}
}

func TestAddOption(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "valid option",
			body:           models.AddOptionRequest{Text: "Tacos", Color: "#123456"},
			expectedStatus: http.StatusCreated,
			expectedCount:  2,
		},
		{
			name:           "color assigned when omitted",
			body:           models.AddOptionRequest{Text: "Ramen"},
			expectedStatus: http.StatusCreated,
			expectedCount:  2,
		},
		{
			name:           "blank text",
			body:           models.AddOptionRequest{Text: "   "},
			expectedStatus: http.StatusBadRequest,
			expectedCount:  1,
		},
		{
			name:           "missing text",
			body:           map[string]string{"color": "#FFFFFF"},
			expectedStatus: http.StatusBadRequest,
			expectedCount:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := testutil.NewTestStore(t, "A")
			handler := NewOptionsHandler(st)

			w := httptest.NewRecorder()
			handler.AddOption(w, testutil.MakeRequest("POST", "/options", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if got := len(st.Options()); got != tt.expectedCount {
				t.Errorf("Expected %d options, got %d", tt.expectedCount, got)
			}

			if tt.expectedStatus == http.StatusCreated {
				var opt models.Option
				testutil.AssertJSON(t, w, &opt)
				if opt.ID == "" {
					t.Error("Expected option ID to be generated")
				}
				if opt.Color == "" {
					t.Error("Expected option color to be set")
				}
			}
		})
	}
}

func TestAddOption_InvalidJSON(t *testing.T) {
	st, _ := testutil.NewTestStore(t)
	handler := NewOptionsHandler(st)

	req := httptest.NewRequest("POST", "/options", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.AddOption(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestRemoveOption(t *testing.T) {
	tests := []struct {
		name           string
		index          string
		expectedStatus int
		expected       string
	}{
		{"remove middle", "1", http.StatusNoContent, "A,C"},
		{"remove first", "0", http.StatusNoContent, "B,C"},
		{"out of range", "3", http.StatusNotFound, "A,B,C"},
		{"negative", "-1", http.StatusNotFound, "A,B,C"},
		{"not a number", "x", http.StatusBadRequest, "A,B,C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := testutil.NewTestStore(t, "A", "B", "C")
			handler := NewOptionsHandler(st)

			req := testutil.MakeRequest("DELETE", "/options/"+tt.index, nil, nil)
			req.SetPathValue("index", tt.index)
			w := httptest.NewRecorder()
			handler.RemoveOption(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if got := strings.Join(optionTexts(st.Options()), ","); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestReorderOptions(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expected       string
	}{
		{
			name:           "move first to end",
			body:           models.ReorderOptionsRequest{From: []int{0}, To: 3},
			expectedStatus: http.StatusOK,
			expected:       "B,C,A",
		},
		{
			name:           "move last to front",
			body:           models.ReorderOptionsRequest{From: []int{2}, To: 0},
			expectedStatus: http.StatusOK,
			expected:       "C,A,B",
		},
		{
			name:           "missing from",
			body:           map[string]int{"to": 1},
			expectedStatus: http.StatusBadRequest,
			expected:       "A,B,C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := testutil.NewTestStore(t, "A", "B", "C")
			handler := NewOptionsHandler(st)

			w := httptest.NewRecorder()
			handler.ReorderOptions(w, testutil.MakeRequest("POST", "/options/reorder", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if got := strings.Join(optionTexts(st.Options()), ","); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}
