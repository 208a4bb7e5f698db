package cmd

import (
	"testing"
	"time"

	"github.com/0binna-oss/deep-work-tracker/internal/ledger"
)

func sampleSessions() []ledger.Session {
	start := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	var sessions []ledger.Session
	for _, category := range []string{"focus", "focus-reading", "writing", "break"} {
		sessions = append(sessions, ledger.Session{
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Duration:  1,
			Category:  category,
		})
		start = start.Add(2 * time.Hour)
	}
	return sessions
}

func TestFilterByCategory(t *testing.T) {
	sessions := sampleSessions()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"empty pattern matches all", "", []string{"focus", "focus-reading", "writing", "break"}},
		{"exact match", "writing", []string{"writing"}},
		{"glob prefix", "focus*", []string{"focus", "focus-reading"}},
		{"no match", "admin", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterByCategory(sessions, tt.pattern)
			if err != nil {
				t.Fatalf("filterByCategory: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sessions, want %d", len(got), len(tt.want))
			}
			for i, s := range got {
				if s.Category != tt.want[i] {
					t.Errorf("session %d category = %q, want %q", i, s.Category, tt.want[i])
				}
			}
		})
	}
}

func TestFilterByCategoryInvalidPattern(t *testing.T) {
	if _, err := filterByCategory(sampleSessions(), "[unclosed"); err == nil {
		t.Error("expected error for invalid glob pattern")
	}
}

func TestSortedCategories(t *testing.T) {
	got := sortedCategories(map[string]float64{"writing": 1, "break": 2, "focus": 3})
	want := []string{"break", "focus", "writing"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
