package chart

import (
	"strings"
	"testing"
)

func TestBarLen(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		max   float64
		width int
		want  int
	}{
		{"max value fills width", 10, 10, 40, 40},
		{"half value", 5, 10, 40, 20},
		{"zero value", 0, 10, 40, 0},
		{"zero max", 0, 0, 40, 0},
		{"tiny nonzero gets one cell", 0.01, 100, 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barLen(tt.v, tt.max, tt.width); got != tt.want {
				t.Errorf("barLen(%v, %v, %d) = %d, want %d", tt.v, tt.max, tt.width, got, tt.want)
			}
		})
	}
}

func TestBuildRows(t *testing.T) {
	rows := buildRows([]string{"focus", "break"}, []float64{3.0, 0.5}, 30)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if len(rows[0].bar) < len(rows[1].bar) {
		t.Error("larger value should have the longer bar")
	}
	if got := strings.Count(rows[0].bar, "█"); got != 30 {
		t.Errorf("max value bar = %d cells, want 30", got)
	}
	if rows[0].value != "3.00 h" || rows[1].value != "0.50 h" {
		t.Errorf("values = %q, %q", rows[0].value, rows[1].value)
	}

	// Labels padded to a common width.
	if len(rows[0].label) != len(rows[1].label) {
		t.Errorf("labels not aligned: %q vs %q", rows[0].label, rows[1].label)
	}
}

func TestBuildRowsAllZero(t *testing.T) {
	rows := buildRows([]string{"focus"}, []float64{0}, 30)
	if rows[0].bar != "" {
		t.Errorf("zero value bar = %q, want empty", rows[0].bar)
	}
}

func TestTerminalRenderValidation(t *testing.T) {
	if err := (Terminal{Width: 30}).Render(nil, nil); err == nil {
		t.Error("expected error for empty chart")
	}
	if err := (Terminal{Width: 30}).Render([]string{"a"}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched labels and values")
	}
}
