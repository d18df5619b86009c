package ui

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		shown, total int
		want         string
	}{
		{0, 0, "0 matches"},
		{1, 1, "1 match"},
		{3, 3, "3 matches"},
		{3, 120, "3 of 120 matches"},
	}
	for _, tt := range tests {
		if got := Count(tt.shown, tt.total); got != tt.want {
			t.Errorf("Count(%d, %d) = %q, want %q", tt.shown, tt.total, got, tt.want)
		}
	}
}

func TestStatusSymbols(t *testing.T) {
	if got := Successf("wrote %s", "x"); got != "✓ wrote x" {
		t.Fatalf("Successf = %q", got)
	}
	if got := Warning("hm"); got != "⚠ hm" {
		t.Fatalf("Warning = %q", got)
	}
}
