package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model  string
		wantIn float64
		found  bool
	}{
		{"gemini-2.5-flash", 0.3, true},
		{"gemini-flash", 0.3, true}, // friendly name
		{"claude-haiku", 1, true},
		{"gpt-4o-mini", 0.15, true},
		{"mock", 0, false},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c != nil) != tt.found {
			t.Fatalf("LookupCost(%q) found = %v, want %v", tt.model, c != nil, tt.found)
		}
		if c != nil && c.InputPerMTok != tt.wantIn {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, c.InputPerMTok, tt.wantIn)
		}
	}
}

func TestEstimateCost(t *testing.T) {
	got, ok := EstimateCost("gemini-2.5-flash", 1_000_000, 100_000)
	if !ok {
		t.Fatal("expected a price for gemini-2.5-flash")
	}
	if want := 0.3 + 0.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("EstimateCost = %v, want %v", got, want)
	}
	if _, ok := EstimateCost("unknown-model", 1, 1); ok {
		t.Error("unknown model should have no price")
	}
}
