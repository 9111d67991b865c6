package macroeconomic

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRealRate(t *testing.T) {
	// Selic 15%, expected inflation 4.8%: (1.15/1.048 - 1) × 100.
	got := RealRate(15.0, 4.8)
	want := (1.15/1.048 - 1) * 100
	if !almostEqual(got, want) {
		t.Errorf("RealRate(15, 4.8) = %v, want %v", got, want)
	}

	if got := RealRate(10.0, 10.0); !almostEqual(got, 0) {
		t.Errorf("expected zero real rate when nominal equals inflation, got %v", got)
	}

	if got := RealRate(3.0, 6.0); got >= 0 {
		t.Errorf("expected negative real rate when inflation exceeds nominal, got %v", got)
	}
}

func TestInflationAdjustment(t *testing.T) {
	tests := []struct {
		name              string
		expectedInflation float64
		want              float64
	}{
		{"at target", 3.0, 0},
		{"below target", 2.0, 0},
		{"one point above target", 4.0, 0.3},
		{"focus consensus", 4.8, 0.54},
		{"capped at one point", 10.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InflationAdjustment(tt.expectedInflation); !almostEqual(got, tt.want) {
				t.Errorf("InflationAdjustment(%v) = %v, want %v", tt.expectedInflation, got, tt.want)
			}
		})
	}
}

func TestAdjustedNominalRate(t *testing.T) {
	// Selic 15 + spread 2 + adjustment for the Focus consensus (4.8 → 0.54).
	if got := AdjustedNominalRate(2.0, 0); !almostEqual(got, 17.54) {
		t.Errorf("AdjustedNominalRate(2, 0) = %v, want 17.54", got)
	}

	// Explicit inflation at target: no adjustment.
	if got := AdjustedNominalRate(2.0, 3.0); !almostEqual(got, 17.0) {
		t.Errorf("AdjustedNominalRate(2, 3) = %v, want 17", got)
	}
}
