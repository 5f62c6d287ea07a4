package uncertainty

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		digits int
		want   float64
	}{
		{"zero", 0, 3, 0},
		{"negative zero", math.Copysign(0, -1), 3, 0},
		{"zero digits", 5.5, 0, 0},
		{"three digits", 9.04, 3, 9.04},
		{"below one", 0.944, 2, 0.94},
		{"negative", -0.48, 2, -0.48},
		{"large magnitude", 1234.5, 2, 1200},
		{"small magnitude", 0.0012345, 3, 0.00123},
		{"half away from zero", 2.5, 1, 3},
		{"negative half away from zero", -2.5, 1, -3},
		{"float noise", 0.9440000000000001, 3, 0.944},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.x, tt.digits)
			if got != tt.want {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.digits, got, tt.want)
			}
			if got == 0 && math.Signbit(got) {
				t.Errorf("Round(%v, %d) returned negative zero", tt.x, tt.digits)
			}
		})
	}
}

func TestRound_NonFinite(t *testing.T) {
	if got := Round(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("Round(NaN, 2) = %v, want NaN", got)
	}
	if got := Round(math.Inf(-1), 2); !math.IsInf(got, -1) {
		t.Errorf("Round(-Inf, 2) = %v, want -Inf", got)
	}
	// Zero digits wins over non-finite input
	if got := Round(math.Inf(1), 0); got != 0 {
		t.Errorf("Round(+Inf, 0) = %v, want 0", got)
	}
}

func TestRoundMeasurement(t *testing.T) {
	m := RoundMeasurement(New(0.6666666, 0.2000000004), 2)

	if m.Value() != 0.67 || m.Uncertainty() != 0.2 {
		t.Errorf("RoundMeasurement = %v, want 0.67 ± 0.2", m)
	}
}
