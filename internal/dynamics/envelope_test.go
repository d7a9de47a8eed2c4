package dynamics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPeakEnvelope_WindowHopRule verifies the exact window/hop/pad
// behavior on a hand-computed signal.
func TestPeakEnvelope_WindowHopRule(t *testing.T) {
	// 12 samples, window 4, hop 2: windows start at 0, 2, 4, 6
	// (the loop stops before start 8 = n-window).
	x := []float64{0, 1, 0, 0, -3, 0, 0, 2, 0, 0, 0, 5}

	env := PeakEnvelope(x, 4, 2)

	want := []float64{
		1, 1, // window [0:4) peak 1
		3, 3, // window [2:6) peak 3
		3, 3, // window [4:8) peak 3
		2, 2, // window [6:10) peak 2
		2, 2, 2, 2, // tail padded with the last value
	}
	assert.Equal(t, want, env)
}

// TestPeakEnvelope_SameLength verifies the output always matches the
// input length.
func TestPeakEnvelope_SameLength(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		window, hop int
	}{
		{"Typical", 44100, 2205, 551},
		{"WindowLargerThanSignal", 100, 2205, 551},
		{"ExactMultiple", 1000, 100, 25},
		{"TinySignal", 3, 2, 1},
		{"Empty", 0, 10, 2},
		{"ZeroWindow", 50, 0, 1},
		{"ZeroHop", 50, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := make([]float64, tt.n)
			for i := range x {
				x[i] = float64(i%7) * 0.1
			}

			env := PeakEnvelope(x, tt.window, tt.hop)
			assert.Len(t, env, tt.n)
		})
	}
}

// TestPeakEnvelope_ShortSignalPadsZero verifies that a signal shorter
// than one window produces an all-zero envelope.
func TestPeakEnvelope_ShortSignalPadsZero(t *testing.T) {
	x := []float64{0.5, -0.8, 0.3}

	env := PeakEnvelope(x, 10, 2)

	assert.Equal(t, []float64{0, 0, 0}, env)
}

// TestPeakEnvelope_Nonnegative verifies envelope values are absolute peaks.
func TestPeakEnvelope_Nonnegative(t *testing.T) {
	x := []float64{-1, -0.5, -0.25, -0.9, -0.1, -0.7, -0.3, -0.2}

	env := PeakEnvelope(x, 4, 1)

	for i, v := range env {
		assert.GreaterOrEqual(t, v, 0.0, "env[%d]", i)
	}
	assert.Equal(t, 1.0, env[0])
}
