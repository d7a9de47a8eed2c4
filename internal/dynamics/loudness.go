package dynamics

import (
	"math"

	"github.com/tphakala/go-audio-separator/internal/simdops"
)

// RMS returns the root mean square level of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	power := simdops.DotProduct(x, x) / float64(len(x))

	return math.Sqrt(power)
}

// NormalizeRMS scales x in place toward the target RMS level. The applied
// gain is clamped to [minGain, maxGain] so quiet material is not blown up
// and hot material is not crushed. Silence is left untouched.
//
// Returns the gain that was applied.
func NormalizeRMS(x []float64, target, minGain, maxGain float64) float64 {
	rms := RMS(x)
	if rms <= 0 {
		return 1
	}

	gain := target / rms
	if gain < minGain {
		gain = minGain
	}
	if gain > maxGain {
		gain = maxGain
	}

	simdops.Scale(x, x, gain)

	return gain
}

// SoftLimit applies tanh saturation in place: x = tanh(x*drive) * makeup.
// The hyperbolic tangent rounds peaks off smoothly instead of clipping.
func SoftLimit(x []float64, drive, makeup float64) {
	for i, v := range x {
		x[i] = math.Tanh(v*drive) * makeup
	}
}

// Clamp hard-limits every sample of x in place to [lo, hi].
func Clamp(x []float64, lo, hi float64) {
	for i, v := range x {
		switch {
		case v < lo:
			x[i] = lo
		case v > hi:
			x[i] = hi
		}
	}
}
