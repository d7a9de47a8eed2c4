// Package dynamics provides the envelope tracking, gating, and level
// processing used by the vocal extraction path.
package dynamics

import "math"

// PeakEnvelope slides a window of the given size across x with the given
// hop and records the peak absolute sample of each window, replicated
// across the hop so the result is per-sample. The tail past the last full
// window is padded by repeating the last computed value, or zero when the
// signal is shorter than one window.
//
// The returned slice always has the same length as x.
func PeakEnvelope(x []float64, window, hop int) []float64 {
	n := len(x)
	env := make([]float64, 0, n)

	if window > 0 && hop > 0 {
		for i := 0; i < n-window; i += hop {
			peak := maxAbs(x[i : i+window])
			for j := 0; j < hop; j++ {
				env = append(env, peak)
			}
		}
	}

	last := 0.0
	if len(env) > 0 {
		last = env[len(env)-1]
	}
	for len(env) < n {
		env = append(env, last)
	}

	return env[:n]
}

func maxAbs(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}
