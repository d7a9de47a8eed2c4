package dynamics

// Gate converts an envelope into per-sample gain: 1 where the envelope
// exceeds threshold, floor elsewhere. The floor keeps quiet passages
// attenuated rather than muted, avoiding hard gate artifacts.
func Gate(envelope []float64, threshold, floor float64) []float64 {
	gain := make([]float64, len(envelope))
	for i, e := range envelope {
		if e > threshold {
			gain[i] = 1
		} else {
			gain[i] = floor
		}
	}

	return gain
}

// Smooth applies a centered moving average of the given width, returning
// a slice of the same length. Samples beyond the edges count as zero, so
// edge values taper. A width below 2 returns an unsmoothed copy.
//
// The centering matches a same-length discrete convolution with a boxcar
// kernel: sample i averages the window [i-width/2, i+(width-1)/2].
func Smooth(x []float64, width int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if width < 2 {
		copy(out, x)
		return out
	}

	// Prefix sums give each window in constant time.
	prefix := make([]float64, n+1)
	for i, v := range x {
		prefix[i+1] = prefix[i] + v
	}

	half := (width - 1) / 2
	inv := 1 / float64(width)
	for i := range out {
		lo := i - (width - 1 - half)
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		out[i] = (prefix[hi+1] - prefix[lo]) * inv
	}

	return out
}
