// Package filter provides IIR filter design and zero-phase application
// for the separation engine.
//
// All filters are built from second-order sections (biquads) processed in
// Direct Form II Transposed. Cutoff and center frequencies are normalized
// to the Nyquist frequency, so valid values lie strictly inside (0, 1).
// Design functions return nil for degenerate specifications; ZeroPhase
// treats a nil cascade as the identity, which implements the "skip the
// filtering step" policy for cutoffs at or beyond Nyquist.
package filter

// Biquad holds the transfer function coefficients of a single
// second-order section. The a0 coefficient is normalized to 1 and
// not stored.
type Biquad struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// section pairs coefficients with Direct Form II Transposed state.
type section struct {
	Biquad

	d0, d1 float64
}

// processSample filters one input sample and returns the output.
func (s *section) processSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// applyCascade runs the cascade over buf in place with zero initial state.
func applyCascade(cascade []Biquad, buf []float64) {
	for _, c := range cascade {
		s := section{Biquad: c}
		for i, x := range buf {
			buf[i] = s.processSample(x)
		}
	}
}

// ZeroPhase applies the cascade forward and then backward over a copy of x,
// cancelling the phase shift of the IIR cascade at the cost of squaring its
// magnitude response. The input is never modified.
//
// A nil or empty cascade returns an unfiltered copy.
func ZeroPhase(cascade []Biquad, x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)

	if len(cascade) == 0 {
		return y
	}

	applyCascade(cascade, y)
	reverse(y)
	applyCascade(cascade, y)
	reverse(y)

	return y
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
