package filter

import "math"

const defaultQ = 1 / math.Sqrt2

// ButterworthLowpass designs a lowpass Butterworth cascade of the given
// order. cutoff is normalized to Nyquist and must lie in (0, 1); returns
// nil for degenerate specifications.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLowpass(cutoff float64, order int) []Biquad {
	if order <= 0 || cutoff <= 0 || cutoff >= 1 {
		return nil
	}

	cascade := make([]Biquad, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		cascade = append(cascade, lowpassRBJ(cutoff, butterworthQ(order, i)))
	}
	if order%2 != 0 {
		cascade = append(cascade, firstOrderLowpass(cutoff))
	}

	return cascade
}

// ButterworthHighpass designs a highpass Butterworth cascade of the given
// order. cutoff is normalized to Nyquist and must lie in (0, 1); returns
// nil for degenerate specifications.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHighpass(cutoff float64, order int) []Biquad {
	if order <= 0 || cutoff <= 0 || cutoff >= 1 {
		return nil
	}

	cascade := make([]Biquad, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		cascade = append(cascade, highpassRBJ(cutoff, butterworthQ(order, i)))
	}
	if order%2 != 0 {
		cascade = append(cascade, firstOrderHighpass(cutoff))
	}

	return cascade
}

// PeakResonator designs a second-order resonator with unity gain at the
// normalized center frequency and -3 dB at the band edges defined by q.
// Returns nil for degenerate specifications.
func PeakResonator(center, q float64) []Biquad {
	if center <= 0 || center >= 1 || q <= 0 {
		return nil
	}

	w0 := math.Pi * center
	beta := math.Tan(w0 / q / 2)
	gain := 1 / (1 + beta)

	return []Biquad{{
		B0: 1 - gain,
		B1: 0,
		B2: -(1 - gain),
		A1: -2 * gain * math.Cos(w0),
		A2: 2*gain - 1,
	}}
}

// butterworthQ returns the quality factor of one biquad section of a
// Butterworth cascade. index ranges from 0 to order/2-1.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

// lowpassRBJ designs a lowpass biquad at the normalized cutoff with
// quality factor q, following the RBJ audio EQ cookbook.
func lowpassRBJ(cutoff, q float64) Biquad {
	w0 := math.Pi * cutoff
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2
	a0 := 1 + alpha

	return Biquad{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b0 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

// highpassRBJ designs a highpass biquad at the normalized cutoff with
// quality factor q, following the RBJ audio EQ cookbook.
func highpassRBJ(cutoff, q float64) Biquad {
	w0 := math.Pi * cutoff
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	a0 := 1 + alpha

	return Biquad{
		B0: b0 / a0,
		B1: -(1 + cw) / a0,
		B2: b0 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

// firstOrderLowpass designs the first-order section used by odd-order
// lowpass cascades.
func firstOrderLowpass(cutoff float64) Biquad {
	k := math.Tan(math.Pi * cutoff / 2)
	norm := 1 / (1 + k)

	return Biquad{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHighpass designs the first-order section used by odd-order
// highpass cascades.
func firstOrderHighpass(cutoff float64) Biquad {
	k := math.Tan(math.Pi * cutoff / 2)
	norm := 1 / (1 + k)

	return Biquad{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
