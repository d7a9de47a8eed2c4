package separator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-separator/internal/dynamics"
	"github.com/tphakala/go-audio-separator/internal/filter"
)

// shelfKind selects the filter component a band contributes, if any.
type shelfKind int

const (
	shelfNone shelfKind = iota
	shelfLow
	shelfHigh
)

// shelfBand describes one entry of the instrumental EQ table.
type shelfBand struct {
	freqHz float64
	gain   float64
	shelf  shelfKind
}

// instrumentalEQ is the gentle EQ applied after center cancellation:
// a slight bass and treble lift with a reduced midrange.
//
// Only the 60 Hz band takes a low-pass component and only the 8 kHz band
// a high-pass one; the midrange entries are carried but contribute no
// filtering. This asymmetry is kept as-is: changing it changes audible
// output.
var instrumentalEQ = [...]shelfBand{
	{freqHz: 60, gain: 1.1, shelf: shelfLow},
	{freqHz: 250, gain: 0.9, shelf: shelfNone},
	{freqHz: 2000, gain: 0.85, shelf: shelfNone},
	{freqHz: 8000, gain: 1.05, shelf: shelfHigh},
}

// ExtractInstrumental derives a mono backing track from a stereo pair by
// cancelling center-panned content while keeping some perceived stereo
// width:
//
//  1. Average the channels (vocals panned center survive attenuated; the
//     difference content cancels).
//  2. Add back a reduced channel difference, delayed by 1 ms with
//     circular wraparound, to simulate width.
//  3. Apply the shelving EQ table and a final hard clamp.
//
// The output has the same length as the inputs and is clamped to [-1, 1].
// Input buffers are never modified.
func ExtractInstrumental(left, right []float64, sampleRate int) ([]float64, error) {
	if err := validateStereoPair(left, right, sampleRate); err != nil {
		return nil, err
	}

	n := len(left)
	nyquist := float64(sampleRate) / 2

	sum := make([]float64, n)
	floats.AddTo(sum, left, right)
	floats.Scale(midSideScale, sum)

	stereoDiff := make([]float64, n)
	floats.SubTo(stereoDiff, left, right)
	floats.Scale(stereoWidthGain, stereoDiff)

	// Short circular delay on the difference keeps a sense of width.
	shift := int(math.Round(widthDelaySec * float64(sampleRate)))
	base := make([]float64, n)
	for i := range base {
		base[i] = sum[i] + stereoDiff[wrapIndex(i-shift, n)]
	}

	out := make([]float64, n)
	copy(out, base)

	for _, band := range instrumentalEQ {
		if band.freqHz >= nyquist*shelfSkipRatio {
			continue
		}

		cutoff := band.freqHz / nyquist

		var component []float64
		switch band.shelf {
		case shelfLow:
			component = filter.ZeroPhase(filter.ButterworthLowpass(cutoff, shelfOrder), base)
		case shelfHigh:
			component = filter.ZeroPhase(filter.ButterworthHighpass(cutoff, shelfOrder), base)
		default:
			continue
		}

		floats.AddScaled(out, (band.gain-1)*shelfBlend, component)
	}

	floats.Scale(instrumentalMakeup, out)
	dynamics.Clamp(out, -instrumentalCeil, instrumentalCeil)

	return out, nil
}

// wrapIndex maps i into [0, n) with circular wraparound.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
