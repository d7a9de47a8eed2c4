package separator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-audio-separator/internal/dynamics"
	"github.com/tphakala/go-audio-separator/internal/filter"
)

// ExtractVocals derives a mono vocal-emphasized track from a stereo pair.
//
// The extractor is a heuristic, not true source separation: it emphasizes
// content present in the channel difference and in the vocal band, then
// gates low-energy passages. Perfectly center-panned vocals cancel in the
// difference, so results depend on how the source was mixed. The stages:
//
//  1. Band-limit the channel difference to the vocal band (zero-phase
//     Butterworth high-pass then low-pass).
//  2. Boost the side signal and peak the vocal formant region.
//  3. Blend both signals, gate them by a windowed peak envelope, and
//     normalize and soft-limit the result.
//
// Cutoffs that would reach Nyquist are clamped or skipped, so degenerate
// sample rates degrade filtering to identity instead of failing.
//
// The output has the same length as the inputs and is clamped to
// [-0.95, 0.95]. Input buffers are never modified.
func ExtractVocals(left, right []float64, sampleRate int) ([]float64, error) {
	if err := validateStereoPair(left, right, sampleRate); err != nil {
		return nil, err
	}

	n := len(left)
	nyquist := float64(sampleRate) / 2

	// Channel difference removes perfectly-centered content (bass, kick).
	centerDiff := make([]float64, n)
	floats.SubTo(centerDiff, left, right)

	lowCut := max(vocalLowHz/nyquist, minNormalizedCutoff)
	highCut := min(vocalHighHz/nyquist, maxNormalizedCutoff)
	centerDiff = filter.ZeroPhase(filter.ButterworthHighpass(lowCut, vocalBandOrder), centerDiff)
	centerDiff = filter.ZeroPhase(filter.ButterworthLowpass(highCut, vocalBandOrder), centerDiff)

	// Side signal, boosted. Vocals often remain here after center removal.
	side := make([]float64, n)
	floats.SubTo(side, left, right)
	floats.Scale(midSideScale, side)
	floats.Scale(sideEnhancement, side)

	// Peak the vocal formant region for presence.
	if presenceFreqHz/nyquist < maxNormalizedCutoff {
		side = filter.ZeroPhase(filter.PeakResonator(presenceFreqHz/nyquist, presenceQ), side)
	}

	mix := make([]float64, n)
	floats.ScaleTo(mix, centerWeight, centerDiff)
	floats.AddScaled(mix, sideWeight, side)

	// Gate low-energy passages using a windowed peak envelope.
	window := int(envelopeWindowSec * float64(sampleRate))
	envelope := dynamics.PeakEnvelope(mix, window, window/envelopeHopDivisor)
	threshold := stat.Mean(envelope, nil) * gateThresholdRatio

	gate := dynamics.Gate(envelope, threshold, gateFloor)
	if smoothing := int(gateSmoothingSec * float64(sampleRate)); smoothing > 1 {
		gate = dynamics.Smooth(gate, smoothing)
	}
	floats.Mul(mix, gate)

	dynamics.NormalizeRMS(mix, vocalTargetRMS, vocalMinGain, vocalMaxGain)
	dynamics.SoftLimit(mix, limiterDrive, limiterMakeup)
	dynamics.Clamp(mix, -vocalCeiling, vocalCeiling)

	return mix, nil
}

// validateStereoPair rejects malformed extractor input.
func validateStereoPair(left, right []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidInput, sampleRate)
	}

	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("%w: zero-length channel", ErrInvalidInput)
	}

	if len(left) != len(right) {
		return fmt.Errorf("%w: channel lengths differ (%d vs %d)",
			ErrInvalidInput, len(left), len(right))
	}

	return nil
}
