package separator

// Common sample rates for convenience.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateSpeech is the speech processing common sample rate.
	RateSpeech = 22050
)

// Separate is a one-shot helper that splits channel-major input into
// instrumental and vocal tracks. The track excluded by mode is nil.
//
// For repeated calls or progress reporting, construct a Separator with
// New instead.
func Separate(input [][]float64, sampleRate int, mode Mode) (instrumental, vocals []float64, err error) {
	s, err := New(&Config{SampleRate: sampleRate, Mode: mode})
	if err != nil {
		return nil, nil, err
	}

	result, err := s.Separate(input)
	if err != nil {
		return nil, nil, err
	}

	return result.Instrumental, result.Vocals, nil
}

// SeparateFloat32 is like Separate but for float32 samples, the native
// depth most decoders produce. Processing still happens in float64.
func SeparateFloat32(input [][]float32, sampleRate int, mode Mode) (instrumental, vocals []float32, err error) {
	wide := make([][]float64, len(input))
	for ch, data := range input {
		wide[ch] = widen(data)
	}

	inst64, voc64, err := Separate(wide, sampleRate, mode)
	if err != nil {
		return nil, nil, err
	}

	return narrow(inst64), narrow(voc64), nil
}

// ExtractVocalsFloat32 is like ExtractVocals but for float32 samples.
func ExtractVocalsFloat32(left, right []float32, sampleRate int) ([]float32, error) {
	out, err := ExtractVocals(widen(left), widen(right), sampleRate)
	if err != nil {
		return nil, err
	}

	return narrow(out), nil
}

// ExtractInstrumentalFloat32 is like ExtractInstrumental but for float32 samples.
func ExtractInstrumentalFloat32(left, right []float32, sampleRate int) ([]float32, error) {
	out, err := ExtractInstrumental(widen(left), widen(right), sampleRate)
	if err != nil {
		return nil, err
	}

	return narrow(out), nil
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}

func narrow(x []float64) []float32 {
	if x == nil {
		return nil
	}

	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}

	return out
}
