package separator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-separator/internal/testutil"
)

func sine32(n int, freq float64, sampleRate int, amplitude float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}
	return out
}

// TestSeparate_OneShot verifies the package-level helper matches a
// manually constructed Separator.
func TestSeparate_OneShot(t *testing.T) {
	left := testutil.Sine(RateCD, 440, RateCD, 0.4)
	right := testutil.Sine(RateCD, 220, RateCD, 0.4)
	input := [][]float64{left, right}

	instrumental, vocals, err := Separate(input, RateCD, ModeBoth)
	require.NoError(t, err)
	require.Len(t, instrumental, len(left))
	require.Len(t, vocals, len(left))

	s, err := New(&Config{SampleRate: RateCD, Mode: ModeBoth})
	require.NoError(t, err)
	result, err := s.Separate(input)
	require.NoError(t, err)

	assert.Equal(t, result.Instrumental, instrumental)
	assert.Equal(t, result.Vocals, vocals)
}

// TestSeparate_ModeExcludesTrack verifies the one-shot helper keeps
// the nil convention for excluded tracks.
func TestSeparate_ModeExcludesTrack(t *testing.T) {
	left := testutil.Sine(4410, 440, RateCD, 0.4)
	input := [][]float64{left, testutil.Inverted(left)}

	instrumental, vocals, err := Separate(input, RateCD, ModeVocalsOnly)
	require.NoError(t, err)
	assert.Nil(t, instrumental)
	assert.NotNil(t, vocals)

	instrumental, vocals, err = Separate(input, RateCD, ModeInstrumentalOnly)
	require.NoError(t, err)
	assert.NotNil(t, instrumental)
	assert.Nil(t, vocals)
}

// TestSeparateFloat32 verifies the float32 path matches the float64
// path within single-precision tolerance.
func TestSeparateFloat32(t *testing.T) {
	const n = 4410

	left32 := sine32(n, 440, RateCD, 0.4)
	right32 := sine32(n, 220, RateCD, 0.4)

	inst32, voc32, err := SeparateFloat32([][]float32{left32, right32}, RateCD, ModeBoth)
	require.NoError(t, err)
	require.Len(t, inst32, n)
	require.Len(t, voc32, n)

	inst64, voc64, err := Separate(
		[][]float64{widen(left32), widen(right32)}, RateCD, ModeBoth)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		assert.InDelta(t, inst64[i], float64(inst32[i]), 1e-6, "instrumental sample %d", i)
		assert.InDelta(t, voc64[i], float64(voc32[i]), 1e-6, "vocal sample %d", i)
	}
}

// TestSeparateFloat32_NilForExcludedMode verifies narrow preserves the
// nil convention instead of returning an empty slice.
func TestSeparateFloat32_NilForExcludedMode(t *testing.T) {
	left := sine32(4410, 440, RateCD, 0.4)
	right := sine32(4410, 220, RateCD, 0.4)

	instrumental, vocals, err := SeparateFloat32(
		[][]float32{left, right}, RateCD, ModeInstrumentalOnly)
	require.NoError(t, err)
	assert.NotNil(t, instrumental)
	assert.Nil(t, vocals)
}

// TestExtractFloat32Variants exercises the standalone float32 extractors.
func TestExtractFloat32Variants(t *testing.T) {
	left := sine32(4410, 440, RateCD, 0.4)
	right := sine32(4410, 220, RateCD, 0.4)

	vocals, err := ExtractVocalsFloat32(left, right, RateCD)
	require.NoError(t, err)
	require.Len(t, vocals, len(left))

	instrumental, err := ExtractInstrumentalFloat32(left, right, RateCD)
	require.NoError(t, err)
	require.Len(t, instrumental, len(left))

	_, err = ExtractVocalsFloat32(nil, nil, RateCD)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ExtractInstrumentalFloat32(left, right[:100], RateCD)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestSeparate_PropagatesConfigError verifies invalid parameters fail
// before any processing.
func TestSeparate_PropagatesConfigError(t *testing.T) {
	_, _, err := Separate([][]float64{{0}, {0}}, 0, ModeBoth)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = Separate([][]float64{{0}, {0}}, RateCD, Mode(99))
	assert.ErrorIs(t, err, ErrInvalidMode)
}
