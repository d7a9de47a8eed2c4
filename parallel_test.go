package separator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-separator/internal/testutil"
)

// TestSeparateParallel verifies that parallel extraction produces
// bit-identical results to sequential extraction.
func TestSeparateParallel(t *testing.T) {
	left := testutil.Sine(RateCD, 440, RateCD, 0.4)
	right := testutil.Sine(RateCD, 220, RateCD, 0.3)
	input := [][]float64{left, right}

	seq, err := New(&Config{SampleRate: RateCD, Mode: ModeBoth})
	require.NoError(t, err)

	par, err := New(&Config{SampleRate: RateCD, Mode: ModeBoth, Parallel: true})
	require.NoError(t, err)

	resultSeq, err := seq.Separate(input)
	require.NoError(t, err)

	resultPar, err := par.Separate(input)
	require.NoError(t, err)

	assert.Equal(t, resultSeq.Vocals, resultPar.Vocals, "vocal tracks must be bit-identical")
	assert.Equal(t, resultSeq.Instrumental, resultPar.Instrumental, "instrumental tracks must be bit-identical")
}

// TestSeparateParallel_SingleTrackModes verifies the parallel flag is a
// no-op when only one extractor runs.
func TestSeparateParallel_SingleTrackModes(t *testing.T) {
	left := testutil.Sine(4410, 440, RateCD, 0.4)
	input := [][]float64{left, testutil.Inverted(left)}

	for _, mode := range []Mode{ModeVocalsOnly, ModeInstrumentalOnly} {
		t.Run(mode.String(), func(t *testing.T) {
			s, err := New(&Config{SampleRate: RateCD, Mode: mode, Parallel: true})
			require.NoError(t, err)

			result, err := s.Separate(input)
			require.NoError(t, err)

			switch mode {
			case ModeVocalsOnly:
				assert.NotNil(t, result.Vocals)
				assert.Nil(t, result.Instrumental)
			case ModeInstrumentalOnly:
				assert.NotNil(t, result.Instrumental)
				assert.Nil(t, result.Vocals)
			}
		})
	}
}

// TestSeparateConcurrentCallers verifies a single Separator is safe to
// share across goroutines.
func TestSeparateConcurrentCallers(t *testing.T) {
	left := testutil.Sine(4410, 440, RateCD, 0.4)
	right := testutil.Sine(4410, 220, RateCD, 0.3)
	input := [][]float64{left, right}

	s, err := New(&Config{SampleRate: RateCD, Mode: ModeBoth})
	require.NoError(t, err)

	want, err := s.Separate(input)
	require.NoError(t, err)

	const callers = 8
	results := make([]*Result, callers)
	errs := make([]error, callers)

	done := make(chan int, callers)
	for g := 0; g < callers; g++ {
		go func(g int) {
			results[g], errs[g] = s.Separate(input)
			done <- g
		}(g)
	}
	for range callers {
		<-done
	}

	for g := 0; g < callers; g++ {
		require.NoError(t, errs[g], "caller %d", g)
		assert.Equal(t, want.Vocals, results[g].Vocals, "caller %d", g)
		assert.Equal(t, want.Instrumental, results[g].Instrumental, "caller %d", g)
	}
}
