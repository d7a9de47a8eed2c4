package separator

import (
	"errors"
	"fmt"
	"sync"
)

// Mode selects which tracks a separation produces.
type Mode int

const (
	// ModeBoth extracts the instrumental and the vocal track.
	ModeBoth Mode = iota

	// ModeVocalsOnly extracts only the vocal track.
	ModeVocalsOnly

	// ModeInstrumentalOnly extracts only the instrumental track.
	ModeInstrumentalOnly
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeVocalsOnly:
		return "vocals"
	case ModeInstrumentalOnly:
		return "instrumental"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// includesVocals reports whether the mode runs the vocal extractor.
func (m Mode) includesVocals() bool {
	return m == ModeBoth || m == ModeVocalsOnly
}

// includesInstrumental reports whether the mode runs the instrumental extractor.
func (m Mode) includesInstrumental() bool {
	return m == ModeBoth || m == ModeInstrumentalOnly
}

// Common errors returned by the separator.
var (
	// ErrInvalidInput indicates a missing, empty, or malformed input buffer
	// or a non-positive sample rate. It is returned before any filter
	// design is attempted; no partial output is ever produced.
	ErrInvalidInput = errors.New("invalid separation input")

	// ErrInvalidMode indicates an unknown separation mode.
	ErrInvalidMode = errors.New("invalid separation mode")
)

// ProgressFunc receives advisory progress checkpoints during separation.
// fraction is in [0, 1]; stage is a short label such as "separate".
// Progress reporting is fire-and-forget: a nil ProgressFunc is valid and
// reporting never affects the separation result.
type ProgressFunc func(fraction float64, stage string)

// Config holds separation configuration.
type Config struct {
	// SampleRate is the sample rate of the input audio in Hz.
	SampleRate int

	// Mode selects which extraction paths run. The zero value is ModeBoth.
	Mode Mode

	// Progress optionally receives checkpoint updates. May be nil.
	Progress ProgressFunc

	// Parallel runs the vocal and instrumental extractors concurrently
	// when the mode produces both tracks. Output is bit-identical to
	// sequential processing.
	Parallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidInput, c.SampleRate)
	}

	switch c.Mode {
	case ModeBoth, ModeVocalsOnly, ModeInstrumentalOnly:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
	}

	return nil
}

// Result holds the output of a separation. The track excluded by the
// separation mode is nil; produced tracks are mono buffers with the same
// frame count and sample rate as the resolved input.
type Result struct {
	// Instrumental is the center-cancelled backing track, or nil when the
	// mode excludes it. Samples are clamped to [-1, 1].
	Instrumental []float64

	// Vocals is the vocal-emphasized track, or nil when the mode excludes
	// it. Samples are clamped to [-0.95, 0.95].
	Vocals []float64

	// SampleRate is the sample rate of both output buffers in Hz.
	SampleRate int
}

// Separator runs heuristic vocal/instrumental separation. It is stateless
// between calls and safe for concurrent use from multiple goroutines.
type Separator struct {
	cfg Config
}

// New creates a Separator with the specified configuration.
func New(config *Config) (*Separator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidInput)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Separator{cfg: *config}, nil
}

// Separate splits the input into instrumental and vocal tracks according
// to the configured mode. input is channel-major PCM in [-1, 1]; mono is
// duplicated to stereo and channels beyond the first two are discarded.
//
// The input buffers are never modified.
func (s *Separator) Separate(input [][]float64) (*Result, error) {
	if err := validateInput(input, s.cfg.SampleRate); err != nil {
		return nil, err
	}

	s.report(progressLoad, "load")

	resolved := ResolveChannels(input)
	left, right := resolved[0], resolved[1]

	s.report(progressAnalyze, "analyze")
	s.report(progressSeparate, "separate")

	result := &Result{SampleRate: s.cfg.SampleRate}

	// Parallel processing: the two extractors are independent, so results
	// are bit-identical to the sequential path.
	if s.cfg.Parallel && s.cfg.Mode == ModeBoth {
		var wg sync.WaitGroup
		errChan := make(chan error, 2)

		wg.Add(2)
		go func() {
			defer wg.Done()
			vocals, err := ExtractVocals(left, right, s.cfg.SampleRate)
			if err != nil {
				errChan <- fmt.Errorf("vocals: %w", err)
				return
			}
			result.Vocals = vocals
		}()
		go func() {
			defer wg.Done()
			instrumental, err := ExtractInstrumental(left, right, s.cfg.SampleRate)
			if err != nil {
				errChan <- fmt.Errorf("instrumental: %w", err)
				return
			}
			result.Instrumental = instrumental
		}()

		wg.Wait()
		close(errChan)

		for err := range errChan {
			if err != nil {
				return nil, err
			}
		}

		s.report(progressFinalize, "finalize")
		s.report(progressComplete, "complete")

		return result, nil
	}

	if s.cfg.Mode.includesVocals() {
		vocals, err := ExtractVocals(left, right, s.cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		result.Vocals = vocals
	}

	if s.cfg.Mode.includesInstrumental() {
		instrumental, err := ExtractInstrumental(left, right, s.cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		result.Instrumental = instrumental
	}

	s.report(progressFinalize, "finalize")
	s.report(progressComplete, "complete")

	return result, nil
}

// report forwards a checkpoint to the progress sink, if any.
func (s *Separator) report(fraction float64, stage string) {
	if s.cfg.Progress != nil {
		s.cfg.Progress(fraction, stage)
	}
}

// validateInput rejects malformed buffers before any filter design runs.
func validateInput(input [][]float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidInput, sampleRate)
	}

	if len(input) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidInput)
	}

	frames := len(input[0])
	if frames == 0 {
		return fmt.Errorf("%w: zero-length channel", ErrInvalidInput)
	}

	for ch, data := range input {
		if len(data) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrInvalidInput, ch, len(data), frames)
		}
	}

	return nil
}
