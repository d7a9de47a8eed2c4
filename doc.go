// Package separator extracts an approximate vocal track and an
// approximate instrumental track from stereo audio in pure Go.
//
// The separation is built from signal-processing heuristics, not a
// learned model: channel-difference cancellation, mid-side rebalancing,
// zero-phase Butterworth band-limiting, a formant peaking filter,
// envelope-based gating, and soft limiting. Results depend on how the
// source was mixed; material with hard-panned vocals or heavy stereo
// reverb separates poorly by nature.
//
// # Quick Start
//
// For simple one-shot separation:
//
//	instrumental, vocals, err := separator.Separate(channels, 44100, separator.ModeBoth)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For progress reporting or repeated use, construct a Separator:
//
//	s, err := separator.New(&separator.Config{
//	    SampleRate: 44100,
//	    Mode:       separator.ModeVocalsOnly,
//	    Progress: func(fraction float64, stage string) {
//	        log.Printf("%3.0f%% %s", fraction*100, stage)
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := s.Separate(channels)
//
// # Input and Output
//
// Input is channel-major float PCM in [-1, 1] at any positive sample
// rate. Mono input is duplicated to stereo; channels beyond the first
// two are discarded. Both outputs are mono, carry the input frame count
// and sample rate, and are clamped (instrumental to [-1, 1], vocals to
// [-0.95, 0.95]).
//
// Decoding and encoding are collaborator concerns behind the Decoder and
// Encoder interfaces; the wavio package provides the baseline WAV
// implementation used by cmd/separate-wav.
//
// # Concurrency
//
// A Separator holds no mutable state between calls, performs no I/O, and
// is safe for concurrent use. A single call blocks until the requested
// extractions complete; there is no mid-call cancellation.
package separator
