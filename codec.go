package separator

import "io"

// Decoder turns an encoded audio stream into channel-major PCM in [-1, 1]
// plus the stream's sample rate. Implementations are chosen once at
// startup; the engine itself never probes for decode capabilities and
// never attempts a fallback decode path.
//
// The wavio package provides the baseline WAV implementation. Richer
// format support can be added by wiring another implementation.
type Decoder interface {
	Decode(r io.ReadSeeker) (channels [][]float64, sampleRate int, err error)
}

// Encoder writes a mono PCM buffer in [-1, 1] to a playable stream.
// 16-bit integer PCM is the baseline output depth.
type Encoder interface {
	Encode(w io.WriteSeeker, samples []float64, sampleRate int) error
}
