// Package wavio implements the baseline WAV codec for the separation
// engine using github.com/go-audio. It decodes 16/24/32-bit integer PCM
// into channel-major float buffers in [-1, 1] and encodes mono float
// buffers as 16-bit PCM.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	separator "github.com/tphakala/go-audio-separator"
)

const (
	outputBitDepth = 16
	pcmAudioFormat = 1 // Uncompressed linear PCM
	maxInt16       = 32767.0
)

// ErrNotWAV indicates the stream is not a valid WAV file.
var ErrNotWAV = errors.New("not a valid WAV file")

// Codec is the baseline WAV implementation of the engine's Decoder and
// Encoder collaborator interfaces.
type Codec struct{}

var (
	_ separator.Decoder = Codec{}
	_ separator.Encoder = Codec{}
)

// Decode reads a whole WAV stream into channel-major float PCM in
// [-1, 1] and returns it with the stream's sample rate.
func (Codec) Decode(r io.ReadSeeker) ([][]float64, int, error) {
	return Decode(r)
}

// Encode writes a mono float buffer as 16-bit PCM WAV.
func (Codec) Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	return Encode(w, samples, sampleRate)
}

// Decode reads a whole WAV stream into channel-major float PCM.
func Decode(r io.ReadSeeker) ([][]float64, int, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, 0, ErrNotWAV
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read PCM data: %w", err)
	}

	numChannels := buf.Format.NumChannels
	if numChannels < 1 {
		return nil, 0, fmt.Errorf("%w: no channels", ErrNotWAV)
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth <= 0 {
		bitDepth = buf.SourceBitDepth
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	frames := len(buf.Data) / numChannels
	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < numChannels; ch++ {
			channels[ch][i] = float64(buf.Data[i*numChannels+ch]) * scale
		}
	}

	return channels, buf.Format.SampleRate, nil
}

// Encode writes a mono float buffer in [-1, 1] as 16-bit PCM WAV.
// Out-of-range samples are clipped at full scale.
func Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		switch {
		case v > 1:
			v = 1
		case v < -1:
			v = -1
		}
		data[i] = int(v * maxInt16)
	}

	encoder := wav.NewEncoder(w, sampleRate, outputBitDepth, 1, pcmAudioFormat)
	err := encoder.Write(&audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: outputBitDepth,
	})
	if err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	return encoder.Close()
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) ([][]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes a mono float buffer to a 16-bit WAV file at path.
func WriteFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(f, samples, sampleRate); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
