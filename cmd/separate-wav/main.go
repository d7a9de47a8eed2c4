// Command separate-wav splits a WAV file into vocal and instrumental tracks.
//
// Usage:
//
//	separate-wav input.wav                          # writes input_instrumental.wav and input_vocals.wav
//	separate-wav -mode vocals input.wav             # vocal track only
//	separate-wav -mode instrumental -out back.wav input.wav
//	separate-wav -verbose input.wav                 # log progress checkpoints
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	separator "github.com/tphakala/go-audio-separator"
	"github.com/tphakala/go-audio-separator/wavio"
)

const (
	minRequiredArgs = 1
	percentScale    = 100
)

func main() {
	modeFlag := flag.String("mode", "both", "separation mode: both, vocals, or instrumental")
	outFlag := flag.String("out", "", "output path (single-track modes only; default derives from input)")
	verbose := flag.Bool("verbose", false, "log progress checkpoints")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < minRequiredArgs {
		usage()
		os.Exit(2)
	}

	mode, err := parseMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	if *outFlag != "" && mode == separator.ModeBoth {
		log.Fatal("-out requires -mode vocals or -mode instrumental")
	}

	inputPath := flag.Arg(0)
	if err := run(inputPath, *outFlag, mode, *verbose); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\nOptions:\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func parseMode(s string) (separator.Mode, error) {
	switch strings.ToLower(s) {
	case "both":
		return separator.ModeBoth, nil
	case "vocals":
		return separator.ModeVocalsOnly, nil
	case "instrumental":
		return separator.ModeInstrumentalOnly, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want both, vocals, or instrumental)", s)
	}
}

func run(inputPath, outPath string, mode separator.Mode, verbose bool) error {
	// The codec is fixed at startup; the engine never probes for formats.
	var codec wavio.Codec

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	channels, sampleRate, err := codec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	if verbose {
		frames := 0
		if len(channels) > 0 {
			frames = len(channels[0])
		}
		log.Printf("Input: %d Hz, %d channels, %d frames", sampleRate, len(channels), frames)
	}

	cfg := &separator.Config{
		SampleRate: sampleRate,
		Mode:       mode,
	}
	if verbose {
		cfg.Progress = func(fraction float64, stage string) {
			log.Printf("Progress: %3.0f%% (%s)", fraction*percentScale, stage)
		}
	}

	s, err := separator.New(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := s.Separate(channels)
	if err != nil {
		return fmt.Errorf("separation failed: %w", err)
	}
	if verbose {
		log.Printf("Separated in %v", time.Since(start))
	}

	if result.Instrumental != nil {
		path := outPath
		if path == "" {
			path = derivedPath(inputPath, "instrumental")
		}
		if err := wavio.WriteFile(path, result.Instrumental, result.SampleRate); err != nil {
			return err
		}
		fmt.Printf("Wrote instrumental track: %s\n", path)
	}

	if result.Vocals != nil {
		path := outPath
		if path == "" {
			path = derivedPath(inputPath, "vocals")
		}
		if err := wavio.WriteFile(path, result.Vocals, result.SampleRate); err != nil {
			return err
		}
		fmt.Printf("Wrote vocal track: %s\n", path)
	}

	return nil
}

// derivedPath appends a track suffix to the input name: song.wav ->
// song_vocals.wav.
func derivedPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)

	return fmt.Sprintf("%s_%s.wav", base, suffix)
}
