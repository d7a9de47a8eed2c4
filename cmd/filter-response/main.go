// Command filter-response prints the magnitude response of the filters
// the separation engine designs for a given sample rate. Useful for
// sanity-checking band edges after changing tuning constants.
//
// Usage:
//
//	filter-response -rate 44100
package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/tphakala/go-audio-separator/internal/filter"
)

const (
	defaultRate = 44100

	// Engine filter parameters to report on.
	vocalLowHz     = 100.0
	vocalHighHz    = 8000.0
	vocalBandOrder = 6
	presenceFreqHz = 2000.0
	presenceQ      = 2.0

	// Probe frequencies per decade step
	probesPerCurve = 12
)

func main() {
	rate := flag.Int("rate", defaultRate, "sample rate in Hz")
	flag.Parse()

	nyquist := float64(*rate) / 2
	probes := logProbes(20, nyquist*0.99, probesPerCurve)

	fmt.Printf("=== Separation filter responses at %d Hz ===\n\n", *rate)

	printResponse("Vocal high-pass (100 Hz, order 6)",
		filter.ButterworthHighpass(vocalLowHz/nyquist, vocalBandOrder), probes, nyquist)
	printResponse("Vocal low-pass (8 kHz, order 6)",
		filter.ButterworthLowpass(vocalHighHz/nyquist, vocalBandOrder), probes, nyquist)
	printResponse("Presence peak (2 kHz, Q=2)",
		filter.PeakResonator(presenceFreqHz/nyquist, presenceQ), probes, nyquist)
	printResponse("Low shelf component (60 Hz, order 2)",
		filter.ButterworthLowpass(60/nyquist, 2), probes, nyquist)
	printResponse("High shelf component (8 kHz, order 2)",
		filter.ButterworthHighpass(8000/nyquist, 2), probes, nyquist)
}

func printResponse(name string, cascade []filter.Biquad, probes []float64, nyquist float64) {
	fmt.Println(name)
	if cascade == nil {
		fmt.Println("  (degenerate for this sample rate; applied as identity)")
		fmt.Println()
		return
	}

	for _, hz := range probes {
		// Zero-phase application squares the magnitude response.
		mag := filter.Magnitude(cascade, hz/nyquist)
		fmt.Printf("  %8.1f Hz  single-pass %8.4f  zero-phase %8.4f\n", hz, mag, mag*mag)
	}
	fmt.Println()
}

// logProbes returns n logarithmically spaced frequencies in [lo, hi].
func logProbes(lo, hi float64, n int) []float64 {
	probes := make([]float64, n)
	ratio := hi / lo
	for i := range probes {
		t := float64(i) / float64(n-1)
		probes[i] = lo * math.Pow(ratio, t)
	}

	return probes
}
