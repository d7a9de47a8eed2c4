package separator

// Channel constants
const (
	stereoChannels = 2 // The engine always resolves input to stereo
)

// Normalized cutoff clamps. Cutoffs are expressed relative to the Nyquist
// frequency; the engine never lets a filter reach Nyquist itself.
const (
	minNormalizedCutoff = 0.01
	maxNormalizedCutoff = 0.95
)

// Vocal band limits. Content below vocalLowHz is mostly bass/kick bleed,
// content above vocalHighHz is mostly cymbals.
const (
	vocalLowHz     = 100.0
	vocalHighHz    = 8000.0
	vocalBandOrder = 6 // Steep band edges for vocal isolation
)

// Vocal presence peaking filter (vocal formant region).
const (
	presenceFreqHz = 2000.0
	presenceQ      = 2.0
)

// Mid-side blend weights for the vocal mix.
const (
	sideEnhancement = 2.5 // Boost applied to the side signal
	midSideScale    = 0.5 // (left±right)/2 mid-side scaling
	centerWeight    = 0.3 // Band-limited center-difference contribution
	sideWeight      = 0.7 // Enhanced side contribution
)

// Envelope gate parameters.
const (
	envelopeWindowSec  = 0.05  // 50 ms peak windows
	envelopeHopDivisor = 4     // Hop is a quarter window
	gateThresholdRatio = 0.2   // Threshold relative to mean envelope
	gateFloor          = 0.05  // Gate never fully mutes
	gateSmoothingSec   = 0.005 // 5 ms moving average against clicks
)

// Vocal output level processing.
const (
	vocalTargetRMS = 0.1
	vocalMinGain   = 0.5
	vocalMaxGain   = 2.0
	limiterDrive   = 0.8
	limiterMakeup  = 0.9
	vocalCeiling   = 0.95
)

// Instrumental path parameters.
const (
	stereoWidthGain    = 0.3   // Residual stereo difference level
	widthDelaySec      = 0.001 // 1 ms delay simulates stereo width
	shelfOrder         = 2
	shelfBlend         = 0.3  // How much of each shelf component is mixed in
	shelfSkipRatio     = 0.9  // Bands at or above this fraction of Nyquist are skipped
	instrumentalMakeup = 0.95
	instrumentalCeil   = 1.0
)

// Progress checkpoint fractions reported through ProgressFunc.
const (
	progressLoad     = 0.1
	progressAnalyze  = 0.3
	progressSeparate = 0.6
	progressFinalize = 0.9
	progressComplete = 1.0
)
