package separator

// ResolveChannels reduces channel-major input to exactly two channels of
// identical frame count:
//
//   - mono input is duplicated into left and right
//   - stereo input passes through unchanged
//   - channels beyond the first two are discarded
//
// The input buffers are shared, not copied, except for mono duplication,
// which allocates both output channels.
func ResolveChannels(input [][]float64) [][]float64 {
	if len(input) == 0 {
		return nil
	}

	if len(input) == 1 {
		left := make([]float64, len(input[0]))
		copy(left, input[0])
		right := make([]float64, len(input[0]))
		copy(right, input[0])

		return [][]float64{left, right}
	}

	return input[:stereoChannels:stereoChannels]
}
