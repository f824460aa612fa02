package projection

// Pattern is an ordered set of sub-pixel jitter offsets, in units of one
// output pixel width. Patterns are fixed data; samplers never mutate them.
type Pattern [][2]float64

// PatternCenter samples each pixel once at its center.
var PatternCenter = Pattern{
	{0, 0},
}

// Pattern5x is a rotated-grid pattern with five samples per pixel.
var Pattern5x = Pattern{
	{0, 0},
	{-0.1875, -0.375},
	{0.375, -0.1875},
	{0.1875, 0.375},
	{-0.375, 0.1875},
}

// PatternForSamples returns the pattern for a sample count of 1 or 5,
// or (nil, false) for any other count.
func PatternForSamples(n int) (Pattern, bool) {
	switch n {
	case 1:
		return PatternCenter, true
	case 5:
		return Pattern5x, true
	}
	return nil, false
}
