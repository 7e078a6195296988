package theme

// SpacingScale holds the spacing steps components lay out with.
type SpacingScale struct {
	XS float64
	SM float64
	MD float64
	LG float64
	XL float64
}

// DefaultSpacingScale returns the standard 4px-based spacing steps.
func DefaultSpacingScale() SpacingScale {
	return SpacingScale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32}
}

// RadiusScale holds the corner radius steps.
type RadiusScale struct {
	SM float64
	MD float64
	LG float64
	// Full is large enough to render any box as a pill.
	Full float64
}

// DefaultRadiusScale returns the standard corner radius steps.
func DefaultRadiusScale() RadiusScale {
	return RadiusScale{SM: 4, MD: 8, LG: 16, Full: 9999}
}
