package theme

import (
	"fmt"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ColorScheme defines the color palette for a theme.
//
// Roles follow the Material naming convention: each surface color has a
// matching On* color guaranteed to be readable on top of it.
type ColorScheme struct {
	// Primary is the main accent color for prominent components.
	Primary graphics.Color
	// OnPrimary is the content color drawn on Primary.
	OnPrimary graphics.Color

	// Secondary is the supporting accent color.
	Secondary graphics.Color
	// OnSecondary is the content color drawn on Secondary.
	OnSecondary graphics.Color
	// SecondaryContainer is a muted fill for secondary emphasis.
	SecondaryContainer graphics.Color
	// OnSecondaryContainer is the content color drawn on SecondaryContainer.
	OnSecondaryContainer graphics.Color

	// Background is the base color behind all content.
	Background graphics.Color
	// OnBackground is the content color drawn on Background.
	OnBackground graphics.Color

	// Surface is the color of component surfaces like fields and cards.
	Surface graphics.Color
	// OnSurface is the content color drawn on Surface.
	OnSurface graphics.Color
	// SurfaceVariant is an alternative surface for low-emphasis fills.
	SurfaceVariant graphics.Color
	// OnSurfaceVariant is the content color drawn on SurfaceVariant.
	OnSurfaceVariant graphics.Color
	// SurfaceContainerHigh is an elevated surface fill.
	SurfaceContainerHigh graphics.Color

	// Outline is the default border color.
	Outline graphics.Color
	// OutlineVariant is a subtler border color for dividers.
	OutlineVariant graphics.Color

	// Error indicates validation failures and destructive actions.
	Error graphics.Color
	// OnError is the content color drawn on Error.
	OnError graphics.Color

	// Shadow is the color used for drop shadows.
	Shadow graphics.Color
}

// LightColorScheme returns the default light color scheme.
func LightColorScheme() ColorScheme {
	return CatppuccinLatte()
}

// DarkColorScheme returns the default dark color scheme.
func DarkColorScheme() ColorScheme {
	return CatppuccinMocha()
}
