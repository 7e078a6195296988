package theme

import (
	catppuccin "github.com/catppuccin/go"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// Built-in palettes are the Catppuccin flavors: Latte for light themes and
// Mocha for dark themes. The upstream palette publishes hex strings, so the
// flavor colors pass through the same parser the token loader uses.

// flavorHex holds the palette entries a scheme draws on.
type flavorHex struct {
	mauve    string
	blue     string
	base     string
	text     string
	mantle   string
	crust    string
	red      string
	subtext0 string
	surface0 string
	surface1 string
	surface2 string
	overlay0 string
}

// CatppuccinLatte returns the light scheme built from the Latte flavor.
func CatppuccinLatte() ColorScheme {
	f := catppuccin.Latte
	return schemeFromFlavor(flavorHex{
		mauve:    string(f.Mauve().Hex),
		blue:     string(f.Blue().Hex),
		base:     string(f.Base().Hex),
		text:     string(f.Text().Hex),
		mantle:   string(f.Mantle().Hex),
		crust:    string(f.Crust().Hex),
		red:      string(f.Red().Hex),
		subtext0: string(f.Subtext0().Hex),
		surface0: string(f.Surface0().Hex),
		surface1: string(f.Surface1().Hex),
		surface2: string(f.Surface2().Hex),
		overlay0: string(f.Overlay0().Hex),
	})
}

// CatppuccinMocha returns the dark scheme built from the Mocha flavor.
func CatppuccinMocha() ColorScheme {
	f := catppuccin.Mocha
	return schemeFromFlavor(flavorHex{
		mauve:    string(f.Mauve().Hex),
		blue:     string(f.Blue().Hex),
		base:     string(f.Base().Hex),
		text:     string(f.Text().Hex),
		mantle:   string(f.Mantle().Hex),
		crust:    string(f.Crust().Hex),
		red:      string(f.Red().Hex),
		subtext0: string(f.Subtext0().Hex),
		surface0: string(f.Surface0().Hex),
		surface1: string(f.Surface1().Hex),
		surface2: string(f.Surface2().Hex),
		overlay0: string(f.Overlay0().Hex),
	})
}

// schemeFromFlavor maps the palette entries onto the scheme roles.
//
// Role mapping follows the upstream style guide: Base is the main
// background, Mantle backs component surfaces, the Surface steps fill
// low-emphasis areas, Overlay0 outlines, and Mauve is the brand accent.
func schemeFromFlavor(f flavorHex) ColorScheme {
	return ColorScheme{
		Primary:   flavorColor(f.mauve),
		OnPrimary: flavorColor(f.base),

		Secondary:            flavorColor(f.blue),
		OnSecondary:          flavorColor(f.base),
		SecondaryContainer:   flavorColor(f.surface0),
		OnSecondaryContainer: flavorColor(f.text),

		Background:   flavorColor(f.base),
		OnBackground: flavorColor(f.text),

		Surface:              flavorColor(f.mantle),
		OnSurface:            flavorColor(f.text),
		SurfaceVariant:       flavorColor(f.surface0),
		OnSurfaceVariant:     flavorColor(f.subtext0),
		SurfaceContainerHigh: flavorColor(f.surface1),

		Outline:        flavorColor(f.overlay0),
		OutlineVariant: flavorColor(f.surface2),

		Error:   flavorColor(f.red),
		OnError: flavorColor(f.base),

		Shadow: flavorColor(f.crust),
	}
}

// flavorColor parses an upstream hex value. The palette data is static and
// well-formed, so a parse failure is a packaging bug worth failing loudly on.
func flavorColor(hex string) graphics.Color {
	return graphics.MustParseHex(hex)
}
