package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// Color derivation for component state variants (pressed, disabled,
// hovered). All operations preserve the input's alpha channel and work on
// the opaque RGB channels.

// Lighten raises the HSL lightness of a color by amount (0-1).
func Lighten(c graphics.Color, amount float64) graphics.Color {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, clampUnit(l+amount)), c)
}

// Darken lowers the HSL lightness of a color by amount (0-1).
func Darken(c graphics.Color, amount float64) graphics.Color {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, clampUnit(l-amount)), c)
}

// Mix blends two colors in RGB space. t is the weight of b: 0 returns a,
// 1 returns b.
func Mix(a, b graphics.Color, t float64) graphics.Color {
	blended := toColorful(a).BlendRgb(toColorful(b), clampUnit(t))
	return fromColorful(blended, a)
}

// Disabled returns the washed-out variant of a color for disabled
// components: the color blended most of the way into the surface it sits on.
func Disabled(c, surface graphics.Color) graphics.Color {
	return Mix(c, surface, 0.62)
}

// toColorful converts to go-colorful's RGB space. Alpha is stripped first:
// MakeColor un-premultiplies and rejects zero alpha, and derivation only
// concerns the color channels.
func toColorful(c graphics.Color) colorful.Color {
	col, _ := colorful.MakeColor(c.WithAlpha8(0xFF))
	return col
}

// fromColorful converts back, carrying over the alpha of the original.
func fromColorful(col colorful.Color, original graphics.Color) graphics.Color {
	r, g, b := col.Clamped().RGB255()
	return graphics.RGBA8(r, g, b, uint8(original>>24))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
