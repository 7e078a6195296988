package theme

import "github.com/jcholuj/DesignSystem/pkg/graphics"

// TextTheme defines the named typography slots components pull styles from.
type TextTheme struct {
	HeadlineLarge  graphics.TextStyle
	HeadlineMedium graphics.TextStyle
	HeadlineSmall  graphics.TextStyle

	TitleLarge  graphics.TextStyle
	TitleMedium graphics.TextStyle

	BodyLarge  graphics.TextStyle
	BodyMedium graphics.TextStyle
	BodySmall  graphics.TextStyle

	LabelLarge  graphics.TextStyle
	LabelMedium graphics.TextStyle
	LabelSmall  graphics.TextStyle
}

// DefaultTextTheme returns the standard type scale in the given base color.
func DefaultTextTheme(base graphics.Color) TextTheme {
	return TextTheme{
		HeadlineLarge:  graphics.TextStyle{Color: base, FontSize: 32, FontWeight: graphics.FontWeightBold},
		HeadlineMedium: graphics.TextStyle{Color: base, FontSize: 28, FontWeight: graphics.FontWeightBold},
		HeadlineSmall:  graphics.TextStyle{Color: base, FontSize: 24, FontWeight: graphics.FontWeightSemibold},

		TitleLarge:  graphics.TextStyle{Color: base, FontSize: 22, FontWeight: graphics.FontWeightSemibold},
		TitleMedium: graphics.TextStyle{Color: base, FontSize: 16, FontWeight: graphics.FontWeightMedium},

		BodyLarge:  graphics.TextStyle{Color: base, FontSize: 16},
		BodyMedium: graphics.TextStyle{Color: base, FontSize: 14},
		BodySmall:  graphics.TextStyle{Color: base, FontSize: 12},

		LabelLarge:  graphics.TextStyle{Color: base, FontSize: 14, FontWeight: graphics.FontWeightMedium},
		LabelMedium: graphics.TextStyle{Color: base, FontSize: 12, FontWeight: graphics.FontWeightMedium},
		LabelSmall:  graphics.TextStyle{Color: base, FontSize: 11, FontWeight: graphics.FontWeightMedium},
	}
}
