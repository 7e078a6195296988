package theme

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
)

// ButtonThemeData defines default styling for Button components.
type ButtonThemeData struct {
	// BackgroundColor is the default button background.
	BackgroundColor graphics.Color
	// ForegroundColor is the default label color.
	ForegroundColor graphics.Color
	// PressedBackgroundColor is the background while pressed.
	PressedBackgroundColor graphics.Color
	// DisabledBackgroundColor is the background when disabled.
	DisabledBackgroundColor graphics.Color
	// DisabledForegroundColor is the label color when disabled.
	DisabledForegroundColor graphics.Color
	// OutlineColor is the border color for outlined buttons.
	OutlineColor graphics.Color
	// Padding is the default button padding.
	Padding layout.EdgeInsets
	// BorderRadius is the default corner radius.
	BorderRadius float64
	// BorderWidth is the border stroke width for outlined buttons.
	BorderWidth float64
	// FontSize is the default label font size.
	FontSize float64
}

// LabelThemeData defines default styling for Label components.
type LabelThemeData struct {
	// TextColor is the default text color.
	TextColor graphics.Color
	// FontSize is the default font size.
	FontSize float64
}

// TextFieldThemeData defines default styling for TextField components.
type TextFieldThemeData struct {
	// BackgroundColor is the field background.
	BackgroundColor graphics.Color
	// BorderColor is the default border color.
	BorderColor graphics.Color
	// FocusColor is the border color when focused.
	FocusColor graphics.Color
	// ErrorColor is the border and message color in error state.
	ErrorColor graphics.Color
	// LabelColor is the placeholder and helper text color.
	LabelColor graphics.Color
	// TextColor is the input text color.
	TextColor graphics.Color
	// CaretColor is the insertion caret color.
	CaretColor graphics.Color
	// DisabledTextColor is the input text color when disabled.
	DisabledTextColor graphics.Color
	// Padding is the default inner padding.
	Padding layout.EdgeInsets
	// BorderRadius is the default corner radius.
	BorderRadius float64
	// BorderWidth is the default border stroke width.
	BorderWidth float64
	// Height is the default field height.
	Height float64
	// FontSize is the default input font size.
	FontSize float64
}

// PickerThemeData defines default styling for Picker components.
type PickerThemeData struct {
	// TrackColor is the inactive portion of the track.
	TrackColor graphics.Color
	// ActiveTrackColor is the track portion up to the selection.
	ActiveTrackColor graphics.Color
	// ThumbColor is the selection thumb fill.
	ThumbColor graphics.Color
	// DisabledThumbColor is the thumb fill when disabled.
	DisabledThumbColor graphics.Color
	// StopColor is the fill of the option stop markers.
	StopColor graphics.Color
	// LabelColor is the option label color.
	LabelColor graphics.Color
	// TrackHeight is the track stroke height.
	TrackHeight float64
	// ThumbRadius is the thumb circle radius.
	ThumbRadius float64
	// FontSize is the option label font size.
	FontSize float64
	// Height is the default picker height including labels.
	Height float64
}

// GroupBoxThemeData defines default styling for GroupBox components.
type GroupBoxThemeData struct {
	// BorderColor is the outline color.
	BorderColor graphics.Color
	// BackgroundColor is the box fill.
	BackgroundColor graphics.Color
	// TitleColor is the title text color.
	TitleColor graphics.Color
	// BorderRadius is the corner radius.
	BorderRadius float64
	// BorderWidth is the outline stroke width.
	BorderWidth float64
	// Padding is the inner padding around the child.
	Padding layout.EdgeInsets
	// TitleFontSize is the title font size.
	TitleFontSize float64
	// TitleSpacing is the gap between the title and the child.
	TitleSpacing float64
}

// FlexibleStackThemeData defines default spacing for FlexibleStack
// components. Items that report no spacing preference fall back to these.
type FlexibleStackThemeData struct {
	// ItemSpacing is the default horizontal gap between items in a row.
	ItemSpacing float64
	// RowSpacing is the default vertical gap between rows.
	RowSpacing float64
}

// DefaultButtonTheme returns ButtonThemeData derived from a ColorScheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor:         colors.Primary,
		ForegroundColor:         colors.OnPrimary,
		PressedBackgroundColor:  Darken(colors.Primary, 0.08),
		DisabledBackgroundColor: Disabled(colors.Primary, colors.Surface),
		DisabledForegroundColor: Disabled(colors.OnSurface, colors.Surface),
		OutlineColor:            colors.Outline,
		Padding:                 layout.EdgeInsetsSymmetric(24, 14),
		BorderRadius:            8,
		BorderWidth:             1,
		FontSize:                16,
	}
}

// DefaultLabelTheme returns LabelThemeData derived from a ColorScheme.
func DefaultLabelTheme(colors ColorScheme) LabelThemeData {
	return LabelThemeData{
		TextColor: colors.OnBackground,
		FontSize:  16,
	}
}

// DefaultTextFieldTheme returns TextFieldThemeData derived from a ColorScheme.
func DefaultTextFieldTheme(colors ColorScheme) TextFieldThemeData {
	return TextFieldThemeData{
		BackgroundColor:   colors.Surface,
		BorderColor:       colors.Outline,
		FocusColor:        colors.Primary,
		ErrorColor:        colors.Error,
		LabelColor:        colors.OnSurfaceVariant,
		TextColor:         colors.OnSurface,
		CaretColor:        colors.Primary,
		DisabledTextColor: Disabled(colors.OnSurface, colors.Surface),
		Padding:           layout.EdgeInsetsSymmetric(12, 8),
		BorderRadius:      8,
		BorderWidth:       1,
		Height:            48,
		FontSize:          16,
	}
}

// DefaultPickerTheme returns PickerThemeData derived from a ColorScheme.
func DefaultPickerTheme(colors ColorScheme) PickerThemeData {
	return PickerThemeData{
		TrackColor:         colors.SurfaceVariant,
		ActiveTrackColor:   colors.Primary,
		ThumbColor:         colors.Primary,
		DisabledThumbColor: Disabled(colors.Primary, colors.Surface),
		StopColor:          colors.Outline,
		LabelColor:         colors.OnSurfaceVariant,
		TrackHeight:        4,
		ThumbRadius:        10,
		FontSize:           14,
		Height:             44,
	}
}

// DefaultGroupBoxTheme returns GroupBoxThemeData derived from a ColorScheme.
func DefaultGroupBoxTheme(colors ColorScheme) GroupBoxThemeData {
	return GroupBoxThemeData{
		BorderColor:     colors.Outline,
		BackgroundColor: colors.Surface,
		TitleColor:      colors.OnSurfaceVariant,
		BorderRadius:    8,
		BorderWidth:     1,
		Padding:         layout.EdgeInsetsAll(16),
		TitleFontSize:   14,
		TitleSpacing:    8,
	}
}

// DefaultFlexibleStackTheme returns FlexibleStackThemeData derived from a
// ColorScheme. Spacing does not depend on colors; the signature matches the
// other constructors so Theme can derive uniformly.
func DefaultFlexibleStackTheme(colors ColorScheme) FlexibleStackThemeData {
	return FlexibleStackThemeData{
		ItemSpacing: 8,
		RowSpacing:  8,
	}
}
