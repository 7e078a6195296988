package theme

// Theme bundles the full visual configuration for a component tree.
//
// Theme is an immutable value: construct one with DefaultLightTheme,
// DefaultDarkTheme, or from design tokens, then pass it to components
// explicitly. Derive variants with CopyWith instead of mutating in place.
type Theme struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// TextTheme defines the typography slots.
	TextTheme TextTheme

	// Spacing is the spacing step table.
	Spacing SpacingScale

	// Radii is the corner radius step table.
	Radii RadiusScale

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	ButtonTheme        *ButtonThemeData
	LabelTheme         *LabelThemeData
	TextFieldTheme     *TextFieldThemeData
	PickerTheme        *PickerThemeData
	GroupBoxTheme      *GroupBoxThemeData
	FlexibleStackTheme *FlexibleStackThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() Theme {
	colors := LightColorScheme()
	return Theme{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		Spacing:     DefaultSpacingScale(),
		Radii:       DefaultRadiusScale(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() Theme {
	colors := DarkColorScheme()
	return Theme{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		Spacing:     DefaultSpacingScale(),
		Radii:       DefaultRadiusScale(),
		Brightness:  BrightnessDark,
	}
}

// CopyWith returns a new Theme with the specified fields overridden.
func (t Theme) CopyWith(colorScheme *ColorScheme, textTheme *TextTheme, brightness *Brightness) Theme {
	result := t
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if textTheme != nil {
		result.TextTheme = *textTheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return result
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t Theme) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// LabelThemeOf returns the label theme, deriving from ColorScheme if not set.
func (t Theme) LabelThemeOf() LabelThemeData {
	if t.LabelTheme != nil {
		return *t.LabelTheme
	}
	return DefaultLabelTheme(t.ColorScheme)
}

// TextFieldThemeOf returns the text field theme, deriving from ColorScheme if not set.
func (t Theme) TextFieldThemeOf() TextFieldThemeData {
	if t.TextFieldTheme != nil {
		return *t.TextFieldTheme
	}
	return DefaultTextFieldTheme(t.ColorScheme)
}

// PickerThemeOf returns the picker theme, deriving from ColorScheme if not set.
func (t Theme) PickerThemeOf() PickerThemeData {
	if t.PickerTheme != nil {
		return *t.PickerTheme
	}
	return DefaultPickerTheme(t.ColorScheme)
}

// GroupBoxThemeOf returns the group box theme, deriving from ColorScheme if not set.
func (t Theme) GroupBoxThemeOf() GroupBoxThemeData {
	if t.GroupBoxTheme != nil {
		return *t.GroupBoxTheme
	}
	return DefaultGroupBoxTheme(t.ColorScheme)
}

// FlexibleStackThemeOf returns the stack spacing theme, deriving from
// ColorScheme if not set.
func (t Theme) FlexibleStackThemeOf() FlexibleStackThemeData {
	if t.FlexibleStackTheme != nil {
		return *t.FlexibleStackTheme
	}
	return DefaultFlexibleStackTheme(t.ColorScheme)
}
