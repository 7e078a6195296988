package components

import (
	"fmt"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// ButtonVariant selects how a button paints its background and outline.
type ButtonVariant int

const (
	// ButtonFilled paints a solid background behind the label.
	ButtonFilled ButtonVariant = iota
	// ButtonOutlined paints a stroked border and no fill.
	ButtonOutlined
	// ButtonText paints the label only.
	ButtonText
)

// String returns a human-readable representation of the variant.
func (v ButtonVariant) String() string {
	switch v {
	case ButtonFilled:
		return "filled"
	case ButtonOutlined:
		return "outlined"
	case ButtonText:
		return "text"
	default:
		return fmt.Sprintf("ButtonVariant(%d)", int(v))
	}
}

// ButtonConfig describes a button.
type ButtonConfig struct {
	// Label is the text displayed on the button.
	Label string
	// Variant selects filled, outlined, or text styling.
	Variant ButtonVariant
	// Disabled disables the button when true.
	Disabled bool
	// OnPressed is called when the button is tapped.
	OnPressed func()
}

// Button is a tappable, theme-styled button.
//
// The button sizes to its label plus the theme's padding. Filled buttons
// use the theme's background and foreground pair; outlined and text
// buttons color the label with the theme's background color instead and
// leave the fill empty. Disabled buttons swap in the theme's disabled
// colors and ignore taps. The pressed state swaps the filled background
// while held.
type Button struct {
	layout.RenderBoxBase
	label     string
	variant   ButtonVariant
	disabled  bool
	pressed   bool
	onPressed func()

	buttonTheme theme.ButtonThemeData
	fontFamily  string

	textLayout *graphics.TextLayout
	cache      buttonLayoutCache
}

type buttonLayoutCache struct {
	label string
	style graphics.TextStyle
}

// NewButton creates a button styled by the theme.
func NewButton(config ButtonConfig, th theme.Theme) *Button {
	b := &Button{
		label:       config.Label,
		variant:     config.Variant,
		disabled:    config.Disabled,
		onPressed:   config.OnPressed,
		buttonTheme: th.ButtonThemeOf(),
		fontFamily:  th.TextTheme.BodyMedium.FontFamily,
	}
	b.SetSelf(b)
	return b
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	if b.label == label {
		return
	}
	b.label = label
	b.MarkNeedsLayout()
	b.MarkNeedsPaint()
}

// Disabled reports whether the button ignores taps.
func (b *Button) Disabled() bool {
	return b.disabled
}

// SetDisabled toggles the disabled state.
func (b *Button) SetDisabled(disabled bool) {
	if b.disabled == disabled {
		return
	}
	b.disabled = disabled
	b.MarkNeedsLayout()
	b.MarkNeedsPaint()
}

// Pressed reports whether the button shows pressed feedback.
func (b *Button) Pressed() bool {
	return b.pressed
}

// SetPressed toggles the pressed visual state. Callers set it while a
// pointer is down and clear it on release.
func (b *Button) SetPressed(pressed bool) {
	if b.pressed == pressed {
		return
	}
	b.pressed = pressed
	b.MarkNeedsPaint()
}

// OnTap implements layout.TapTarget. Disabled buttons ignore taps.
func (b *Button) OnTap() {
	if b.disabled || b.onPressed == nil {
		return
	}
	b.onPressed()
}

func (b *Button) backgroundColor() graphics.Color {
	if b.disabled {
		return b.buttonTheme.DisabledBackgroundColor
	}
	if b.pressed {
		return b.buttonTheme.PressedBackgroundColor
	}
	return b.buttonTheme.BackgroundColor
}

func (b *Button) foregroundColor() graphics.Color {
	if b.disabled {
		return b.buttonTheme.DisabledForegroundColor
	}
	if b.variant == ButtonFilled {
		return b.buttonTheme.ForegroundColor
	}
	return b.buttonTheme.BackgroundColor
}

func (b *Button) labelStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:      b.foregroundColor(),
		FontSize:   b.buttonTheme.FontSize,
		FontFamily: b.fontFamily,
	}
}

func (b *Button) layoutLabel() {
	current := buttonLayoutCache{label: b.label, style: b.labelStyle()}
	if b.textLayout != nil && b.cache == current {
		return
	}
	b.cache = current

	manager, _ := graphics.DefaultFontManagerErr()
	if manager == nil {
		// Error already reported by DefaultFontManagerErr.
		b.textLayout = nil
		return
	}
	textLayout, err := graphics.LayoutText(b.label, current.style, manager)
	if err != nil {
		b.textLayout = nil
		return
	}
	b.textLayout = textLayout
}

func (b *Button) PerformLayout() {
	constraints := b.Constraints()
	b.layoutLabel()
	content := graphics.Size{}
	if b.textLayout != nil {
		content = b.textLayout.Size
	}
	b.SetSize(constraints.Constrain(b.buttonTheme.Padding.InflateSize(content)))
}

func (b *Button) Paint(ctx *layout.PaintContext) {
	size := b.Size()
	rect := graphics.RectLTWH(0, 0, size.Width, size.Height)
	radius := b.buttonTheme.BorderRadius

	switch b.variant {
	case ButtonOutlined:
		strokeShapeInside(ctx, rect, radius, b.buttonTheme.OutlineColor, b.buttonTheme.BorderWidth)
	case ButtonText:
	default:
		drawShape(ctx, rect, radius, graphics.FillPaint(b.backgroundColor()))
	}

	if b.textLayout != nil {
		origin := layout.AlignmentCenter.WithinRect(rect, b.textLayout.Size)
		ctx.Canvas.DrawText(b.textLayout, origin)
	}
}

func (b *Button) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, b.Size()) {
		return false
	}
	result.Add(b, position)
	return true
}
