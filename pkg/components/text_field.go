package components

import (
	"strings"
	"unicode/utf8"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// fieldTextGap is the vertical gap between the label, the input box, and
// the error text.
const fieldTextGap = 6

// defaultFieldWidth applies when the field has no explicit width and the
// incoming constraints are unbounded.
const defaultFieldWidth = 280

// TextFieldConfig describes a single-line text input.
type TextFieldConfig struct {
	// Value is the initial text. Ignored when Field is set; the bound
	// field's value seeds the text instead.
	Value string
	// Label paints above the input box.
	Label string
	// Placeholder shows inside the box while the value is empty.
	Placeholder string
	// Obscure masks the value with bullets, for password entry.
	Obscure bool
	// Disabled rejects edits and taps.
	Disabled bool
	// Width fixes the field width. Zero fills the available width.
	Width float64
	// OnChanged is called after every edit with the new value.
	OnChanged func(string)
	// Field binds the input to a form field: edits write through to the
	// field and its error text paints below the box.
	Field *Field[string]
}

// TextField is a single-line themed text input with an optional label
// above and error text below.
//
// The caret sits at the end of the value; InsertText and Backspace edit
// there. Focused fields stroke the border with the theme's focus color;
// fields whose bound form field holds an error use the error color for
// border and message.
type TextField struct {
	layout.RenderBoxBase
	value       string
	label       string
	placeholder string
	obscure     bool
	disabled    bool
	focused     bool
	width       float64
	onChanged   func(string)
	field       *Field[string]

	fieldTheme theme.TextFieldThemeData
	labelSize  float64
	errorSize  float64
	fontFamily string

	valueLayout *graphics.TextLayout
	labelLayout *graphics.TextLayout
	errorLayout *graphics.TextLayout
	errorText   string
	inputTop    float64
}

// NewTextField creates a text field styled by the theme.
func NewTextField(config TextFieldConfig, th theme.Theme) *TextField {
	t := &TextField{
		value:       config.Value,
		label:       config.Label,
		placeholder: config.Placeholder,
		obscure:     config.Obscure,
		disabled:    config.Disabled,
		width:       config.Width,
		onChanged:   config.OnChanged,
		field:       config.Field,
		fieldTheme:  th.TextFieldThemeOf(),
		labelSize:   th.TextTheme.LabelMedium.FontSize,
		errorSize:   th.TextTheme.BodySmall.FontSize,
		fontFamily:  th.TextTheme.BodyMedium.FontFamily,
	}
	t.SetSelf(t)
	if t.field != nil {
		t.value = t.field.Value()
		t.field.observer = func() {
			t.MarkNeedsLayout()
			t.MarkNeedsPaint()
		}
	}
	return t
}

// Value returns the current text.
func (t *TextField) Value() string {
	return t.value
}

// SetValue replaces the text, as if the user had retyped it.
func (t *TextField) SetValue(value string) {
	t.setValue(value)
}

// Focused reports whether the field shows the caret and focus border.
func (t *TextField) Focused() bool {
	return t.focused
}

// SetFocused toggles focus. Disabled fields never take focus.
func (t *TextField) SetFocused(focused bool) {
	if t.disabled && focused {
		return
	}
	if t.focused == focused {
		return
	}
	t.focused = focused
	t.MarkNeedsPaint()
}

// Disabled reports whether the field rejects edits and taps.
func (t *TextField) Disabled() bool {
	return t.disabled
}

// SetDisabled toggles the disabled state. Disabling drops focus.
func (t *TextField) SetDisabled(disabled bool) {
	if t.disabled == disabled {
		return
	}
	t.disabled = disabled
	if disabled {
		t.focused = false
	}
	t.MarkNeedsLayout()
	t.MarkNeedsPaint()
}

// InsertText appends text at the caret. Disabled fields reject edits.
func (t *TextField) InsertText(text string) {
	if t.disabled || text == "" {
		return
	}
	t.setValue(t.value + text)
}

// Backspace deletes the rune before the caret. Disabled or empty fields
// are unchanged.
func (t *TextField) Backspace() {
	if t.disabled || t.value == "" {
		return
	}
	runes := []rune(t.value)
	t.setValue(string(runes[:len(runes)-1]))
}

func (t *TextField) setValue(value string) {
	if t.value == value {
		return
	}
	t.value = value
	t.MarkNeedsLayout()
	t.MarkNeedsPaint()
	if t.onChanged != nil {
		t.onChanged(value)
	}
	if t.field != nil {
		t.field.Set(value)
	}
}

// OnTap implements layout.TapTarget: tapping focuses the field.
func (t *TextField) OnTap() {
	t.SetFocused(true)
}

// displayText returns the text painted inside the box and whether it is
// the placeholder.
func (t *TextField) displayText() (string, bool) {
	if t.value == "" {
		return t.placeholder, true
	}
	if t.obscure {
		return strings.Repeat("•", utf8.RuneCountInString(t.value)), false
	}
	return t.value, false
}

func (t *TextField) layoutLine(text string, style graphics.TextStyle) *graphics.TextLayout {
	if text == "" {
		return nil
	}
	manager, _ := graphics.DefaultFontManagerErr()
	if manager == nil {
		// Error already reported by DefaultFontManagerErr.
		return nil
	}
	textLayout, err := graphics.LayoutText(text, style, manager)
	if err != nil {
		return nil
	}
	return textLayout
}

func (t *TextField) PerformLayout() {
	constraints := t.Constraints()

	if t.field != nil {
		t.value = t.field.Value()
		t.errorText = t.field.ErrorText()
	}

	width := t.width
	if width == 0 {
		width = constraints.MaxWidth
	}
	if width == layout.Unbounded {
		width = defaultFieldWidth
	}
	width = min(max(width, constraints.MinWidth), constraints.MaxWidth)

	textColor := t.fieldTheme.TextColor
	if t.disabled {
		textColor = t.fieldTheme.DisabledTextColor
	}
	display, isPlaceholder := t.displayText()
	if isPlaceholder {
		textColor = t.fieldTheme.LabelColor
	}
	t.valueLayout = t.layoutLine(display, graphics.TextStyle{
		Color:      textColor,
		FontSize:   t.fieldTheme.FontSize,
		FontFamily: t.fontFamily,
	})
	t.labelLayout = t.layoutLine(t.label, graphics.TextStyle{
		Color:      t.fieldTheme.LabelColor,
		FontSize:   t.labelSize,
		FontFamily: t.fontFamily,
	})
	t.errorLayout = t.layoutLine(t.errorText, graphics.TextStyle{
		Color:      t.fieldTheme.ErrorColor,
		FontSize:   t.errorSize,
		FontFamily: t.fontFamily,
	})

	t.inputTop = 0
	height := t.fieldTheme.Height
	if t.labelLayout != nil {
		t.inputTop = t.labelLayout.Size.Height + fieldTextGap
		height += t.inputTop
	}
	if t.errorLayout != nil {
		height += fieldTextGap + t.errorLayout.Size.Height
	}
	height = min(max(height, constraints.MinHeight), constraints.MaxHeight)

	t.SetSize(graphics.Size{Width: width, Height: height})
}

func (t *TextField) Paint(ctx *layout.PaintContext) {
	size := t.Size()

	if t.labelLayout != nil {
		ctx.Canvas.DrawText(t.labelLayout, graphics.Offset{})
	}

	inputRect := graphics.RectLTWH(0, t.inputTop, size.Width, t.fieldTheme.Height)
	drawShape(ctx, inputRect, t.fieldTheme.BorderRadius, graphics.FillPaint(t.fieldTheme.BackgroundColor))

	borderColor := t.fieldTheme.BorderColor
	borderWidth := t.fieldTheme.BorderWidth
	if t.errorText != "" {
		borderColor = t.fieldTheme.ErrorColor
	} else if t.focused {
		borderColor = t.fieldTheme.FocusColor
	}
	if t.focused {
		borderWidth = 2 // Thicker border when focused
	}
	strokeShapeInside(ctx, inputRect, t.fieldTheme.BorderRadius, borderColor, borderWidth)

	padding := t.fieldTheme.Padding
	if t.valueLayout != nil {
		textY := inputRect.Top + (inputRect.Height()-t.valueLayout.Size.Height)/2
		ctx.Canvas.DrawText(t.valueLayout, graphics.Offset{X: padding.Left, Y: textY})
	}

	if t.focused && !t.disabled {
		caretX := padding.Left
		if t.value != "" && t.valueLayout != nil {
			caretX += t.valueLayout.Size.Width
		}
		caretX = min(caretX, size.Width-padding.Right)
		start := graphics.Offset{X: caretX, Y: inputRect.Top + padding.Top}
		end := graphics.Offset{X: caretX, Y: inputRect.Bottom - padding.Bottom}
		ctx.Canvas.DrawLine(start, end, graphics.StrokePaint(t.fieldTheme.CaretColor, 1))
	}

	if t.errorLayout != nil {
		errorY := inputRect.Bottom + fieldTextGap
		ctx.Canvas.DrawText(t.errorLayout, graphics.Offset{Y: errorY})
	}
}

func (t *TextField) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, t.Size()) {
		return false
	}
	result.Add(t, position)
	return true
}
