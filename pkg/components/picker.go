package components

import (
	"fmt"
	"math"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// defaultPickerWidth applies when the incoming constraints are unbounded.
const defaultPickerWidth = 280

// PickerConfig describes a slider-style picker.
type PickerConfig struct {
	// Options are the ordered labels the picker selects among. At least
	// one option is required.
	Options []string
	// SelectedIndex is the initially selected option. Must be within
	// Options.
	SelectedIndex int
	// Disabled rejects presses.
	Disabled bool
	// OnChanged is called with the new index after every selection
	// change.
	OnChanged func(int)
}

// Picker selects one option from an ordered list along a slider track.
// Stops mark each option; the thumb sits on the selected one with the
// option labels painted underneath. Presses and drags move the selection
// to the option nearest the pointer.
type Picker struct {
	layout.RenderBoxBase
	options   []string
	selected  int
	disabled  bool
	onChanged func(int)

	pickerTheme theme.PickerThemeData
	fontFamily  string

	optionLayouts []*graphics.TextLayout
}

// NewPicker creates a picker styled by the theme. An out-of-range
// SelectedIndex panics.
func NewPicker(config PickerConfig, th theme.Theme) *Picker {
	mustValidPickerIndex(config.SelectedIndex, len(config.Options))
	p := &Picker{
		options:     config.Options,
		selected:    config.SelectedIndex,
		disabled:    config.Disabled,
		onChanged:   config.OnChanged,
		pickerTheme: th.PickerThemeOf(),
		fontFamily:  th.TextTheme.BodyMedium.FontFamily,
	}
	p.SetSelf(p)
	return p
}

func mustValidPickerIndex(index, count int) {
	if index >= 0 && index < count {
		return
	}
	panic(fmt.Sprintf(
		"Picker used with out-of-range selected index %d (%d options).\n\n"+
			"Picker needs a selected index inside its options. This happens when:\n"+
			"- The selected index comes from state that outlived an options change\n"+
			"- The picker is constructed with no options\n\n"+
			"Solutions:\n"+
			"- Clamp the selected index to the options range before selecting\n"+
			"- Update the selected index when the options change\n"+
			"- Construct the picker with at least one option",
		index, count,
	))
}

// Options returns the ordered option labels.
func (p *Picker) Options() []string {
	return p.options
}

// SelectedIndex returns the index of the selected option.
func (p *Picker) SelectedIndex() int {
	return p.selected
}

// SetSelectedIndex moves the selection programmatically. An out-of-range
// index panics; a changed selection notifies OnChanged.
func (p *Picker) SetSelectedIndex(index int) {
	mustValidPickerIndex(index, len(p.options))
	p.selectIndex(index)
}

// Disabled reports whether the picker ignores presses.
func (p *Picker) Disabled() bool {
	return p.disabled
}

// SetDisabled toggles the disabled state.
func (p *Picker) SetDisabled(disabled bool) {
	if p.disabled == disabled {
		return
	}
	p.disabled = disabled
	p.MarkNeedsPaint()
}

func (p *Picker) selectIndex(index int) {
	if p.selected == index {
		return
	}
	p.selected = index
	p.MarkNeedsPaint()
	if p.onChanged != nil {
		p.onChanged(index)
	}
}

// HandlePress implements layout.PressTarget: the option nearest the press
// x position becomes the selection. Drags arrive as press sequences, so
// dragging sweeps the selection along the track.
func (p *Picker) HandlePress(position graphics.Offset) {
	if p.disabled {
		return
	}
	p.selectIndex(p.indexNearest(position.X))
}

// indexNearest maps an x position to the closest option index.
func (p *Picker) indexNearest(x float64) int {
	span := p.Size().Width - 2*p.pickerTheme.ThumbRadius
	if len(p.options) == 1 || span <= 0 {
		return 0
	}
	fraction := (x - p.pickerTheme.ThumbRadius) / span
	fraction = min(max(fraction, 0), 1)
	return int(math.Round(fraction * float64(len(p.options)-1)))
}

// stopX returns the x position of option i's stop marker.
func (p *Picker) stopX(i int) float64 {
	pad := p.pickerTheme.ThumbRadius
	span := p.Size().Width - 2*pad
	fraction := 0.0
	if len(p.options) > 1 {
		fraction = float64(i) / float64(len(p.options)-1)
	}
	return pad + span*fraction
}

func (p *Picker) PerformLayout() {
	constraints := p.Constraints()

	width := constraints.MaxWidth
	if width == layout.Unbounded {
		width = defaultPickerWidth
	}
	width = min(max(width, constraints.MinWidth), constraints.MaxWidth)

	height := p.pickerTheme.Height
	height = min(max(height, constraints.MinHeight), constraints.MaxHeight)

	p.SetSize(graphics.Size{Width: width, Height: height})

	style := graphics.TextStyle{
		Color:      p.pickerTheme.LabelColor,
		FontSize:   p.pickerTheme.FontSize,
		FontFamily: p.fontFamily,
	}
	p.optionLayouts = p.optionLayouts[:0]
	manager, _ := graphics.DefaultFontManagerErr()
	for _, option := range p.options {
		var optionLayout *graphics.TextLayout
		if manager != nil {
			optionLayout, _ = graphics.LayoutText(option, style, manager)
		}
		p.optionLayouts = append(p.optionLayouts, optionLayout)
	}
}

func (p *Picker) Paint(ctx *layout.PaintContext) {
	size := p.Size()
	pad := p.pickerTheme.ThumbRadius
	trackHeight := p.pickerTheme.TrackHeight
	// Track sits in the upper strip so the labels fit underneath within
	// the theme height.
	trackCenterY := pad + 2
	trackRadius := graphics.CircularRadius(trackHeight / 2)

	thumbX := p.stopX(p.selected)

	trackRect := graphics.RectLTWH(pad, trackCenterY-trackHeight/2, size.Width-2*pad, trackHeight)
	ctx.Canvas.DrawRRect(
		graphics.RRectFromRectAndRadius(trackRect, trackRadius),
		graphics.FillPaint(p.pickerTheme.TrackColor),
	)

	if thumbX > pad {
		activeRect := graphics.RectLTWH(pad, trackCenterY-trackHeight/2, thumbX-pad, trackHeight)
		ctx.Canvas.DrawRRect(
			graphics.RRectFromRectAndRadius(activeRect, trackRadius),
			graphics.FillPaint(p.pickerTheme.ActiveTrackColor),
		)
	}

	// Stop markers slightly taller than the track.
	stopRadius := trackHeight/2 + 1
	stopPaint := graphics.FillPaint(p.pickerTheme.StopColor)
	for i := range p.options {
		center := graphics.Offset{X: p.stopX(i), Y: trackCenterY}
		ctx.Canvas.DrawCircle(center, stopRadius, stopPaint)
	}

	thumbColor := p.pickerTheme.ThumbColor
	if p.disabled {
		thumbColor = p.pickerTheme.DisabledThumbColor
	}
	ctx.Canvas.DrawCircle(
		graphics.Offset{X: thumbX, Y: trackCenterY},
		p.pickerTheme.ThumbRadius,
		graphics.FillPaint(thumbColor),
	)

	labelTop := trackCenterY + pad + 4
	for i, optionLayout := range p.optionLayouts {
		if optionLayout == nil {
			continue
		}
		x := p.stopX(i) - optionLayout.Size.Width/2
		x = min(max(x, 0), size.Width-optionLayout.Size.Width)
		ctx.Canvas.DrawText(optionLayout, graphics.Offset{X: x, Y: labelTop})
	}
}

func (p *Picker) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, p.Size()) {
		return false
	}
	result.Add(p, position)
	return true
}
