package components

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// LabelConfig describes a text label.
type LabelConfig struct {
	// Text is the displayed content.
	Text string
	// Style overrides the theme's label styling. Zero fields fall back to
	// the theme: color and size from LabelThemeData, family from the text
	// theme.
	Style graphics.TextStyle
	// Wrap breaks text into lines at the available width.
	Wrap bool
	// MaxLines truncates the laid-out text. Zero means unlimited.
	MaxLines int
}

// Label displays a run of styled text.
type Label struct {
	layout.RenderBoxBase
	text     string
	style    graphics.TextStyle
	wrap     bool
	maxLines int

	textLayout *graphics.TextLayout
	cache      labelLayoutCache
}

type labelLayoutCache struct {
	text     string
	style    graphics.TextStyle
	maxWidth float64
	maxLines int
	wrap     bool
}

// NewLabel creates a label styled by the theme.
func NewLabel(config LabelConfig, th theme.Theme) *Label {
	labelTheme := th.LabelThemeOf()
	style := config.Style
	if style.Color == graphics.ColorTransparent {
		style.Color = labelTheme.TextColor
	}
	if style.FontSize == 0 {
		style.FontSize = labelTheme.FontSize
	}
	if style.FontFamily == "" {
		style.FontFamily = th.TextTheme.BodyMedium.FontFamily
	}

	l := &Label{
		text:     config.Text,
		style:    style,
		wrap:     config.Wrap,
		maxLines: config.MaxLines,
	}
	l.SetSelf(l)
	return l
}

// Text returns the current content.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the content.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.MarkNeedsLayout()
	l.MarkNeedsPaint()
}

func (l *Label) PerformLayout() {
	constraints := l.Constraints()
	maxWidth := float64(0) // zero: no wrapping
	if l.wrap {
		maxWidth = constraints.MaxWidth
	}
	current := labelLayoutCache{
		text:     l.text,
		style:    l.style,
		maxWidth: maxWidth,
		maxLines: l.maxLines,
		wrap:     l.wrap,
	}
	if l.textLayout != nil && l.cache == current {
		l.SetSize(constraints.Constrain(l.textLayout.Size))
		return
	}
	l.cache = current

	manager, _ := graphics.DefaultFontManagerErr()
	if manager == nil {
		// Error already reported by DefaultFontManagerErr.
		l.textLayout = nil
		l.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}

	textLayout, err := graphics.LayoutTextWithConstraints(l.text, l.style, manager, maxWidth)
	if err != nil {
		l.textLayout = nil
		l.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}

	if l.maxLines > 0 && len(textLayout.Lines) > l.maxLines {
		textLayout.Lines = textLayout.Lines[:l.maxLines]
		maxLineWidth := 0.0
		for _, line := range textLayout.Lines {
			maxLineWidth = max(maxLineWidth, line.Width)
		}
		textLayout.Size = graphics.Size{
			Width:  maxLineWidth,
			Height: textLayout.LineHeight * float64(len(textLayout.Lines)),
		}
	}

	l.textLayout = textLayout
	l.SetSize(constraints.Constrain(textLayout.Size))
}

func (l *Label) Paint(ctx *layout.PaintContext) {
	if l.textLayout == nil {
		return
	}
	ctx.Canvas.DrawText(l.textLayout, graphics.Offset{})
}

func (l *Label) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, l.Size()) {
		return false
	}
	result.Add(l, position)
	return true
}
