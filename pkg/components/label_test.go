package components

import (
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

func themedLabelStyle(th theme.Theme) graphics.TextStyle {
	labelTheme := th.LabelThemeOf()
	return graphics.TextStyle{
		Color:      labelTheme.TextColor,
		FontSize:   labelTheme.FontSize,
		FontFamily: th.TextTheme.BodyMedium.FontFamily,
	}
}

func TestLabelSizesToText(t *testing.T) {
	th := theme.DefaultLightTheme()
	label := NewLabel(LabelConfig{Text: "hello"}, th)
	label.Layout(layout.Loose(graphics.Size{Width: 800, Height: 600}), true)

	manager, err := graphics.DefaultFontManagerErr()
	if err != nil {
		t.Fatalf("font manager: %v", err)
	}
	textLayout, err := graphics.LayoutText("hello", themedLabelStyle(th), manager)
	if err != nil {
		t.Fatalf("layout text: %v", err)
	}
	if got := label.Size(); got != textLayout.Size {
		t.Errorf("size = %+v, want text size %+v", got, textLayout.Size)
	}
}

func TestLabelStyleOverride(t *testing.T) {
	th := theme.DefaultLightTheme()
	small := NewLabel(LabelConfig{Text: "hello"}, th)
	big := NewLabel(LabelConfig{Text: "hello", Style: graphics.TextStyle{FontSize: 32}}, th)
	loose := layout.Loose(graphics.Size{Width: 800, Height: 600})
	small.Layout(loose, true)
	big.Layout(loose, true)

	if small.Size().Height >= big.Size().Height {
		t.Errorf("override size %v not taller than default %v", big.Size(), small.Size())
	}
	if big.style.Color != th.LabelThemeOf().TextColor {
		t.Errorf("color = %v, want theme fallback %v", big.style.Color, th.LabelThemeOf().TextColor)
	}
}

func TestLabelWraps(t *testing.T) {
	th := theme.DefaultLightTheme()
	label := NewLabel(LabelConfig{Text: "alpha beta gamma delta", Wrap: true}, th)
	label.Layout(layout.Loose(graphics.Size{Width: 60, Height: 600}), true)

	if label.textLayout == nil {
		t.Fatal("no text layout")
	}
	if lines := len(label.textLayout.Lines); lines < 2 {
		t.Errorf("lines = %d, want wrapped", lines)
	}
	if got := label.Size().Width; got > 60 {
		t.Errorf("width = %v, want at most the wrap width", got)
	}
}

func TestLabelMaxLines(t *testing.T) {
	th := theme.DefaultLightTheme()
	label := NewLabel(LabelConfig{
		Text:     "one two three four five six",
		Wrap:     true,
		MaxLines: 2,
	}, th)
	label.Layout(layout.Loose(graphics.Size{Width: 50, Height: 600}), true)

	if label.textLayout == nil {
		t.Fatal("no text layout")
	}
	if lines := len(label.textLayout.Lines); lines != 2 {
		t.Errorf("lines = %d, want truncated to 2", lines)
	}
	want := label.textLayout.LineHeight * 2
	if got := label.Size().Height; got != want {
		t.Errorf("height = %v, want two lines %v", got, want)
	}
}

func TestLabelSetTextRelayouts(t *testing.T) {
	th := theme.DefaultLightTheme()
	label := NewLabel(LabelConfig{Text: "hi"}, th)
	loose := layout.Loose(graphics.Size{Width: 800, Height: 600})
	label.Layout(loose, true)
	before := label.Size()

	label.SetText("a considerably longer line")
	label.Layout(loose, true)
	if got := label.Size(); got.Width <= before.Width {
		t.Errorf("width = %v, want wider than %v after SetText", got.Width, before.Width)
	}
	if label.Text() != "a considerably longer line" {
		t.Errorf("text = %q", label.Text())
	}
}

func TestLabelPaintsAtOrigin(t *testing.T) {
	th := theme.DefaultLightTheme()
	label := NewLabel(LabelConfig{Text: "hello"}, th)
	label.Layout(layout.Loose(graphics.Size{Width: 800, Height: 600}), true)

	canvas := paintBox(label)
	texts := canvas.opsOfKind("text")
	if len(texts) != 1 {
		t.Fatalf("text ops = %d, want 1", len(texts))
	}
	if texts[0].text != "hello" || texts[0].at != (graphics.Offset{}) {
		t.Errorf("text op = %+v, want hello at origin", texts[0])
	}
}
