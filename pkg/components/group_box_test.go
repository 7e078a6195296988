package components

import (
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

func groupTitleSize(t *testing.T, th theme.Theme, title string) graphics.Size {
	t.Helper()
	manager, err := graphics.DefaultFontManagerErr()
	if err != nil {
		t.Fatalf("font manager: %v", err)
	}
	boxTheme := th.GroupBoxThemeOf()
	titleLayout, err := graphics.LayoutText(title, graphics.TextStyle{
		Color:      boxTheme.TitleColor,
		FontSize:   boxTheme.TitleFontSize,
		FontFamily: th.TextTheme.BodyMedium.FontFamily,
	}, manager)
	if err != nil {
		t.Fatalf("layout text: %v", err)
	}
	return titleLayout.Size
}

func TestGroupBoxLayout(t *testing.T) {
	th := theme.DefaultLightTheme()
	boxTheme := th.GroupBoxThemeOf()
	child := newFixedBox(100, 40)
	box := NewGroupBox("Account", child, th)
	box.Layout(layout.Loose(graphics.Size{Width: 800, Height: 600}), true)

	titleSize := groupTitleSize(t, th, "Account")
	wantTop := boxTheme.Padding.Top + titleSize.Height + boxTheme.TitleSpacing
	if got := layout.ChildOffset(child); got != (graphics.Offset{X: boxTheme.Padding.Left, Y: wantTop}) {
		t.Errorf("child offset = %+v, want below the title strip at y %v", got, wantTop)
	}

	want := graphics.Size{
		Width:  max(100, titleSize.Width) + boxTheme.Padding.Horizontal(),
		Height: 40 + wantTop + boxTheme.Padding.Bottom,
	}
	if got := box.Size(); got != want {
		t.Errorf("size = %+v, want %+v", got, want)
	}
}

func TestGroupBoxWithoutTitle(t *testing.T) {
	th := theme.DefaultLightTheme()
	boxTheme := th.GroupBoxThemeOf()
	child := newFixedBox(100, 40)
	box := NewGroupBox("", child, th)
	box.Layout(layout.Loose(graphics.Size{Width: 800, Height: 600}), true)

	if got := layout.ChildOffset(child); got != boxTheme.Padding.TopLeft() {
		t.Errorf("child offset = %+v, want plain padding %+v", got, boxTheme.Padding.TopLeft())
	}
	want := graphics.Size{
		Width:  100 + boxTheme.Padding.Horizontal(),
		Height: 40 + boxTheme.Padding.Vertical(),
	}
	if got := box.Size(); got != want {
		t.Errorf("size = %+v, want %+v", got, want)
	}
}

func TestGroupBoxPaint(t *testing.T) {
	th := theme.DefaultLightTheme()
	boxTheme := th.GroupBoxThemeOf()
	child := newFixedBox(100, 40)
	box := NewGroupBox("Account", child, th)
	box.Layout(layout.Loose(graphics.Size{Width: 800, Height: 600}), true)

	canvas := paintBox(box)

	strokes := strokeOps(canvas)
	if len(strokes) != 1 {
		t.Fatalf("stroke ops = %d, want the border", len(strokes))
	}
	if strokes[0].color != boxTheme.BorderColor || strokes[0].radius != boxTheme.BorderRadius {
		t.Errorf("border = %+v, want themed rounded border", strokes[0])
	}

	texts := canvas.opsOfKind("text")
	if len(texts) != 1 || texts[0].text != "Account" {
		t.Fatalf("text ops = %+v, want the title", texts)
	}
	if texts[0].at != boxTheme.Padding.TopLeft() {
		t.Errorf("title at %+v, want %+v", texts[0].at, boxTheme.Padding.TopLeft())
	}

	childRects := canvas.opsOfKind("rect")
	if len(childRects) != 1 {
		t.Fatalf("rect ops = %d, want the child fill", len(childRects))
	}
	if got := childRects[0].rect.TopLeft(); got != layout.ChildOffset(child) {
		t.Errorf("child painted at %+v, want its offset", got)
	}
}

func TestGroupBoxHitTest(t *testing.T) {
	th := theme.DefaultLightTheme()
	child := newFixedBox(100, 40)
	box := NewGroupBox("Account", child, th)
	box.Layout(layout.Loose(graphics.Size{Width: 800, Height: 600}), true)

	offset := layout.ChildOffset(child)
	var result layout.HitTestResult
	if !box.HitTest(graphics.Offset{X: offset.X + 5, Y: offset.Y + 5}, &result) {
		t.Fatal("hit inside child missed")
	}
	if result.Entries[0].Target != layout.RenderObject(child) {
		t.Errorf("target = %v, want child", result.Entries[0].Target)
	}

	result = layout.HitTestResult{}
	if !box.HitTest(graphics.Offset{X: 2, Y: 2}, &result) {
		t.Fatal("hit in the frame missed")
	}
	if result.Entries[0].Target != layout.RenderObject(box) {
		t.Errorf("frame target = %v, want group box", result.Entries[0].Target)
	}
}

func TestGroupBoxSetTitleRelayouts(t *testing.T) {
	th := theme.DefaultLightTheme()
	box := NewGroupBox("Short", newFixedBox(10, 10), th)
	loose := layout.Loose(graphics.Size{Width: 800, Height: 600})
	box.Layout(loose, true)
	before := box.Size()

	box.SetTitle("A considerably longer group title")
	box.Layout(loose, true)
	if got := box.Size(); got.Width <= before.Width {
		t.Errorf("width = %v, want wider than %v after retitling", got.Width, before.Width)
	}
	if box.Title() != "A considerably longer group title" {
		t.Errorf("title = %q", box.Title())
	}
}
