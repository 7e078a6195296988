package components

import (
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// gappyBox is a fixed-size child that asks for a specific gap to its
// preceding sibling.
type gappyBox struct {
	fixedBox
	gap      float64
	prevSeen layout.RenderBox
}

func newGappyBox(width, height, gap float64) *gappyBox {
	b := &gappyBox{fixedBox: fixedBox{width: width, height: height}, gap: gap}
	b.SetSelf(b)
	return b
}

func (b *gappyBox) PreferredSpacing(prev layout.RenderBox, axis layout.Axis) float64 {
	b.prevSeen = prev
	return b.gap
}

func childOffsets(children ...layout.RenderBox) []graphics.Offset {
	offsets := make([]graphics.Offset, len(children))
	for i, child := range children {
		offsets[i] = layout.ChildOffset(child)
	}
	return offsets
}

func TestFlexibleStackWrapsAtWidth(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(50, 20)
	c := newFixedBox(50, 20)
	spacing := 10.0
	stack := NewFlexibleStack(FlexibleStackConfig{Spacing: &spacing}, theme.DefaultLightTheme(), a, b, c)
	stack.Layout(layout.Loose(graphics.Size{Width: 120, Height: 600}), true)

	if got := stack.Size(); got != (graphics.Size{Width: 110, Height: 50}) {
		t.Errorf("size = %+v, want 110x50", got)
	}
	want := []graphics.Offset{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 0, Y: 30}}
	for i, got := range childOffsets(a, b, c) {
		if got != want[i] {
			t.Errorf("child %d offset = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestFlexibleStackThemeSpacing(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(50, 20)
	c := newFixedBox(50, 20)
	stack := NewFlexibleStack(FlexibleStackConfig{}, theme.DefaultLightTheme(), a, b, c)
	stack.Layout(layout.Loose(graphics.Size{Width: 120, Height: 600}), true)

	// Default item and row spacing is 8.
	if got := stack.Size(); got != (graphics.Size{Width: 108, Height: 48}) {
		t.Errorf("size = %+v, want 108x48", got)
	}
	want := []graphics.Offset{{X: 0, Y: 0}, {X: 58, Y: 0}, {X: 0, Y: 28}}
	for i, got := range childOffsets(a, b, c) {
		if got != want[i] {
			t.Errorf("child %d offset = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestFlexibleStackRowSpacingOverride(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(50, 20)
	rows := 2.0
	stack := NewFlexibleStack(FlexibleStackConfig{RowSpacing: &rows}, theme.DefaultLightTheme(), a, b)
	stack.Layout(layout.Loose(graphics.Size{Width: 60, Height: 600}), true)

	if got := layout.ChildOffset(b); got != (graphics.Offset{X: 0, Y: 22}) {
		t.Errorf("second row offset = %+v, want (0, 22)", got)
	}
	if got := stack.Size(); got != (graphics.Size{Width: 50, Height: 42}) {
		t.Errorf("size = %+v, want 50x42", got)
	}
}

func TestFlexibleStackOversizedChildKeepsOwnRow(t *testing.T) {
	wide := newFixedBox(500, 20)
	stack := NewFlexibleStack(FlexibleStackConfig{}, theme.DefaultLightTheme(), wide)
	stack.Layout(layout.Loose(graphics.Size{Width: 100, Height: 600}), true)

	if got := stack.Size(); got != (graphics.Size{Width: 100, Height: 20}) {
		t.Errorf("size = %+v, want clamped 100x20", got)
	}
	if got := layout.ChildOffset(wide); got != (graphics.Offset{}) {
		t.Errorf("child offset = %+v, want origin", got)
	}
	if got := wide.Size(); got != (graphics.Size{Width: 500, Height: 20}) {
		t.Errorf("child size = %+v, want intrinsic 500x20", got)
	}
}

func TestFlexibleStackNoChildren(t *testing.T) {
	stack := NewFlexibleStack(FlexibleStackConfig{}, theme.DefaultLightTheme())
	stack.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}), true)
	if got := stack.Size(); got != (graphics.Size{}) {
		t.Errorf("loose size = %+v, want zero", got)
	}

	stack.Layout(layout.Tight(graphics.Size{Width: 80, Height: 60}), true)
	if got := stack.Size(); got != (graphics.Size{Width: 80, Height: 60}) {
		t.Errorf("tight size = %+v, want 80x60", got)
	}
}

func TestFlexibleStackUnboundedWidthSingleRow(t *testing.T) {
	a := newFixedBox(30, 10)
	b := newFixedBox(30, 10)
	c := newFixedBox(30, 10)
	spacing := 5.0
	stack := NewFlexibleStack(FlexibleStackConfig{Spacing: &spacing}, theme.DefaultLightTheme(), a, b, c)
	stack.Layout(layout.UnboundedConstraints(), true)

	if got := stack.Size(); got != (graphics.Size{Width: 100, Height: 10}) {
		t.Errorf("size = %+v, want 100x10", got)
	}
	want := []graphics.Offset{{X: 0, Y: 0}, {X: 35, Y: 0}, {X: 70, Y: 0}}
	for i, got := range childOffsets(a, b, c) {
		if got != want[i] {
			t.Errorf("child %d offset = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestFlexibleStackTrailingAlignment(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(50, 30)
	c := newFixedBox(80, 10)
	spacing := 10.0
	stack := NewFlexibleStack(FlexibleStackConfig{
		Alignment: layout.AlignmentBottomRight,
		Spacing:   &spacing,
	}, theme.DefaultLightTheme(), a, b, c)
	stack.Layout(layout.Loose(graphics.Size{Width: 120, Height: 600}), true)

	if got := stack.Size(); got != (graphics.Size{Width: 110, Height: 50}) {
		t.Errorf("size = %+v, want 110x50", got)
	}
	want := []graphics.Offset{{X: 0, Y: 10}, {X: 60, Y: 0}, {X: 30, Y: 40}}
	for i, got := range childOffsets(a, b, c) {
		if got != want[i] {
			t.Errorf("child %d offset = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestFlexibleStackSpacingPreference(t *testing.T) {
	first := newFixedBox(50, 20)
	second := newGappyBox(50, 20, 20)
	stack := NewFlexibleStack(FlexibleStackConfig{}, theme.DefaultLightTheme(), first, second)
	stack.Layout(layout.Loose(graphics.Size{Width: 200, Height: 600}), true)

	if got := layout.ChildOffset(second); got != (graphics.Offset{X: 70, Y: 0}) {
		t.Errorf("offset = %+v, want preferred gap at (70, 0)", got)
	}
	if second.prevSeen != first {
		t.Errorf("preceding sibling = %v, want first child", second.prevSeen)
	}
}

func TestFlexibleStackFixedSpacingWinsOverPreference(t *testing.T) {
	first := newFixedBox(50, 20)
	second := newGappyBox(50, 20, 20)
	spacing := 4.0
	stack := NewFlexibleStack(FlexibleStackConfig{Spacing: &spacing}, theme.DefaultLightTheme(), first, second)
	stack.Layout(layout.Loose(graphics.Size{Width: 200, Height: 600}), true)

	if got := layout.ChildOffset(second); got != (graphics.Offset{X: 54, Y: 0}) {
		t.Errorf("offset = %+v, want fixed gap at (54, 0)", got)
	}
}

func TestFlexibleStackHitTest(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(50, 20)
	spacing := 10.0
	stack := NewFlexibleStack(FlexibleStackConfig{Spacing: &spacing}, theme.DefaultLightTheme(), a, b)
	stack.Layout(layout.Loose(graphics.Size{Width: 200, Height: 600}), true)

	var result layout.HitTestResult
	if !stack.HitTest(graphics.Offset{X: 65, Y: 5}, &result) {
		t.Fatal("hit inside second child missed")
	}
	if result.Entries[0].Target != layout.RenderObject(b) {
		t.Errorf("target = %v, want second child", result.Entries[0].Target)
	}
	if got := result.Entries[0].LocalPosition; got != (graphics.Offset{X: 5, Y: 5}) {
		t.Errorf("local position = %+v, want (5, 5)", got)
	}

	result = layout.HitTestResult{}
	if !stack.HitTest(graphics.Offset{X: 55, Y: 5}, &result) {
		t.Fatal("hit inside gap missed the stack")
	}
	if result.Entries[0].Target != layout.RenderObject(stack) {
		t.Errorf("gap target = %v, want stack", result.Entries[0].Target)
	}

	result = layout.HitTestResult{}
	if stack.HitTest(graphics.Offset{X: 150, Y: 5}, &result) {
		t.Error("hit outside the stack reported true")
	}
}

func TestFlexibleStackSkipsNilChildren(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(50, 20)
	stack := NewFlexibleStack(FlexibleStackConfig{}, theme.DefaultLightTheme(), a, nil, b)

	count := 0
	stack.VisitChildren(func(layout.RenderObject) { count++ })
	if count != 2 {
		t.Errorf("children = %d, want nils dropped", count)
	}
}
