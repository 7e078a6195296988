package testing

import (
	"strings"
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/components"
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

func TestNewRenderTesterDefaults(t *testing.T) {
	tester := NewRenderTester()

	if tester.size.Width != DefaultTestWidth || tester.size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %vx%v", DefaultTestWidth, DefaultTestHeight, tester.size.Width, tester.size.Height)
	}
	if tester.Root() != nil {
		t.Error("expected no root before Mount")
	}
}

func TestMountLaysOutNaturalSize(t *testing.T) {
	tester := NewRenderTester()
	box := components.NewSizedBox(120, 40, nil)

	tester.Mount(box)

	if tester.Root() != box {
		t.Fatal("expected Root to return the mounted box")
	}
	if got := box.Size(); got.Width != 120 || got.Height != 40 {
		t.Errorf("expected box to keep its natural 120x40, got %vx%v", got.Width, got.Height)
	}
}

func TestSetSizeBoundsLayout(t *testing.T) {
	tester := NewRenderTester()
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	box := components.NewSizedBox(500, 40, nil)
	tester.Mount(box)

	if got := box.Size(); got.Width != 100 {
		t.Errorf("expected surface to cap width at 100, got %v", got.Width)
	}
}

func TestLayoutPicksUpStateChanges(t *testing.T) {
	tester := NewRenderTester()
	th := theme.DefaultLightTheme()
	label := components.NewLabel(components.LabelConfig{Text: "hi"}, th)
	tester.Mount(label)
	before := label.Size()

	label.SetText("a much longer line of text")
	tester.Layout()

	if after := label.Size(); after.Width <= before.Width {
		t.Errorf("expected relayout to widen label, got %v then %v", before.Width, after.Width)
	}
}

func TestPaintRecordsDisplayList(t *testing.T) {
	tester := NewRenderTester()
	th := theme.DefaultLightTheme()
	tester.Mount(components.NewButton(components.ButtonConfig{Label: "Save"}, th))

	dl := tester.Paint()

	if dl.Len() == 0 {
		t.Fatal("expected painted button to record operations")
	}
}

func TestPaintWithoutRoot(t *testing.T) {
	tester := NewRenderTester()

	if dl := tester.Paint(); dl.Len() != 0 {
		t.Errorf("expected empty display list, got %d ops", dl.Len())
	}
}

func TestHitTestAtFindsNestedTarget(t *testing.T) {
	tester := NewRenderTester()
	th := theme.DefaultLightTheme()
	button := components.NewButton(components.ButtonConfig{Label: "OK"}, th)
	padding := components.NewPadding(layout.EdgeInsetsAll(10), button)
	tester.Mount(padding)

	result := tester.HitTestAt(graphics.Offset{X: 15, Y: 15})

	if len(result.Entries) != 1 {
		t.Fatalf("expected the button to claim the hit, got %d entries", len(result.Entries))
	}
	if result.Entries[0].Target != layout.RenderObject(button) {
		t.Error("expected the button to be the hit target")
	}
	want := graphics.Offset{X: 5, Y: 5}
	if got := result.Entries[0].LocalPosition; got != want {
		t.Errorf("expected button-local position %v, got %v", want, got)
	}

	// The padding band outside the button falls back to the padding itself.
	band := tester.HitTestAt(graphics.Offset{X: 2, Y: 2})
	if len(band.Entries) != 1 || band.Entries[0].Target != layout.RenderObject(padding) {
		t.Error("expected the padding to take hits outside the button")
	}
}

func TestTapAtInvokesButton(t *testing.T) {
	tester := NewRenderTester()
	th := theme.DefaultLightTheme()
	taps := 0
	button := components.NewButton(components.ButtonConfig{
		Label:     "Submit",
		OnPressed: func() { taps++ },
	}, th)
	tester.Mount(button)

	if err := tester.TapAt(CenterOf(button)); err != nil {
		t.Fatal(err)
	}
	if taps != 1 {
		t.Errorf("expected 1 tap, got %d", taps)
	}
}

func TestTapAtDeliversPressPosition(t *testing.T) {
	tester := NewRenderTester()
	tester.SetSize(graphics.Size{Width: 220, Height: 600})
	th := theme.DefaultLightTheme()
	picker := components.NewPicker(components.PickerConfig{
		Options: []string{"S", "M", "L"},
	}, th)
	tester.Mount(picker)

	// Stops sit at x = 10, 110, 210 for a 220-wide track.
	if err := tester.TapAt(graphics.Offset{X: 210, Y: 22}); err != nil {
		t.Fatal(err)
	}
	if got := picker.SelectedIndex(); got != 2 {
		t.Errorf("expected tap on last stop to select 2, got %d", got)
	}
}

func TestTapAtWithoutRoot(t *testing.T) {
	tester := NewRenderTester()

	err := tester.TapAt(graphics.Offset{X: 10, Y: 10})

	if err == nil || !strings.Contains(err.Error(), "no render box mounted") {
		t.Errorf("expected mount error, got %v", err)
	}
}

func TestTapAtWithoutTarget(t *testing.T) {
	tester := NewRenderTester()
	tester.Mount(components.NewSizedBox(50, 50, nil))

	err := tester.TapAt(graphics.Offset{X: 25, Y: 25})

	if err == nil || !strings.Contains(err.Error(), "no tap target") {
		t.Errorf("expected no-target error, got %v", err)
	}
}

func TestPressAtConvertsToLocalCoordinates(t *testing.T) {
	tester := NewRenderTester()
	tester.SetSize(graphics.Size{Width: 260, Height: 600})
	th := theme.DefaultLightTheme()
	picker := components.NewPicker(components.PickerConfig{
		Options: []string{"S", "M", "L"},
	}, th)
	tester.Mount(components.NewPadding(layout.EdgeInsetsAll(20), picker))

	// The picker spans 220 inside the padding, stops at local x 10/110/210.
	if err := tester.PressAt(graphics.Offset{X: 230, Y: 42}); err != nil {
		t.Fatal(err)
	}
	if got := picker.SelectedIndex(); got != 2 {
		t.Errorf("expected press at local x=210 to select 2, got %d", got)
	}
}

func TestDragFromSweepsSelection(t *testing.T) {
	tester := NewRenderTester()
	tester.SetSize(graphics.Size{Width: 220, Height: 600})
	th := theme.DefaultLightTheme()
	var changes []int
	picker := components.NewPicker(components.PickerConfig{
		Options:   []string{"S", "M", "L"},
		OnChanged: func(i int) { changes = append(changes, i) },
	}, th)
	tester.Mount(picker)

	err := tester.DragFrom(graphics.Offset{X: 10, Y: 22}, graphics.Offset{X: 200, Y: 0})

	if err != nil {
		t.Fatal(err)
	}
	if picker.SelectedIndex() != 2 {
		t.Errorf("expected drag to land on 2, got %d", picker.SelectedIndex())
	}
	if len(changes) != 2 || changes[0] != 1 || changes[1] != 2 {
		t.Errorf("expected selection to pass through [1 2], got %v", changes)
	}
}

func TestDragFromWithoutTarget(t *testing.T) {
	tester := NewRenderTester()
	tester.Mount(components.NewSizedBox(50, 50, nil))

	err := tester.DragFrom(graphics.Offset{X: 25, Y: 25}, graphics.Offset{X: 10, Y: 0})

	if err == nil || !strings.Contains(err.Error(), "no press target") {
		t.Errorf("expected no-target error, got %v", err)
	}
}

func TestCenterOfNestedBox(t *testing.T) {
	tester := NewRenderTester()
	inner := components.NewSizedBox(50, 30, nil)
	tester.Mount(components.NewPadding(layout.EdgeInsetsAll(10), inner))

	center := CenterOf(inner)

	want := graphics.Offset{X: 35, Y: 25}
	if center != want {
		t.Errorf("expected center %v, got %v", want, center)
	}
}
