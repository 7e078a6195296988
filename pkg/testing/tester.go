package testing

import (
	"fmt"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// RenderTester mounts a render box and drives layout, painting, and
// pointer dispatch without a platform surface. The root is laid out under
// loose constraints of the surface size, so components report their
// natural dimensions just as they would inside a container.
type RenderTester struct {
	root layout.RenderBox
	size graphics.Size
}

// NewRenderTester creates a tester with the default surface size.
func NewRenderTester() *RenderTester {
	return &RenderTester{
		size: graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// SetSize sets the logical surface size. Takes effect on the next Mount
// or Layout.
func (t *RenderTester) SetSize(size graphics.Size) {
	t.size = size
}

// Mount installs root as the tree under test and lays it out.
func (t *RenderTester) Mount(root layout.RenderBox) {
	t.root = root
	t.Layout()
}

// Layout lays the mounted tree out again, picking up state changes made
// since the last pass.
func (t *RenderTester) Layout() {
	if t.root == nil {
		return
	}
	t.root.Layout(layout.Loose(t.size), true)
}

// Root returns the mounted render box.
func (t *RenderTester) Root() layout.RenderBox {
	return t.root
}

// Paint records the mounted tree into a display list.
func (t *RenderTester) Paint() *graphics.DisplayList {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(t.size)
	if t.root != nil {
		t.root.Paint(&layout.PaintContext{Canvas: canvas})
	}
	return recorder.EndRecording()
}

// HitTestAt runs a hit test from the root at the given position.
func (t *RenderTester) HitTestAt(position graphics.Offset) *layout.HitTestResult {
	result := &layout.HitTestResult{}
	if t.root != nil {
		t.root.HitTest(position, result)
	}
	return result
}

// TapAt dispatches a tap to the innermost interactive target at the
// given position. Press targets receive the press at their local
// position; tap targets receive OnTap.
func (t *RenderTester) TapAt(position graphics.Offset) error {
	if t.root == nil {
		return fmt.Errorf("no render box mounted")
	}
	result := t.HitTestAt(position)
	for _, entry := range result.Entries {
		if press, ok := entry.Target.(layout.PressTarget); ok {
			press.HandlePress(entry.LocalPosition)
			return nil
		}
		if tap, ok := entry.Target.(layout.TapTarget); ok {
			tap.OnTap()
			return nil
		}
	}
	return fmt.Errorf("no tap target at (%v, %v)", position.X, position.Y)
}

// PressAt dispatches a press to the innermost press target at the given
// position.
func (t *RenderTester) PressAt(position graphics.Offset) error {
	if t.root == nil {
		return fmt.Errorf("no render box mounted")
	}
	result := t.HitTestAt(position)
	for _, entry := range result.Entries {
		if press, ok := entry.Target.(layout.PressTarget); ok {
			press.HandlePress(entry.LocalPosition)
			return nil
		}
	}
	return fmt.Errorf("no press target at (%v, %v)", position.X, position.Y)
}

// DragFrom dispatches a drag as a press sequence: the press target hit at
// start receives presses along the path from start to start+delta, in its
// own local coordinates.
func (t *RenderTester) DragFrom(start, delta graphics.Offset) error {
	if t.root == nil {
		return fmt.Errorf("no render box mounted")
	}

	result := t.HitTestAt(start)
	var target layout.PressTarget
	var origin graphics.Offset
	for _, entry := range result.Entries {
		if press, ok := entry.Target.(layout.PressTarget); ok {
			target = press
			origin = graphics.Offset{
				X: start.X - entry.LocalPosition.X,
				Y: start.Y - entry.LocalPosition.Y,
			}
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no press target at (%v, %v)", start.X, start.Y)
	}

	const steps = 10
	for i := 0; i <= steps; i++ {
		fraction := float64(i) / steps
		target.HandlePress(graphics.Offset{
			X: start.X + delta.X*fraction - origin.X,
			Y: start.Y + delta.Y*fraction - origin.Y,
		})
	}
	return nil
}

// CenterOf returns the center of a render box in root-relative
// coordinates by walking the full ancestor chain.
func CenterOf(box layout.RenderBox) graphics.Offset {
	size := box.Size()
	abs := absoluteOffset(box)
	return graphics.Offset{X: abs.X + size.Width/2, Y: abs.Y + size.Height/2}
}

// absoluteOffset walks up the parent chain accumulating offsets from
// BoxParentData to compute the root-relative position of a render object.
func absoluteOffset(ro layout.RenderObject) graphics.Offset {
	offset := graphics.Offset{}
	cur := ro
	for cur != nil {
		if pd, ok := cur.ParentData().(*layout.BoxParentData); ok {
			offset.X += pd.Offset.X
			offset.Y += pd.Offset.Y
		}
		if parent, ok := cur.(interface{ Parent() layout.RenderObject }); ok {
			cur = parent.Parent()
		} else {
			break
		}
	}
	return offset
}
