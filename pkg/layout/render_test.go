package layout

import (
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// testBox is a minimal render box for exercising the layout protocol.
// It sizes itself to its preferred size clamped by the incoming
// constraints and optionally lays out a single child.
type testBox struct {
	RenderBoxBase
	preferred   graphics.Size
	child       *testBox
	tightChild  bool // lay the child out with tight constraints
	layoutCount int
	onPerform   func()
	paints      func(ctx *PaintContext)
}

func newTestBox(width, height float64) *testBox {
	b := &testBox{preferred: graphics.Size{Width: width, Height: height}}
	b.SetSelf(b)
	return b
}

func (b *testBox) PerformLayout() {
	b.layoutCount++
	if b.onPerform != nil {
		b.onPerform()
	}
	if b.child != nil {
		if b.tightChild {
			b.child.Layout(Tight(b.child.preferred), false)
		} else {
			b.child.Layout(b.Constraints().Loosen(), true)
		}
	}
	b.SetSize(b.Constraints().Constrain(b.preferred))
}

func (b *testBox) Paint(ctx *PaintContext) {
	if b.paints != nil {
		b.paints(ctx)
	}
	if b.child != nil {
		ctx.PaintChild(b.child, ChildOffset(b.child))
	}
}

func (b *testBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if !WithinBounds(position, b.Size()) {
		return false
	}
	result.Add(b, position)
	return true
}

// adopt wires child under parent and registers it with the owner.
func adopt(owner *PipelineOwner, parent, child *testBox) {
	parent.child = child
	SetParentOnChild(child, parent)
	child.SetOwner(owner)
}

// layoutTree schedules the root and runs a full layout pass.
func layoutTree(owner *PipelineOwner, root *testBox, constraints Constraints) {
	owner.ScheduleLayout(root)
	owner.FlushLayoutForRoot(root, constraints)
}

func TestLayoutBecomesBoundaryWhenTight(t *testing.T) {
	box := newTestBox(50, 50)

	box.Layout(Tight(graphics.Size{Width: 100, Height: 100}), true)

	if box.RelayoutBoundary() != RenderObject(box) {
		t.Error("tight constraints should make the box its own relayout boundary")
	}
	if got := box.Size(); got != (graphics.Size{Width: 100, Height: 100}) {
		t.Errorf("size = %+v, want {100 100}", got)
	}
}

func TestLayoutInheritsBoundaryFromParent(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox(200, 200)
	root.SetOwner(owner)
	child := newTestBox(50, 50)
	adopt(owner, root, child)

	layoutTree(owner, root, Tight(graphics.Size{Width: 200, Height: 200}))

	// The child got loose constraints with parentUsesSize, so it inherits
	// the root's boundary instead of becoming one.
	if child.RelayoutBoundary() != RenderObject(root) {
		t.Error("child should inherit the root as its relayout boundary")
	}
	if child.Size() != (graphics.Size{Width: 50, Height: 50}) {
		t.Errorf("child size = %+v, want {50 50}", child.Size())
	}
}

func TestLayoutSkipsWhenCleanAndConstraintsUnchanged(t *testing.T) {
	box := newTestBox(50, 50)
	constraints := Loose(graphics.Size{Width: 100, Height: 100})

	box.Layout(constraints, true)
	box.Layout(constraints, true)

	if box.layoutCount != 1 {
		t.Errorf("layout ran %d times, want 1", box.layoutCount)
	}

	box.Layout(Loose(graphics.Size{Width: 120, Height: 100}), true)
	if box.layoutCount != 2 {
		t.Errorf("changed constraints: layout ran %d times, want 2", box.layoutCount)
	}
}

func TestLayoutRunsWhenMarkedDirty(t *testing.T) {
	box := newTestBox(50, 50)
	constraints := Loose(graphics.Size{Width: 100, Height: 100})
	box.Layout(constraints, true)

	box.MarkNeedsLayout()
	box.Layout(constraints, true)

	if box.layoutCount != 2 {
		t.Errorf("layout ran %d times, want 2", box.layoutCount)
	}
}

func TestSetSizeMarksPaint(t *testing.T) {
	box := newTestBox(50, 50)
	box.Layout(Tight(graphics.Size{Width: 50, Height: 50}), false)
	box.ClearNeedsPaint()

	box.SetSize(graphics.Size{Width: 60, Height: 60})
	if !box.NeedsPaint() {
		t.Error("size change should mark paint")
	}

	box.ClearNeedsPaint()
	box.SetSize(graphics.Size{Width: 60, Height: 60})
	if box.NeedsPaint() {
		t.Error("unchanged size should not mark paint")
	}
}

func TestSetParentDataRepaintsParentOnMove(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox(200, 200)
	root.SetOwner(owner)
	child := newTestBox(50, 50)
	adopt(owner, root, child)
	layoutTree(owner, root, Tight(graphics.Size{Width: 200, Height: 200}))
	root.ClearNeedsPaint()
	child.ClearNeedsPaint()

	child.SetParentData(&BoxParentData{Offset: graphics.Offset{X: 10, Y: 10}})

	if !root.NeedsPaint() {
		t.Error("moving a child should repaint the parent")
	}
}

func TestSetParentComputesDepth(t *testing.T) {
	a := newTestBox(10, 10)
	b := newTestBox(10, 10)
	c := newTestBox(10, 10)

	b.SetParent(a)
	c.SetParent(b)

	if a.Depth() != 0 || b.Depth() != 1 || c.Depth() != 2 {
		t.Errorf("depths = %d, %d, %d, want 0, 1, 2", a.Depth(), b.Depth(), c.Depth())
	}

	c.SetParent(nil)
	if c.Depth() != 0 {
		t.Errorf("detached depth = %d, want 0", c.Depth())
	}
}

func TestMarkNeedsPaintWalksToRoot(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox(200, 200)
	root.SetOwner(owner)
	child := newTestBox(50, 50)
	adopt(owner, root, child)
	layoutTree(owner, root, Tight(graphics.Size{Width: 200, Height: 200}))
	owner.FlushPaint()
	root.ClearNeedsPaint()
	child.ClearNeedsPaint()

	child.MarkNeedsPaint()

	if !child.NeedsPaint() || !root.NeedsPaint() {
		t.Error("paint flag should propagate from child to root")
	}
	dirty := owner.FlushPaint()
	if len(dirty) != 1 || dirty[0] != RenderObject(root) {
		t.Errorf("FlushPaint = %v, want just the root", dirty)
	}
}

func TestWithinBounds(t *testing.T) {
	size := graphics.Size{Width: 100, Height: 50}

	tests := []struct {
		name     string
		position graphics.Offset
		want     bool
	}{
		{"inside", graphics.Offset{X: 50, Y: 25}, true},
		{"origin", graphics.Offset{X: 0, Y: 0}, true},
		{"far corner", graphics.Offset{X: 100, Y: 50}, true},
		{"left of box", graphics.Offset{X: -1, Y: 25}, false},
		{"below box", graphics.Offset{X: 50, Y: 51}, false},
	}
	for _, tt := range tests {
		if got := WithinBounds(tt.position, size); got != tt.want {
			t.Errorf("%s: WithinBounds(%+v) = %v, want %v", tt.name, tt.position, got, tt.want)
		}
	}
}

func TestAsRenderBox(t *testing.T) {
	box := newTestBox(10, 10)
	if AsRenderBox(box) == nil {
		t.Error("testBox should convert to RenderBox")
	}
	if AsRenderBox(nil) != nil {
		t.Error("nil should convert to nil")
	}
}

func TestHitTestAddsTargets(t *testing.T) {
	box := newTestBox(100, 100)
	box.Layout(Tight(graphics.Size{Width: 100, Height: 100}), false)

	var result HitTestResult
	if !box.HitTest(graphics.Offset{X: 10, Y: 10}, &result) {
		t.Fatal("hit inside bounds should succeed")
	}
	if len(result.Entries) != 1 {
		t.Fatalf("result has %d entries, want 1", len(result.Entries))
	}
	if result.Entries[0].Target != RenderObject(box) {
		t.Error("entry should record the hit box")
	}
	if result.Entries[0].LocalPosition != (graphics.Offset{X: 10, Y: 10}) {
		t.Errorf("entry position = %+v", result.Entries[0].LocalPosition)
	}

	var miss HitTestResult
	if box.HitTest(graphics.Offset{X: 200, Y: 10}, &miss) {
		t.Error("hit outside bounds should fail")
	}
	if len(miss.Entries) != 0 {
		t.Error("missed hit should not add entries")
	}
}
