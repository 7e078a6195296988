package layout

import "github.com/jcholuj/DesignSystem/pkg/graphics"

// HitTestEntry records one render object hit during a hit test, along with
// the position in that object's local coordinates.
type HitTestEntry struct {
	Target        RenderObject
	LocalPosition graphics.Offset
}

// HitTestResult collects hit test entries from innermost to outermost.
type HitTestResult struct {
	Entries []HitTestEntry
}

// Add inserts a render object into the hit test result list. position is
// the hit location in the target's local coordinates.
func (h *HitTestResult) Add(target RenderObject, position graphics.Offset) {
	h.Entries = append(h.Entries, HitTestEntry{Target: target, LocalPosition: position})
}

// TapTarget is a render object that responds to tap events.
type TapTarget interface {
	OnTap()
}

// PressTarget is a render object that responds to positioned presses, such
// as slider tracks where the pointer location selects a value. Drags arrive
// as a sequence of presses.
type PressTarget interface {
	HandlePress(position graphics.Offset)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
	if clearer, ok := child.(interface{ ClearNeedsPaint() }); ok {
		clearer.ClearNeedsPaint()
	}
}

// ChildOffset reads the offset assigned to a child through BoxParentData.
// Children without parent data sit at the parent's origin.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok && data != nil {
		return data.Offset
	}
	return graphics.Offset{}
}
