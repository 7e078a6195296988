package components

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
)

// SizedBox constrains its child to a specific width and/or height.
//
// When both dimensions are set, SizedBox forces that exact size (within the
// parent's constraints). A zero dimension defers to the child's intrinsic
// size on that axis. Without a child it is a fixed-size spacer:
//
//	components.NewSizedBox(0, 16, nil)        // vertical gap
//	components.NewSizedBox(200, 0, textField) // force width only
type SizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	width  float64
	height float64
}

// NewSizedBox creates a box with the given explicit dimensions. A zero
// dimension is unset. child may be nil.
func NewSizedBox(width, height float64, child layout.RenderBox) *SizedBox {
	s := &SizedBox{width: width, height: height}
	s.SetSelf(s)
	s.SetChild(child)
	return s
}

// SetChild replaces the child.
func (s *SizedBox) SetChild(child layout.RenderBox) {
	layout.SetParentOnChild(s.child, nil)
	s.child = child
	layout.SetParentOnChild(s.child, s)
}

func (s *SizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if s.child != nil {
		visitor(s.child)
	}
}

func (s *SizedBox) PerformLayout() {
	constraints := s.Constraints()
	desired := graphics.Size{Width: s.width, Height: s.height}

	if s.child == nil {
		s.SetSize(constraints.Constrain(desired))
		return
	}

	constrained := constraints.Constrain(desired)

	// Tighten only the explicit dimensions; the child picks the rest.
	childConstraints := constraints
	if s.width > 0 {
		childConstraints.MinWidth = constrained.Width
		childConstraints.MaxWidth = constrained.Width
	}
	if s.height > 0 {
		childConstraints.MinHeight = constrained.Height
		childConstraints.MaxHeight = constrained.Height
	}

	s.child.Layout(childConstraints, true) // true: we read child.Size()
	s.child.SetParentData(&layout.BoxParentData{})

	finalSize := s.child.Size()
	if s.width > 0 {
		finalSize.Width = constrained.Width
	}
	if s.height > 0 {
		finalSize.Height = constrained.Height
	}
	s.SetSize(constraints.Constrain(finalSize))
}

func (s *SizedBox) Paint(ctx *layout.PaintContext) {
	if s.child != nil {
		ctx.PaintChild(s.child, graphics.Offset{})
	}
}

func (s *SizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, s.Size()) {
		return false
	}
	if s.child != nil && s.child.HitTest(position, result) {
		return true
	}
	result.Add(s, position)
	return true
}
