package components

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
)

// Padding adds empty space around its child.
//
// The child is constrained to the remaining space after padding is applied.
// Without a child, Padding occupies the padding size alone.
//
// Use [layout.EdgeInsets] helpers to create padding values:
//
//	components.NewPadding(layout.EdgeInsetsAll(16), child)
//	components.NewPadding(layout.EdgeInsetsSymmetric(24, 12), child)
//
// For padding combined with a background, use [Container] instead.
type Padding struct {
	layout.RenderBoxBase
	child   layout.RenderBox
	padding layout.EdgeInsets
}

// NewPadding creates a padding box around child. child may be nil.
func NewPadding(padding layout.EdgeInsets, child layout.RenderBox) *Padding {
	p := &Padding{padding: padding}
	p.SetSelf(p)
	p.SetChild(child)
	return p
}

// SetChild replaces the child.
func (p *Padding) SetChild(child layout.RenderBox) {
	layout.SetParentOnChild(p.child, nil)
	p.child = child
	layout.SetParentOnChild(p.child, p)
}

// SetPadding replaces the insets.
func (p *Padding) SetPadding(padding layout.EdgeInsets) {
	if p.padding == padding {
		return
	}
	p.padding = padding
	p.MarkNeedsLayout()
}

func (p *Padding) VisitChildren(visitor func(layout.RenderObject)) {
	if p.child != nil {
		visitor(p.child)
	}
}

func (p *Padding) PerformLayout() {
	constraints := p.Constraints()
	if p.child == nil {
		p.SetSize(constraints.Constrain(graphics.Size{
			Width:  p.padding.Horizontal(),
			Height: p.padding.Vertical(),
		}))
		return
	}
	childConstraints := constraints.Deflate(p.padding)
	p.child.Layout(childConstraints, true) // true: we read child.Size()
	childSize := p.child.Size()
	size := constraints.Constrain(graphics.Size{
		Width:  childSize.Width + p.padding.Horizontal(),
		Height: childSize.Height + p.padding.Vertical(),
	})
	p.SetSize(size)
	p.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: p.padding.Left, Y: p.padding.Top},
	})
}

func (p *Padding) Paint(ctx *layout.PaintContext) {
	if p.child != nil {
		ctx.PaintChild(p.child, layout.ChildOffset(p.child))
	}
}

func (p *Padding) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, p.Size()) {
		return false
	}
	offset := layout.ChildOffset(p.child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	if p.child != nil && p.child.HitTest(local, result) {
		return true
	}
	result.Add(p, position)
	return true
}
