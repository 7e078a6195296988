package components

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
)

// ContainerConfig describes a decorated box.
//
// Zero values mean zero: a zero Color is transparent, a zero BorderWidth
// draws no border, zero Width/Height defer to the child's size.
type ContainerConfig struct {
	// Color fills the background.
	Color graphics.Color
	// BorderColor strokes the outline when BorderWidth > 0.
	BorderColor graphics.Color
	// BorderWidth is the outline stroke width.
	BorderWidth float64
	// BorderRadius rounds the corners of fill and outline.
	BorderRadius float64
	// Padding is inset around the child.
	Padding layout.EdgeInsets
	// Width forces a horizontal size when > 0.
	Width float64
	// Height forces a vertical size when > 0.
	Height float64
	// Alignment positions the child inside the padded content area.
	Alignment layout.Alignment
}

// Container paints a background and border behind an optional child.
//
// Decorations apply in order: fill, border stroke, child. For a bare
// spacing wrapper use [Padding]; for fixed dimensions alone use [SizedBox].
type Container struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	config ContainerConfig
}

// NewContainer creates a decorated box around child. child may be nil.
func NewContainer(config ContainerConfig, child layout.RenderBox) *Container {
	c := &Container{config: config}
	c.SetSelf(c)
	c.SetChild(child)
	return c
}

// SetChild replaces the child.
func (c *Container) SetChild(child layout.RenderBox) {
	layout.SetParentOnChild(c.child, nil)
	c.child = child
	layout.SetParentOnChild(c.child, c)
}

// SetConfig replaces the decoration.
func (c *Container) SetConfig(config ContainerConfig) {
	c.config = config
	c.MarkNeedsLayout()
	c.MarkNeedsPaint()
}

func (c *Container) VisitChildren(visitor func(layout.RenderObject)) {
	if c.child != nil {
		visitor(c.child)
	}
}

func (c *Container) PerformLayout() {
	constraints := c.Constraints()
	padding := c.config.Padding
	childConstraints := constraints.Deflate(padding)
	hasWidth := c.config.Width > 0
	hasHeight := c.config.Height > 0
	if hasWidth {
		constrained := constraints.Constrain(graphics.Size{Width: c.config.Width}).Width
		available := max(constrained-padding.Horizontal(), 0)
		childConstraints.MinWidth = available
		childConstraints.MaxWidth = available
	}
	if hasHeight {
		constrained := constraints.Constrain(graphics.Size{Height: c.config.Height}).Height
		available := max(constrained-padding.Vertical(), 0)
		childConstraints.MinHeight = available
		childConstraints.MaxHeight = available
	}

	var childSize graphics.Size
	if c.child != nil {
		c.child.Layout(childConstraints, true) // true: we read child.Size()
		childSize = c.child.Size()
	}

	size := graphics.Size{
		Width:  childSize.Width + padding.Horizontal(),
		Height: childSize.Height + padding.Vertical(),
	}
	if hasWidth {
		size.Width = constraints.Constrain(graphics.Size{Width: c.config.Width}).Width
	}
	if hasHeight {
		size.Height = constraints.Constrain(graphics.Size{Height: c.config.Height}).Height
	}
	size = constraints.Constrain(size)
	c.SetSize(size)

	if c.child != nil {
		contentRect := graphics.RectLTWH(
			padding.Left,
			padding.Top,
			size.Width-padding.Horizontal(),
			size.Height-padding.Vertical(),
		)
		offset := c.config.Alignment.WithinRect(contentRect, c.child.Size())
		c.child.SetParentData(&layout.BoxParentData{Offset: offset})
	}
}

func (c *Container) Paint(ctx *layout.PaintContext) {
	size := c.Size()
	if size.Width > 0 && size.Height > 0 {
		rect := graphics.RectLTWH(0, 0, size.Width, size.Height)
		if c.config.Color != graphics.ColorTransparent {
			drawShape(ctx, rect, c.config.BorderRadius, graphics.FillPaint(c.config.Color))
		}
		if c.config.BorderWidth > 0 && c.config.BorderColor != graphics.ColorTransparent {
			strokeShapeInside(ctx, rect, c.config.BorderRadius, c.config.BorderColor, c.config.BorderWidth)
		}
	}
	if c.child != nil {
		ctx.PaintChild(c.child, layout.ChildOffset(c.child))
	}
}

func (c *Container) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, c.Size()) {
		return false
	}
	offset := layout.ChildOffset(c.child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	if c.child != nil && c.child.HitTest(local, result) {
		return true
	}
	result.Add(c, position)
	return true
}

// drawShape fills or strokes rect, rounding corners when radius > 0.
func drawShape(ctx *layout.PaintContext, rect graphics.Rect, radius float64, paint graphics.Paint) {
	if radius > 0 {
		rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(radius))
		ctx.Canvas.DrawRRect(rrect, paint)
		return
	}
	ctx.Canvas.DrawRect(rect, paint)
}

// strokeShapeInside strokes a border centered on the half-stroke inset so
// the stroke stays within rect.
func strokeShapeInside(ctx *layout.PaintContext, rect graphics.Rect, radius float64, color graphics.Color, width float64) {
	halfStroke := width / 2
	inset := graphics.RectLTWH(
		rect.Left+halfStroke,
		rect.Top+halfStroke,
		rect.Width()-width,
		rect.Height()-width,
	)
	drawShape(ctx, inset, radius, graphics.StrokePaint(color, width))
}
