package components

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// GroupBox frames a child in an outlined, rounded box with a title at the
// top. Styling comes from the theme's GroupBoxThemeData.
type GroupBox struct {
	layout.RenderBoxBase
	title string
	child layout.RenderBox

	boxTheme   theme.GroupBoxThemeData
	fontFamily string

	titleLayout *graphics.TextLayout
}

// NewGroupBox creates a titled box around child. child may be nil.
func NewGroupBox(title string, child layout.RenderBox, th theme.Theme) *GroupBox {
	g := &GroupBox{
		title:      title,
		boxTheme:   th.GroupBoxThemeOf(),
		fontFamily: th.TextTheme.BodyMedium.FontFamily,
	}
	g.SetSelf(g)
	g.SetChild(child)
	return g
}

// Title returns the box title.
func (g *GroupBox) Title() string {
	return g.title
}

// SetTitle replaces the box title.
func (g *GroupBox) SetTitle(title string) {
	if g.title == title {
		return
	}
	g.title = title
	g.MarkNeedsLayout()
	g.MarkNeedsPaint()
}

// SetChild replaces the child.
func (g *GroupBox) SetChild(child layout.RenderBox) {
	layout.SetParentOnChild(g.child, nil)
	g.child = child
	layout.SetParentOnChild(g.child, g)
	g.MarkNeedsLayout()
}

func (g *GroupBox) VisitChildren(visitor func(layout.RenderObject)) {
	if g.child != nil {
		visitor(g.child)
	}
}

func (g *GroupBox) PerformLayout() {
	constraints := g.Constraints()

	if g.title != "" {
		manager, _ := graphics.DefaultFontManagerErr()
		if manager != nil {
			g.titleLayout, _ = graphics.LayoutText(g.title, graphics.TextStyle{
				Color:      g.boxTheme.TitleColor,
				FontSize:   g.boxTheme.TitleFontSize,
				FontFamily: g.fontFamily,
			}, manager)
		} else {
			// Error already reported by DefaultFontManagerErr.
			g.titleLayout = nil
		}
	} else {
		g.titleLayout = nil
	}

	// The child area starts below the title strip.
	insets := g.boxTheme.Padding
	if g.titleLayout != nil {
		insets.Top += g.titleLayout.Size.Height + g.boxTheme.TitleSpacing
	}

	var childSize graphics.Size
	if g.child != nil {
		g.child.Layout(constraints.Deflate(insets), true)
		childSize = g.child.Size()
		g.child.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{X: insets.Left, Y: insets.Top},
		})
	}

	contentWidth := childSize.Width
	if g.titleLayout != nil {
		contentWidth = max(contentWidth, g.titleLayout.Size.Width)
	}
	size := graphics.Size{
		Width:  contentWidth + insets.Horizontal(),
		Height: childSize.Height + insets.Vertical(),
	}
	g.SetSize(constraints.Constrain(size))
}

func (g *GroupBox) Paint(ctx *layout.PaintContext) {
	size := g.Size()
	rect := graphics.RectLTWH(0, 0, size.Width, size.Height)
	if g.boxTheme.BackgroundColor != graphics.ColorTransparent {
		drawShape(ctx, rect, g.boxTheme.BorderRadius, graphics.FillPaint(g.boxTheme.BackgroundColor))
	}
	if g.boxTheme.BorderWidth > 0 {
		strokeShapeInside(ctx, rect, g.boxTheme.BorderRadius, g.boxTheme.BorderColor, g.boxTheme.BorderWidth)
	}
	if g.titleLayout != nil {
		ctx.Canvas.DrawText(g.titleLayout, g.boxTheme.Padding.TopLeft())
	}
	if g.child != nil {
		ctx.PaintChild(g.child, layout.ChildOffset(g.child))
	}
}

func (g *GroupBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, g.Size()) {
		return false
	}
	if g.child != nil {
		offset := layout.ChildOffset(g.child)
		local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		if g.child.HitTest(local, result) {
			return true
		}
	}
	result.Add(g, position)
	return true
}
