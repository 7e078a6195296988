package components

import (
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/layout"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// SpacingPreference is implemented by children that want a specific gap to
// their preceding sibling inside a FlexibleStack. Children without it get
// the stack's default spacing. The axis is horizontal for gaps within a
// row and vertical for gaps between rows.
type SpacingPreference interface {
	PreferredSpacing(prev layout.RenderBox, axis layout.Axis) float64
}

// FlexibleStackConfig configures a FlexibleStack.
type FlexibleStackConfig struct {
	// Alignment positions rows horizontally within the stack and items
	// vertically within their row, as fractions in [0, 1].
	Alignment layout.Alignment

	// Spacing, when set, fixes the gap between items and between rows,
	// overriding child preferences and theme defaults.
	Spacing *float64

	// RowSpacing, when set, overrides the theme's default gap between
	// rows. Ignored when Spacing is set.
	RowSpacing *float64
}

// FlexibleStack lays out children in horizontal rows, wrapping to the next
// row when the available width runs out. Children are measured at their
// intrinsic size; a child that no longer fits the current row starts a new
// one. A single child wider than the available width still occupies its
// own row.
//
// Gaps between items come from each child's SpacingPreference when
// implemented, otherwise from the theme's FlexibleStackThemeData. A fixed
// Spacing in the config replaces both.
//
// With no children the stack sizes to the constraint minimum.
type FlexibleStack struct {
	layout.RenderBoxBase
	children    []layout.RenderBox
	alignment   layout.Alignment
	spacing     *float64
	itemSpacing float64
	rowSpacing  float64
}

// NewFlexibleStack creates a flow container with the given children.
// Spacing defaults resolve from the theme at construction.
func NewFlexibleStack(config FlexibleStackConfig, th theme.Theme, children ...layout.RenderBox) *FlexibleStack {
	stackTheme := th.FlexibleStackThemeOf()
	s := &FlexibleStack{
		alignment:   config.Alignment,
		spacing:     config.Spacing,
		itemSpacing: stackTheme.ItemSpacing,
		rowSpacing:  stackTheme.RowSpacing,
	}
	if config.RowSpacing != nil {
		s.rowSpacing = *config.RowSpacing
	}
	s.SetSelf(s)
	s.SetChildren(children)
	return s
}

// SetChildren replaces the stack's children and schedules a relayout.
func (s *FlexibleStack) SetChildren(children []layout.RenderBox) {
	for _, child := range s.children {
		layout.SetParentOnChild(child, nil)
	}
	s.children = s.children[:0]
	for _, child := range children {
		if child == nil {
			continue
		}
		s.children = append(s.children, child)
		layout.SetParentOnChild(child, s)
	}
	s.MarkNeedsLayout()
}

func (s *FlexibleStack) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range s.children {
		visitor(child)
	}
}

// flowChild adapts a render box to the flow engine's Measurable. Measuring
// lays the box out, so by the time positions are read back every child
// already has its final size.
type flowChild struct {
	box     layout.RenderBox
	itemGap float64
	rowGap  float64
}

func (f flowChild) SizeThatFits(constraints layout.Constraints) graphics.Size {
	f.box.Layout(constraints, true)
	return f.box.Size()
}

func (f flowChild) SpacingTo(prev layout.Measurable, axis layout.Axis) float64 {
	if pref, ok := f.box.(SpacingPreference); ok {
		var prevBox layout.RenderBox
		if p, ok := prev.(flowChild); ok {
			prevBox = p.box
		}
		return pref.PreferredSpacing(prevBox, axis)
	}
	if axis == layout.AxisVertical {
		return f.rowGap
	}
	return f.itemGap
}

func (s *FlexibleStack) PerformLayout() {
	constraints := s.Constraints()
	if len(s.children) == 0 {
		s.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}

	items := make([]layout.Measurable, len(s.children))
	for i, child := range s.children {
		items[i] = flowChild{box: child, itemGap: s.itemSpacing, rowGap: s.rowSpacing}
	}
	cfg := layout.FlowConfig{
		Alignment:  s.alignment,
		Spacing:    s.spacing,
		RowSpacing: s.rowSpacing,
	}

	flow := layout.ComputeFlowLayout(constraints.MaxWidth, items, cfg)
	size := constraints.Constrain(flow.OverallSize(constraints.MaxWidth, cfg))
	s.SetSize(size)

	bounds := graphics.RectLTWH(0, 0, size.Width, size.Height)
	flow.PlaceItems(bounds, cfg, func(index int, origin graphics.Offset) {
		s.children[index].SetParentData(&layout.BoxParentData{Offset: origin})
	})
}

func (s *FlexibleStack) Paint(ctx *layout.PaintContext) {
	for _, child := range s.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

func (s *FlexibleStack) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, s.Size()) {
		return false
	}
	for i := len(s.children) - 1; i >= 0; i-- {
		child := s.children[i]
		offset := layout.ChildOffset(child)
		local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		if child.HitTest(local, result) {
			return true
		}
	}
	result.Add(s, position)
	return true
}
