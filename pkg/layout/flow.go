package layout

import (
	"math"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// flowWidthLimit substitutes for unbounded or non-finite available widths.
// Large enough that no realistic row ever closes, small enough that offset
// arithmetic keeps full float64 precision.
const flowWidthLimit = 1e9

// Measurable is an item the flow engine can measure and place.
type Measurable interface {
	// SizeThatFits returns the item's preferred size under the given
	// constraints.
	SizeThatFits(constraints Constraints) graphics.Size

	// SpacingTo returns the preferred gap between this item and the
	// preceding one along the given axis.
	SpacingTo(prev Measurable, axis Axis) float64
}

// FlowConfig configures row partitioning and placement.
type FlowConfig struct {
	// Alignment positions rows horizontally inside the final bounds and
	// items vertically inside their row, as fractions in [0, 1].
	Alignment Alignment

	// Spacing, when set, replaces per-pair spacing preferences on both axes.
	Spacing *float64

	// RowSpacing is the gap between rows when Spacing is nil.
	RowSpacing float64
}

// rowSpacing returns the vertical gap between consecutive rows.
func (c FlowConfig) rowSpacing() float64 {
	if c.Spacing != nil {
		return *c.Spacing
	}
	return c.RowSpacing
}

// FlowItem records one placed item within a row.
type FlowItem struct {
	// Index is the item's position in the original sequence.
	Index int

	// Offset is the horizontal position relative to the row origin,
	// accounting for all accumulated widths and gaps before the item.
	Offset float64

	// Size is the item's measured intrinsic size.
	Size graphics.Size
}

// FlowRow is a contiguous run of items on one horizontal line.
type FlowRow struct {
	Items []FlowItem

	// Frame is the row's bounding box: x = 0, y = cumulative row Y,
	// width = items plus consumed spacing, height = tallest item.
	Frame graphics.Rect
}

// FlowLayout is the result of one partitioning pass. It is transient:
// recomputed on every pass and discarded once positions are read out.
type FlowLayout struct {
	Rows []FlowRow
}

// ComputeFlowLayout greedily partitions items into rows no wider than
// availableWidth. Each item is measured unconstrained; an item that no
// longer fits the current row starts the next one. The first item is
// placed unconditionally, so a row is never empty and a single item wider
// than availableWidth still occupies its own row.
//
// The computation is pure: identical inputs produce identical layouts.
func ComputeFlowLayout(availableWidth float64, items []Measurable, cfg FlowConfig) FlowLayout {
	if math.IsNaN(availableWidth) || math.IsInf(availableWidth, 0) || availableWidth > flowWidthLimit {
		availableWidth = flowWidthLimit
	}

	layout := FlowLayout{}
	if len(items) == 0 {
		return layout
	}

	unconstrained := UnboundedConstraints()
	rowSpacing := cfg.rowSpacing()

	remaining := availableWidth
	rowY := 0.0
	rowHeight := 0.0
	var current []FlowItem

	closeRow := func() {
		if len(current) == 0 {
			return
		}
		layout.Rows = append(layout.Rows, FlowRow{
			Items: current,
			Frame: graphics.RectLTWH(0, rowY, availableWidth-remaining, rowHeight),
		})
		rowY += rowHeight + rowSpacing
		rowHeight = 0
		remaining = availableWidth
		current = nil
	}

	for i, item := range items {
		size := item.SizeThatFits(unconstrained)

		gap := 0.0
		if len(current) > 0 {
			if cfg.Spacing != nil {
				gap = *cfg.Spacing
			} else {
				gap = item.SpacingTo(items[i-1], AxisHorizontal)
			}
		}
		potential := size.Width + gap

		// The first item overall is never re-routed; subsequent items
		// that would overflow close the row and start the next one,
		// where the gap recomputes to zero.
		if i != 0 && potential > remaining {
			closeRow()
			gap = 0
			potential = size.Width
		}

		current = append(current, FlowItem{
			Index:  i,
			Offset: availableWidth - remaining + gap,
			Size:   size,
		})
		remaining -= potential
		rowHeight = math.Max(rowHeight, size.Height)
	}
	closeRow()

	return layout
}

// OverallSize reports the bounding size for sizing negotiation: width is
// the widest row capped to availableWidth (availableWidth itself when the
// layout has no rows), height is the sum of row heights plus inter-row
// spacing.
func (l FlowLayout) OverallSize(availableWidth float64, cfg FlowConfig) graphics.Size {
	if len(l.Rows) == 0 {
		return graphics.Size{Width: availableWidth, Height: 0}
	}
	maxRowWidth := 0.0
	height := 0.0
	for _, row := range l.Rows {
		maxRowWidth = math.Max(maxRowWidth, row.Frame.Width())
		height += row.Frame.Height()
	}
	height += float64(len(l.Rows)-1) * cfg.rowSpacing()
	return graphics.Size{
		Width:  math.Min(availableWidth, maxRowWidth),
		Height: height,
	}
}

// PlaceItems computes the absolute top-left position of every item inside
// bounds and hands each one to place. Rows shift horizontally by the
// alignment fraction of their slack; items shift vertically within their
// row the same way. The layout itself is never mutated.
func (l FlowLayout) PlaceItems(bounds graphics.Rect, cfg FlowConfig, place func(index int, origin graphics.Offset)) {
	if place == nil {
		return
	}
	for _, row := range l.Rows {
		rowOffset := (bounds.Width() - row.Frame.Width()) * cfg.Alignment.X
		for _, item := range row.Items {
			x := rowOffset + row.Frame.Left + item.Offset + bounds.Left
			y := row.Frame.Top + (row.Frame.Height()-item.Size.Height)*cfg.Alignment.Y + bounds.Top
			place(item.Index, graphics.Offset{X: x, Y: y})
		}
	}
}
