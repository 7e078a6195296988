package layout

import (
	"fmt"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// Axis identifies a layout direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment positions content within available space using fractional
// coordinates: 0 is the leading/top edge, 0.5 the center, 1 the
// trailing/bottom edge.
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignmentTopLeft      = Alignment{X: 0, Y: 0}
	AlignmentTopCenter    = Alignment{X: 0.5, Y: 0}
	AlignmentTopRight     = Alignment{X: 1, Y: 0}
	AlignmentCenterLeft   = Alignment{X: 0, Y: 0.5}
	AlignmentCenter       = Alignment{X: 0.5, Y: 0.5}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0.5}
	AlignmentBottomLeft   = Alignment{X: 0, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0.5, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// WithinRect returns the offset that positions content of the given size
// inside rect according to the alignment fractions.
func (a Alignment) WithinRect(rect graphics.Rect, size graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: rect.Left + (rect.Width()-size.Width)*a.X,
		Y: rect.Top + (rect.Height()-size.Height)*a.Y,
	}
}

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	return fmt.Sprintf("Alignment(%g, %g)", a.X, a.Y)
}
