package layout

import (
	"math"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// Unbounded marks a constraint axis with no upper limit.
const Unbounded = math.MaxFloat64

// Constraints describe the range of sizes a render box may choose.
// A max of Unbounded means the axis has no upper limit.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// UnboundedConstraints returns constraints with no limit on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{
		MaxWidth:  Unbounded,
		MaxHeight: Unbounded,
	}
}

// IsTight reports whether the constraints allow exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width axis has an upper limit.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight reports whether the height axis has an upper limit.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// ConstrainWidth clamps a width to the allowed range.
func (c Constraints) ConstrainWidth(width float64) float64 {
	return math.Max(c.MinWidth, math.Min(c.MaxWidth, width))
}

// ConstrainHeight clamps a height to the allowed range.
func (c Constraints) ConstrainHeight(height float64) float64 {
	return math.Max(c.MinHeight, math.Min(c.MaxHeight, height))
}

// Constrain clamps a size to the allowed range on both axes.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  c.ConstrainWidth(size.Width),
		Height: c.ConstrainHeight(size.Height),
	}
}

// Loosen returns a copy with the minimums removed.
func (c Constraints) Loosen() Constraints {
	return Constraints{
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
}

// Deflate returns constraints reduced by the given insets, for sizing a
// child inside padding. Unbounded axes stay unbounded.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	horizontal := insets.Horizontal()
	vertical := insets.Vertical()
	deflated := Constraints{
		MinWidth:  math.Max(0, c.MinWidth-horizontal),
		MinHeight: math.Max(0, c.MinHeight-vertical),
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	if c.HasBoundedWidth() {
		deflated.MaxWidth = math.Max(deflated.MinWidth, c.MaxWidth-horizontal)
	}
	if c.HasBoundedHeight() {
		deflated.MaxHeight = math.Max(deflated.MinHeight, c.MaxHeight-vertical)
	}
	return deflated
}
