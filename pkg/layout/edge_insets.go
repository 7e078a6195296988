package layout

import "github.com/jcholuj/DesignSystem/pkg/graphics"

// EdgeInsets describes padding or margins around a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with shared horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with explicit per-side values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// TopLeft returns the inset origin as an offset.
func (e EdgeInsets) TopLeft() graphics.Offset {
	return graphics.Offset{X: e.Left, Y: e.Top}
}

// InflateSize grows a size by the insets on both axes.
func (e EdgeInsets) InflateSize(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  size.Width + e.Horizontal(),
		Height: size.Height + e.Vertical(),
	}
}

// IsZero reports whether all sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}
