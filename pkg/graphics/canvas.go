package graphics

// Canvas records or renders drawing commands.
//
// Components draw onto a Canvas without knowing whether the commands are
// being rasterized or captured into a DisplayList for later replay.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// Clear fills the entire surface with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the given paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the given paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawLine draws a line segment between two points.
	DrawLine(start, end Offset, paint Paint)

	// DrawCircle draws a circle around the given center.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws laid-out text with its origin at the given position.
	// The position is the top-left corner of the first line's box.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the dimensions of the drawing surface.
	Size() Size
}
