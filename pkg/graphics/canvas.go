package graphics

// Canvas records or renders drawing commands.
//
// Coordinates follow the usual raster convention: the origin is the top-left
// corner and y grows downward.
type Canvas interface {
	// Save pushes the current transform and antialias state.
	Save()

	// Restore pops the most recent transform and antialias state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// SetAntialias hints whether subsequent draws should be smoothed.
	// Purely cosmetic; it never changes geometry.
	SetAntialias(enabled bool)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawOval draws an axis-aligned ellipse with the provided paint.
	DrawOval(center Offset, radiusX, radiusY float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a measured text layout with its top-left corner at
	// the given position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
