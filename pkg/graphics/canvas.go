package graphics

// TextStyle describes how a run of label text is drawn.
type TextStyle struct {
	Color Color
	Size  float64
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform.
	Save()

	// Restore pops the most recent transform.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws text with its top-left corner at origin.
	DrawText(text string, origin Offset, style TextStyle)
}
