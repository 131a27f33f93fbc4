// Package canvas defines the page-drawing capability the layout engine
// renders through. The engine never assumes more than this contract, so
// the PDF backend and the call-recording test double are
// interchangeable behind it.
package canvas

// TextOptions configures one WriteText call.
type TextOptions struct {
	Font string
	Size float64
	// Advance is the exact vertical distance the cursor moves after the
	// text is written. Zero leaves the cursor in place, which lets the
	// caller compose one line from several styled pieces.
	Advance float64
}

// Canvas exposes page and position state plus the drawing operations.
// Coordinates are points; the vertical cursor starts at the top margin
// of each page and decreases toward the bottom margin.
type Canvas interface {
	// PageIndex is the 1-based index of the current page.
	PageIndex() int
	// Cursor returns the current drawing position.
	Cursor() (x, y float64)
	// MoveTo repositions the cursor.
	MoveTo(x, y float64)
	// WriteText draws text at the cursor, advances the cursor downward
	// by opts.Advance, and returns the updated vertical position.
	WriteText(text string, opts TextOptions) float64
	// DrawLine strokes a rule line between two points.
	DrawLine(x1, y1, x2, y2 float64)
	// NewPage increments the page index and resets the cursor to the
	// top margin of the new page.
	NewPage()
	// RemainingSpace is the vertical distance from the cursor to the
	// bottom margin.
	RemainingSpace() float64
	// StampPageNumber draws the page-number label in the margin area.
	StampPageNumber(label string)
}

// Measurer reports the rendered width of a single line of text.
type Measurer interface {
	MeasureText(text string, fontSize float64, font string) float64
}
