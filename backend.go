package ggchart

// Backend is the capability interface the drawing layer renders through.
// A backend owns the drawing surface, a graphics state (transform, alpha,
// line, fill and font style) with a save stack, and the current path.
//
// Backends receive coordinates in user space; mapping to device space
// through the current transform is the backend's job.
//
// A Backend is not safe for concurrent use.
type Backend interface {
	// Save pushes a copy of the graphics state onto the stack.
	Save()

	// Restore pops the graphics state saved by the matching Save.
	// Restoring an empty stack is a no-op.
	Restore()

	// Transform concatenates m onto the current transformation, so that
	// m is applied to coordinates before the existing transform.
	Transform(m Matrix)

	// ScaleAlpha multiplies the global alpha applied to every paint.
	ScaleAlpha(f float64)

	// NewPath discards the current path.
	NewPath()

	// MoveTo starts a new subpath at p.
	MoveTo(p Point)

	// LineTo adds a line from the current point to p.
	LineTo(p Point)

	// Arc adds a circular arc in the direction of increasing angle.
	// If there is a current point, a line joins it to the arc start.
	Arc(center Point, radius, start, end float64)

	// ArcNeg adds a circular arc in the direction of decreasing angle.
	ArcNeg(center Point, radius, start, end float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// Stroke strokes the current path with the current line style.
	// The current path is consumed.
	Stroke()

	// Fill fills the current path with the current fill style.
	// The current path is consumed.
	Fill()

	// SetLineStyle replaces the current line style.
	SetLineStyle(ls LineStyle)

	// SetFillStyle replaces the current fill style.
	SetFillStyle(fs FillStyle)

	// SetFontStyle replaces the current font style.
	SetFontStyle(fs FontStyle)

	// MeasureText reports the metrics of s in the current font.
	MeasureText(s string) TextSize

	// DrawText draws s with its baseline origin at p in the current font.
	DrawText(p Point, s string)
}

// AlignFunc snaps a point to the output's pixel grid.
type AlignFunc func(Point) Point

// emitPath issues the elements of p as backend path operations.
// Exhaustive over the closed set of path elements.
func emitPath(b Backend, p *Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			b.MoveTo(e.Point)
		case LineTo:
			b.LineTo(e.Point)
		case Arc:
			b.Arc(e.Center, e.Radius, e.Start, e.End)
		case ArcNeg:
			b.ArcNeg(e.Center, e.Radius, e.Start, e.End)
		case Close:
			b.ClosePath()
		}
	}
}
