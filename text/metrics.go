package text

// Metrics holds font metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// Height is the recommended distance between consecutive baselines.
	Height float64

	XHeight   float64
	CapHeight float64
}

// LineGap returns the extra space the font asks for between lines.
func (m Metrics) LineGap() float64 {
	return m.Height - m.Ascent - m.Descent
}

// Extents describes the space a shaped string occupies.
type Extents struct {
	// Width is the sum of the glyph advances.
	Width float64
	// InkTop is the highest inked point relative to the baseline
	// (negative above it). Zero when nothing is inked.
	InkTop float64
	// InkBottom is the lowest inked point relative to the baseline.
	InkBottom float64
}
