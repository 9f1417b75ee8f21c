package ggchart

import "slices"

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the name of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// LineStyle defines how paths are stroked.
type LineStyle struct {
	// Width is the line width in user-space units.
	Width float64
	// Color is the stroke color.
	Color RGBA
	// Dashes holds alternating on/off lengths. Empty means solid.
	Dashes []float64
	// Cap is the shape of line endpoints.
	Cap LineCap
	// Join is the shape of line joins.
	Join LineJoin
}

// SolidLine returns a solid line style of the given width and color.
func SolidLine(width float64, c RGBA) LineStyle {
	return LineStyle{
		Width: width,
		Color: c,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
	}
}

// DashedLine returns a dashed line style. The dash slice is copied.
func DashedLine(width float64, dashes []float64, c RGBA) LineStyle {
	return LineStyle{
		Width:  width,
		Color:  c,
		Dashes: slices.Clone(dashes),
		Cap:    LineCapButt,
		Join:   LineJoinMiter,
	}
}

// DefaultLineStyle returns the style backends start with:
// a 1 unit wide solid black line with butt caps and bevel joins.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Width: 1,
		Color: Black,
		Cap:   LineCapButt,
		Join:  LineJoinBevel,
	}
}

// IsSolid reports whether the style has no dash pattern.
func (ls LineStyle) IsSolid() bool {
	return len(ls.Dashes) == 0
}

// FillStyle describes how areas are filled.
// SolidFill is the only variant.
type FillStyle interface {
	isFillStyle()
}

// SolidFill fills an area with a single color.
type SolidFill struct {
	Color RGBA
}

func (SolidFill) isFillStyle() {}

// SolidFillStyle wraps a color as a fill style.
func SolidFillStyle(c RGBA) FillStyle {
	return SolidFill{Color: c}
}

// DefaultFillStyle returns a solid white fill.
func DefaultFillStyle() FillStyle {
	return SolidFill{Color: White}
}

// FontSlant selects the slant of a font.
type FontSlant uint8

const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// FontWeight selects the weight of a font.
type FontWeight uint8

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// FontStyle describes the font used for text drawing.
type FontStyle struct {
	// Name is the font family name, e.g. "sans-serif" or "monospace".
	Name string
	// Size is the font size in user-space units.
	Size   float64
	Slant  FontSlant
	Weight FontWeight
	Color  RGBA
}

// DefaultFontStyle returns a 10 unit black sans-serif font.
func DefaultFontStyle() FontStyle {
	return FontStyle{
		Name:  "sans-serif",
		Size:  10,
		Color: Black,
	}
}
