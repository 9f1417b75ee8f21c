package ggchart

import (
	"math"
	"strings"
)

// HTextAnchor selects which horizontal edge of the text sits on the anchor.
type HTextAnchor uint8

const (
	HTextAnchorLeft HTextAnchor = iota
	HTextAnchorCentre
	HTextAnchorRight
)

// String returns the name of the anchor.
func (a HTextAnchor) String() string {
	switch a {
	case HTextAnchorLeft:
		return "Left"
	case HTextAnchorCentre:
		return "Centre"
	case HTextAnchorRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// VTextAnchor selects which vertical reference of the text sits on the
// anchor.
type VTextAnchor uint8

const (
	VTextAnchorTop VTextAnchor = iota
	VTextAnchorCentre
	VTextAnchorBaseLine
	VTextAnchorBottom
)

// String returns the name of the anchor.
func (a VTextAnchor) String() string {
	switch a {
	case VTextAnchorTop:
		return "Top"
	case VTextAnchorCentre:
		return "Centre"
	case VTextAnchorBaseLine:
		return "BaseLine"
	case VTextAnchorBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// TextSize holds backend-reported metrics of a string.
// Y grows downwards, so YBearing is negative for ink above the baseline.
type TextSize struct {
	// Width is the advance width of the string.
	Width float64
	// Ascent is the font ascent above the baseline (positive).
	Ascent float64
	// Descent is the font descent below the baseline (positive).
	Descent float64
	// YBearing is the offset from the baseline to the top of the ink.
	YBearing float64
	// Height is the font's recommended line height.
	Height float64
}

// TextSize reports the metrics of s in the backend's current font.
func (e *Env) TextSize(s string) TextSize {
	return e.backend.MeasureText(s)
}

// TextDimension returns the width of s and the height of its font box
// (ascent plus descent).
func (e *Env) TextDimension(s string) (w, h float64) {
	ts := e.backend.MeasureText(s)
	return ts.Width, ts.Ascent + ts.Descent
}

// TextDrawRect returns the rectangle covered by s when drawn unrotated by
// DrawText with the same anchors at p.
func (e *Env) TextDrawRect(h HTextAnchor, v VTextAnchor, p Point, s string) Rect {
	ts := e.backend.MeasureText(s)
	x := p.X + adjustTextX(h, ts)
	y := p.Y + adjustTextY(v, ts) + ts.Descent
	return Rect{
		Min: Point{X: x, Y: y - ts.Height},
		Max: Point{X: x + ts.Width, Y: y},
	}
}

// DrawText draws s anchored at p without rotation.
func (e *Env) DrawText(h HTextAnchor, v VTextAnchor, p Point, s string) {
	e.DrawTextR(h, v, 0, p, s)
}

// DrawTextR draws a single line of text anchored at p and rotated by
// angle degrees about p.
func (e *Env) DrawTextR(h HTextAnchor, v VTextAnchor, angle float64, p Point, s string) {
	_ = e.withTextFrame(p, angle, func() error {
		ts := e.backend.MeasureText(s)
		e.backend.DrawText(adjustText(h, v, ts), s)
		return nil
	})
}

// DrawTextsR draws text that may span several lines, anchored at p and
// rotated by angle degrees about p. Lines are separated by "\n"; a
// trailing "\r" on a line is dropped and a final newline does not start
// an empty line.
//
// The lines share one frame. Line height is the largest ascent among the
// lines and consecutive baselines are one and a half line heights apart.
func (e *Env) DrawTextsR(h HTextAnchor, v VTextAnchor, angle float64, p Point, s string) {
	lines := splitLines(s)
	switch len(lines) {
	case 0:
		return
	case 1:
		e.DrawTextR(h, v, angle, p, lines[0])
		return
	}

	Logger().Debug("ggchart: multi-line text",
		"lines", len(lines), "angle", angle, "h", h.String(), "v", v.String())

	_ = e.withTextFrame(p, angle, func() error {
		sizes := make([]TextSize, len(lines))
		for i, line := range lines {
			sizes[i] = e.backend.MeasureText(line)
		}
		for i, pt := range layoutLines(h, v, sizes) {
			e.backend.DrawText(pt, lines[i])
		}
		return nil
	})
}

// withTextFrame runs body translated to p and rotated by angle degrees.
func (e *Env) withTextFrame(p Point, angle float64, body func() error) error {
	theta := angle * math.Pi / 180
	return e.WithTransform(Translate(p.X, p.Y).Multiply(Rotate(theta)), 1, body)
}

// layoutLines returns the draw origin of each line of a block of at
// least two lines, relative to the anchor.
func layoutLines(h HTextAnchor, v VTextAnchor, sizes []TextSize) []Point {
	n := float64(len(sizes))

	lineHeight := 0.0
	for i, ts := range sizes {
		if i == 0 || ts.Ascent > lineHeight {
			lineHeight = ts.Ascent
		}
	}
	gap := lineHeight / 2
	totalHeight := n*lineHeight + (n-1)*gap

	first := sizes[0]
	var y float64
	switch v {
	case VTextAnchorTop:
		y = first.Ascent
	case VTextAnchorBaseLine:
		y = 0
	case VTextAnchorCentre:
		y = totalHeight/2 + first.Ascent
	case VTextAnchorBottom:
		y = totalHeight + first.Ascent
	}

	pts := make([]Point, len(sizes))
	for i, ts := range sizes {
		pts[i] = Point{X: adjustTextX(h, ts), Y: y}
		y -= gap + lineHeight
	}
	return pts
}

// adjustText returns the offset that places text of size ts on the
// anchor.
func adjustText(h HTextAnchor, v VTextAnchor, ts TextSize) Point {
	return Point{X: adjustTextX(h, ts), Y: adjustTextY(v, ts)}
}

func adjustTextX(h HTextAnchor, ts TextSize) float64 {
	switch h {
	case HTextAnchorCentre:
		return -ts.Width / 2
	case HTextAnchorRight:
		return -ts.Width
	default:
		return 0
	}
}

func adjustTextY(v VTextAnchor, ts TextSize) float64 {
	switch v {
	case VTextAnchorTop:
		return ts.Ascent
	case VTextAnchorCentre:
		return -ts.YBearing / 2
	case VTextAnchorBottom:
		return -ts.Descent
	default:
		return 0
	}
}

// splitLines breaks s into lines.
func splitLines(s string) []string {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
	}
	return lines
}
