package ggchart

import "math"

// PointShape is the outline of a point marker.
// The set of shapes is closed: circle, polygon, plus, cross and star.
type PointShape interface {
	isPointShape()
}

// PointShapeCircle draws a circle.
type PointShapeCircle struct{}

func (PointShapeCircle) isPointShape() {}

// PointShapePolygon draws a regular polygon. An upright polygon has a
// vertex straight below its center (for y growing downwards); otherwise
// the polygon is turned by half a step so that an edge is at the bottom.
type PointShapePolygon struct {
	Sides   int
	Upright bool
}

func (PointShapePolygon) isPointShape() {}

// PointShapePlus draws a "+".
type PointShapePlus struct{}

func (PointShapePlus) isPointShape() {}

// PointShapeCross draws an "x".
type PointShapeCross struct{}

func (PointShapeCross) isPointShape() {}

// PointShapeStar draws a "+" and an "x" on top of each other.
type PointShapeStar struct{}

func (PointShapeStar) isPointShape() {}

// PointStyle describes how point markers are drawn.
type PointStyle struct {
	// Color fills the inside of the marker.
	Color RGBA
	// BorderColor strokes the outline of the marker.
	BorderColor RGBA
	// BorderWidth is the stroke width of the outline.
	BorderWidth float64
	// Radius is the distance from the center to the outline.
	Radius float64
	Shape  PointShape
}

// FilledCircles returns filled circle markers without a border.
func FilledCircles(radius float64, c RGBA) PointStyle {
	return PointStyle{Color: c, BorderColor: Transparent, BorderWidth: 0, Radius: radius, Shape: PointShapeCircle{}}
}

// HollowCircles returns circle outlines of border width w.
func HollowCircles(radius, w float64, c RGBA) PointStyle {
	return PointStyle{Color: Transparent, BorderColor: c, BorderWidth: w, Radius: radius, Shape: PointShapeCircle{}}
}

// FilledPolygon returns filled polygon markers without a border.
func FilledPolygon(radius float64, sides int, upright bool, c RGBA) PointStyle {
	return PointStyle{
		Color:       c,
		BorderColor: Transparent,
		BorderWidth: 0,
		Radius:      radius,
		Shape:       PointShapePolygon{Sides: sides, Upright: upright},
	}
}

// HollowPolygon returns polygon outlines of border width w.
func HollowPolygon(radius, w float64, sides int, upright bool, c RGBA) PointStyle {
	return PointStyle{
		Color:       Transparent,
		BorderColor: c,
		BorderWidth: w,
		Radius:      radius,
		Shape:       PointShapePolygon{Sides: sides, Upright: upright},
	}
}

// Plusses returns "+" markers.
func Plusses(radius, w float64, c RGBA) PointStyle {
	return PointStyle{Color: Transparent, BorderColor: c, BorderWidth: w, Radius: radius, Shape: PointShapePlus{}}
}

// Exes returns "x" markers.
func Exes(radius, w float64, c RGBA) PointStyle {
	return PointStyle{Color: Transparent, BorderColor: c, BorderWidth: w, Radius: radius, Shape: PointShapeCross{}}
}

// Stars returns star markers, a "+" over an "x".
func Stars(radius, w float64, c RGBA) PointStyle {
	return PointStyle{Color: Transparent, BorderColor: c, BorderWidth: w, Radius: radius, Shape: PointShapeStar{}}
}

// DrawPoint draws a marker of style ps centered on the stroke-aligned p.
// Circles and polygons are filled with ps.Color and then outlined; the
// line shapes are only stroked. Borders use butt caps and miter joins.
func (e *Env) DrawPoint(ps PointStyle, p Point) {
	ls := SolidLine(ps.BorderWidth, ps.BorderColor)

	_ = e.WithLineStyle(ls, func() error {
		return e.WithFillStyle(SolidFillStyle(ps.Color), func() error {
			c := e.AlignStrokePoint(p)
			path, filled := markerPath(ps.Shape, c, ps.Radius)
			if filled {
				e.fillRaw(path)
			}
			e.strokeRaw(path)
			return nil
		})
	})
}

// markerPath returns the outline of shape centered on c and whether the
// outline encloses an area.
func markerPath(shape PointShape, c Point, r float64) (*Path, bool) {
	x, y := c.X, c.Y
	switch s := shape.(type) {
	case PointShapeCircle:
		return NewPath().Arc(c, r, 0, 2*math.Pi), true
	case PointShapePolygon:
		return polygonPath(c, r, s.Sides, s.Upright), true
	case PointShapePlus:
		return plusPath(x, y, r), false
	case PointShapeCross:
		return crossPath(x, y, r/math.Sqrt2), false
	case PointShapeStar:
		return plusPath(x, y, r).Append(crossPath(x, y, r/math.Sqrt2)), false
	default:
		return NewPath(), false
	}
}

func polygonPath(c Point, r float64, sides int, upright bool) *Path {
	p := NewPath()
	if sides <= 0 {
		return p
	}
	var first Point
	for k := 0; k < sides; k++ {
		step := float64(k)
		if !upright {
			step += 0.5
		}
		a := step * 2 * math.Pi / float64(sides)
		v := c.Add(Pt(0, 1).Rotate(-a).Mul(r))
		if k == 0 {
			first = v
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.LineTo(first)
}

func plusPath(x, y, r float64) *Path {
	return NewPath().
		MoveTo(Pt(x+r, y)).LineTo(Pt(x-r, y)).
		MoveTo(Pt(x, y-r)).LineTo(Pt(x, y+r))
}

func crossPath(x, y, d float64) *Path {
	return NewPath().
		MoveTo(Pt(x+d, y+d)).LineTo(Pt(x-d, y-d)).
		MoveTo(Pt(x+d, y-d)).LineTo(Pt(x-d, y+d))
}
