package ggchart

import "math"

// identityAlign leaves points untouched.
func identityAlign(p Point) Point { return p }

// BitmapAlignment returns the alignment functions for pixel outputs.
// The point function moves coordinates to pixel centers (round + 0.5) so
// that a one unit wide stroke covers exactly one pixel row or column.
// The coordinate function moves coordinates to pixel edges so that
// adjacent fills meet without seams. Halves round to even.
func BitmapAlignment() (point, coord AlignFunc) {
	return gridAlign(0.5), gridAlign(0)
}

// VectorAlignment returns identity alignment functions, for outputs
// without a pixel grid.
func VectorAlignment() (point, coord AlignFunc) {
	return identityAlign, identityAlign
}

func gridAlign(offset float64) AlignFunc {
	return func(p Point) Point {
		return Point{
			X: math.RoundToEven(p.X) + offset,
			Y: math.RoundToEven(p.Y) + offset,
		}
	}
}

// AlignPath returns a copy of p with f applied to every coordinate.
// Arcs have f applied to their center only; radius and angles are kept.
func AlignPath(f AlignFunc, p *Path) *Path {
	result := &Path{elements: make([]PathElement, 0, p.Len())}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: f(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: f(e.Point)})
		case Arc:
			e.Center = f(e.Center)
			result.elements = append(result.elements, e)
		case ArcNeg:
			e.Center = f(e.Center)
			result.elements = append(result.elements, e)
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// AlignStrokePath aligns p for stroking.
func (e *Env) AlignStrokePath(p *Path) *Path {
	return AlignPath(e.pointAlign, p)
}

// AlignFillPath aligns p for filling.
func (e *Env) AlignFillPath(p *Path) *Path {
	return AlignPath(e.coordAlign, p)
}

// AlignStrokePoint aligns a single point for stroking.
func (e *Env) AlignStrokePoint(p Point) Point {
	return e.pointAlign(p)
}

// AlignFillPoint aligns a single point for filling.
func (e *Env) AlignFillPoint(p Point) Point {
	return e.coordAlign(p)
}

// AlignStrokePoints returns pts aligned for stroking. pts is not modified.
func (e *Env) AlignStrokePoints(pts []Point) []Point {
	return alignPoints(e.pointAlign, pts)
}

// AlignFillPoints returns pts aligned for filling. pts is not modified.
func (e *Env) AlignFillPoints(pts []Point) []Point {
	return alignPoints(e.coordAlign, pts)
}

func alignPoints(f AlignFunc, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = f(p)
	}
	return out
}
