package ggchart

// PathElement represents a single element in a path.
// The set of elements is closed: MoveTo, LineTo, Arc, ArcNeg and Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Arc draws a circular arc in the direction of increasing angle.
// Angles are in radians, measured from the positive x axis.
type Arc struct {
	Center     Point
	Radius     float64
	Start, End float64
}

func (Arc) isPathElement() {}

// ArcNeg draws a circular arc in the direction of decreasing angle.
type ArcNeg struct {
	Center     Point
	Radius     float64
	Start, End float64
}

func (ArcNeg) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of path elements.
// The builder methods return the receiver so calls can be chained:
//
//	p := ggchart.NewPath().MoveTo(ggchart.Pt(0, 0)).LineTo(ggchart.Pt(10, 0))
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// Polyline returns a path that moves to the first point and draws lines
// through the remaining ones. An empty slice yields an empty path.
func Polyline(pts []Point) *Path {
	p := &Path{elements: make([]PathElement, 0, len(pts))}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// MoveTo appends a MoveTo element.
func (p *Path) MoveTo(pt Point) *Path {
	p.elements = append(p.elements, MoveTo{Point: pt})
	return p
}

// LineTo appends a LineTo element.
func (p *Path) LineTo(pt Point) *Path {
	p.elements = append(p.elements, LineTo{Point: pt})
	return p
}

// Arc appends a positive (increasing angle) arc.
func (p *Path) Arc(center Point, radius, start, end float64) *Path {
	p.elements = append(p.elements, Arc{Center: center, Radius: radius, Start: start, End: end})
	return p
}

// ArcNeg appends a negative (decreasing angle) arc.
func (p *Path) ArcNeg(center Point, radius, start, end float64) *Path {
	p.elements = append(p.elements, ArcNeg{Center: center, Radius: radius, Start: start, End: end})
	return p
}

// Close appends a Close element.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	return p
}

// Append adds all elements of other to the end of p.
func (p *Path) Append(other *Path) *Path {
	if other != nil {
		p.elements = append(p.elements, other.elements...)
	}
	return p
}

// Elements returns the path elements.
// The returned slice must not be modified.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{elements: make([]PathElement, len(p.Elements()))}
	copy(result.elements, p.Elements())
	return result
}
