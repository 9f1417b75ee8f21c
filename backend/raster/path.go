package raster

import (
	"math"

	"github.com/gogpu/ggchart"
	"github.com/srwiley/rasterx"
)

type segOp uint8

const (
	segMoveTo segOp = iota
	segLineTo
	segQuadTo
	segCubeTo
	segClose
)

// segment is a device-space path piece.
type segment struct {
	op  segOp
	pts [3]ggchart.Point
}

// devicePath accumulates a path in device coordinates, tracking the
// current point the way the backend capabilities require.
type devicePath struct {
	segs   []segment
	cur    ggchart.Point // user space
	start  ggchart.Point // user space
	hasCur bool
	// reopen is set after a close; the next line starts a new subpath at
	// the closed subpath's start.
	reopen bool
}

func (p *devicePath) reset() {
	p.segs = p.segs[:0]
	p.hasCur = false
	p.reopen = false
}

func (p *devicePath) empty() bool {
	return len(p.segs) == 0
}

func (p *devicePath) moveTo(m ggchart.Matrix, pt ggchart.Point) {
	p.segs = append(p.segs, segment{op: segMoveTo, pts: [3]ggchart.Point{m.TransformPoint(pt)}})
	p.cur, p.start, p.hasCur = pt, pt, true
	p.reopen = false
}

// lineTo adds a line, or starts a subpath when there is no current point.
func (p *devicePath) lineTo(m ggchart.Matrix, pt ggchart.Point) {
	if !p.hasCur {
		p.moveTo(m, pt)
		return
	}
	p.ensureOpen(m)
	p.segs = append(p.segs, segment{op: segLineTo, pts: [3]ggchart.Point{m.TransformPoint(pt)}})
	p.cur = pt
}

func (p *devicePath) quadTo(m ggchart.Matrix, c1, pt ggchart.Point) {
	p.ensureOpen(m)
	p.segs = append(p.segs, segment{op: segQuadTo, pts: [3]ggchart.Point{
		m.TransformPoint(c1), m.TransformPoint(pt),
	}})
	p.cur = pt
}

func (p *devicePath) cubeTo(m ggchart.Matrix, c1, c2, pt ggchart.Point) {
	p.ensureOpen(m)
	p.segs = append(p.segs, segment{op: segCubeTo, pts: [3]ggchart.Point{
		m.TransformPoint(c1), m.TransformPoint(c2), m.TransformPoint(pt),
	}})
	p.cur = pt
}

func (p *devicePath) close() {
	if !p.hasCur {
		return
	}
	p.segs = append(p.segs, segment{op: segClose})
	p.cur = p.start
	p.reopen = true
}

func (p *devicePath) ensureOpen(m ggchart.Matrix) {
	if p.reopen {
		p.moveTo(m, p.start)
	}
}

// arc appends a circular arc from angle a1 to a2 around c. A positive arc
// runs with increasing angle, a negative one with decreasing angle. The
// arc is joined to the current point by a line.
func (p *devicePath) arc(m ggchart.Matrix, c ggchart.Point, r, a1, a2 float64, negative bool) {
	const twoPi = 2 * math.Pi
	if !finite(c.X, c.Y, r, a1, a2) {
		ggchart.Logger().Warn("raster: arc with non-finite parameters ignored",
			"cx", c.X, "cy", c.Y, "r", r, "a1", a1, "a2", a2)
		return
	}
	if negative {
		if a2 > a1 {
			a2 -= twoPi * math.Ceil((a2-a1)/twoPi)
		}
	} else if a2 < a1 {
		a2 += twoPi * math.Ceil((a1-a2)/twoPi)
	}

	p.lineTo(m, ggchart.Pt(c.X+r*math.Cos(a1), c.Y+r*math.Sin(a1)))

	const maxAngle = math.Pi / 2
	// The tolerance keeps whole quarter turns from rounding up to an
	// extra segment.
	n := int(math.Ceil(math.Abs(a2-a1)/maxAngle - 1e-9))
	if n <= 0 {
		return
	}
	step := (a2 - a1) / float64(n)
	for i := range n {
		s := a1 + float64(i)*step
		p.arcSegment(m, c, r, s, s+step)
	}
}

// arcSegment appends one cubic approximating the arc from a1 to a2,
// which must be at most a quarter turn apart.
func (p *devicePath) arcSegment(m ggchart.Matrix, c ggchart.Point, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := c.X+r*cos1, c.Y+r*sin1
	x2, y2 := c.X+r*cos2, c.Y+r*sin2

	p.cubeTo(m,
		ggchart.Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		ggchart.Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		ggchart.Pt(x2, y2),
	)
}

// addTo feeds the path to a rasterx adder.
func (p *devicePath) addTo(a rasterx.Adder) {
	open := false
	for _, s := range p.segs {
		switch s.op {
		case segMoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toFixedP(s.pts[0]))
			open = true
		case segLineTo:
			a.Line(toFixedP(s.pts[0]))
		case segQuadTo:
			a.QuadBezier(toFixedP(s.pts[0]), toFixedP(s.pts[1]))
		case segCubeTo:
			a.CubeBezier(toFixedP(s.pts[0]), toFixedP(s.pts[1]), toFixedP(s.pts[2]))
		case segClose:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
