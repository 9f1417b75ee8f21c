package ggchart

// StrokePointPath strokes the polyline through pts with the current line
// style, after aligning every point for stroking.
// An empty slice issues no backend calls.
func (e *Env) StrokePointPath(pts []Point) {
	if len(pts) == 0 {
		return
	}
	e.strokeRaw(Polyline(e.AlignStrokePoints(pts)))
}

// FillPointPath fills the polygon through pts with the current fill
// style, after aligning every point for filling.
// An empty slice issues no backend calls.
func (e *Env) FillPointPath(pts []Point) {
	if len(pts) == 0 {
		return
	}
	e.fillRaw(Polyline(e.AlignFillPoints(pts)))
}

// StrokePath aligns p for stroking and strokes it.
// An empty path issues no backend calls.
func (e *Env) StrokePath(p *Path) {
	if p.Len() == 0 {
		return
	}
	e.strokeRaw(e.AlignStrokePath(p))
}

// FillPath aligns p for filling and fills it.
// An empty path issues no backend calls.
func (e *Env) FillPath(p *Path) {
	if p.Len() == 0 {
		return
	}
	e.fillRaw(e.AlignFillPath(p))
}

// MoveTo starts a new subpath at the stroke-aligned p on the backend's
// current path.
func (e *Env) MoveTo(p Point) {
	e.backend.MoveTo(e.pointAlign(p))
}

// LineTo adds a line to the stroke-aligned p on the backend's current
// path.
func (e *Env) LineTo(p Point) {
	e.backend.LineTo(e.pointAlign(p))
}

// strokeRaw strokes p exactly as given.
func (e *Env) strokeRaw(p *Path) {
	e.backend.NewPath()
	emitPath(e.backend, p)
	e.backend.Stroke()
}

// fillRaw fills p exactly as given.
func (e *Env) fillRaw(p *Path) {
	e.backend.NewPath()
	emitPath(e.backend, p)
	e.backend.Fill()
}
