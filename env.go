package ggchart

// Env is the explicit drawing context: a backend plus the alignment
// functions in effect for it. All drawing operations of this package are
// methods on Env.
//
// An Env is not safe for concurrent use; it is owned by the goroutine
// that drives its backend.
type Env struct {
	backend    Backend
	pointAlign AlignFunc
	coordAlign AlignFunc
}

// NewEnv creates a drawing context for the given backend.
// Without options, bitmap alignment is used.
func NewEnv(b Backend, opts ...EnvOption) *Env {
	o := defaultEnvOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Env{
		backend:    b,
		pointAlign: o.pointAlign,
		coordAlign: o.coordAlign,
	}
}

// Backend returns the backend the Env draws on.
func (e *Env) Backend() Backend {
	return e.backend
}

// PointAlign returns the alignment function applied before stroking.
func (e *Env) PointAlign() AlignFunc {
	return e.pointAlign
}

// CoordAlign returns the alignment function applied before filling.
func (e *Env) CoordAlign() AlignFunc {
	return e.coordAlign
}

// WithTransform runs body inside a frame whose transform is the current
// one concatenated with m and whose alpha is scaled by alpha.
// The frame is released on every exit path of body, including panics,
// and body's error is returned unchanged.
func (e *Env) WithTransform(m Matrix, alpha float64, body func() error) error {
	e.backend.Save()
	defer e.backend.Restore()

	e.backend.Transform(m)
	if alpha != 1 {
		e.backend.ScaleAlpha(alpha)
	}
	return run(body)
}

// WithTranslation runs body with the origin moved to p.
func (e *Env) WithTranslation(p Point, body func() error) error {
	return e.WithTransform(Translate(p.X, p.Y), 1, body)
}

// WithRotation runs body with the coordinate system rotated by angle
// radians about the current origin.
func (e *Env) WithRotation(angle float64, body func() error) error {
	return e.WithTransform(Rotate(angle), 1, body)
}

// WithScale runs body with the coordinate system scaled by (sx, sy).
func (e *Env) WithScale(sx, sy float64, body func() error) error {
	return e.WithTransform(Scale(sx, sy), 1, body)
}

// WithLineStyle runs body with ls as the current line style.
func (e *Env) WithLineStyle(ls LineStyle, body func() error) error {
	e.backend.Save()
	defer e.backend.Restore()

	e.backend.SetLineStyle(ls)
	return run(body)
}

// WithFillStyle runs body with fs as the current fill style.
func (e *Env) WithFillStyle(fs FillStyle, body func() error) error {
	e.backend.Save()
	defer e.backend.Restore()

	e.backend.SetFillStyle(fs)
	return run(body)
}

// WithFontStyle runs body with fs as the current font style.
func (e *Env) WithFontStyle(fs FontStyle, body func() error) error {
	e.backend.Save()
	defer e.backend.Restore()

	e.backend.SetFontStyle(fs)
	return run(body)
}

func run(body func() error) error {
	if body == nil {
		return nil
	}
	return body()
}
