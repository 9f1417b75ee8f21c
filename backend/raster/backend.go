package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/text"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSize is returned for canvases without pixels.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// miterLimit is the miter length, in line widths, beyond which miter
// joins are beveled.
const miterLimit = 4

func init() {
	recording.Register("raster", func(width, height int) (ggchart.Backend, error) {
		return NewBackend(width, height)
	})
}

// Backend renders drawing capabilities into an RGBA image.
//
// Backend is not safe for concurrent use.
type Backend struct {
	width, height int
	img           *image.RGBA
	filler        *rasterx.Filler
	dasher        *rasterx.Dasher
	library       *text.Library

	state gstate
	stack []gstate
	path  devicePath

	faces map[faceKey]*text.Face
	err   error
}

// gstate is the graphics state saved by Save.
type gstate struct {
	ctm   ggchart.Matrix
	alpha float64
	line  ggchart.LineStyle
	fill  ggchart.FillStyle
	font  ggchart.FontStyle
}

type faceKey struct {
	name   string
	size   float64
	slant  ggchart.FontSlant
	weight ggchart.FontWeight
}

var _ ggchart.Backend = (*Backend)(nil)

// NewBackend creates a backend with a width x height pixel canvas.
func NewBackend(width, height int, opts ...Option) (*Backend, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.library == nil {
		o.library = text.DefaultLibrary()
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background.Color()), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetWinding(true)
	return &Backend{
		width:   width,
		height:  height,
		img:     img,
		filler:  rasterx.NewFiller(width, height, scanner),
		dasher:  rasterx.NewDasher(width, height, scanner),
		library: o.library,
		state: gstate{
			ctm:   ggchart.Identity(),
			alpha: 1,
			line:  ggchart.DefaultLineStyle(),
			fill:  ggchart.DefaultFillStyle(),
			font:  ggchart.DefaultFontStyle(),
		},
		faces: make(map[faceKey]*text.Face),
	}, nil
}

// Width returns the canvas width in pixels.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height in pixels.
func (b *Backend) Height() int {
	return b.height
}

// Image returns the rendered image. It is shared with the backend.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Err returns the first font or glyph error encountered while drawing.
func (b *Backend) Err() error {
	return b.err
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG saves the rendered content as a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is provided by the user
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// fail latches err and logs it.
func (b *Backend) fail(err error) {
	if b.err == nil {
		b.err = err
	}
	ggchart.Logger().Warn("raster: drawing failed", "err", err)
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save pushes the graphics state.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.state)
}

// Restore pops the graphics state. A Restore without a Save is ignored.
func (b *Backend) Restore() {
	n := len(b.stack)
	if n == 0 {
		ggchart.Logger().Warn("raster: restore without save")
		return
	}
	b.state = b.stack[n-1]
	b.stack = b.stack[:n-1]
}

// Transform concatenates m onto the current transform.
func (b *Backend) Transform(m ggchart.Matrix) {
	b.state.ctm = b.state.ctm.Multiply(m)
}

// ScaleAlpha multiplies the global alpha by f.
func (b *Backend) ScaleAlpha(f float64) {
	b.state.alpha *= f
}

// SetLineStyle sets the stroke style.
func (b *Backend) SetLineStyle(ls ggchart.LineStyle) {
	b.state.line = ls
}

// SetFillStyle sets the fill style.
func (b *Backend) SetFillStyle(fs ggchart.FillStyle) {
	b.state.fill = fs
}

// SetFontStyle sets the font style.
func (b *Backend) SetFontStyle(fs ggchart.FontStyle) {
	b.state.font = fs
}

// --------------------------------------------------------------------------
// Paths
// --------------------------------------------------------------------------

// NewPath discards the current path.
func (b *Backend) NewPath() {
	b.path.reset()
}

// MoveTo starts a new subpath at p.
func (b *Backend) MoveTo(p ggchart.Point) {
	b.path.moveTo(b.state.ctm, p)
}

// LineTo adds a line to p.
func (b *Backend) LineTo(p ggchart.Point) {
	b.path.lineTo(b.state.ctm, p)
}

// Arc adds an arc of increasing angle.
func (b *Backend) Arc(c ggchart.Point, r, a1, a2 float64) {
	b.path.arc(b.state.ctm, c, r, a1, a2, false)
}

// ArcNeg adds an arc of decreasing angle.
func (b *Backend) ArcNeg(c ggchart.Point, r, a1, a2 float64) {
	b.path.arc(b.state.ctm, c, r, a1, a2, true)
}

// ClosePath closes the current subpath.
func (b *Backend) ClosePath() {
	b.path.close()
}

// Stroke strokes and then discards the current path.
func (b *Backend) Stroke() {
	defer b.path.reset()

	ls := b.state.line
	scale := b.state.ctm.ScaleFactor()
	width := ls.Width * scale
	c := ls.Color.ScaleAlpha(b.state.alpha)
	if b.path.empty() || width <= 0 || c.IsTransparent() {
		return
	}

	b.dasher.SetStroke(
		toFixed(width), toFixed(miterLimit),
		capFunc(ls.Cap), capFunc(ls.Cap), gapFunc(ls.Join), joinMode(ls.Join),
		scaleDashes(ls.Dashes, scale), 0)
	b.path.addTo(b.dasher)
	b.dasher.SetColor(c.Color())
	b.dasher.Draw()
	b.dasher.Clear()
}

// Fill fills and then discards the current path.
func (b *Backend) Fill() {
	defer b.path.reset()

	sf, ok := b.state.fill.(ggchart.SolidFill)
	if !ok || b.path.empty() {
		return
	}
	c := sf.Color.ScaleAlpha(b.state.alpha)
	if c.IsTransparent() {
		return
	}
	b.fillPath(&b.path, c)
}

func (b *Backend) fillPath(p *devicePath, c ggchart.RGBA) {
	p.addTo(b.filler)
	b.filler.SetColor(c.Color())
	b.filler.Draw()
	b.filler.Clear()
}

// scaleDashes returns the dash pattern in device units, or nil for a
// solid line. Patterns with a dash shorter than a hundredth of a pixel
// draw solid.
func scaleDashes(dashes []float64, scale float64) []float64 {
	if len(dashes) == 0 {
		return nil
	}
	out := make([]float64, len(dashes))
	for i, d := range dashes {
		out[i] = d * scale
		if out[i] < 0.01 {
			return nil
		}
	}
	return out
}

func capFunc(c ggchart.LineCap) rasterx.CapFunc {
	switch c {
	case ggchart.LineCapRound:
		return rasterx.RoundCap
	case ggchart.LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j ggchart.LineJoin) rasterx.JoinMode {
	switch j {
	case ggchart.LineJoinRound:
		return rasterx.Round
	case ggchart.LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

func gapFunc(j ggchart.LineJoin) rasterx.GapFunc {
	if j == ggchart.LineJoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toFixedP(p ggchart.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
