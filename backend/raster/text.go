package raster

import (
	"fmt"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// face returns the face for the current font style, loading it on first
// use.
func (b *Backend) face() (*text.Face, error) {
	fs := b.state.font
	key := faceKey{name: fs.Name, size: fs.Size, slant: fs.Slant, weight: fs.Weight}
	if f, ok := b.faces[key]; ok {
		return f, nil
	}
	f, err := b.library.Face(fs)
	if err != nil {
		return nil, fmt.Errorf("raster: font %q: %w", fs.Name, err)
	}
	b.faces[key] = f
	return f, nil
}

// MeasureText reports the metrics of s in the current font. Ascent,
// descent and height come from the font; the y bearing is the top of the
// ink of s.
func (b *Backend) MeasureText(s string) ggchart.TextSize {
	f, err := b.face()
	if err != nil {
		b.fail(err)
		return ggchart.TextSize{}
	}
	m := f.Metrics()
	ext := f.Measure(s)
	return ggchart.TextSize{
		Width:    ext.Width,
		Ascent:   m.Ascent,
		Descent:  m.Descent,
		YBearing: ext.InkTop,
		Height:   m.Height,
	}
}

// DrawText fills the glyph outlines of s with the font color, the
// baseline origin at p. The current path is left untouched.
func (b *Backend) DrawText(p ggchart.Point, s string) {
	fs := b.state.font
	c := fs.Color.ScaleAlpha(b.state.alpha)
	if c.IsTransparent() {
		return
	}
	f, err := b.face()
	if err != nil {
		b.fail(err)
		return
	}

	var glyphs devicePath
	for _, g := range f.Shape(s) {
		segs, err := f.Outline(g.ID)
		if err != nil {
			b.fail(err)
			continue
		}
		m := b.state.ctm.Multiply(ggchart.Translate(p.X+g.X, p.Y+g.Y))
		for _, seg := range segs {
			switch seg.Op {
			case text.SegmentMoveTo:
				glyphs.moveTo(m, seg.Args[0])
			case text.SegmentLineTo:
				glyphs.lineTo(m, seg.Args[0])
			case text.SegmentQuadTo:
				glyphs.quadTo(m, seg.Args[0], seg.Args[1])
			case text.SegmentCubeTo:
				glyphs.cubeTo(m, seg.Args[0], seg.Args[1], seg.Args[2])
			}
		}
		glyphs.close()
	}
	if glyphs.empty() {
		return
	}
	b.fillPath(&glyphs, c)
}
