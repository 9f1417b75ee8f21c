package text

import (
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Face is a FontSource at a specific size.
//
// Face keeps shaping and outline buffers and is not safe for concurrent
// use. Create one Face per goroutine from the shared FontSource.
type Face struct {
	source *FontSource
	size   float64
	ppem   fixed.Int26_6

	shape  *gotext.Face
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the font metrics at the face size.
func (f *Face) Metrics() Metrics {
	m, err := f.source.sfnt.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:    fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		Height:    fromFixed(m.Height),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// Shape converts s into positioned glyphs on a single left-to-right line.
// The text is normalized to NFC first, so cluster indexes refer to the
// normalized runes.
func (f *Face) Shape(s string) []Glyph {
	runes := []rune(norm.NFC.String(s))
	if len(runes) == 0 {
		return nil
	}

	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shape,
		Size:      f.ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids of TrueType fonts fit in 16 bits
			Cluster: g.TextIndex(),
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return glyphs
}

// Measure shapes s and returns its advance width and ink extents.
func (f *Face) Measure(s string) Extents {
	var ext Extents
	inked := false
	for _, g := range f.Shape(s) {
		ext.Width += g.Advance
		b, _, err := f.source.sfnt.GlyphBounds(&f.buf, sfnt.GlyphIndex(g.ID), f.ppem, font.HintingNone)
		if err != nil || b.Min.Y == b.Max.Y {
			continue
		}
		top := g.Y + fromFixed(b.Min.Y)
		bottom := g.Y + fromFixed(b.Max.Y)
		if !inked || top < ext.InkTop {
			ext.InkTop = top
		}
		if !inked || bottom > ext.InkBottom {
			ext.InkBottom = bottom
		}
		inked = true
	}
	return ext
}

// Outline returns the outline of glyph id at the face size, relative to
// the glyph origin. The returned slice is shared and must not be modified.
func (f *Face) Outline(id GlyphID) ([]Segment, error) {
	return f.source.outline(sfnt.GlyphIndex(id), f.ppem)
}

// detectScript returns the script of the first non-space rune.
// Mixed-script labels are shaped with that script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
