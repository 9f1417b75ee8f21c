package text

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// outlineCacheSize bounds the number of glyph outlines kept per source.
const outlineCacheSize = 2048

// FontSource is a loaded font file. The data is parsed once for shaping
// (go-text/typesetting) and once for metrics and outlines (sfnt).
// One FontSource can create any number of Face instances.
//
// FontSource is safe for concurrent use and must not be copied after
// creation.
type FontSource struct {
	// addr points to the FontSource itself and detects copies.
	addr *FontSource

	name  string
	shape *gotext.Font
	sfnt  *sfnt.Font

	outlines *cache[outlineKey, []Segment]
}

type outlineKey struct {
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// NewFontSource parses TTF or OTF font data.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		shape:    face.Font,
		sfnt:     sf,
		outlines: newCache[outlineKey, []Segment](outlineCacheSize),
	}
	s.addr = s
	s.name = familyName(sf)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Face returns a face of the source at size pixels per em.
// Panics if s is nil.
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("text: FontSource is nil")
	}
	s.copyCheck()
	return &Face{
		source: s,
		size:   size,
		ppem:   toFixed(size),
		shape:  gotext.NewFace(s.shape),
	}
}

// outline returns the cached outline of gid at ppem.
func (s *FontSource) outline(gid sfnt.GlyphIndex, ppem fixed.Int26_6) ([]Segment, error) {
	return s.outlines.getOrCreate(outlineKey{gid, ppem}, func() ([]Segment, error) {
		var buf sfnt.Buffer
		segs, err := s.sfnt.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("text: failed to load glyph %d: %w", gid, err)
		}
		return convertSegments(segs), nil
	})
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func familyName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
