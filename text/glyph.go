package text

import (
	"github.com/gogpu/ggchart"
	"golang.org/x/image/font/sfnt"
)

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Glyph is one shaped glyph positioned relative to the start of the run's
// baseline.
type Glyph struct {
	ID GlyphID
	// Cluster is the index of the first rune of the source text (after
	// normalization) that produced this glyph.
	Cluster int
	// X and Y are the glyph origin. Y grows downwards.
	X, Y float64
	// Advance is the horizontal pen advance.
	Advance float64
}

// SegmentOp is the kind of an outline segment.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// String returns the name of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentMoveTo:
		return "MoveTo"
	case SegmentLineTo:
		return "LineTo"
	case SegmentQuadTo:
		return "QuadTo"
	case SegmentCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Segment is one piece of a glyph outline relative to the glyph origin.
// MoveTo and LineTo use Args[0], QuadTo uses Args[0:2] and CubeTo uses
// all three points.
type Segment struct {
	Op   SegmentOp
	Args [3]ggchart.Point
}

// convertSegments copies sfnt segments, which are only valid until their
// buffer is reused.
func convertSegments(segs sfnt.Segments) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		var op SegmentOp
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			op = SegmentCubeTo
		}
		out[i].Op = op
		for j, a := range s.Args {
			out[i].Args[j] = ggchart.Pt(fromFixed(a.X), fromFixed(a.Y))
		}
	}
	return out
}
