// Package text loads fonts and turns strings into measured, positioned
// glyph outlines for the chart backends.
//
// The pipeline has three layers:
//
//   - FontSource: a parsed font file, shared and safe for concurrent use
//   - Face: a FontSource at one size, owned by a single goroutine
//   - Library: a lookup from font family, slant and weight to sources
//
// Shaping is done by go-text/typesetting (HarfBuzz port); metrics, ink
// bounds and outlines come from golang.org/x/image/font/sfnt. All
// coordinates are in pixels with y growing downwards.
//
// # Example usage
//
//	face, err := text.DefaultLibrary().Face(ggchart.DefaultFontStyle())
//	if err != nil {
//	    return err
//	}
//	ext := face.Measure("Sales 2024")
//	for _, g := range face.Shape("Sales 2024") {
//	    segs, _ := face.Outline(g.ID)
//	    // place segs at (g.X, g.Y)
//	}
package text
