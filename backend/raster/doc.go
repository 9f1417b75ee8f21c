// Package raster provides a pixel backend for ggchart.
// It renders capability calls into an *image.RGBA using rasterx for
// anti-aliased strokes and fills, and draws text as filled glyph
// outlines from the text package.
//
// Paths are transformed to device space as they are built, so strokes
// and fills match what the current transform says. Line widths and dash
// lengths are scaled by the transform's area scale factor.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ggchart/backend/raster"
//
//	// Create via registry
//	b, err := recording.NewBackend("raster", 640, 480)
//
//	// Or create directly
//	b, err := raster.NewBackend(640, 480, raster.WithBackground(ggchart.White))
//	env := ggchart.NewEnv(b)
//	env.StrokePointPath(points)
//	err = b.SavePNG("chart.png")
package raster
