// Package ggchart is the drawing primitive layer of a 2D charting
// library.
//
// It turns geometric descriptions (paths, point lists, text labels) and
// styles (lines, fills, point markers, fonts) into calls on a pluggable
// [Backend], and takes care of the arithmetic in between: pixel alignment
// of strokes and fills, scoped transforms, and anchored, rotated,
// multi-line text layout.
//
// # Quick Start
//
//	import (
//	    "log"
//
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/backend/raster"
//	)
//
//	b, err := raster.NewBackend(400, 300)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	env := ggchart.NewEnv(b)
//
//	_ = env.WithLineStyle(ggchart.SolidLine(1, ggchart.Blue), func() error {
//	    env.StrokePointPath([]ggchart.Point{{X: 10, Y: 10}, {X: 390, Y: 290}})
//	    return nil
//	})
//	env.DrawTextsR(ggchart.HTextAnchorCentre, ggchart.VTextAnchorCentre,
//	    -90, ggchart.Pt(20, 150), "Sales\n(thousands)")
//	env.DrawPoint(ggchart.FilledCircles(4, ggchart.Red), ggchart.Pt(200, 150))
//
//	_ = b.SavePNG("chart.png")
//
// # Context
//
// All operations are methods on [Env], an explicit context holding the
// backend and the two alignment functions in effect: point alignment,
// applied before stroking, and coordinate alignment, applied before
// filling. [BitmapAlignment] snaps to a pixel grid, [VectorAlignment]
// leaves coordinates untouched.
//
// Scoped state changes ([Env.WithTransform], [Env.WithLineStyle], ...)
// save the backend state, run a body and restore the state on every exit
// path, so sibling drawing operations never observe a leaked transform or
// style.
//
// # Backends
//
// Two backends ship with the module:
//
//   - recording: captures every call as a command, with deterministic
//     text metrics; recordings can be inspected or played back.
//   - backend/raster: renders into an *image.RGBA.
//
// # Coordinates
//
// The y axis grows downwards, as on screens and in raster images.
// Angles passed to the text functions are in degrees; all other angles
// are in radians.
package ggchart
