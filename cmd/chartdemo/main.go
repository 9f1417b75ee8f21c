// Command chartdemo renders a sheet of the ggchart drawing primitives:
// line styles, point markers and anchored, rotated multi-line labels.
package main

import (
	"flag"
	"iter"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/backend/raster"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "chartdemo.png", "output file")
		angle   = flag.Float64("angle", 30, "label rotation in degrees")
		align   = flag.String("align", "bitmap", "coordinate alignment: bitmap or vector")
		bg      = flag.String("background", "#ffffff", "background color as hex")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var opt ggchart.EnvOption
	switch *align {
	case "bitmap":
		opt = ggchart.WithBitmapAlignment()
	case "vector":
		opt = ggchart.WithVectorAlignment()
	default:
		log.Fatalf("unknown alignment %q (want bitmap or vector)", *align)
	}

	b, err := raster.NewBackend(*width, *height, raster.WithBackground(ggchart.Hex(*bg)))
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	env := ggchart.NewEnv(b, opt)

	w, h := float64(*width), float64(*height)
	drawLineStyles(env, w)
	drawMarkers(env, w)
	drawLabels(env, w, h, *angle)

	if err := b.Err(); err != nil {
		log.Printf("Rendering problem: %v", err)
	}
	if err := b.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawLineStyles(env *ggchart.Env, w float64) {
	next, stop := iter.Pull(ggchart.DefaultColorSeq())
	defer stop()

	styles := []func(ggchart.RGBA) ggchart.LineStyle{
		func(c ggchart.RGBA) ggchart.LineStyle { return ggchart.SolidLine(1, c) },
		func(c ggchart.RGBA) ggchart.LineStyle { return ggchart.SolidLine(3, c) },
		func(c ggchart.RGBA) ggchart.LineStyle { return ggchart.DashedLine(2, []float64{8, 4}, c) },
		func(c ggchart.RGBA) ggchart.LineStyle {
			ls := ggchart.DashedLine(4, []float64{1, 6}, c)
			ls.Cap = ggchart.LineCapRound
			return ls
		},
	}

	for i, style := range styles {
		c, _ := next()
		y := 30 + float64(i)*25
		pts := make([]ggchart.Point, 0, 40)
		for x := 20.0; x <= w/2-20; x += 10 {
			pts = append(pts, ggchart.Pt(x, y+6*math.Sin(x/25)))
		}
		_ = env.WithLineStyle(style(c), func() error {
			env.StrokePointPath(pts)
			return nil
		})
	}
}

func drawMarkers(env *ggchart.Env, w float64) {
	markers := []ggchart.PointStyle{
		ggchart.FilledCircles(6, ggchart.Blue),
		ggchart.HollowCircles(6, 1.5, ggchart.Red),
		ggchart.FilledPolygon(7, 3, true, ggchart.Green),
		ggchart.HollowPolygon(7, 1.5, 4, false, ggchart.Magenta),
		ggchart.FilledPolygon(7, 5, true, ggchart.Cyan),
		ggchart.Plusses(6, 1.5, ggchart.Black),
		ggchart.Exes(6, 1.5, ggchart.Black),
		ggchart.Stars(6, 1.5, ggchart.Red),
	}
	x0 := w/2 + 30
	step := (w/2 - 60) / float64(len(markers)-1)
	for i, ps := range markers {
		env.DrawPoint(ps, ggchart.Pt(x0+float64(i)*step, 60))
	}
}

func drawLabels(env *ggchart.Env, w, h, angle float64) {
	hs := []ggchart.HTextAnchor{ggchart.HTextAnchorLeft, ggchart.HTextAnchorCentre, ggchart.HTextAnchorRight}
	vs := []ggchart.VTextAnchor{ggchart.VTextAnchorTop, ggchart.VTextAnchorCentre, ggchart.VTextAnchorBaseLine, ggchart.VTextAnchorBottom}

	top := 160.0
	cellW := (w - 40) / float64(len(hs))
	cellH := (h - top - 20) / float64(len(vs))
	font := ggchart.DefaultFontStyle()
	font.Size = 13

	grid := ggchart.SolidLine(1, ggchart.Hex("#ccc"))
	_ = env.WithFontStyle(font, func() error {
		for j, v := range vs {
			for i, hh := range hs {
				p := ggchart.Pt(20+(float64(i)+0.5)*cellW, top+(float64(j)+0.5)*cellH)
				_ = env.WithLineStyle(grid, func() error {
					env.StrokePointPath([]ggchart.Point{ggchart.Pt(p.X-30, p.Y), ggchart.Pt(p.X+30, p.Y)})
					env.StrokePointPath([]ggchart.Point{ggchart.Pt(p.X, p.Y-30), ggchart.Pt(p.X, p.Y+30)})
					return nil
				})
				env.DrawTextsR(hh, v, angle, p, hh.String()+"\n"+v.String())
				env.DrawPoint(ggchart.FilledCircles(2, ggchart.Red), p)
			}
		}
		return nil
	})
}
