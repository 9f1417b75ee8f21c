package recording

import (
	"math"
	"testing"

	"github.com/gogpu/ggchart"
)

// drawTexts returns the DrawTextCommands of a recorder in order.
func drawTexts(rec *Recorder) []DrawTextCommand {
	var out []DrawTextCommand
	for _, c := range rec.Commands() {
		if dt, ok := c.(DrawTextCommand); ok {
			out = append(out, dt)
		}
	}
	return out
}

func near(a, b ggchart.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

var letterMetrics = MetricsTable{Sizes: map[string]ggchart.TextSize{
	"A":  {Width: 5, Ascent: 8, Descent: 2, YBearing: -7, Height: 12},
	"BB": {Width: 10, Ascent: 8, Descent: 2, YBearing: -7, Height: 12},
}}

func TestEnvMultiLineLayout(t *testing.T) {
	rec := NewRecorder(100, 100, WithMeasurer(letterMetrics))
	env := ggchart.NewEnv(rec)

	env.DrawTextsR(ggchart.HTextAnchorCentre, ggchart.VTextAnchorTop, 0, ggchart.Pt(0, 0), "A\nBB")

	texts := drawTexts(rec)
	if len(texts) != 2 {
		t.Fatalf("DrawText commands = %d, want 2", len(texts))
	}
	want := []ggchart.Point{ggchart.Pt(-2.5, 8), ggchart.Pt(-5, -4)}
	for i, dt := range texts {
		if dt.Point != want[i] {
			t.Errorf("line %d at %v, want %v", i, dt.Point, want[i])
		}
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth() = %d after drawing, want 0", rec.Depth())
	}
}

func TestEnvTextRotationRelation(t *testing.T) {
	anchor := ggchart.Pt(30, 40)
	for _, h := range []ggchart.HTextAnchor{ggchart.HTextAnchorLeft, ggchart.HTextAnchorCentre, ggchart.HTextAnchorRight} {
		for _, v := range []ggchart.VTextAnchor{ggchart.VTextAnchorTop, ggchart.VTextAnchorCentre, ggchart.VTextAnchorBaseLine, ggchart.VTextAnchorBottom} {
			flat := NewRecorder(100, 100)
			ggchart.NewEnv(flat).DrawTextR(h, v, 0, anchor, "tick")
			turned := NewRecorder(100, 100)
			ggchart.NewEnv(turned).DrawTextR(h, v, 90, anchor, "tick")

			d := drawTexts(flat)[0].Origin().Sub(anchor)
			got := drawTexts(turned)[0].Origin()
			want := ggchart.Pt(anchor.X-d.Y, anchor.Y+d.X)
			if !near(got, want) {
				t.Errorf("%v/%v: rotated origin %v, want %v", h, v, got, want)
			}
		}
	}
}

func TestEnvBaseLineLeftSitsOnAnchor(t *testing.T) {
	rec := NewRecorder(100, 100)
	ggchart.NewEnv(rec).DrawTextR(ggchart.HTextAnchorLeft, ggchart.VTextAnchorBaseLine, 33, ggchart.Pt(12, 34), "x")

	if got := drawTexts(rec)[0].Origin(); !near(got, ggchart.Pt(12, 34)) {
		t.Errorf("origin = %v, want the anchor", got)
	}
}

func TestEnvStrokeAlignmentOnRecorder(t *testing.T) {
	rec := NewRecorder(100, 100)
	env := ggchart.NewEnv(rec)

	env.StrokePointPath([]ggchart.Point{ggchart.Pt(0.2, 3.8), ggchart.Pt(10.6, 3.8)})
	env.FillPointPath([]ggchart.Point{ggchart.Pt(0.2, 3.8), ggchart.Pt(10.6, 3.8)})

	var pts []ggchart.Point
	for _, c := range rec.Commands() {
		switch c := c.(type) {
		case MoveToCommand:
			pts = append(pts, c.Point)
		case LineToCommand:
			pts = append(pts, c.Point)
		}
	}
	want := []ggchart.Point{
		ggchart.Pt(0.5, 4.5), ggchart.Pt(11.5, 4.5),
		ggchart.Pt(0, 4), ggchart.Pt(11, 4),
	}
	if len(pts) != len(want) {
		t.Fatalf("points = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestEnvTransformAlphaScoped(t *testing.T) {
	rec := NewRecorder(100, 100)
	env := ggchart.NewEnv(rec)

	var inside float64
	_ = env.WithTransform(ggchart.Identity(), 0.5, func() error {
		return env.WithTransform(ggchart.Identity(), 0.5, func() error {
			inside = rec.Alpha()
			return nil
		})
	})
	if inside != 0.25 {
		t.Errorf("nested alpha = %v, want 0.25", inside)
	}
	if rec.Alpha() != 1 {
		t.Errorf("alpha after frames = %v, want 1", rec.Alpha())
	}
}

func TestEnvMarkerUsesBorderStyle(t *testing.T) {
	rec := NewRecorder(100, 100)
	env := ggchart.NewEnv(rec)

	env.DrawPoint(ggchart.Stars(4, 2, ggchart.Magenta), ggchart.Pt(10, 10))

	var strokes int
	for _, c := range rec.Commands() {
		switch c := c.(type) {
		case StrokeCommand:
			strokes++
			if c.Style.Width != 2 || c.Style.Color != ggchart.Magenta {
				t.Errorf("stroke style = %+v", c.Style)
			}
		case FillCommand:
			t.Error("star marker was filled")
		}
	}
	if strokes != 1 {
		t.Errorf("strokes = %d, want 1", strokes)
	}
	if rec.LineStyle().Width != 1 {
		t.Errorf("line style leaked out of DrawPoint: %+v", rec.LineStyle())
	}
}
