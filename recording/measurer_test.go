package recording

import (
	"testing"

	"github.com/gogpu/ggchart"
)

func TestFixedMeasurer(t *testing.T) {
	fs := ggchart.DefaultFontStyle()
	got := FixedMeasurer{}.Measure(fs, "héllo")
	want := ggchart.TextSize{Width: 30, Ascent: 8, Descent: 2, YBearing: -7, Height: 12}
	if got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
}

func TestMetricsTable(t *testing.T) {
	fixed := ggchart.TextSize{Width: 1, Ascent: 2}
	table := MetricsTable{Sizes: map[string]ggchart.TextSize{"x": fixed}}
	fs := ggchart.DefaultFontStyle()

	if got := table.Measure(fs, "x"); got != fixed {
		t.Errorf("Measure(x) = %+v, want %+v", got, fixed)
	}
	if got := table.Measure(fs, "yy"); got.Width != 12 {
		t.Errorf("Measure(yy).Width = %v, want FixedMeasurer's 12", got.Width)
	}

	table.Fallback = MetricsTable{Sizes: map[string]ggchart.TextSize{"yy": fixed}}
	if got := table.Measure(fs, "yy"); got != fixed {
		t.Errorf("Measure(yy) with fallback = %+v, want %+v", got, fixed)
	}
}
