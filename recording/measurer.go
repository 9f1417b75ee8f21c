package recording

import (
	"unicode/utf8"

	"github.com/gogpu/ggchart"
)

// Measurer reports text metrics for a string in a font style.
type Measurer interface {
	Measure(fs ggchart.FontStyle, s string) ggchart.TextSize
}

// FixedMeasurer measures text as if every rune were 0.6 em wide, with an
// ascent of 0.8 em, a descent of 0.2 em and ink reaching 0.7 em above
// the baseline. It needs no font data.
type FixedMeasurer struct{}

// Measure implements Measurer.
func (FixedMeasurer) Measure(fs ggchart.FontStyle, s string) ggchart.TextSize {
	size := fs.Size
	return ggchart.TextSize{
		Width:    0.6 * size * float64(utf8.RuneCountInString(s)),
		Ascent:   0.8 * size,
		Descent:  0.2 * size,
		YBearing: -0.7 * size,
		Height:   1.2 * size,
	}
}

// MetricsTable returns fixed metrics per string, independent of the font.
// Strings missing from the table are measured by Fallback, or by
// FixedMeasurer when Fallback is nil.
type MetricsTable struct {
	Sizes    map[string]ggchart.TextSize
	Fallback Measurer
}

// Measure implements Measurer.
func (t MetricsTable) Measure(fs ggchart.FontStyle, s string) ggchart.TextSize {
	if ts, ok := t.Sizes[s]; ok {
		return ts
	}
	if t.Fallback != nil {
		return t.Fallback.Measure(fs, s)
	}
	return FixedMeasurer{}.Measure(fs, s)
}
