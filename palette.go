package ggchart

import "iter"

// DefaultColors is the fallback palette, in cycle order.
var DefaultColors = []RGBA{Blue, Red, Green, Yellow, Cyan, Magenta}

// DefaultColorSeq returns an endless sequence cycling through
// DefaultColors at full opacity. Use iter.Pull to draw colors on demand:
//
//	next, stop := iter.Pull(ggchart.DefaultColorSeq())
//	defer stop()
//	c, _ := next()
func DefaultColorSeq() iter.Seq[RGBA] {
	palette := make([]RGBA, len(DefaultColors))
	for i, c := range DefaultColors {
		palette[i] = c.WithAlpha(1)
	}
	return func(yield func(RGBA) bool) {
		if len(palette) == 0 {
			return
		}
		for {
			for _, c := range palette {
				if !yield(c) {
					return
				}
			}
		}
	}
}
