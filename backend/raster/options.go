package raster

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// Option configures a Backend.
type Option func(*options)

type options struct {
	background ggchart.RGBA
	library    *text.Library
}

func defaultOptions() options {
	return options{
		background: ggchart.White,
	}
}

// WithBackground sets the color the canvas is cleared to. The default
// is white.
func WithBackground(c ggchart.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontLibrary sets the library fonts are looked up in. The default
// is text.DefaultLibrary.
func WithFontLibrary(lib *text.Library) Option {
	return func(o *options) {
		o.library = lib
	}
}
