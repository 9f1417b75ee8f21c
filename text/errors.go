package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a Library has no source for a style
	// and no fallback family.
	ErrUnknownFont = errors.New("text: unknown font")
)
