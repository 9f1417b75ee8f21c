package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/ggchart"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names registered by DefaultLibrary.
const (
	FamilySans = "sans-serif"
	FamilyMono = "monospace"
)

// Library maps font family, slant and weight to font sources.
// Family names are matched case-insensitively. Oblique is treated as
// italic.
//
// Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	sources  map[libraryKey]*FontSource
	fallback string
}

type libraryKey struct {
	family string
	italic bool
	bold   bool
}

// NewLibrary creates an empty library. Lookups of unknown families use
// the fallback family, if it is set and registered.
func NewLibrary(fallback string) *Library {
	return &Library{
		sources:  make(map[libraryKey]*FontSource),
		fallback: strings.ToLower(fallback),
	}
}

// Add registers src for the given family and style.
func (l *Library) Add(family string, slant ggchart.FontSlant, weight ggchart.FontWeight, src *FontSource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[keyOf(family, slant, weight)] = src
}

// Source returns the best source for fs. It tries, in order: the exact
// style, the family's regular style, then the same two in the fallback
// family. ErrUnknownFont is returned when none is registered.
func (l *Library) Source(fs ggchart.FontStyle) (*FontSource, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	k := keyOf(fs.Name, fs.Slant, fs.Weight)
	for _, family := range []string{k.family, l.fallback} {
		if family == "" {
			continue
		}
		if src, ok := l.sources[libraryKey{family, k.italic, k.bold}]; ok {
			return src, nil
		}
		if src, ok := l.sources[libraryKey{family: family}]; ok {
			return src, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, fs.Name)
}

// Face returns a new face for fs at fs.Size.
func (l *Library) Face(fs ggchart.FontStyle) (*Face, error) {
	src, err := l.Source(fs)
	if err != nil {
		return nil, err
	}
	return src.Face(fs.Size), nil
}

// Families returns the registered family names.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for k := range l.sources {
		if !seen[k.family] {
			seen[k.family] = true
			names = append(names, k.family)
		}
	}
	return names
}

func keyOf(family string, slant ggchart.FontSlant, weight ggchart.FontWeight) libraryKey {
	return libraryKey{
		family: strings.ToLower(strings.TrimSpace(family)),
		italic: slant != ggchart.FontSlantNormal,
		bold:   weight == ggchart.FontWeightBold,
	}
}

var (
	defaultLibraryOnce sync.Once
	defaultLibrary     *Library
)

// DefaultLibrary returns the shared library of the Go fonts. The
// proportional Go fonts are registered as "sans-serif", "serif" and
// "go"; the Go Mono fonts as "monospace" and "go mono". Unknown families
// fall back to "sans-serif".
func DefaultLibrary() *Library {
	defaultLibraryOnce.Do(func() {
		defaultLibrary = NewLibrary(FamilySans)
		faces := []struct {
			families []string
			slant    ggchart.FontSlant
			weight   ggchart.FontWeight
			ttf      []byte
		}{
			{[]string{FamilySans, "serif", "go"}, ggchart.FontSlantNormal, ggchart.FontWeightNormal, goregular.TTF},
			{[]string{FamilySans, "serif", "go"}, ggchart.FontSlantNormal, ggchart.FontWeightBold, gobold.TTF},
			{[]string{FamilySans, "serif", "go"}, ggchart.FontSlantItalic, ggchart.FontWeightNormal, goitalic.TTF},
			{[]string{FamilySans, "serif", "go"}, ggchart.FontSlantItalic, ggchart.FontWeightBold, gobolditalic.TTF},
			{[]string{FamilyMono, "go mono"}, ggchart.FontSlantNormal, ggchart.FontWeightNormal, gomono.TTF},
			{[]string{FamilyMono, "go mono"}, ggchart.FontSlantNormal, ggchart.FontWeightBold, gomonobold.TTF},
			{[]string{FamilyMono, "go mono"}, ggchart.FontSlantItalic, ggchart.FontWeightNormal, gomonoitalic.TTF},
			{[]string{FamilyMono, "go mono"}, ggchart.FontSlantItalic, ggchart.FontWeightBold, gomonobolditalic.TTF},
		}
		for _, f := range faces {
			src, err := NewFontSource(f.ttf)
			if err != nil {
				// The embedded Go fonts always parse.
				panic(err)
			}
			for _, family := range f.families {
				defaultLibrary.Add(family, f.slant, f.weight, src)
			}
		}
		ggchart.Logger().Debug("text: default font library loaded", "sources", len(faces))
	})
	return defaultLibrary
}
