package ggchart

import (
	"iter"
	"testing"
)

func TestDefaultColorSeqCycles(t *testing.T) {
	next, stop := iter.Pull(DefaultColorSeq())
	defer stop()

	n := len(DefaultColors)
	for i := range 2*n + 1 {
		c, ok := next()
		if !ok {
			t.Fatalf("sequence ended after %d colors", i)
		}
		if want := DefaultColors[i%n].WithAlpha(1); c != want {
			t.Errorf("color %d = %v, want %v", i, c, want)
		}
	}
}

func TestDefaultColorSeqOrder(t *testing.T) {
	want := []RGBA{Blue, Red, Green, Yellow, Cyan, Magenta}
	i := 0
	for c := range DefaultColorSeq() {
		if c != want[i] {
			t.Errorf("color %d = %v, want %v", i, c, want[i])
		}
		i++
		if i == len(want) {
			break
		}
	}
}

func TestDefaultColorSeqEmptyPalette(t *testing.T) {
	orig := DefaultColors
	t.Cleanup(func() { DefaultColors = orig })
	DefaultColors = nil

	for range DefaultColorSeq() {
		t.Fatal("empty palette yielded a color")
	}
}

func TestDefaultColorSeqGreenIsNamedGreen(t *testing.T) {
	next, stop := iter.Pull(DefaultColorSeq())
	defer stop()
	next()
	next()
	got, _ := next()
	if want := (RGBA{R: 0, G: 128.0 / 255, B: 0, A: 1}); got != want {
		t.Errorf("third color = %v, want %v", got, want)
	}
}
