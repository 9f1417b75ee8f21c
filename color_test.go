package ggchart

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{0, 0, 0, 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{255, 0, 0, 255}},
		{"transparent", Transparent, color.NRGBA{0, 0, 0, 0}},
		{"out of range", RGBA{2, -1, 0, 1}, color.NRGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	for _, c := range []RGBA{Black, White, Blue, Magenta} {
		got := FromColor(c.Color())
		if math.Abs(got.R-c.R) > 1e-3 || math.Abs(got.G-c.G) > 1e-3 ||
			math.Abs(got.B-c.B) > 1e-3 || math.Abs(got.A-c.A) > 1e-3 {
			t.Errorf("FromColor(%v.Color()) = %v", c, got)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", Red},
		{"#008000", Green},
		{"0f0", Lime},
		{"00f", Blue},
		{"#ffffff00", RGBA{1, 1, 1, 0}},
		{"xyz12", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlphaHelpers(t *testing.T) {
	c := Red.WithAlpha(0.5)
	if c.A != 0.5 || c.R != 1 {
		t.Errorf("WithAlpha(0.5) = %v", c)
	}
	if got := c.ScaleAlpha(0.5).A; got != 0.25 {
		t.Errorf("ScaleAlpha(0.5).A = %v, want 0.25", got)
	}
	if !Transparent.IsTransparent() || Red.IsTransparent() {
		t.Error("IsTransparent mismatch")
	}
}
