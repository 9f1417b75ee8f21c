package ggchart

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func nearPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"translate then rotate", Translate(5, 5).Multiply(Rotate(math.Pi / 2)), Pt(1, 0), Pt(5, 6)},
		{"rotate then translate", Rotate(math.Pi / 2).Multiply(Translate(5, 5)), Pt(1, 0), Pt(-5, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !nearPoint(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"translation", Translate(10, 20), 1},
		{"uniform scale", Scale(2, 2), 2},
		{"non-uniform scale", Scale(4, 1), 2},
		{"rotation", Rotate(0.7), 1},
		{"scale and rotate", Scale(3, 3).Multiply(Rotate(math.Pi / 4)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointRotate(t *testing.T) {
	got := Pt(2, 0).Rotate(math.Pi / 2)
	if !nearPoint(got, Pt(0, 2)) {
		t.Errorf("Rotate = %v, want (0, 2)", got)
	}
}
