package ggchart

import "testing"

// call is one capability call observed by traceBackend.
type call struct {
	op     string
	p      Point   // MoveTo, LineTo, DrawText (local coordinates)
	device Point   // DrawText origin in device coordinates
	center Point   // Arc, ArcNeg
	r      float64 // Arc radius
	a1, a2 float64 // Arc angles
	m      Matrix  // Transform
	f      float64 // ScaleAlpha
	text   string  // DrawText, MeasureText
	line   LineStyle
	fill   FillStyle
	font   FontStyle
}

// traceBackend records every capability call and reports metrics from a
// table, falling back to 5 units per byte with ascent 8 and descent 2.
type traceBackend struct {
	calls   []call
	metrics map[string]TextSize
	ctm     Matrix
	stack   []Matrix
}

var _ Backend = (*traceBackend)(nil)

func newTraceBackend() *traceBackend {
	return &traceBackend{ctm: Identity()}
}

func (b *traceBackend) add(c call) { b.calls = append(b.calls, c) }

func (b *traceBackend) Save() {
	b.stack = append(b.stack, b.ctm)
	b.add(call{op: "Save"})
}

func (b *traceBackend) Restore() {
	if n := len(b.stack); n > 0 {
		b.ctm = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
	b.add(call{op: "Restore"})
}

func (b *traceBackend) Transform(m Matrix) {
	b.ctm = b.ctm.Multiply(m)
	b.add(call{op: "Transform", m: m})
}

func (b *traceBackend) ScaleAlpha(f float64) { b.add(call{op: "ScaleAlpha", f: f}) }
func (b *traceBackend) NewPath()             { b.add(call{op: "NewPath"}) }
func (b *traceBackend) MoveTo(p Point)       { b.add(call{op: "MoveTo", p: p}) }
func (b *traceBackend) LineTo(p Point)       { b.add(call{op: "LineTo", p: p}) }

func (b *traceBackend) Arc(c Point, r, a1, a2 float64) {
	b.add(call{op: "Arc", center: c, r: r, a1: a1, a2: a2})
}

func (b *traceBackend) ArcNeg(c Point, r, a1, a2 float64) {
	b.add(call{op: "ArcNeg", center: c, r: r, a1: a1, a2: a2})
}

func (b *traceBackend) ClosePath()                { b.add(call{op: "ClosePath"}) }
func (b *traceBackend) Stroke()                   { b.add(call{op: "Stroke"}) }
func (b *traceBackend) Fill()                     { b.add(call{op: "Fill"}) }
func (b *traceBackend) SetLineStyle(ls LineStyle) { b.add(call{op: "SetLineStyle", line: ls}) }
func (b *traceBackend) SetFillStyle(fs FillStyle) { b.add(call{op: "SetFillStyle", fill: fs}) }
func (b *traceBackend) SetFontStyle(fs FontStyle) { b.add(call{op: "SetFontStyle", font: fs}) }

func (b *traceBackend) MeasureText(s string) TextSize {
	b.add(call{op: "MeasureText", text: s})
	if ts, ok := b.metrics[s]; ok {
		return ts
	}
	return TextSize{Width: 5 * float64(len(s)), Ascent: 8, Descent: 2, YBearing: -7, Height: 12}
}

func (b *traceBackend) DrawText(p Point, s string) {
	b.add(call{op: "DrawText", p: p, device: b.ctm.TransformPoint(p), text: s})
}

// ops returns the sequence of operation names.
func (b *traceBackend) ops() []string {
	out := make([]string, len(b.calls))
	for i, c := range b.calls {
		out[i] = c.op
	}
	return out
}

// only returns the calls with the given operation name.
func (b *traceBackend) only(op string) []call {
	var out []call
	for _, c := range b.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func assertOps(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}
}
