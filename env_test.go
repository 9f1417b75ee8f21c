package ggchart

import (
	"errors"
	"testing"
)

func TestWithTransformBalancesFrames(t *testing.T) {
	b := newTraceBackend()
	env := NewEnv(b)

	err := env.WithTransform(Translate(1, 2), 1, func() error {
		env.MoveTo(Pt(0, 0))
		return nil
	})
	if err != nil {
		t.Fatalf("WithTransform() = %v", err)
	}
	assertOps(t, b.ops(), []string{"Save", "Transform", "MoveTo", "Restore"})
}

func TestWithTransformScalesAlpha(t *testing.T) {
	b := newTraceBackend()
	env := NewEnv(b)

	_ = env.WithTransform(Identity(), 0.25, nil)

	assertOps(t, b.ops(), []string{"Save", "Transform", "ScaleAlpha", "Restore"})
	if got := b.only("ScaleAlpha")[0].f; got != 0.25 {
		t.Errorf("ScaleAlpha = %v, want 0.25", got)
	}
}

func TestWithTransformReturnsBodyError(t *testing.T) {
	b := newTraceBackend()
	env := NewEnv(b)
	errBody := errors.New("body failed")

	err := env.WithTranslation(Pt(1, 1), func() error { return errBody })
	if !errors.Is(err, errBody) {
		t.Errorf("err = %v, want %v", err, errBody)
	}
	if ops := b.ops(); ops[len(ops)-1] != "Restore" {
		t.Errorf("frame not restored: %v", ops)
	}
}

func TestWithTransformRestoresOnPanic(t *testing.T) {
	b := newTraceBackend()
	env := NewEnv(b)

	func() {
		defer func() { _ = recover() }()
		_ = env.WithRotation(1, func() error { panic("boom") })
	}()

	assertOps(t, b.ops(), []string{"Save", "Transform", "Restore"})
	if len(b.stack) != 0 {
		t.Errorf("stack depth = %d, want 0", len(b.stack))
	}
}

func TestNestedFramesComposeTransforms(t *testing.T) {
	b := newTraceBackend()
	env := NewEnv(b)

	_ = env.WithTranslation(Pt(10, 0), func() error {
		return env.WithScale(2, 2, func() error {
			b.DrawText(Pt(1, 1), "x")
			return nil
		})
	})

	if got := b.only("DrawText")[0].device; got != Pt(12, 2) {
		t.Errorf("device = %v, want (12, 2)", got)
	}
	if b.ctm != Identity() {
		t.Errorf("ctm after frames = %+v, want identity", b.ctm)
	}
}

func TestStyleFrames(t *testing.T) {
	b := newTraceBackend()
	env := NewEnv(b)

	ls := SolidLine(3, Red)
	fs := SolidFillStyle(Blue)
	font := DefaultFontStyle()

	_ = env.WithLineStyle(ls, func() error {
		return env.WithFillStyle(fs, func() error {
			return env.WithFontStyle(font, nil)
		})
	})

	assertOps(t, b.ops(), []string{
		"Save", "SetLineStyle",
		"Save", "SetFillStyle",
		"Save", "SetFontStyle", "Restore",
		"Restore",
		"Restore",
	})
	if got := b.only("SetLineStyle")[0].line; got.Width != 3 || got.Color != Red {
		t.Errorf("line style = %+v", got)
	}
	if got := b.only("SetFillStyle")[0].fill; got != fs {
		t.Errorf("fill style = %+v, want %+v", got, fs)
	}
}

func TestNewEnvOptions(t *testing.T) {
	b := newTraceBackend()
	p := Pt(0.3, 0.3)

	def := NewEnv(b)
	if got := def.PointAlign()(p); got != Pt(0.5, 0.5) {
		t.Errorf("default PointAlign(%v) = %v, want bitmap", p, got)
	}
	if def.Backend() != Backend(b) {
		t.Error("Backend() mismatch")
	}

	vec := NewEnv(b, WithVectorAlignment())
	if vec.PointAlign()(p) != p || vec.CoordAlign()(p) != p {
		t.Error("WithVectorAlignment is not identity")
	}

	bmp := NewEnv(b, WithVectorAlignment(), WithBitmapAlignment())
	if got := bmp.CoordAlign()(p); got != Pt(0, 0) {
		t.Errorf("CoordAlign(%v) = %v, want (0, 0)", p, got)
	}
}
