package ggchart

import "testing"

func TestPolyline(t *testing.T) {
	p := Polyline([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)})
	elems := p.Elements()
	if len(elems) != 3 {
		t.Fatalf("len = %d, want 3", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("element 0 = %T, want MoveTo", elems[0])
	}
	for i := 1; i < 3; i++ {
		if _, ok := elems[i].(LineTo); !ok {
			t.Errorf("element %d = %T, want LineTo", i, elems[i])
		}
	}
	if Polyline(nil).Len() != 0 {
		t.Error("Polyline(nil) is not empty")
	}
}

func TestPathAppendAndClone(t *testing.T) {
	a := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 1))
	b := NewPath().MoveTo(Pt(2, 2)).Close()

	a.Append(b).Append(nil)
	if a.Len() != 4 {
		t.Fatalf("Len = %d, want 4", a.Len())
	}

	c := a.Clone()
	c.LineTo(Pt(9, 9))
	if a.Len() != 4 || c.Len() != 5 {
		t.Errorf("Clone shares storage: %d, %d", a.Len(), c.Len())
	}
}

func TestNilPath(t *testing.T) {
	var p *Path
	if p.Len() != 0 || p.Elements() != nil {
		t.Error("nil path is not empty")
	}
	if p.Clone().Len() != 0 {
		t.Error("clone of nil path is not empty")
	}
}
