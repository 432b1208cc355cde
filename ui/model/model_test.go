package model

import (
	"image"
	"testing"

	"github.com/soocke/square-crop-go/domain/crop"
)

func TestDragModel_Lifecycle(t *testing.T) {
	var m DragModel
	if m.Active() {
		t.Fatalf("zero value must be idle")
	}
	m.Press(10, 20, 42)
	if !m.Active() {
		t.Fatalf("expected active after press")
	}
	x, y, off := m.Anchor()
	if x != 10 || y != 20 || off != 42 {
		t.Fatalf("unexpected anchor (%d,%d,%d)", x, y, off)
	}
	m.Release()
	m.Release()
	if m.Active() {
		t.Fatalf("expected idle after release")
	}
}

func TestDragModel_NilSafe(t *testing.T) {
	var m *DragModel
	m.Press(1, 2, 3)
	m.Release()
	if m.Active() {
		t.Fatalf("nil model is never active")
	}
	if x, y, off := m.Anchor(); x != 0 || y != 0 || off != 0 {
		t.Fatalf("nil anchor should be zero")
	}
}

func TestViewportModel_FallbackAndScale(t *testing.T) {
	m := NewViewportModel(500)
	if w, h := m.Size(); w != 500 || h != 500 {
		t.Fatalf("expected fallback 500x500 got %dx%d", w, h)
	}
	if !m.SetSize(800, 400) {
		t.Fatalf("first size should be a change")
	}
	if m.SetSize(800, 400) {
		t.Fatalf("same size should not be a change")
	}
	if m.SetSize(1, 1) {
		t.Fatalf("placeholder geometry must be ignored")
	}
	sq := m.Square()
	if sq.Dx() != 400 || sq.Min.X != 200 {
		t.Fatalf("unexpected square %v", sq)
	}
	if s := m.Scale(600); s != 1.5 {
		t.Fatalf("expected 1.5 source px per screen px, got %v", s)
	}
}

func TestImageModel_Replace(t *testing.T) {
	first := crop.New(image.NewRGBA(image.Rect(0, 0, 4, 2)), "a.png")
	m := NewImageModel(first)
	m.Replace(nil)
	if m.Current() != first {
		t.Fatalf("nil replace must keep current image")
	}
	second := crop.New(image.NewRGBA(image.Rect(0, 0, 2, 4)), "b.png")
	m.Replace(second)
	if m.Current() != second {
		t.Fatalf("expected replaced image")
	}
}
