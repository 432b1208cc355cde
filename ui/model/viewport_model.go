package model

import (
	"image"

	"github.com/soocke/square-crop-go/ui/images"
)

// ViewportModel holds the last reported size of the drawing area. Zero value means
// nothing has been reported yet; Square then falls back to the configured default side.
type ViewportModel struct {
	width, height int
	fallback      int
}

func NewViewportModel(defaultSide int) *ViewportModel {
	return &ViewportModel{fallback: defaultSide}
}

// SetSize stores the viewport size and reports whether it changed.
// Non-positive sizes are ignored (Tk reports 1x1 before the first layout).
func (m *ViewportModel) SetSize(w, h int) bool {
	if m == nil || w <= 1 || h <= 1 {
		return false
	}
	if w == m.width && h == m.height {
		return false
	}
	m.width, m.height = w, h
	return true
}

// Size returns the stored viewport size, or the fallback square when none was reported.
func (m *ViewportModel) Size() (w, h int) {
	if m == nil {
		return 0, 0
	}
	if m.width <= 0 || m.height <= 0 {
		return m.fallback, m.fallback
	}
	return m.width, m.height
}

// Square is the centred square the crop is drawn into.
func (m *ViewportModel) Square() image.Rectangle {
	return images.FitSquare(m.Size())
}

// Scale is the number of source pixels covered by one screen pixel for a crop of the given dimension.
func (m *ViewportModel) Scale(dimension int) float64 {
	return images.SourceScale(dimension, m.Square().Dx())
}
