package model

import "github.com/soocke/square-crop-go/domain/crop"

// ImageModel owns the single SquareImage shown by the window.
// A load replaces it wholesale; nothing else swaps it out.
type ImageModel struct {
	current *crop.SquareImage
}

func NewImageModel(initial *crop.SquareImage) *ImageModel {
	return &ImageModel{current: initial}
}

// Current returns the image being cropped (nil before anything was set).
func (m *ImageModel) Current() *crop.SquareImage {
	if m == nil {
		return nil
	}
	return m.current
}

// Replace installs img as the current image. A nil img is ignored.
func (m *ImageModel) Replace(img *crop.SquareImage) {
	if m == nil || img == nil {
		return
	}
	m.current = img
}
