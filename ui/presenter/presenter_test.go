package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/square-crop-go/domain/crop"
	"github.com/soocke/square-crop-go/ui/model"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type mockCropView struct {
	shown int
	last  image.Image
}

func (v *mockCropView) ShowImage(img image.Image) {
	v.shown++
	v.last = img
}

func newSquare(w, h int, path string) *crop.SquareImage {
	return crop.New(image.NewRGBA(image.Rect(0, 0, w, h)), path)
}

// newCropPresenter returns a presenter over a w x h image drawn in a vw x vh viewport.
func newCropPresenter(w, h, vw, vh int) (*CropPresenter, *model.ImageModel, *mockCropView) {
	images := model.NewImageModel(newSquare(w, h, "img.png"))
	vp := model.NewViewportModel(vw)
	vp.SetSize(vw, vh)
	view := &mockCropView{}
	return NewCropPresenter(images, vp, view, discardLogger), images, view
}
