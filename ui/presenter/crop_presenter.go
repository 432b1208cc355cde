package presenter

import (
	"image"
	"log/slog"
	"math"

	"github.com/soocke/square-crop-go/ui/images"
	"github.com/soocke/square-crop-go/ui/model"
)

// CropView draws the scaled crop centred in the viewport.
type CropView interface {
	ShowImage(img image.Image)
}

// CropPresenter turns pointer drags and viewport resizes into crop offset
// updates and redraws.
type CropPresenter struct {
	images   *model.ImageModel
	drag     *model.DragModel
	viewport *model.ViewportModel
	view     CropView
	logger   *slog.Logger
}

func NewCropPresenter(images *model.ImageModel, viewport *model.ViewportModel, view CropView, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{images: images, drag: &model.DragModel{}, viewport: viewport, view: view, logger: logger}
}

// Press starts a drag anchored at the current crop offset.
func (p *CropPresenter) Press(x, y int) {
	if p == nil {
		return
	}
	img := p.images.Current()
	if img == nil {
		return
	}
	p.drag.Press(x, y, img.Offset())
}

// Motion moves the crop window by the distance dragged since Press.
// Dragging right or down moves the window left or up, like natural scrolling.
func (p *CropPresenter) Motion(x, y int) {
	if p == nil || !p.drag.Active() {
		return
	}
	img := p.images.Current()
	if img == nil {
		return
	}
	ax, ay, base := p.drag.Anchor()
	scale := p.viewport.Scale(img.Dimension())
	dx := int(math.Round(float64(ax-x) * scale))
	dy := int(math.Round(float64(ay-y) * scale))
	img.AddOffsetFromDelta(dx, dy, base)
	if img.ConsumeDirty() {
		p.Render()
	}
}

// Release ends the drag.
func (p *CropPresenter) Release() {
	if p != nil {
		p.drag.Release()
	}
}

// Leave ends the drag when the pointer exits the viewport.
func (p *CropPresenter) Leave() { p.Release() }

// Dragging reports whether a drag is in progress.
func (p *CropPresenter) Dragging() bool { return p != nil && p.drag.Active() }

// Resize records the new viewport size and redraws when it changed.
func (p *CropPresenter) Resize(w, h int) {
	if p == nil {
		return
	}
	if p.viewport.SetSize(w, h) {
		p.Render()
	}
}

// Render draws the current crop scaled to the viewport square.
func (p *CropPresenter) Render() {
	if p == nil || p.view == nil {
		return
	}
	img := p.images.Current()
	if img == nil {
		return
	}
	sq := p.viewport.Square()
	p.view.ShowImage(images.ScaleSquare(img.Cropped(), sq.Dx()))
	if p.logger != nil {
		p.logger.Debug("rendered crop", "offset", img.Offset(), "side", sq.Dx())
	}
}
