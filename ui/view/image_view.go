package view

import (
	"image"

	"github.com/soocke/square-crop-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImageView shows the scaled crop in a label centred inside the viewport frame.
type ImageView interface {
	ShowImage(img image.Image)
	Label() *LabelWidget
}

type imageView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo, deleted when replaced
}

// NewImageView creates the label inside parent and centres it there.
// The label is placed rather than gridded so its size never feeds back into the frame's size.
func NewImageView(parent *FrameWidget, placeholderSide int) ImageView {
	if placeholderSide < 1 {
		placeholderSide = 1
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderSide, placeholderSide))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := parent.Label(Image(photo), Borderwidth(0), Cursor("fleur"))
	Place(lbl, Relx(0.5), Rely(0.5), Anchor("center"))
	return &imageView{label: lbl, prevPhoto: photo}
}

func (v *imageView) Label() *LabelWidget { return v.label }

func (v *imageView) ShowImage(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
