package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"golang.org/x/image/bmp"
)

// WhiteBMP is the blank square shown before any image is opened.
//
//go:embed white.bmp
var WhiteBMP []byte

// PlaceholderImage decodes the embedded white.bmp.
func PlaceholderImage() (image.Image, error) {
	if len(WhiteBMP) == 0 {
		return nil, fmt.Errorf("embedded white.bmp is empty")
	}
	img, err := bmp.Decode(bytes.NewReader(WhiteBMP))
	if err != nil {
		return nil, err
	}
	return img, nil
}
