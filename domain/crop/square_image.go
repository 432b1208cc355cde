package crop

import (
	"image"

	"github.com/disintegration/imaging"
)

// Direction is the axis along which the square crop window slides.
type Direction int

const (
	// AlongWidth slides the window horizontally across a landscape (or square) image.
	AlongWidth Direction = iota
	// AlongHeight slides the window vertically across a portrait image.
	AlongHeight
)

func (d Direction) String() string {
	switch d {
	case AlongWidth:
		return "along-width"
	case AlongHeight:
		return "along-height"
	default:
		return "unknown"
	}
}

// SquareImage is a loaded source image plus the position of a square crop window.
//
// Width, height, dimension and direction are fixed at construction. Only the
// offset (and the dirty flag tracking it) changes afterwards, and the offset
// always satisfies 0 <= offset <= MaxOffset().
// Not safe for concurrent use; it belongs to the UI event loop.
type SquareImage struct {
	source    image.Image
	path      string
	width     int
	height    int
	direction Direction
	dimension int
	offset    int
	dirty     bool
}

// New wraps src. path is the file the image came from; empty for placeholders.
// The returned image starts at offset 0 and dirty, so the first poll triggers a render.
func New(src image.Image, path string) *SquareImage {
	b := src.Bounds()
	s := &SquareImage{
		source: src,
		path:   path,
		width:  b.Dx(),
		height: b.Dy(),
		dirty:  true,
	}
	if s.width >= s.height {
		s.direction = AlongWidth
		s.dimension = s.height
	} else {
		s.direction = AlongHeight
		s.dimension = s.width
	}
	return s
}

func (s *SquareImage) Width() int           { return s.width }
func (s *SquareImage) Height() int          { return s.height }
func (s *SquareImage) Dimension() int       { return s.dimension }
func (s *SquareImage) Offset() int          { return s.offset }
func (s *SquareImage) Direction() Direction { return s.direction }
func (s *SquareImage) Path() string         { return s.path }
func (s *SquareImage) Source() image.Image  { return s.source }

// MaxOffset is the largest valid offset: the longer side minus the crop dimension.
func (s *SquareImage) MaxOffset() int {
	return max(s.width, s.height) - s.dimension
}

// SetOffset clamps candidate into [0, MaxOffset()] and stores it.
// The dirty flag is raised only when the stored offset actually changes.
func (s *SquareImage) SetOffset(candidate int) {
	var next int
	switch {
	case candidate < 0:
		next = 0
	case s.dimension+candidate > max(s.width, s.height):
		next = s.MaxOffset()
	default:
		next = candidate
	}
	if next != s.offset {
		s.offset = next
		s.dirty = true
	}
}

// AddOffsetFromDelta sets the offset to base plus the delta on the sliding axis.
// The delta on the other axis is ignored. base is the offset captured when the
// drag started, so repeated calls never accumulate rounding error.
func (s *SquareImage) AddOffsetFromDelta(dx, dy, base int) {
	delta := dy
	if s.direction == AlongWidth {
		delta = dx
	}
	s.SetOffset(base + delta)
}

// ConsumeDirty reports whether the offset changed since the last call and clears the flag.
func (s *SquareImage) ConsumeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Rect returns the crop square in source-relative coordinates (origin at 0,0).
func (s *SquareImage) Rect() image.Rectangle {
	x, y := 0, 0
	if s.direction == AlongWidth {
		x = s.offset
	} else {
		y = s.offset
	}
	return image.Rect(x, y, x+s.dimension, y+s.dimension)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Cropped returns the current dimension x dimension region of the source.
// When the source supports SubImage the result shares its pixels; otherwise
// a copy anchored at (0,0) is made. Cropped never mutates the SquareImage.
func (s *SquareImage) Cropped() image.Image {
	r := s.Rect().Add(s.source.Bounds().Min)
	if si, ok := s.source.(subImager); ok {
		return si.SubImage(r)
	}
	return imaging.Crop(s.source, r)
}
