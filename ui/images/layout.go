package images

import (
	"image"
	"strconv"
	"strings"
)

// FitSquare returns the largest square that fits a w x h viewport, centred in it.
// The square is at least 1x1 so that callers can always scale into it.
func FitSquare(w, h int) image.Rectangle {
	side := min(w, h)
	if side < 1 {
		side = 1
	}
	x0 := max((w-side)/2, 0)
	y0 := max((h-side)/2, 0)
	return image.Rect(x0, y0, x0+side, y0+side)
}

// SourceScale converts screen pixels in a square of side viewSide into source
// pixels of a crop with side dimension.
func SourceScale(dimension, viewSide int) float64 {
	if viewSide < 1 || dimension < 1 {
		return 1
	}
	return float64(dimension) / float64(viewSide)
}

// ParseSize converts the width and height strings Tk reports in <Configure>
// events. ok is false when either value is not a positive integer.
func ParseSize(w, h string) (width, height int, ok bool) {
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return 0, 0, false
	}
	height, err = strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
