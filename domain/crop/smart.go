package crop

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// resizer satisfies smartcrop's Resizer using imaging.
type resizer struct {
	filter imaging.ResampleFilter
}

func (r resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.filter)
}

// SmartOffset returns the offset on the sliding axis of the most interesting
// dimension x dimension region of the source, as judged by smartcrop.
// The result is clamped to [0, MaxOffset()]; callers apply it with SetOffset.
func SmartOffset(ctx context.Context, img *SquareImage) (int, error) {
	if img == nil || img.Dimension() <= 0 {
		return 0, fmt.Errorf("smart offset: no image")
	}
	if img.MaxOffset() == 0 {
		return 0, nil
	}
	analyzer := smartcrop.NewAnalyzer(resizer{filter: imaging.Lanczos})

	type result struct {
		rect image.Rectangle
		err  error
	}
	// Buffered so the analyzer goroutine can finish after a cancellation.
	ch := make(chan result, 1)
	go func() {
		r, err := analyzer.FindBestCrop(img.Source(), img.Dimension(), img.Dimension())
		ch <- result{rect: r, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return 0, fmt.Errorf("finding best crop: %w", res.err)
		}
		off := res.rect.Min.Y
		if img.Direction() == AlongWidth {
			off = res.rect.Min.X
		}
		return min(max(off, 0), img.MaxOffset()), nil
	}
}
