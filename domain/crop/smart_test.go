package crop

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartOffset_InRange(t *testing.T) {
	src := imaging.New(300, 100, color.NRGBA{A: 255})
	// busy detail on the right-hand side
	for y := 0; y < 100; y++ {
		for x := 220; x < 300; x++ {
			if (x+y)%3 == 0 {
				src.Set(x, y, color.NRGBA{R: 255, G: 200, B: 150, A: 255})
			}
		}
	}
	img := New(src, "")
	off, err := SmartOffset(context.Background(), img)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, off, 0)
	assert.LessOrEqual(t, off, img.MaxOffset())
}

func TestSmartOffset_SquareIsZero(t *testing.T) {
	img := New(image.NewRGBA(image.Rect(0, 0, 50, 50)), "")
	off, err := SmartOffset(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
}

func TestSmartOffset_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := New(imaging.New(2000, 1000, color.White), "")
	_, err := SmartOffset(ctx, img)
	// The analyzer may win the race on a fast machine; only a cancellation error is acceptable otherwise.
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestSmartOffset_NilImage(t *testing.T) {
	_, err := SmartOffset(context.Background(), nil)
	assert.Error(t, err)
}
