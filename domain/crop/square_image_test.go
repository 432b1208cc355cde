package crop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRGBA(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestNew_Landscape(t *testing.T) {
	s := New(newRGBA(800, 600), "photo.jpg")
	assert.Equal(t, AlongWidth, s.Direction())
	assert.Equal(t, 600, s.Dimension())
	assert.Equal(t, 200, s.MaxOffset())
	assert.Equal(t, 0, s.Offset())
	assert.True(t, s.ConsumeDirty(), "new image must request an initial render")
}

func TestNew_Portrait(t *testing.T) {
	s := New(newRGBA(600, 800), "")
	assert.Equal(t, AlongHeight, s.Direction())
	assert.Equal(t, 600, s.Dimension())
	assert.Equal(t, 200, s.MaxOffset())
}

func TestNew_SquareSlidesNowhere(t *testing.T) {
	s := New(newRGBA(300, 300), "")
	assert.Equal(t, AlongWidth, s.Direction())
	assert.Equal(t, 0, s.MaxOffset())
	s.SetOffset(50)
	assert.Equal(t, 0, s.Offset())
}

func TestSetOffset_Clamps(t *testing.T) {
	s := New(newRGBA(800, 600), "")
	s.SetOffset(500)
	assert.Equal(t, 200, s.Offset())
	s.SetOffset(-50)
	assert.Equal(t, 0, s.Offset())
	s.SetOffset(123)
	assert.Equal(t, 123, s.Offset())
}

func TestSetOffset_AlwaysInRange(t *testing.T) {
	sizes := [][2]int{{800, 600}, {600, 800}, {1, 1000}, {1000, 1}, {64, 64}}
	candidates := []int{-1 << 30, -1000, -1, 0, 1, 199, 200, 201, 999, 1 << 30}
	for _, sz := range sizes {
		s := New(newRGBA(sz[0], sz[1]), "")
		for _, c := range candidates {
			s.SetOffset(c)
			require.GreaterOrEqual(t, s.Offset(), 0, "size=%v candidate=%d", sz, c)
			require.LessOrEqual(t, s.Offset(), s.MaxOffset(), "size=%v candidate=%d", sz, c)
		}
	}
}

func TestSetOffset_DirtyOnlyOnChange(t *testing.T) {
	s := New(newRGBA(800, 600), "")
	s.ConsumeDirty()

	s.SetOffset(0)
	assert.False(t, s.ConsumeDirty(), "same offset must not raise dirty")

	s.SetOffset(42)
	s.SetOffset(42)
	assert.True(t, s.ConsumeDirty())
	assert.False(t, s.ConsumeDirty())

	s.SetOffset(1000)
	s.ConsumeDirty()
	s.SetOffset(5000) // clamps to the same max
	assert.False(t, s.ConsumeDirty())
}

func TestConsumeDirty_ConsumeOnce(t *testing.T) {
	s := New(newRGBA(10, 20), "")
	assert.True(t, s.ConsumeDirty())
	assert.False(t, s.ConsumeDirty())
}

func TestAddOffsetFromDelta_UsesSlidingAxis(t *testing.T) {
	land := New(newRGBA(800, 600), "")
	land.AddOffsetFromDelta(30, 999, 10)
	assert.Equal(t, 40, land.Offset())

	port := New(newRGBA(600, 800), "")
	port.ConsumeDirty()
	port.AddOffsetFromDelta(999, 0, 0)
	assert.Equal(t, 0, port.Offset(), "non-active axis must be ignored")
	assert.False(t, port.ConsumeDirty())

	port.AddOffsetFromDelta(0, 75, 100)
	assert.Equal(t, 175, port.Offset())
}

func TestAddOffsetFromDelta_IndependentOfCurrentOffset(t *testing.T) {
	s := New(newRGBA(800, 600), "")
	s.AddOffsetFromDelta(25, 0, 50)
	first := s.Offset()

	s.SetOffset(190)
	s.AddOffsetFromDelta(25, 0, 50)
	assert.Equal(t, first, s.Offset())

	s.AddOffsetFromDelta(-500, 0, 50)
	assert.Equal(t, 0, s.Offset())
}

func TestCropped_SquareAndInBounds(t *testing.T) {
	for _, sz := range [][2]int{{800, 600}, {600, 800}, {5, 3}} {
		s := New(newRGBA(sz[0], sz[1]), "")
		for _, off := range []int{-10, 0, 1, s.MaxOffset(), s.MaxOffset() + 10} {
			s.SetOffset(off)
			b := s.Cropped().Bounds()
			require.Equal(t, s.Dimension(), b.Dx())
			require.Equal(t, s.Dimension(), b.Dy())
			require.True(t, b.In(image.Rect(0, 0, sz[0], sz[1])), "crop %v escapes %v", b, sz)
		}
	}
}

func TestCropped_FollowsOffset(t *testing.T) {
	src := newRGBA(8, 4)
	red := color.RGBA{R: 255, A: 255}
	src.SetRGBA(3, 0, red)

	s := New(src, "")
	s.SetOffset(3)
	got := s.Cropped()
	r, _, _, a := got.At(got.Bounds().Min.X, got.Bounds().Min.Y).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, image.Rect(3, 0, 7, 4), s.Rect())
}

func TestCropped_NoSideEffects(t *testing.T) {
	s := New(newRGBA(800, 600), "")
	s.SetOffset(100)
	s.ConsumeDirty()
	_ = s.Cropped()
	_ = s.Cropped()
	assert.Equal(t, 100, s.Offset())
	assert.False(t, s.ConsumeDirty())
}

// offsetOrigin is an image.Image whose bounds do not start at (0,0) and which
// has no SubImage method, exercising the copying path.
type offsetOrigin struct{ image.Image }

func TestCropped_NonZeroOriginWithoutSubImage(t *testing.T) {
	base := image.NewRGBA(image.Rect(10, 20, 30, 30))
	base.SetRGBA(15, 20, color.RGBA{G: 255, A: 255})
	s := New(offsetOrigin{base}, "")
	require.Equal(t, 20, s.Width())
	require.Equal(t, 10, s.Dimension())

	s.SetOffset(5)
	got := s.Cropped()
	assert.Equal(t, image.Rect(0, 0, 10, 10), got.Bounds())
	_, g, _, _ := got.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), g)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "along-width", AlongWidth.String())
	assert.Equal(t, "along-height", AlongHeight.String())
	assert.Equal(t, "unknown", Direction(7).String())
}
