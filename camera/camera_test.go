package camera_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/azrogers/mapzk/camera"
)

func TestNewViewport_DefaultsToZoomOne(t *testing.T) {
	t.Parallel()

	v := camera.NewViewport(image.Rect(0, 0, 800, 600))
	assert.InDelta(t, 1.0, v.ZoomFactor(), 0.0001)

	x, y := v.Offset()
	assert.InDelta(t, 0.0, x, 0.0001)
	assert.InDelta(t, 0.0, y, 0.0001)
}

func TestViewport_Pan_ClampsToBounds(t *testing.T) {
	t.Parallel()

	v := camera.NewViewport(image.Rect(0, 0, 100, 100))

	v.Pan(-500, -500)

	x, y := v.Offset()
	assert.InDelta(t, 0.0, x, 0.0001)
	assert.InDelta(t, 0.0, y, 0.0001)

	v.Pan(10000, 10000)

	x, y = v.Offset()
	assert.InDelta(t, 100.0, x, 0.0001)
	assert.InDelta(t, 100.0, y, 0.0001)
}

func TestViewport_Zoom_ClampsToRange(t *testing.T) {
	t.Parallel()

	v := camera.NewViewport(image.Rect(0, 0, 100, 100))

	v.Zoom(0.0001)
	assert.InDelta(t, 0.01, v.ZoomFactor(), 0.0001)

	v.Zoom(1_000_000)
	assert.InDelta(t, 100.0, v.ZoomFactor(), 0.0001)
}

func TestViewport_Zoom_MultipliesCurrentFactor(t *testing.T) {
	t.Parallel()

	v := camera.NewViewport(image.Rect(0, 0, 100, 100))

	v.Zoom(2)
	assert.InDelta(t, 2.0, v.ZoomFactor(), 0.0001)

	v.Zoom(2)
	assert.InDelta(t, 4.0, v.ZoomFactor(), 0.0001)
}

func TestViewport_Visible_ReturnsImageSizedToBounds(t *testing.T) {
	t.Parallel()

	v := camera.NewViewport(image.Rect(0, 0, 64, 48))

	src := image.NewRGBA(image.Rect(0, 0, 512, 512))

	out := v.Visible(src)
	assert.Equal(t, 64, out.Bounds().Dx())
	assert.Equal(t, 48, out.Bounds().Dy())
}
