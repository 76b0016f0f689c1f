// Package camera implements a 2D pan/zoom viewport over a terrain
// image, the flat counterpart to the original engine's 3D camera and
// projection matrix management.
package camera

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	minZoom = 0.01
	maxZoom = 100.0
)

// Viewport tracks the visible region of a large terrain image: an
// offset in source-image pixels plus a zoom factor. On every change the
// offset is clamped to the bounds given to [NewViewport] and the zoom
// factor to [0.01, 100].
//
// Create instances with [NewViewport].
type Viewport struct {
	offsetX, offsetY float64
	zoom             float64
	bounds           image.Rectangle
}

// NewViewport creates a Viewport at zoom 1 with its offset at (0, 0).
func NewViewport(bounds image.Rectangle) *Viewport {
	return &Viewport{
		zoom:   1,
		bounds: bounds,
	}
}

// Pan moves the viewport by (dx, dy) source pixels, clamped so the
// offset never leaves the underlying bounds.
func (v *Viewport) Pan(dx, dy float64) {
	v.offsetX = clamp(v.offsetX+dx, float64(v.bounds.Min.X), float64(v.bounds.Max.X))
	v.offsetY = clamp(v.offsetY+dy, float64(v.bounds.Min.Y), float64(v.bounds.Max.Y))
}

// Zoom multiplies the current zoom factor by factor, clamped to
// [0.01, 100].
func (v *Viewport) Zoom(factor float64) {
	v.zoom = clamp(v.zoom*factor, minZoom, maxZoom)
}

// Offset returns the current pan offset in source-image pixels.
func (v *Viewport) Offset() (x, y float64) { return v.offsetX, v.offsetY }

// ZoomFactor returns the current zoom factor.
func (v *Viewport) ZoomFactor() float64 { return v.zoom }

// Visible renders the portion of img currently framed by the viewport
// into a new RGBA image sized to the viewport's bounds.
func (v *Viewport) Visible(img image.Image) *image.RGBA {
	dst := image.NewRGBA(v.bounds)

	w := float64(v.bounds.Dx()) / v.zoom
	h := float64(v.bounds.Dy()) / v.zoom

	srcRect := image.Rect(
		int(v.offsetX), int(v.offsetY),
		int(v.offsetX+w), int(v.offsetY+h),
	).Intersect(img.Bounds())

	draw.ApproxBiLinear.Scale(dst, v.bounds, img, srcRect, draw.Over, nil)

	return dst
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
