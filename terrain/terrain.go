// Package terrain loads and resizes the PNG images a [mapdef.MapDefinition]
// references (province, topology, and river maps) through a
// [content.Loader].
package terrain

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// contentLoader is the subset of [content.Loader] terrain needs,
// accepted as an interface so tests can supply fixtures without
// touching the filesystem.
type contentLoader interface {
	ReadBytes(logicalPath string) ([]byte, error)
}

// Load resolves logicalPath through loader and decodes it as a PNG
// image.
func Load(loader contentLoader, logicalPath string) (image.Image, error) {
	data, err := loader.ReadBytes(logicalPath)
	if err != nil {
		return nil, err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("terrain: decoding %s: %w", logicalPath, err)
	}

	return img, nil
}

// Resize scales img to fit within maxW x maxH while preserving aspect
// ratio, centering the result and leaving the surrounding pixels
// transparent.
func Resize(img image.Image, maxW, maxH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, maxW, maxH))

	srcBounds := img.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	scaleX := float64(maxW) / float64(srcW)
	scaleY := float64(maxH) / float64(srcH)

	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	offsetX := (maxW - newW) / 2
	offsetY := (maxH - newH) / 2

	dstRect := image.Rect(offsetX, offsetY, offsetX+newW, offsetY+newH)
	draw.ApproxBiLinear.Scale(dst, dstRect, img, srcBounds, draw.Over, nil)

	return dst
}
