package images

import (
	"image"

	"github.com/nfnt/resize"
)

// UpscaleNearest resizes an image to the given dimensions using
// nearest-neighbor interpolation.
//
// Nearest-neighbor is deliberate: app icon sources are often small pixel-art
// images, and a smoothing filter (bilinear, Lanczos) would blur their hard
// edges. Each destination pixel copies the value of the single closest source
// pixel under the scale mapping, so a uniform source stays uniform and an
// integer upscale produces exact pixel blocks.
//
// Arguments:
// - img: The source image.
// - width: Target width in pixels.
// - height: Target height in pixels.
//
// Returns:
// - *image.RGBA: The resized image.
//
// @example
// icon := UpscaleNearest(src, 1024, 1024)
func UpscaleNearest(img image.Image, width, height int) *image.RGBA {
	resized := resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor)
	return ToRGBA(resized)
}
