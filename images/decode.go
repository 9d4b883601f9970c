// Package images provides the decode, resample, and encode primitives used by
// the app-icon pipeline. All operations are pure functions over in-memory
// buffers; file and network I/O live with the caller.
package images

import (
	"bytes"
	"image"
	"image/draw"

	// Register the decoders for every source format the pipeline accepts.
	// Output is always PNG, but the input may be whatever a designer exported.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/pkg/errors"
)

// Decode decodes raw image bytes into an RGBA pixel buffer.
//
// The source format is sniffed from the byte stream (PNG, JPEG, GIF, WebP, BMP
// and TIFF are registered). Formats without an alpha channel come back fully
// opaque. No metadata (EXIF, color profile) is read or preserved.
//
// Arguments:
// - data: The raw encoded image bytes.
//
// Returns:
// - *image.RGBA: The decoded pixel buffer.
// - error: An error if the bytes are not a decodable image.
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "image decoding failed")
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to an *image.RGBA buffer with a zero origin.
//
// If the input is already an RGBA image anchored at (0,0) it is returned
// as-is; otherwise the pixels are copied. Alpha is synthesized fully opaque
// for source formats that lack it.
//
// Arguments:
// - img: The image to convert.
//
// Returns:
// - *image.RGBA: The image as an RGBA buffer.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
