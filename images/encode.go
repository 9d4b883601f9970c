package images

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// EncodePNG writes an image to w in PNG format.
//
// Arguments:
// - w: Destination writer.
// - img: The image to encode.
//
// Returns:
// - error: An error if encoding fails.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "png encoding failed")
	}
	return nil
}

// WritePNG encodes an image as PNG and writes it to path, overwriting any
// existing file. The write is only reported successful once the file has been
// flushed and closed.
//
// Arguments:
// - path: Destination file path. The parent directory must exist.
// - img: The image to write.
//
// Returns:
// - error: An error if the file cannot be created or written.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
