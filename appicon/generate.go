package appicon

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pmarashian/money-tracker/images"
)

// Icon dimensions required by the AppIcon-512@2x asset catalog slot.
const (
	IconWidth  = 1024
	IconHeight = 1024
)

// Generate runs the full pipeline for one invocation: acquire the source
// image, decode it to RGBA, upscale it to 1024×1024 with nearest-neighbor
// resampling, and write it as PNG into the asset catalog, creating missing
// directories and overwriting any previous icon.
//
// The pipeline is strictly linear and aborts on the first error; the
// temporary file used for remote sources is removed on every exit path,
// including decode failure.
//
// Arguments:
// - toolDir: Directory containing the tool binary (anchors the destination).
// - arg: The source argument, a local path or an http(s) URL.
//
// Returns:
// - string: Absolute path of the written icon.
// - error: The first stage failure, wrapped with its failure kind.
func Generate(toolDir, arg string) (string, error) {
	path, cleanup, err := ParseSource(arg).Acquire()
	if err != nil {
		return "", err
	}
	defer cleanup()

	// A read failure here is a source access problem (permissions, file gone
	// since the stat), not a decoding one.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(ErrNotFile, "read %s: %v", path, err)
	}
	img, err := images.Decode(data)
	if err != nil {
		return "", errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}

	icon := images.UpscaleNearest(img, IconWidth, IconHeight)

	out, err := IconPath(toolDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", errors.Wrapf(ErrWrite, "create %s: %v", filepath.Dir(out), err)
	}
	if err := images.WritePNG(out, icon); err != nil {
		return "", errors.Wrapf(ErrWrite, "%v", err)
	}
	return out, nil
}
