// Package appicon implements the app-icon generation pipeline: acquire an
// image from a local path or URL, decode it, upscale it to the iOS icon
// resolution with nearest-neighbor resampling, and write it into the app's
// asset catalog.
package appicon

import "github.com/pkg/errors"

// Failure kinds for the pipeline. Every failure is fatal and maps to exit
// code 1 at the CLI; the kinds exist so callers and tests can tell the stages
// apart with errors.Is. Stage errors wrap one of these as their base cause.
var (
	// ErrNotFile indicates a local source argument that does not name a
	// regular file.
	ErrNotFile = errors.New("not a file")
	// ErrFetch indicates a failed HTTP(S) download of a remote source.
	ErrFetch = errors.New("fetch failed")
	// ErrDecode indicates bytes that could not be decoded as an image.
	ErrDecode = errors.New("decode failed")
	// ErrWrite indicates a failure creating the destination directory or
	// writing the output PNG.
	ErrWrite = errors.New("write failed")
)
