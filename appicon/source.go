package appicon

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SourceKind tags where an image source lives.
type SourceKind int

const (
	// SourceLocal is a filesystem path.
	SourceLocal SourceKind = iota
	// SourceRemote is an http:// or https:// URL.
	SourceRemote
)

// Source is an image source: a local file path or a remote URL. The kind is
// decided purely by the argument's URL prefix, matching how the tool is
// invoked by hand during packaging.
type Source struct {
	// Kind is the source tag.
	Kind SourceKind
	// Raw is the trimmed argument string (path or URL).
	Raw string
}

// ParseSource classifies a command-line argument as a local path or a
// remote URL.
//
// Arguments:
// - arg: The raw argument. Surrounding whitespace is trimmed.
//
// Returns:
// - Source: The classified source.
func ParseSource(arg string) Source {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return Source{Kind: SourceRemote, Raw: arg}
	}
	return Source{Kind: SourceLocal, Raw: arg}
}

// Acquire materializes the source as a readable local file.
//
// For a local source the path is resolved to an absolute path and must name a
// regular file. For a remote source the URL is fetched into a temporary file.
// The returned cleanup func must be called on every exit path; for remote
// sources it deletes the temporary file, for local sources it is a no-op.
//
// Returns:
// - string: Absolute path of the readable file.
// - func(): Cleanup to run when the file is no longer needed. Always non-nil.
// - error: ErrNotFile or ErrFetch based failures.
func (s Source) Acquire() (string, func(), error) {
	if s.Kind == SourceRemote {
		return fetchToTemp(s.Raw)
	}

	path, err := filepath.Abs(s.Raw)
	if err != nil {
		return "", nil, errors.Wrapf(ErrNotFile, "%s", s.Raw)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil, errors.Wrapf(ErrNotFile, "%s", path)
	}
	return path, func() {}, nil
}

// fetchToTemp downloads url into a temporary file and returns its path with a
// cleanup func that removes it.
func fetchToTemp(url string) (string, func(), error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", nil, errors.Wrapf(ErrFetch, "get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, errors.Wrapf(ErrFetch, "get %s: status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp("", "appicon-*.img")
	if err != nil {
		return "", nil, errors.Wrapf(ErrFetch, "create temp file: %v", err)
	}
	cleanup := func() { os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, errors.Wrapf(ErrFetch, "download %s: %v", url, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, errors.Wrapf(ErrFetch, "close temp file: %v", err)
	}
	return tmp.Name(), cleanup, nil
}
