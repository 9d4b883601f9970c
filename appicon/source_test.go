package appicon

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	assert.Equal(t, SourceRemote, ParseSource("http://example.com/icon.png").Kind)
	assert.Equal(t, SourceRemote, ParseSource("https://example.com/icon.png").Kind)
	assert.Equal(t, SourceLocal, ParseSource("icon.png").Kind)
	assert.Equal(t, SourceLocal, ParseSource("/tmp/icon.png").Kind)

	// Whitespace around the argument is trimmed before classification.
	s := ParseSource("  https://example.com/icon.png \n")
	assert.Equal(t, SourceRemote, s.Kind)
	assert.Equal(t, "https://example.com/icon.png", s.Raw)
}

func TestAcquireLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	got, cleanup, err := ParseSource(path).Acquire()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "acquired path should be absolute")

	// Cleanup is a no-op for local sources: the user's file must survive.
	cleanup()
	_, err = os.Stat(path)
	assert.NoError(t, err, "local source file should not be deleted by cleanup")
}

func TestAcquireLocalMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.png")

	_, _, err := ParseSource(missing).Acquire()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFile), "missing path should report ErrNotFile")
	assert.Contains(t, err.Error(), missing, "error should name the resolved path")
}

func TestAcquireLocalDirectory(t *testing.T) {
	_, _, err := ParseSource(t.TempDir()).Acquire()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFile), "a directory is not a regular file")
}

func TestAcquireRemote(t *testing.T) {
	body := []byte("fake image bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	path, cleanup, err := ParseSource(srv.URL + "/icon.png").Acquire()
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, data, "temp file should hold the downloaded bytes")

	// The temp file must be gone once the caller releases it.
	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "temp file should be deleted by cleanup")
}

func TestAcquireRemoteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, _, err := ParseSource(srv.URL).Acquire()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch), "non-2xx status should report ErrFetch")
}

func TestAcquireRemoteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, _, err := ParseSource(url).Acquire()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch), "connection failure should report ErrFetch")
}
