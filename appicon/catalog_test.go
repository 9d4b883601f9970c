package appicon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconPath(t *testing.T) {
	got, err := IconPath(filepath.Join("/opt", "money-tracker", "tools"))
	require.NoError(t, err)

	want := filepath.Join(
		"/opt", "money-tracker",
		"frontend", "ios", "App", "App",
		"Assets.xcassets", "AppIcon.appiconset",
		"AppIcon-512@2x.png",
	)
	assert.Equal(t, want, got, "icon path should resolve one level above the tool directory")
	assert.True(t, filepath.IsAbs(got), "icon path should be absolute")
}

func TestIconPathDeterministic(t *testing.T) {
	a, err := IconPath("/x/tools")
	require.NoError(t, err)
	b, err := IconPath("/x/tools")
	require.NoError(t, err)
	assert.Equal(t, a, b, "destination must be the same on every run")
}
