package appicon

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// iconRelPath locates the 1024×1024 icon slot inside the Capacitor iOS asset
// catalog, relative to the directory the tool is installed in. The layout is
// a deployment contract with the Xcode build: changing any component breaks
// icon pickup, so the path is fixed and not configurable.
var iconRelPath = filepath.Join(
	"..",
	"frontend", "ios", "App", "App",
	"Assets.xcassets", "AppIcon.appiconset",
	"AppIcon-512@2x.png",
)

// IconPath returns the absolute destination path of the app icon for a tool
// installed at toolDir.
//
// Arguments:
// - toolDir: Directory containing the tool binary.
//
// Returns:
// - string: Absolute path of the icon file inside the asset catalog.
// - error: An error if the path cannot be made absolute.
func IconPath(toolDir string) (string, error) {
	path, err := filepath.Abs(filepath.Join(toolDir, iconRelPath))
	if err != nil {
		return "", errors.Wrap(err, "resolve icon path")
	}
	return path, nil
}
