// appicon upscales a source image (local file or URL) to the 1024×1024
// nearest-neighbor PNG expected by the iOS asset catalog.
// Usage: appicon <path_or_url>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pmarashian/money-tracker/appicon"
)

func main() {
	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "appicon: locate tool directory: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(filepath.Dir(exe), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code. On success
// the absolute destination path is written to stdout, one line; every failure
// writes a diagnostic to stderr and returns 1.
func run(toolDir string, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: appicon <path_or_url>")
		return 1
	}

	out, err := appicon.Generate(toolDir, args[0])
	if err != nil {
		fmt.Fprintf(stderr, "appicon: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}
