// SPDX-License-Identifier: MPL-2.0

// Package workspace locates and represents the rustlab workspace root.
//
// The root is recognized by three markers: a Cargo.toml file (the workspace
// manifest) plus examples/ and utils/ directories. All generator paths are
// resolved against the detected root, which is computed once at startup and
// passed down as an immutable value.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RootManifest is the marker manifest file required at the workspace root.
const RootManifest = "Cargo.toml"

// markerDirs are the directories that must exist alongside the root manifest.
var markerDirs = []string{"examples", "utils"}

// ErrNotRoot is returned when a directory is missing the workspace markers.
// Callers can check for it with errors.Is.
var ErrNotRoot = errors.New("not a rustlab workspace root")

// Workspace is the immutable workspace description. Root is always absolute.
type Workspace struct {
	Root string
}

// Detect verifies that dir is a workspace root and returns the Workspace.
// An empty dir means the current working directory.
func Detect(dir string) (Workspace, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Workspace{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return Workspace{}, fmt.Errorf("failed to resolve workspace path: %w", err)
	}

	ws := Workspace{Root: abs}
	if err := ws.Verify(); err != nil {
		return Workspace{}, err
	}
	return ws, nil
}

// Verify re-checks the root markers. Create calls this immediately before
// mutating the filesystem so validation failures never leave partial state.
func (w Workspace) Verify() error {
	info, err := os.Stat(filepath.Join(w.Root, RootManifest))
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s has no %s", ErrNotRoot, w.Root, RootManifest)
	}

	for _, d := range markerDirs {
		info, err := os.Stat(filepath.Join(w.Root, d))
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s has no %s/ directory", ErrNotRoot, w.Root, d)
		}
	}
	return nil
}
