// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"rustlab-cli/pkg/workspace"
)

type (
	// CreateOptions bundles the inputs for Create. Confirm is consulted only
	// when the target directory already exists; a nil Confirmer makes an
	// existing target a hard error.
	CreateOptions struct {
		Workspace workspace.Workspace
		Request   Request
		// Edition is the Rust edition for the manifest (DefaultEdition if empty).
		Edition string
		Confirm Confirmer
	}

	// CreateResult reports what Create did. Created is false when the user
	// declined to replace an existing module; that outcome is a successful
	// no-op, not an error.
	CreateResult struct {
		// Path is the absolute module directory.
		Path string
		// Identifier is the sanitized package/binary name used in the manifest.
		Identifier string
		Created    bool
		// Replaced is true when a pre-existing directory was overwritten.
		Replaced bool
	}
)

// Create generates a module directory for the request.
//
// Validation (request invariants, workspace markers) happens before any
// filesystem write. The module is rendered into a hidden staging directory
// next to the target and renamed into place, so an interrupted run cannot
// leave a half-written module at the target path.
func Create(opts CreateOptions) (*CreateResult, error) {
	if err := opts.Request.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Workspace.Verify(); err != nil {
		return nil, err
	}

	req := opts.Request
	parentDir := filepath.Join(opts.Workspace.Root, req.Kind.Dir())
	target := filepath.Join(parentDir, req.Name)

	replacing := false
	if _, err := os.Stat(target); err == nil {
		if opts.Confirm == nil {
			return nil, fmt.Errorf("module already exists at %s", target)
		}
		rel, relErr := filepath.Rel(opts.Workspace.Root, target)
		if relErr != nil {
			rel = target
		}
		ok, err := opts.Confirm.Confirm(fmt.Sprintf("%s already exists. Replace it?", rel))
		if err != nil {
			return nil, fmt.Errorf("overwrite confirmation failed: %w", err)
		}
		if !ok {
			return &CreateResult{Path: target, Created: false}, nil
		}
		replacing = true
	}

	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", req.Kind.Dir(), err)
	}

	staging, err := os.MkdirTemp(parentDir, ".rustlab-staging-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	if err := os.Chmod(staging, 0o755); err != nil {
		_ = os.RemoveAll(staging) // Best-effort cleanup on error path
		return nil, fmt.Errorf("failed to prepare staging directory: %w", err)
	}

	if err := renderInto(staging, req, opts.Edition); err != nil {
		_ = os.RemoveAll(staging) // Best-effort cleanup on error path
		return nil, err
	}

	if replacing {
		if err := os.RemoveAll(target); err != nil {
			_ = os.RemoveAll(staging) // Best-effort cleanup on error path
			return nil, fmt.Errorf("failed to remove existing module: %w", err)
		}
	}
	if err := os.Rename(staging, target); err != nil {
		_ = os.RemoveAll(staging) // Best-effort cleanup on error path
		return nil, fmt.Errorf("failed to move module into place: %w", err)
	}

	return &CreateResult{
		Path:       target,
		Identifier: SanitizeIdentifier(req.Name, req.Kind),
		Created:    true,
		Replaced:   replacing,
	}, nil
}

// renderInto writes the four module files under dir.
func renderInto(dir string, req Request, edition string) error {
	manifest, err := RenderManifest(req, edition)
	if err != nil {
		return err
	}

	files := []struct {
		rel     string
		content string
	}{
		{ManifestFile, manifest},
		{SourceFile, RenderMain(req)},
		{ReadmeFile, RenderReadme(req)},
		{IntegrationTestFile, RenderIntegrationTest(req)},
	}

	for _, f := range files {
		dest := filepath.Join(dir, filepath.FromSlash(f.rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.rel, err)
		}
		if err := os.WriteFile(dest, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.rel, err)
		}
	}
	return nil
}
