// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type (
	// ValidationIssue is a single structural problem found in a module.
	// Issues are collected and reported as a batch; error returns are
	// reserved for I/O failures that prevent validation from continuing.
	ValidationIssue struct {
		// Type categorizes the issue (e.g. "structure", "naming", "manifest").
		Type string
		// Message describes the specific problem.
		Message string
		// Path is the relative path within the module (optional).
		Path string
	}

	// ValidationResult is the outcome of validating one module directory.
	ValidationResult struct {
		Valid      bool
		ModulePath string
		// PackageName is the package name parsed from the manifest, when
		// the manifest was readable.
		PackageName string
		Issues      []ValidationIssue
	}
)

// AddIssue records a problem and marks the result invalid.
func (r *ValidationResult) AddIssue(issueType, message, path string) {
	r.Issues = append(r.Issues, ValidationIssue{Type: issueType, Message: message, Path: path})
	r.Valid = false
}

// Validate checks a generated module directory: the four generated files must
// exist, the manifest must parse, and its package name must equal the
// sanitized form of the directory leaf for the given kind.
func Validate(modulePath string, kind Kind) (*ValidationResult, error) {
	absPath, err := filepath.Abs(modulePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	result := &ValidationResult{
		Valid:      true,
		ModulePath: absPath,
		Issues:     []ValidationIssue{},
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddIssue("structure", "path does not exist", "")
			return result, nil
		}
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !info.IsDir() {
		result.AddIssue("structure", "path is not a directory", "")
		return result, nil
	}

	for _, rel := range []string{SourceFile, ReadmeFile, IntegrationTestFile} {
		if _, err := os.Stat(filepath.Join(absPath, filepath.FromSlash(rel))); err != nil {
			result.AddIssue("structure", "missing required "+rel, rel)
		}
	}

	manifestPath := filepath.Join(absPath, ManifestFile)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		result.AddIssue("structure", "missing required "+ManifestFile, ManifestFile)
		return result, nil
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		result.AddIssue("manifest", fmt.Sprintf("failed to parse %s: %v", ManifestFile, err), ManifestFile)
		return result, nil
	}
	result.PackageName = m.Package.Name

	if want := SanitizeIdentifier(filepath.Base(absPath), kind); m.Package.Name != want {
		result.AddIssue("naming", fmt.Sprintf(
			"package name %q in %s must match folder name (expected %q)",
			m.Package.Name, ManifestFile, want), ManifestFile)
	}

	for _, b := range m.Bin {
		if b.Path != "src/main.rs" {
			result.AddIssue("manifest", fmt.Sprintf(
				"binary target %q must point at src/main.rs, not %q", b.Name, b.Path), ManifestFile)
		}
	}

	return result, nil
}
