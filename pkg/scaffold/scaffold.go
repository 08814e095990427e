// SPDX-License-Identifier: MPL-2.0

// Package scaffold generates learning module directories for a rustlab
// workspace. A module is a small Cargo package with a manifest, a source
// stub, a README, and an integration-test stub.
//
// The package is deliberately free of terminal and process concerns:
// overwrite confirmation is injected via Confirmer, and the advisory build
// check is run by the caller through internal/checker.
package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ManifestFile is the Cargo manifest written at the module root.
	ManifestFile = "Cargo.toml"
	// SourceFile is the executable entry point, relative to the module root.
	SourceFile = "src/main.rs"
	// ReadmeFile is the documentation stub at the module root.
	ReadmeFile = "README.md"
	// IntegrationTestFile is the placeholder test, relative to the module root.
	IntegrationTestFile = "tests/integration.rs"

	// DefaultEdition is the Rust edition used when the config does not set one.
	DefaultEdition = "2021"
)

var (
	// ErrInvalidKind is returned for a module kind outside the recognized set.
	// Callers can check for it with errors.Is.
	ErrInvalidKind = errors.New("invalid module kind")

	// ErrMissingName is returned when the module name is empty.
	ErrMissingName = errors.New("module name cannot be empty")

	// ErrInvalidName is returned when the module name is not a plain
	// directory leaf. Names containing path separators or dot components
	// would resolve outside the {kind}s/ directory.
	ErrInvalidName = errors.New("module name must be a plain directory name")
)

type (
	// Kind is a recognized module category.
	Kind string

	// Request describes one module to generate. Name is used verbatim as the
	// directory leaf and in rendered text; the manifest package name is
	// derived from it via SanitizeIdentifier.
	Request struct {
		Kind        Kind
		Name        string
		Description string
	}

	// Confirmer asks the user a yes/no question. The production
	// implementation renders a TUI prompt; tests supply canned answers.
	Confirmer interface {
		Confirm(prompt string) (bool, error)
	}
)

const (
	// KindExample is a guided example program.
	KindExample Kind = "example"
	// KindExercise is a practice exercise with intentional gaps.
	KindExercise Kind = "exercise"
	// KindProject is a larger self-directed project.
	KindProject Kind = "project"
)

// Kinds lists all recognized module kinds in display order.
func Kinds() []Kind {
	return []Kind{KindExample, KindExercise, KindProject}
}

// ParseKind converts a CLI argument into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindExample, KindExercise, KindProject:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q (expected example, exercise, or project)", ErrInvalidKind, s)
}

// Dir returns the workspace directory holding modules of this kind
// (e.g. "examples" for KindExample).
func (k Kind) Dir() string {
	return string(k) + "s"
}

// Validate checks the request invariants: recognized kind, non-empty name,
// and a name that stays a single directory leaf so the module can only ever
// be created at {kind}s/{name}.
func (r Request) Validate() error {
	if _, err := ParseKind(string(r.Kind)); err != nil {
		return err
	}
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Name == "." || r.Name == ".." ||
		strings.ContainsAny(r.Name, `/\`) || filepath.Base(r.Name) != r.Name {
		return fmt.Errorf("%w: %q", ErrInvalidName, r.Name)
	}
	return nil
}

// EffectiveDescription returns the request description, or the documented
// placeholder when none was given.
func (r Request) EffectiveDescription() string {
	if r.Description != "" {
		return r.Description
	}
	return fmt.Sprintf("A Rust %s for learning", r.Kind)
}
