// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rustlab-cli/pkg/workspace"
)

// confirmFunc adapts a function to the Confirmer interface for tests.
type confirmFunc func(prompt string) (bool, error)

func (f confirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// newTestWorkspace creates a directory carrying the workspace root markers.
func newTestWorkspace(t *testing.T) workspace.Workspace {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[workspace]\n"), 0o644); err != nil {
		t.Fatalf("failed to write root manifest: %v", err)
	}
	for _, d := range []string{"examples", "utils"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	ws, err := workspace.Detect(root)
	if err != nil {
		t.Fatalf("test workspace should be valid: %v", err)
	}
	return ws
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       Request
		expectErr bool
		validate  func(t *testing.T, modulePath string)
	}{
		{
			name: "create simple example",
			req:  Request{Kind: KindExample, Name: "01-helloWorld", Description: "My first program"},
			validate: func(t *testing.T, modulePath string) {
				t.Helper()
				info, err := os.Stat(modulePath)
				if err != nil {
					t.Fatalf("module directory not created: %v", err)
				}
				if !info.IsDir() {
					t.Error("module path is not a directory")
				}

				for _, rel := range []string{ManifestFile, SourceFile, ReadmeFile, IntegrationTestFile} {
					if _, statErr := os.Stat(filepath.Join(modulePath, filepath.FromSlash(rel))); statErr != nil {
						t.Errorf("%s not created: %v", rel, statErr)
					}
				}

				// Created module must pass its own validation.
				result, err := Validate(modulePath, KindExample)
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				if !result.Valid {
					t.Errorf("created module is not valid: %+v", result.Issues)
				}
				if result.PackageName != "helloworld" {
					t.Errorf("package name = %q, want helloworld", result.PackageName)
				}

				source, err := os.ReadFile(filepath.Join(modulePath, filepath.FromSlash(SourceFile)))
				if err != nil {
					t.Fatalf("failed to read source stub: %v", err)
				}
				if !strings.Contains(string(source), "Hello from 01-helloWorld!") {
					t.Error("greeting does not include the raw module name")
				}

				readme, err := os.ReadFile(filepath.Join(modulePath, ReadmeFile))
				if err != nil {
					t.Fatalf("failed to read README: %v", err)
				}
				if !strings.Contains(string(readme), "My first program") {
					t.Error("README does not include the description")
				}
			},
		},
		{
			name: "create exercise and project kinds",
			req:  Request{Kind: KindExercise, Name: "03-ownership"},
			validate: func(t *testing.T, modulePath string) {
				t.Helper()
				if filepath.Base(filepath.Dir(modulePath)) != "exercises" {
					t.Errorf("exercise created under %s", filepath.Dir(modulePath))
				}
			},
		},
		{
			name:      "invalid kind rejected",
			req:       Request{Kind: Kind("library"), Name: "x"},
			expectErr: true,
		},
		{
			name:      "empty name rejected",
			req:       Request{Kind: KindExample, Name: ""},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := newTestWorkspace(t)
			result, err := Create(CreateOptions{Workspace: ws, Request: tt.req})

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if !result.Created {
				t.Fatal("expected Created=true")
			}
			if tt.validate != nil {
				tt.validate(t, result.Path)
			}
		})
	}
}

func TestCreateValidationBeforeMutation(t *testing.T) {
	t.Parallel()

	// A directory without root markers must fail before any write, for
	// every kind/name combination.
	root := t.TempDir()
	for _, kind := range Kinds() {
		_, err := Create(CreateOptions{
			Workspace: workspace.Workspace{Root: root},
			Request:   Request{Kind: kind, Name: "01-helloWorld"},
		})
		if !errors.Is(err, workspace.ErrNotRoot) {
			t.Errorf("kind %s: expected ErrNotRoot, got %v", kind, err)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("filesystem mutated despite validation failure: %v", entries)
	}
}

func TestCreateOverwriteDeclined(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t)
	req := Request{Kind: KindExample, Name: "01-helloWorld"}

	first, err := Create(CreateOptions{Workspace: ws, Request: req})
	if err != nil {
		t.Fatalf("initial create: %v", err)
	}

	// Plant a sentinel so we can prove nothing was touched.
	sentinel := filepath.Join(first.Path, "notes.txt")
	if err := os.WriteFile(sentinel, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("write sentinel: %v", err)
	}

	prompted := false
	result, err := Create(CreateOptions{
		Workspace: ws,
		Request:   req,
		Confirm: confirmFunc(func(string) (bool, error) {
			prompted = true
			return false, nil
		}),
	})
	if err != nil {
		t.Fatalf("declined overwrite must not be an error: %v", err)
	}
	if !prompted {
		t.Error("expected a confirmation prompt")
	}
	if result.Created {
		t.Error("declined overwrite must report Created=false")
	}

	if data, err := os.ReadFile(sentinel); err != nil || string(data) != "keep me" {
		t.Errorf("filesystem changed after declined overwrite: %v %q", err, data)
	}
}

func TestCreateOverwriteAccepted(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t)
	req := Request{Kind: KindExample, Name: "01-helloWorld"}

	first, err := Create(CreateOptions{Workspace: ws, Request: req})
	if err != nil {
		t.Fatalf("initial create: %v", err)
	}

	// Leftovers from the previous generation must not survive.
	stale := filepath.Join(first.Path, "stale.rs")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	result, err := Create(CreateOptions{
		Workspace: ws,
		Request:   req,
		Confirm:   confirmFunc(func(string) (bool, error) { return true, nil }),
	})
	if err != nil {
		t.Fatalf("accepted overwrite: %v", err)
	}
	if !result.Created || !result.Replaced {
		t.Errorf("expected Created and Replaced, got %+v", result)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived the overwrite")
	}
	for _, rel := range []string{ManifestFile, SourceFile, ReadmeFile, IntegrationTestFile} {
		if _, err := os.Stat(filepath.Join(result.Path, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s missing after overwrite: %v", rel, err)
		}
	}

	// No staging directories may linger.
	entries, err := os.ReadDir(filepath.Dir(result.Path))
	if err != nil {
		t.Fatalf("read parent dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".rustlab-staging-") {
			t.Errorf("staging directory left behind: %s", e.Name())
		}
	}
}

func TestCreateRejectsNonLeafNames(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	root := filepath.Join(base, "workspace")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("create workspace root: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[workspace]\n"), 0o644); err != nil {
		t.Fatalf("write root manifest: %v", err)
	}
	for _, d := range []string{"examples", "utils"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}
	ws, err := workspace.Detect(root)
	if err != nil {
		t.Fatalf("test workspace should be valid: %v", err)
	}

	// A sibling of the workspace root that a traversal name would resolve
	// to. It must survive untouched.
	outside := filepath.Join(base, "shared")
	if err := os.MkdirAll(outside, 0o755); err != nil {
		t.Fatalf("create outside dir: %v", err)
	}
	keep := filepath.Join(outside, "keep.txt")
	if err := os.WriteFile(keep, []byte("do not touch"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	for _, name := range []string{"../../shared", "..", ".", "nested/child", `nested\child`} {
		_, err := Create(CreateOptions{
			Workspace: ws,
			Request:   Request{Kind: KindExample, Name: name},
			Confirm:   confirmFunc(func(string) (bool, error) { return true, nil }),
		})
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}

	if data, err := os.ReadFile(keep); err != nil || string(data) != "do not touch" {
		t.Errorf("directory outside the workspace was touched: %v %q", err, data)
	}
	entries, err := os.ReadDir(filepath.Join(root, "examples"))
	if err != nil {
		t.Fatalf("read examples dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("filesystem mutated despite invalid name: %v", entries)
	}
}

func TestCreateExistingWithoutConfirmer(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t)
	req := Request{Kind: KindProject, Name: "temperature-converter"}

	if _, err := Create(CreateOptions{Workspace: ws, Request: req}); err != nil {
		t.Fatalf("initial create: %v", err)
	}
	if _, err := Create(CreateOptions{Workspace: ws, Request: req}); err == nil {
		t.Error("existing target without a Confirmer must be an error")
	}
}
