// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type (
	// cargoManifest models the subset of Cargo.toml that generated modules
	// need. It is marshaled with go-toml so quoting and escaping are handled
	// for arbitrary descriptions.
	cargoManifest struct {
		Package cargoPackage `toml:"package"`
		Bin     []cargoBin   `toml:"bin"`
	}

	cargoPackage struct {
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Edition     string `toml:"edition"`
		Description string `toml:"description"`
	}

	cargoBin struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	}
)

// RenderManifest produces the Cargo.toml content for the request. The package
// and binary names use the sanitized identifier; the binary points at the
// generated source stub.
func RenderManifest(req Request, edition string) (string, error) {
	if edition == "" {
		edition = DefaultEdition
	}
	id := SanitizeIdentifier(req.Name, req.Kind)

	m := cargoManifest{
		Package: cargoPackage{
			Name:        id,
			Version:     "0.1.0",
			Edition:     edition,
			Description: req.EffectiveDescription(),
		},
		Bin: []cargoBin{
			{Name: id, Path: "src/main.rs"},
		},
	}

	out, err := toml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}

	// Cargo convention keeps an explicit dependencies table even when empty,
	// so learners have an obvious place to add crates.
	return string(out) + "\n[dependencies]\n", nil
}

// RenderMain produces the src/main.rs stub: a doc-comment header with run
// instructions, a greeting that echoes the raw module name, an explicit
// todo! so a fresh module fails loudly until implemented, and one embedded
// placeholder test.
func RenderMain(req Request) string {
	runDir := path.Join(req.Kind.Dir(), req.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "//! %s: %s\n", req.Kind, req.Name)
	fmt.Fprintf(&b, "//!\n")
	fmt.Fprintf(&b, "//! %s\n", req.EffectiveDescription())
	fmt.Fprintf(&b, "//!\n")
	fmt.Fprintf(&b, "//! To run this program:\n")
	fmt.Fprintf(&b, "//! 1. Navigate to this directory: cd %s\n", runDir)
	fmt.Fprintf(&b, "//! 2. Run the program: cargo run\n")
	fmt.Fprintf(&b, "//!\n")
	fmt.Fprintf(&b, "//! Key concepts demonstrated:\n")
	fmt.Fprintf(&b, "//! - TODO: list the concepts this %s covers\n", req.Kind)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "fn main() {\n")
	fmt.Fprintf(&b, "    println!(\"Hello from %s!\");\n", req.Name)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "    todo!(\"implement %s\");\n", req.Name)
	fmt.Fprintf(&b, "}\n")
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "#[cfg(test)]\n")
	fmt.Fprintf(&b, "mod tests {\n")
	fmt.Fprintf(&b, "    #[test]\n")
	fmt.Fprintf(&b, "    fn placeholder() {\n")
	fmt.Fprintf(&b, "        assert_eq!(2 + 2, 4);\n")
	fmt.Fprintf(&b, "    }\n")
	fmt.Fprintf(&b, "}\n")
	return b.String()
}

// RenderReadme produces the README.md outline for the module.
func RenderReadme(req Request) string {
	runDir := path.Join(req.Kind.Dir(), req.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", req.Name)
	fmt.Fprintf(&b, "%s\n\n", req.EffectiveDescription())
	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "Describe what this %s demonstrates and why it matters.\n\n", req.Kind)
	fmt.Fprintf(&b, "## Learning objectives\n\n")
	fmt.Fprintf(&b, "- TODO: add objectives\n\n")
	fmt.Fprintf(&b, "## How to run\n\n")
	fmt.Fprintf(&b, "```bash\ncd %s\ncargo run\n```\n\n", runDir)
	fmt.Fprintf(&b, "Run the tests:\n\n")
	fmt.Fprintf(&b, "```bash\ncargo test\n```\n\n")
	fmt.Fprintf(&b, "## Key concepts\n\n")
	fmt.Fprintf(&b, "- TODO: add concepts\n\n")
	fmt.Fprintf(&b, "## Exercises\n\n")
	fmt.Fprintf(&b, "1. TODO: add a follow-up exercise\n\n")
	fmt.Fprintf(&b, "## Further reading\n\n")
	fmt.Fprintf(&b, "- [The Rust Programming Language](https://doc.rust-lang.org/book/)\n")
	fmt.Fprintf(&b, "- [Rust by Example](https://doc.rust-lang.org/rust-by-example/)\n")
	return b.String()
}

// RenderIntegrationTest produces tests/integration.rs with one placeholder
// assertion, mirroring the embedded unit test in the source stub.
func RenderIntegrationTest(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Integration tests for %s\n", req.Name)
	fmt.Fprintf(&b, "//\n")
	fmt.Fprintf(&b, "// Replace the placeholder below with tests that exercise the %s\n", req.Kind)
	fmt.Fprintf(&b, "// from the outside.\n")
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "#[test]\n")
	fmt.Fprintf(&b, "fn placeholder() {\n")
	fmt.Fprintf(&b, "    assert_eq!(2 + 2, 4);\n")
	fmt.Fprintf(&b, "}\n")
	return b.String()
}
