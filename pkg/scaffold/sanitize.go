// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"strings"
	"unicode"
)

// separator characters are normalized to underscores during sanitization.
// Leading runs of separators and digits are stripped entirely so that a
// numbered name like "01-helloWorld" yields a clean package identifier.
func isSeparator(r rune) bool {
	switch r {
	case '-', '_', '.', ' ', '\t':
		return true
	}
	return false
}

// SanitizeIdentifier derives a Cargo package/binary identifier from a raw
// module name: separators become underscores, characters outside
// [A-Za-z0-9_] are dropped, the result is lowercased, and any leading run of
// digits and underscores is stripped. The function is idempotent: applying
// it to its own output returns the output unchanged.
//
// When nothing survives (e.g. "---"), it falls back to "<kind>_example".
func SanitizeIdentifier(raw string, kind Kind) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case isSeparator(r):
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		}
	}

	id := strings.TrimLeft(b.String(), "_0123456789")
	if id == "" {
		return string(kind) + "_example"
	}
	return id
}
