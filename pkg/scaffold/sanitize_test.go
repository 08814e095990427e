// SPDX-License-Identifier: MPL-2.0

package scaffold

import "testing"

func TestSanitizeIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		kind Kind
		want string
	}{
		{
			name: "numbered camel case",
			raw:  "01-helloWorld",
			kind: KindExample,
			want: "helloworld",
		},
		{
			name: "already clean",
			raw:  "helloworld",
			kind: KindExample,
			want: "helloworld",
		},
		{
			name: "separators become underscores",
			raw:  "my cool-module.v2",
			kind: KindExample,
			want: "my_cool_module_v2",
		},
		{
			name: "non-alphanumeric dropped",
			raw:  "böse!name",
			kind: KindExercise,
			want: "bsename",
		},
		{
			name: "only separators falls back",
			raw:  "---",
			kind: KindExample,
			want: "example_example",
		},
		{
			name: "only digits falls back",
			raw:  "0123",
			kind: KindProject,
			want: "project_example",
		},
		{
			name: "junk then digits still stripped",
			raw:  "!1a",
			kind: KindExample,
			want: "a",
		},
		{
			name: "trailing separator kept as underscore",
			raw:  "name-",
			kind: KindExample,
			want: "name_",
		},
		{
			name: "exercise fallback uses kind",
			raw:  "_",
			kind: KindExercise,
			want: "exercise_example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SanitizeIdentifier(tt.raw, tt.kind)
			if got != tt.want {
				t.Errorf("SanitizeIdentifier(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdentifierIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"01-helloWorld", "helloWorld", "---", "a-b_c d", "!1a", "name-", "0123",
		"temperature-converter", "entropy.calc", "Unicode-Ünïcode",
	}
	for _, raw := range inputs {
		once := SanitizeIdentifier(raw, KindExample)
		twice := SanitizeIdentifier(once, KindExample)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
