// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"testing"

	"rustlab-cli/pkg/scaffold"
)

func TestResolveKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		modulePath string
		kindFlag   string
		want       scaffold.Kind
		expectErr  bool
	}{
		{
			name:       "inferred from examples parent",
			modulePath: filepath.Join("examples", "01-helloWorld"),
			want:       scaffold.KindExample,
		},
		{
			name:       "inferred from exercises parent",
			modulePath: filepath.Join("exercises", "03-ownership"),
			want:       scaffold.KindExercise,
		},
		{
			name:       "inferred from projects parent",
			modulePath: filepath.Join("projects", "temperature-converter"),
			want:       scaffold.KindProject,
		},
		{
			name:       "flag wins over inference",
			modulePath: filepath.Join("examples", "01-helloWorld"),
			kindFlag:   "project",
			want:       scaffold.KindProject,
		},
		{
			name:       "invalid flag",
			modulePath: filepath.Join("examples", "01-helloWorld"),
			kindFlag:   "library",
			expectErr:  true,
		},
		{
			name:       "unrecognized parent needs flag",
			modulePath: filepath.Join("modules", "01-helloWorld"),
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveKind(tt.modulePath, tt.kindFlag)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveKind: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveKind = %q, want %q", got, tt.want)
			}
		})
	}
}
