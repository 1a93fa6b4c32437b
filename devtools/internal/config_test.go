// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/pathheader/testutil"
	"go.astrophena.name/pathheader/txtar"
)

func writeConfig(t *testing.T, files ...txtar.File) string {
	t.Helper()
	root := t.TempDir()
	data := txtar.Format(&txtar.Archive{Comment: []byte("Configuration for devtools.\n"), Files: files})
	if err := os.WriteFile(filepath.Join(root, ConfigFile), data, 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, cfg.Excluded("/anything.ts"), false)
	})

	t.Run("exclusions", func(t *testing.T) {
		root := writeConfig(t, txtar.File{
			Name: "pathheader/exclusions.json",
			Data: []byte(`["ui/src/generated/**", "**/*.min.js", "drizzle.config.ts"]`),
		})
		cfg, err := LoadConfig(root)
		if err != nil {
			t.Fatal(err)
		}

		cases := map[string]bool{
			"/ui/src/generated/api.ts":        true,
			"/ui/src/generated/deep/x.ts":     true,
			"/ui/src/lib/api.ts":              false,
			"/ui/static/vendor/jquery.min.js": true,
			"/jquery.min.js":                  false,
			"/drizzle.config.ts":              true,
			"/api/drizzle.config.ts":          false,
		}
		for rel, want := range cases {
			if got := cfg.Excluded(rel); got != want {
				t.Errorf("Excluded(%q) = %v, want %v", rel, got, want)
			}
		}
	})

	t.Run("other files are ignored", func(t *testing.T) {
		root := writeConfig(t, txtar.File{
			Name: "pre-commit.json",
			Data: []byte(`[{"run": ["go", "test", "./..."]}]`),
		})
		cfg, err := LoadConfig(root)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, cfg.Excluded("/pre-commit.json"), false)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		root := writeConfig(t, txtar.File{Name: "pathheader/exclusions.json", Data: []byte("{")})
		_, err := LoadConfig(root)
		if err == nil || !strings.Contains(err.Error(), "pathheader/exclusions.json") {
			t.Fatalf("want error mentioning exclusions.json, got %v", err)
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		root := writeConfig(t, txtar.File{Name: "pathheader/exclusions.json", Data: []byte(`["ui/["]`)})
		_, err := LoadConfig(root)
		if err == nil || !strings.Contains(err.Error(), "invalid exclusion pattern") {
			t.Fatalf("want invalid pattern error, got %v", err)
		}
	})
}
