// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains configuration shared by devtools commands.
package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"go.astrophena.name/pathheader/txtar"
)

// ConfigFile is the name of the configuration archive in the repository
// root.
const ConfigFile = ".devtools.txtar"

const exclusionsFile = "pathheader/exclusions.json"

// Config is the devtools configuration of a repository.
type Config struct {
	exclusions []glob.Glob
}

// LoadConfig reads ConfigFile from root. A missing file yields an empty
// configuration.
//
// The archive may contain pathheader/exclusions.json, a JSON array of glob
// patterns matched against slash-separated paths relative to root, for
// example "ui/src/generated/**" or "**/*.min.js".
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFile)
	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	for _, f := range ar.Files {
		if f.Name != exclusionsFile {
			continue
		}
		var patterns []string
		if err := json.Unmarshal(f.Data, &patterns); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, f.Name, err)
		}
		for _, p := range patterns {
			g, err := glob.Compile(p, '/')
			if err != nil {
				return nil, fmt.Errorf("%s: invalid exclusion pattern %q: %w", path, p, err)
			}
			cfg.exclusions = append(cfg.exclusions, g)
		}
	}
	return cfg, nil
}

// Excluded reports whether the repository-relative path rel, as produced by
// header.Rel, matches one of the exclusion patterns.
func (c *Config) Excluded(rel string) bool {
	rel = strings.TrimPrefix(rel, "/")
	for _, g := range c.exclusions {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
