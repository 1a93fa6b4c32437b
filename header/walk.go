// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"go.astrophena.name/pathheader/logger"
)

var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".svelte-kit":  true,
	".idea":        true,
	".vscode":      true,
	"coverage":     true,
	"dist":         true,
	"build":        true,
	".claude":      true,
	".gemini":      true,
}

// IsIgnoredDir reports whether directories named name are never descended
// into.
func IsIgnoredDir(name string) bool { return ignoredDirs[name] }

// Options configure [Walk] and [ProcessFile].
type Options struct {
	// DryRun reports changes without writing them.
	DryRun bool
	// Exclude, if set, skips files whose repository-relative path it
	// accepts.
	Exclude func(rel string) bool
	// OnUpdate, if set, is called after each changed file.
	OnUpdate func(rel string)
	// OnError, if set, is called for each file that could not be read or
	// written. The walk goes on.
	OnError func(err error)
}

func (o Options) update(rel string) {
	if o.OnUpdate != nil {
		o.OnUpdate(rel)
	}
}

func (o Options) fail(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

// Walk adds missing headers to every supported file under root, in lexical
// order, and returns the repository-relative paths of the changed files.
//
// Only an error on root itself or a canceled ctx stops the walk; failures on
// individual files are passed to opts.OnError.
func Walk(ctx context.Context, root string, opts Options) ([]string, error) {
	var changed []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			opts.fail(&FileError{Op: "reading", Path: path, Err: err})
			return nil
		}

		if d.IsDir() {
			if path != root && IsIgnoredDir(d.Name()) {
				logger.Debug(ctx, "pruned directory", slog.String("path", path))
				return fs.SkipDir
			}
			return nil
		}

		if _, ok := Lookup(Ext(d.Name())); !ok {
			return nil
		}
		if !d.Type().IsRegular() {
			logger.Debug(ctx, "skipped non-regular file", slog.String("path", path))
			return nil
		}
		if opts.Exclude != nil {
			if rel, err := Rel(root, path); err == nil && opts.Exclude(rel) {
				logger.Debug(ctx, "excluded", slog.String("path", rel))
				return nil
			}
		}

		rel, ok, err := ProcessFile(ctx, path, root, opts)
		if err != nil {
			opts.fail(err)
			return nil
		}
		if ok {
			changed = append(changed, rel)
			opts.update(rel)
		}
		return nil
	})
	return changed, err
}
