// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"go.astrophena.name/pathheader/logger"
)

// FileError records a failure to read or write a single file.
type FileError struct {
	Op   string // "reading" or "writing"
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// ErrNotText is returned for files that are not valid UTF-8.
var ErrNotText = errors.New("not a UTF-8 text file")

// Rel returns the repository-relative path of path under root: slash
// separated and with a leading slash.
func Rel(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(rel), nil
}

// Apply inserts the header for rel into content. It reports false, leaving
// content alone, when ext is not supported or a header is already present.
func Apply(content []byte, rel, ext string) ([]byte, bool) {
	style, ok := Lookup(ext)
	if !ok {
		return content, false
	}
	lines := splitLines(string(content))
	if HasHeader(lines, rel) {
		return content, false
	}

	eol := "\n"
	if len(lines) > 0 && strings.HasSuffix(lines[0], "\r\n") {
		eol = "\r\n"
	}
	idx := InsertionIndex(lines, ext)
	if idx > 0 && !strings.HasSuffix(lines[idx-1], "\n") {
		lines[idx-1] += eol
	}
	lines = slices.Insert(lines, idx, style.Format(rel)+eol)

	return []byte(strings.Join(lines, "")), true
}

// splitLines splits s after each "\n". Lines keep their terminators; a last
// line without one is kept as is.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ProcessFile adds a header to the file at path if it has a supported
// extension and lacks one. It returns the repository-relative path of the
// file and whether it was changed.
//
// With opts.DryRun set the file is only read. Errors are of type *FileError.
func ProcessFile(ctx context.Context, path, root string, opts Options) (rel string, changed bool, err error) {
	ext := Ext(path)
	if _, ok := Lookup(ext); !ok {
		return "", false, nil
	}
	rel, err = Rel(root, path)
	if err != nil {
		return "", false, &FileError{Op: "reading", Path: path, Err: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", false, &FileError{Op: "reading", Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return "", false, &FileError{Op: "reading", Path: path, Err: ErrNotText}
	}

	out, ok := Apply(content, rel, ext)
	if !ok {
		logger.Debug(ctx, "header present", slog.String("path", rel))
		return rel, false, nil
	}
	if opts.DryRun {
		return rel, true, nil
	}

	// WriteFile truncates in place and keeps the mode of an existing file.
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", false, &FileError{Op: "writing", Path: path, Err: err}
	}
	logger.Debug(ctx, "header added", slog.String("path", rel), slog.Int("bytes", len(out)-len(content)))
	return rel, true, nil
}
