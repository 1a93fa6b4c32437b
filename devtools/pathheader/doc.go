// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pathheader adds a path header to source files.

It recursively walks through the current directory and, for every file with
a known extension, checks whether one of the first ten lines mentions the
file's path relative to the current directory. If not, it inserts a comment
line with that path, for example:

	// /ui/src/lib/api.ts

A shebang line stays first, and a license or copyright banner at the top of
the file stays above the header. Directories such as .git, node_modules,
dist and build are skipped at any depth.

Known extensions and their comment syntax:

  - .ts, .js, .css, .md, .jsonc: // /path
  - .svelte, .html: <!-- /path -->
  - .sql: -- /path
  - .py, .sh, .yaml, .yml: # /path

Files that can't be read or written are reported and left unchanged; they
don't affect the exit status.

The tool is configured through a .devtools.txtar file in the current
directory. This file is a txtar archive and can contain a
pathheader/exclusions.json file: a JSON array of glob patterns (with ** for
any number of directories) matched against slash-separated paths relative to
the current directory. Matching files are skipped.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pathheader/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
