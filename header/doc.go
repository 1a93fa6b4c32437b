// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package header keeps a path header at the top of source files.

A path header is a single comment line holding the file's path relative to
the repository root, with a leading slash and forward slashes:

	// /ui/src/lib/api.ts
	<!-- /ui/src/routes/+page.svelte -->
	# /scripts/insert_headers.py

The comment syntax is chosen by file extension (see [Lookup]). Files with
other extensions are left alone.

A header counts as present when one of the first ten lines contains the
path, ignoring whitespace. Otherwise it is inserted at the top of the file,
except that a shebang line stays first and a license banner directly below
it (or at the very top) is kept intact above the header. See
[InsertionIndex] for the exact rules.

[Walk] applies this to a whole tree, skipping well-known build, tooling and
dependency directories such as node_modules at any depth.
*/
package header
