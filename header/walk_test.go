// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/pathheader/testutil"
)

const tree = `-- README.txt --
not a source file
-- build/out.js --
console.log(1)
-- node_modules/lib/index.js --
module.exports = {}
-- pkg/tool.py --
print("hi")
-- scripts/run.sh --
#!/bin/sh
# Copyright 2024 Example
echo hi
-- src/app.ts --
// /src/app.ts
export const a = 1
-- src/deep/er/node_modules/x.ts --
export {}
-- src/deep/er/.git/hooks/pre-commit.sh --
exit 0
-- src/empty.css --
-- src/types.d.ts --
/* helper types */
export type ID = string
`

const wantTree = `-- README.txt --
not a source file
-- build/out.js --
console.log(1)
-- node_modules/lib/index.js --
module.exports = {}
-- pkg/tool.py --
# /pkg/tool.py
print("hi")
-- scripts/run.sh --
#!/bin/sh
# Copyright 2024 Example
# /scripts/run.sh
echo hi
-- src/app.ts --
// /src/app.ts
export const a = 1
-- src/deep/er/.git/hooks/pre-commit.sh --
exit 0
-- src/deep/er/node_modules/x.ts --
export {}
-- src/empty.css --
// /src/empty.css
-- src/types.d.ts --
// /src/types.d.ts
/* helper types */
export type ID = string
`

func TestWalk(t *testing.T) {
	root := testutil.Tree(t, tree)

	var updated []string
	changed, err := Walk(context.Background(), root, Options{
		OnUpdate: func(rel string) { updated = append(updated, rel) },
		OnError:  func(err error) { t.Errorf("unexpected error: %v", err) },
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"/pkg/tool.py", "/scripts/run.sh", "/src/empty.css", "/src/types.d.ts"}
	testutil.AssertEqual(t, changed, want)
	testutil.AssertEqual(t, updated, want)
	testutil.AssertEqual(t, string(testutil.BuildTxtar(t, root)), wantTree)

	t.Run("second run changes nothing", func(t *testing.T) {
		changed, err := Walk(context.Background(), root, Options{})
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(changed), 0)
		testutil.AssertEqual(t, string(testutil.BuildTxtar(t, root)), wantTree)
	})
}

func TestWalkDryRun(t *testing.T) {
	root := testutil.Tree(t, tree)
	before := testutil.BuildTxtar(t, root)

	changed, err := Walk(context.Background(), root, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, changed, []string{"/pkg/tool.py", "/scripts/run.sh", "/src/empty.css", "/src/types.d.ts"})
	testutil.AssertEqual(t, string(testutil.BuildTxtar(t, root)), string(before))
}

func TestWalkExclude(t *testing.T) {
	root := testutil.Tree(t, tree)

	changed, err := Walk(context.Background(), root, Options{
		Exclude: func(rel string) bool { return strings.HasPrefix(rel, "/src/") },
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, changed, []string{"/pkg/tool.py", "/scripts/run.sh"})
	testutil.AssertEqual(t, readFile(t, filepath.Join(root, "src", "empty.css")), "")
}

func TestWalkPrunesAtAnyDepth(t *testing.T) {
	var sb strings.Builder
	for _, dir := range []string{".git", "node_modules", ".svelte-kit", ".idea", ".vscode", "coverage", "dist", "build", ".claude", ".gemini"} {
		sb.WriteString("-- a/b/c/" + dir + "/d/e.ts --\nexport {}\n")
	}
	root := testutil.Tree(t, sb.String())

	changed, err := Walk(context.Background(), root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(changed), 0)
}

func TestWalkRootIsNeverPruned(t *testing.T) {
	root := filepath.Join(testutil.Tree(t, "-- build/main.js --\nx\n"), "build")

	changed, err := Walk(context.Background(), root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, changed, []string{"/main.js"})
}

func TestWalkContinuesAfterFileErrors(t *testing.T) {
	root := testutil.Tree(t, "-- a.js --\nx\n-- c.js --\ny\n")
	writeFile(t, filepath.Join(root, "b.js"), "\xff\xfe")

	var errs []error
	changed, err := Walk(context.Background(), root, Options{
		OnError: func(err error) { errs = append(errs, err) },
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, changed, []string{"/a.js", "/c.js"})
	if len(errs) != 1 || !errors.Is(errs[0], ErrNotText) {
		t.Fatalf("want one ErrNotText, got %v", errs)
	}
	testutil.AssertEqual(t, errs[0].Error(), "reading "+filepath.Join(root, "b.js")+": not a UTF-8 text file")
}

func TestWalkSkipsSymlinks(t *testing.T) {
	root := testutil.Tree(t, "-- real.ts --\nexport {}\n")
	link := filepath.Join(root, "link.ts")
	if err := os.Symlink(filepath.Join(root, "real.ts"), link); err != nil {
		t.Skipf("symlinks are not supported: %v", err)
	}

	changed, err := Walk(context.Background(), root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, changed, []string{"/real.ts"})
	fi, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		t.Fatal("symlink was replaced by a regular file")
	}
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk(context.Background(), filepath.Join(t.TempDir(), "missing"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist, got %v", err)
	}
}

func TestWalkCanceled(t *testing.T) {
	root := testutil.Tree(t, tree)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	changed, err := Walk(ctx, root, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	testutil.AssertEqual(t, len(changed), 0)
	testutil.AssertEqual(t, readFile(t, filepath.Join(root, "pkg", "tool.py")), "print(\"hi\")\n")
}

func TestIsIgnoredDir(t *testing.T) {
	for _, name := range []string{"node_modules", ".git", "dist"} {
		testutil.AssertEqual(t, IsIgnoredDir(name), true)
	}
	for _, name := range []string{"src", "Node_modules", "a/node_modules", ""} {
		testutil.AssertEqual(t, IsIgnoredDir(name), false)
	}
}
