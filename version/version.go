// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running program.
package version

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info describes a build.
type Info struct {
	Name    string
	Version string
	Commit  string
	Dirty   bool
	Go      string
	OS      string
	Arch    string
}

// String returns a human-readable representation of i, terminated by a
// newline.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if i.Dirty {
			commit += "-dirty"
		}
		fmt.Fprintf(&sb, " (%s)", commit)
	}
	fmt.Fprintf(&sb, " built with %s for %s/%s\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

var info = sync.OnceValue(readInfo)

// Version returns the build information of the running program.
func Version() Info { return info() }

// CmdName returns the name of the running command.
func CmdName() string { return Version().Name }

func readInfo() Info {
	i := Info{
		Name:    filepath.Base(os.Args[0]),
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Path != "" && bi.Path != "command-line-arguments" {
		i.Name = path.Base(bi.Path)
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}
