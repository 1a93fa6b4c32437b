// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Family is a group of comment syntaxes that share the same rules for
// opening, continuing and closing comments.
type Family int

const (
	// Unknown never recognizes a comment.
	Unknown Family = iota
	// Slash comments start with "//" or open a block with "/*".
	Slash
	// Markup comments open a block with "<!--".
	Markup
	// LineOnly comments start with a fixed prefix, such as "#" or "--",
	// and have no block form.
	LineOnly
)

func (f Family) String() string {
	switch f {
	case Slash:
		return "slash"
	case Markup:
		return "markup"
	case LineOnly:
		return "line-only"
	}
	return "unknown"
}

// Style describes how to write a header for one file extension.
type Style struct {
	Family Family
	// Prefix is the line comment prefix of a LineOnly style.
	Prefix string
	// Template has a single %s verb for the header text.
	Template string
}

var (
	markup = Style{Family: Markup, Template: "<!-- %s -->"}
	slash  = Style{Family: Slash, Template: "// %s"}
	dash   = Style{Family: LineOnly, Prefix: "--", Template: "-- %s"}
	hash   = Style{Family: LineOnly, Prefix: "#", Template: "# %s"}
)

var styles = map[string]Style{
	".svelte": markup,
	".html":   markup,
	".ts":     slash,
	".js":     slash,
	".css":    slash,
	".md":     slash,
	".jsonc":  slash,
	".sql":    dash,
	".py":     hash,
	".sh":     hash,
	".yaml":   hash,
	".yml":    hash,
}

// Lookup returns the style for ext, which includes the leading dot. Matching
// is exact and case-sensitive.
func Lookup(ext string) (Style, bool) {
	s, ok := styles[ext]
	return s, ok
}

// Format returns the header line for rel, without a line terminator.
func (s Style) Format(rel string) string {
	return fmt.Sprintf(s.Template, rel)
}

type lineKind int

const (
	plain lineKind = iota
	lineComment
	blockOpen
)

func (s Style) classify(line string) lineKind {
	line = strings.TrimSpace(line)
	if line == "" {
		return plain
	}
	switch s.Family {
	case Slash:
		if strings.HasPrefix(line, "//") {
			return lineComment
		}
		if strings.HasPrefix(line, "/*") {
			return blockOpen
		}
	case Markup:
		if strings.HasPrefix(line, "<!--") {
			return blockOpen
		}
	case LineOnly:
		if s.Prefix != "" && strings.HasPrefix(line, s.Prefix) {
			return lineComment
		}
	}
	return plain
}

// Ext returns the extension of the file name name. Leading dots are not
// separators, so ".bashrc" has no extension while ".eslintrc.js" has ".js".
func Ext(name string) string {
	return filepath.Ext(strings.TrimLeft(filepath.Base(name), "."))
}
