// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import "strings"

const shebang = "#!"

// InsertionIndex returns the index of the line before which the header for
// a file with extension ext belongs.
//
// A shebang stays the first line. A license banner, that is a contiguous
// comment block right after the shebang (or at the top) mentioning a license
// or copyright, stays in one piece and is followed by the header. Any other
// leading comment block is pushed down below the header.
func InsertionIndex(lines []string, ext string) int {
	if len(lines) == 0 {
		return 0
	}
	style, _ := Lookup(ext)

	start := 0
	if strings.HasPrefix(lines[0], shebang) {
		start = 1
	}

	var (
		block   strings.Builder
		end     = start
		inBlock bool
	)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		kind := style.classify(line)
		// Blank lines end a banner too.
		if kind == plain && !inBlock {
			break
		}
		if kind == blockOpen {
			inBlock = true
		}
		block.WriteString(line)
		if !inBlock {
			end = i + 1
			continue
		}
		// The end only moves once the block is closed, so an unterminated
		// block never claims the rest of the file.
		if closesBlock(line) {
			inBlock = false
			end = i + 1
		}
	}

	if isLicense(block.String()) {
		return end
	}
	return start
}

func closesBlock(line string) bool {
	return strings.Contains(line, "*/") || strings.Contains(line, "-->")
}

func isLicense(text string) bool {
	text = strings.ToLower(text)
	return strings.Contains(text, "license") || strings.Contains(text, "copyright")
}
