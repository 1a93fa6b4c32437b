// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"strings"
	"unicode"
)

// scanLines is how many leading lines HasHeader looks at.
const scanLines = 10

// HasHeader reports whether one of the first lines mentions rel.
//
// The match is loose: whitespace is removed from both sides and rel only has
// to occur somewhere in the line, so hand-decorated headers are recognized
// too.
func HasHeader(lines []string, rel string) bool {
	want := stripSpace(rel)
	for _, line := range lines[:min(scanLines, len(lines))] {
		if strings.Contains(stripSpace(line), want) {
			return true
		}
	}
	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
