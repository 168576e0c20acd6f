package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops what never carries meaning in a comment: invalid UTF-8, NUL,
// C0 controls other than tab and newlines, DEL and the C1 block.
// Clean input is returned as is without allocating
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, isJunk) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isJunk(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func isJunk(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	}
	return false
}
