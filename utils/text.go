package utils

import (
	"strings"
	"unicode"
)

// FoldText lower-cases s and maps every Unicode space rune to an ASCII space.
func FoldText(s string) string {
	return strings.Map(func(r rune) rune {
		if r != ' ' && unicode.IsSpace(r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, s)
}
