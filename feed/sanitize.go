package feed

import (
	"strings"
	"unicode"
)

// Sanitize strips control characters from an extracted text field. Extracts
// occasionally carry NULs or vertical tabs inside names, which must not reach
// the artist table or the JSON encoder.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
