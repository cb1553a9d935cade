package sire

import (
	"regexp"
	"strings"
)

var (
	lookupKeyChars = regexp.MustCompile(`[^A-ZÁÉÍÓÚÑÜ\s]`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

// normalizeLookupKey prepares free text for reference-table matching:
// uppercase, strip everything except letters, accented vowels, ñ, ü and
// spaces, collapse whitespace.
func normalizeLookupKey(s string) string {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = lookupKeyChars.ReplaceAllString(n, "")
	n = multiSpace.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}
