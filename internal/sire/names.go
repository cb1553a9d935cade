package sire

import (
	"regexp"
	"strings"
)

var nameChars = regexp.MustCompile(`[^a-zA-ZÀ-ÿ\s\-']`)

// NormalizeName strips digits and symbols from a person name, keeping
// accented letters, hyphens, apostrophes and spaces, then upper-cases.
func NormalizeName(text string) string {
	n := nameChars.ReplaceAllString(text, "")
	n = multiSpace.ReplaceAllString(n, " ")
	return strings.ToUpper(strings.TrimSpace(n))
}

// SplitFullName breaks a combined name into given names and up to two
// surnames following the common two-surname convention:
//
//	1 token:  given name only
//	2 tokens: given name + surname
//	3 tokens: the last token is the sole surname
//	4+:       the last two tokens are first and second surname
//
// This is a heuristic. Compound given names ("MARIA DEL MAR GARCIA") and
// 3-token names with two surnames are misclassified; the 3-token rule is
// deliberately kept as-is because downstream reporting depends on it.
func SplitFullName(fullName string) (primerApellido, segundoApellido, nombres string) {
	parts := strings.Fields(NormalizeName(fullName))

	switch len(parts) {
	case 0:
		return "", "", ""
	case 1:
		return "", "", parts[0]
	case 2:
		return parts[1], "", parts[0]
	case 3:
		return parts[2], "", strings.Join(parts[:2], " ")
	default:
		n := len(parts)
		return parts[n-2], parts[n-1], strings.Join(parts[:n-2], " ")
	}
}
