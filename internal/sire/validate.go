package sire

import "strings"

var nullLikeDocuments = map[string]bool{
	"NAN": true, "NONE": true, "NULL": true, "N/A": true, "-": true,
}

// ValidateDocument applies the basic sanity rules to a raw document number.
// Failures abort the record before any other field is processed.
func ValidateDocument(docNumber string) (bool, string) {
	doc := strings.ToUpper(strings.TrimSpace(docNumber))

	if doc == "" {
		return false, "document is empty"
	}
	if len(doc) < 5 {
		return false, "document too short"
	}
	if len(doc) > 20 {
		return false, "document too long"
	}
	if nullLikeDocuments[doc] {
		return false, "document is a null-like value"
	}

	// All characters identical after stripping hyphens, e.g. "000000000".
	stripped := []rune(strings.ReplaceAll(doc, "-", ""))
	uniform := len(stripped) > 0
	for _, r := range stripped {
		if r != stripped[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return false, "document has invalid pattern"
	}

	return true, "OK"
}
