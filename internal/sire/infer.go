package sire

import (
	"regexp"
	"strings"
)

// InferNationalityFromOrigin derives a nationality code from the country of
// origin. The result is always downgraded relative to the resolver's
// confidence because it is inferred, not stated.
func InferNationalityFromOrigin(procedencia string) (string, Confidence) {
	code, conf := ResolveCountry(procedencia)
	if code == "" {
		return "", ConfidenceNone
	}
	return code, conf.Downgrade()
}

// InferOriginFromNationality is the inverse derivation, same downgrade rule.
func InferOriginFromNationality(nacionalidad string) (string, Confidence) {
	code, conf := ResolveCountry(nacionalidad)
	if code == "" {
		return "", ConfidenceNone
	}
	return code, conf.Downgrade()
}

var emailNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([a-z]+)\.([a-z]+)$`),
	regexp.MustCompile(`^([a-z]+)_([a-z]+)$`),
	regexp.MustCompile(`^([a-z]+)-([a-z]+)$`),
	regexp.MustCompile(`^([a-z]+)([A-Z][a-z]+)$`), // camelCase boundary, case-sensitive
}

// InferNamesFromEmail attempts to extract a given name and surname from an
// email local part, e.g. "john.smith@mail.com" -> JOHN, SMITH. Opt-in helper:
// the row pipeline never calls it automatically.
func InferNamesFromEmail(email string) (nombre, apellido string, conf Confidence) {
	if !strings.Contains(email, "@") {
		return "", "", ConfidenceNone
	}

	local := strings.TrimSpace(strings.SplitN(email, "@", 2)[0])
	for i, p := range emailNamePatterns {
		candidate := local
		if i < 3 {
			candidate = strings.ToLower(local)
		}
		if m := p.FindStringSubmatch(candidate); m != nil {
			return strings.ToUpper(m[1]), strings.ToUpper(m[2]), ConfidenceLow
		}
	}

	return "", "", ConfidenceNone
}
