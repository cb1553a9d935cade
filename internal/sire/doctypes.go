package sire

import "strings"

// Document type codes.
const (
	DocTypePassport    = "3"
	DocTypeForeignerID = "5"
	DocTypeForeignDoc  = "10"
	DocTypeDiplomatic  = "46"
	DocTypeTempPermit  = "52"
)

// documentTypes maps document type names and abbreviations to SIRE codes.
var documentTypes = map[string]string{
	"PASAPORTE": DocTypePassport, "PASSPORT": DocTypePassport, "PAS": DocTypePassport, "PP": DocTypePassport,
	"CEDULA DE EXTRANJERIA": DocTypeForeignerID, "CEDULA EXTRANJERIA": DocTypeForeignerID, "CE": DocTypeForeignerID,
	"CARNE DIPLOMATICO": DocTypeDiplomatic, "DIPLOMATIC": DocTypeDiplomatic, "DIPLOMATICO": DocTypeDiplomatic,
	"DOCUMENTO EXTRANJERO": DocTypeForeignDoc, "FOREIGN DOCUMENT": DocTypeForeignDoc,
	"PPT": DocTypeTempPermit, "PERMISO PROTECCION TEMPORAL": DocTypeTempPermit,
	"VISA": DocTypeForeignDoc,
	// National ID cards from abroad are reported as passports.
	"DNI": DocTypePassport,
	"ID":  DocTypePassport, "NATIONAL ID": DocTypePassport,
}

var documentTypeKeys = sortedKeys(documentTypes)

// keywordFamilies are the MEDIUM-confidence fallbacks when no table key hits.
var keywordFamilies = []struct {
	keywords []string
	code     string
}{
	{[]string{"PASAP", "PASSPO", "PP"}, DocTypePassport},
	{[]string{"CEDULA", "CE", "EXTRAN"}, DocTypeForeignerID},
	{[]string{"DIPLOM", "CARNE"}, DocTypeDiplomatic},
	{[]string{"PPT", "PROTEC", "TEMPORAL"}, DocTypeTempPermit},
}

// ResolveDocumentType maps free document type text to a SIRE code. Every
// document must carry a type, so empty input defaults to passport at LOW
// confidence rather than failing.
func ResolveDocumentType(text string) (string, Confidence) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if normalized == "" {
		return DocTypePassport, ConfidenceLow
	}

	for _, key := range documentTypeKeys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return documentTypes[key], ConfidenceHigh
		}
	}

	for _, family := range keywordFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(normalized, kw) {
				return family.code, ConfidenceMedium
			}
		}
	}

	return DocTypePassport, ConfidenceLow
}
