package sire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDocumentType_Table(t *testing.T) {
	tests := []struct {
		input string
		code  string
	}{
		{"PASAPORTE", DocTypePassport},
		{"passport", DocTypePassport},
		{"Pasaporte Venezolano", DocTypePassport},
		{"CEDULA DE EXTRANJERIA", DocTypeForeignerID},
		{"DNI", DocTypePassport},
		{"VISA", DocTypeForeignDoc},
		{"PPT", DocTypeTempPermit},
	}
	for _, tt := range tests {
		code, conf := ResolveDocumentType(tt.input)
		assert.Equal(t, tt.code, code, "input %q", tt.input)
		assert.Equal(t, ConfidenceHigh, conf, "input %q", tt.input)
	}
}

func TestResolveDocumentType_KeywordFamily(t *testing.T) {
	code, conf := ResolveDocumentType("DIPLOMÁTICO")
	assert.Equal(t, DocTypeDiplomatic, code)
	assert.Equal(t, ConfidenceMedium, conf)

	code, conf = ResolveDocumentType("PERMISO TEMPORAL DE TRABAJO")
	assert.Equal(t, DocTypeTempPermit, code)
	assert.Equal(t, ConfidenceMedium, conf)
}

func TestResolveDocumentType_Default(t *testing.T) {
	code, conf := ResolveDocumentType("")
	assert.Equal(t, DocTypePassport, code)
	assert.Equal(t, ConfidenceLow, conf)

	code, conf = ResolveDocumentType("XYZQW")
	assert.Equal(t, DocTypePassport, code)
	assert.Equal(t, ConfidenceLow, conf)
}
