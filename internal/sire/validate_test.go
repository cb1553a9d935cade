package sire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocument_Valid(t *testing.T) {
	for _, doc := range []string{"AB123456", "12345678", "X-1234567", "ab123456"} {
		ok, msg := ValidateDocument(doc)
		assert.True(t, ok, "doc %q", doc)
		assert.Equal(t, "OK", msg, "doc %q", doc)
	}
}

func TestValidateDocument_Invalid(t *testing.T) {
	tests := []struct {
		doc string
		msg string
	}{
		{"", "document is empty"},
		{"   ", "document is empty"},
		{"1234", "document too short"},
		{"123456789012345678901", "document too long"},
		{"N/A", "document too short"},
		{"11111111", "document has invalid pattern"},
		{"AAAAA", "document has invalid pattern"},
		{"11-11-11", "document has invalid pattern"},
	}
	for _, tt := range tests {
		ok, msg := ValidateDocument(tt.doc)
		assert.False(t, ok, "doc %q", tt.doc)
		assert.Equal(t, tt.msg, msg, "doc %q", tt.doc)
	}
}
