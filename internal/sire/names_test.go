package sire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"maria", "MARIA"},
		{"  José   García ", "JOSÉ GARCÍA"},
		{"O'Brien", "O'BRIEN"},
		{"Smith-Jones", "SMITH-JONES"},
		{"Ana123", "ANA"},
		{"A. Pérez", "A PÉREZ"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.input), "input %q", tt.input)
	}
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		input   string
		primer  string
		segundo string
		nombres string
	}{
		{"", "", "", ""},
		{"MARIA", "", "", "MARIA"},
		{"Maria Garcia", "GARCIA", "", "MARIA"},
		{"Maria Jose Garcia", "GARCIA", "", "MARIA JOSE"},
		{"Maria Jose Garcia Lopez", "GARCIA", "LOPEZ", "MARIA JOSE"},
		{"Ana Maria Del Carmen Garcia Lopez", "GARCIA", "LOPEZ", "ANA MARIA DEL CARMEN"},
	}
	for _, tt := range tests {
		primer, segundo, nombres := SplitFullName(tt.input)
		assert.Equal(t, tt.primer, primer, "input %q", tt.input)
		assert.Equal(t, tt.segundo, segundo, "input %q", tt.input)
		assert.Equal(t, tt.nombres, nombres, "input %q", tt.input)
	}
}
