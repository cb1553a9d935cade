package sire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCountry_ExactMatch(t *testing.T) {
	tests := []struct {
		input string
		code  string
	}{
		{"ESTADOS UNIDOS", "249"},
		{"estados unidos", "249"},
		{"  Francia  ", "275"},
		{"BRASIL", "105"},
		{"Alemania", "23"},
		{"COLOMBIA", "169"},
	}
	for _, tt := range tests {
		code, conf := ResolveCountry(tt.input)
		assert.Equal(t, tt.code, code, "input %q", tt.input)
		assert.Equal(t, ConfidenceHigh, conf, "input %q", tt.input)
	}
}

func TestResolveCountry_PunctuationStripped(t *testing.T) {
	code, conf := ResolveCountry("U.K.")
	assert.Equal(t, "628", code)
	assert.Equal(t, ConfidenceHigh, conf)

	code, conf = ResolveCountry("E.E.U.U.")
	assert.Equal(t, "249", code)
	assert.Equal(t, ConfidenceHigh, conf)
}

func TestResolveCountry_Containment(t *testing.T) {
	code, conf := ResolveCountry("AMERICAN")
	assert.Equal(t, "249", code)
	assert.Equal(t, ConfidenceMedium, conf)
}

func TestResolveCountry_TokenMatch(t *testing.T) {
	code, conf := ResolveCountry("KINGDOM CITIZEN")
	assert.Equal(t, "628", code)
	assert.Equal(t, ConfidenceLow, conf)
}

func TestResolveCountry_NoMatch(t *testing.T) {
	for _, input := range []string{"", "   ", "XYZQW", "12345"} {
		code, conf := ResolveCountry(input)
		assert.Empty(t, code, "input %q", input)
		assert.Equal(t, ConfidenceNone, conf, "input %q", input)
	}
}

// Resolving the same text repeatedly must always return the same code even
// when several table keys could match.
func TestResolveCountry_Deterministic(t *testing.T) {
	first, _ := ResolveCountry("AMERICAN")
	for i := 0; i < 50; i++ {
		code, _ := ResolveCountry("AMERICAN")
		assert.Equal(t, first, code)
	}
}

func TestIsColombia(t *testing.T) {
	assert.True(t, IsColombia("COLOMBIA"))
	assert.True(t, IsColombia("colombia"))
	assert.False(t, IsColombia("ESTADOS UNIDOS"))
	assert.False(t, IsColombia(""))
}
