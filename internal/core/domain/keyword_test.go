package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "running shoes", "running shoes"},
		{"case folding", "Running SHOES", "running shoes"},
		{"collapses inner whitespace", "running \t shoes", "running shoes"},
		{"trims outer whitespace", "  running shoes  ", "running shoes"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"cyrillic", "Купить Кроссовки", "купить кроссовки"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKeyword(tt.input))
		})
	}
}

func TestNormalizeKeyword_Idempotent(t *testing.T) {
	once := NormalizeKeyword("  Best RUNNING   Shoes 2026 ")
	assert.Equal(t, once, NormalizeKeyword(once))
}

func TestIntent_Valid(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected bool
	}{
		{IntentInformational, true},
		{IntentTransactional, true},
		{IntentNavigational, true},
		{IntentCommercial, true},
		{IntentLocal, true},
		{IntentUnset, false},
		{Intent("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.intent.Valid())
		})
	}
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "unset", IntentUnset.String())
	assert.Equal(t, "commercial", IntentCommercial.String())
}
