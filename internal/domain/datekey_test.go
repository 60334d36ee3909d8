package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_String(t *testing.T) {
	// Legacy формат: месяц 1-базный, без ведущих нулей
	assert.Equal(t, "2024-3-7", NewDateKey(2024, 2, 7).String())
	assert.Equal(t, "2024-12-31", NewDateKey(2024, 11, 31).String())
	assert.Equal(t, "2025-1-1", NewDateKey(2025, 0, 1).String())
}

func TestParseDateKey(t *testing.T) {
	key, err := ParseDateKey("2024-3-7")
	require.NoError(t, err)
	assert.Equal(t, 2024, key.Year)
	assert.Equal(t, 2, key.Month0)
	assert.Equal(t, 7, key.Day)
}

func TestParseDateKey_RoundTrip(t *testing.T) {
	original := NewDateKey(2024, 10, 15)

	parsed, err := ParseDateKey(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseDateKey_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few parts", "2024-3"},
		{"too many parts", "2024-3-7-1"},
		{"non-numeric year", "abcd-3-7"},
		{"month zero", "2024-0-7"},
		{"month too large", "2024-13-7"},
		{"day zero", "2024-3-0"},
		{"day too large", "2024-3-32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateKey(tt.input)
			assert.Error(t, err)
		})
	}
}
