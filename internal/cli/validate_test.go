package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"too short", "abc", false},
		{"no digit or symbol", "abcdefgh", false},
		{"digit but no symbol", "abcdefg1", false},
		{"symbol but no digit", "abcdefg!", false},
		{"underscore is not a symbol", "abcdef1_", false},
		{"valid", "abcd123!", true},
		{"valid with space and symbol", "pa ss12#x", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckPasswordStrength(tc.password)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("42.50")
	require.NoError(t, err)
	assert.Equal(t, "42.5", d.StringFixed(1))

	_, err = ParseAmount("abc")
	assert.Error(t, err)

	_, err = ParseAmount("")
	assert.Error(t, err)

	// negative parses fine here; positivity is the service's concern
	d, err = ParseAmount("-3")
	require.NoError(t, err)
	assert.True(t, d.IsNegative())
}
