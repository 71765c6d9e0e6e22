package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"", "", ""},
		{"Jane", "Jane", ""},
		{"Jane Doe", "Jane", "Doe"},
		{"  Jane   van  Doe ", "Jane", "van Doe"},
	}
	for _, tt := range tests {
		first, last := ParseDisplayName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}

func TestNewContactFallsBackToEmail(t *testing.T) {
	c := NewContact("jane@example.com", "")
	assert.Equal(t, "jane@example.com", c.DisplayName)
	assert.Equal(t, "jane@example.com", c.FirstName)
	assert.Empty(t, c.LastName)
}
