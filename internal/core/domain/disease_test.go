package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"Flu", "Flu", true},
		{"  Yellow fever\n", "Yellow fever", true},
		{"", "", false},
		{" \t ", "", false},
	}

	for _, tt := range tests {
		got, ok := CleanName(tt.raw)
		assert.Equal(t, tt.want, got, "raw %q", tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
	}
}

func TestNameCollection(t *testing.T) {
	sorted := []string{"Cholera", "Flu", "Mumps"}
	c := NewNameCollection(sorted)
	sorted[0] = "Changed"

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "Cholera", c.At(0))
	assert.Equal(t, sorted[1:], c.Names()[1:])

	names := c.Names()
	names[1] = "Changed"
	assert.Equal(t, "Flu", c.At(1))
}

func TestNameCollection_ZeroValue(t *testing.T) {
	var c NameCollection

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Names())
}
