package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidEmail(tt.email), "email: %q", tt.email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-42D3-A456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("123e4567e89b42d3a456426614174000"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Present", "Absent", "Half Day", "WFH"}
	assert.True(t, IsInSlice("Half Day", statuses))
	assert.False(t, IsInSlice("half day", statuses))
	assert.False(t, IsInSlice("", statuses))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}

	assert.Equal(t, "name: name is required; email: invalid email format", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "invalid email format",
	}, errs.ToMap())
	assert.Equal(t, []string{"name", "email"}, errs.Fields())
}
