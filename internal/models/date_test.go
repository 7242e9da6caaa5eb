package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2024-05-20", "2024-05-20"},
		{"2024-05-20T23:30:00Z", "2024-05-20"},
		{"2024-05-20T23:30:00-03:00", "2024-05-21"},
		{" 2023-11-15 ", "2023-11-15"},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := NormalizeDate("next tuesday")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 91, DaysBetween(a, a.AddDate(0, 0, 91)))
	assert.Equal(t, 91, DaysBetween(a.AddDate(0, 0, 91), a))
	assert.Equal(t, 1, DaysBetween(a, a.Add(time.Hour)))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("imo", "IMO number is required")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation: imo: IMO number is required", err.Error())

	multi := &ValidationError{Errors: []FieldError{{Field: "a"}, {Field: "b"}}}
	assert.Equal(t, "validation: 2 errors", multi.Error())
}
