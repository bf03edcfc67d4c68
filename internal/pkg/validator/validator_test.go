package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("ZANICA"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("11111111-1111-1111-1111-111111111111"))
	assert.True(t, IsValidUUID("0190b3a0-5a3e-7cc1-8e0f-3bb6f1e2a9c4"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("11111111-1111-1111-1111"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("2024"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("20a4"))
	assert.False(t, IsNumeric("-1"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)

	_, ok = IsValidDate("29/02/2024")
	assert.False(t, ok)
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2024))
	assert.True(t, IsValidYear(1000))
	assert.True(t, IsValidYear(9999))
	assert.False(t, IsValidYear(0))
	assert.False(t, IsValidYear(999))
	assert.False(t, IsValidYear(10000))
	assert.False(t, IsValidYear(-2024))
}

func TestIsInSlice(t *testing.T) {
	values := []string{"T1", "T2", "T3"}
	assert.True(t, IsInSlice("T2", values))
	assert.False(t, IsInSlice("T4", values))
	assert.False(t, IsInSlice("t1", values))
	assert.False(t, IsInSlice("T1", nil))
}
