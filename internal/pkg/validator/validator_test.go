package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-01"))
	assert.True(t, IsValidMonth("1999-12"))

	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-1"))
	assert.False(t, IsValidMonth("2025/01"))
	assert.False(t, IsValidMonth("202501"))
	assert.False(t, IsValidMonth(""))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("00:00"))
	assert.True(t, IsValidClockTime("09:30"))
	assert.True(t, IsValidClockTime("23:59"))

	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("9:30"))
	assert.False(t, IsValidClockTime("09:60"))
	assert.False(t, IsValidClockTime("09-30"))
}

func TestIsValidGUID(t *testing.T) {
	assert.True(t, IsValidGUID("0b91cd27-35f8-4bd0-a8f3-66a7d1f6e0a1"))
	assert.False(t, IsValidGUID("not-a-guid"))
	assert.False(t, IsValidGUID(""))
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, "2025-02-01", end)

	// Year rollover
	start, end, err = MonthRange("2024-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", start)
	assert.Equal(t, "2025-01-01", end)

	_, _, err = MonthRange("2025-00")
	require.Error(t, err)

	_, _, err = MonthRange("january")
	require.Error(t, err)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month is required"},
		{Field: "emp_id", Message: "emp_id is required"},
	}

	assert.Equal(t, "month: month is required; emp_id: emp_id is required", errs.Error())
	assert.Equal(t, map[string]string{
		"month":  "month is required",
		"emp_id": "emp_id is required",
	}, errs.ToMap())
}
