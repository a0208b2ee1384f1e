package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation: calendar month in YYYY-MM form.
var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

func IsValidMonth(month string) bool {
	if !monthRegex.MatchString(month) {
		return false
	}
	_, err := time.Parse("2006-01", month)
	return err == nil
}

// Clock time validation: wall-clock time in HH:MM form.
var clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func IsValidClockTime(t string) bool {
	return clockTimeRegex.MatchString(t)
}

// GUID validation for department business keys.
func IsValidGUID(guid string) bool {
	return uuid.Validate(guid) == nil
}

// MonthRange expands a YYYY-MM month into the half-open ISO date range
// [month-01, nextMonth-01).
func MonthRange(month string) (start, end string, err error) {
	if !IsValidMonth(month) {
		return "", "", ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format (e.g., 2025-01)",
		}}
	}

	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", err
	}

	return first.Format("2006-01-02"), first.AddDate(0, 1, 0).Format("2006-01-02"), nil
}
