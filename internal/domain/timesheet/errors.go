package timesheet

import "errors"

var (
	// ErrRecordNotFound is returned when a check-out targets a key with no
	// existing record; check-out never creates one.
	ErrRecordNotFound = errors.New("timesheet record not found")

	// ErrDuplicateRecord surfaces when two concurrent check-ins race past
	// the existence check and the store rejects the second insert.
	ErrDuplicateRecord = errors.New("timesheet record already exists for this date and position")
)
