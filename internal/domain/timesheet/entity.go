package timesheet

// Record is one day's check-in/check-out pair for an employee at a specific
// position. DateWork and the clock times are opaque strings (YYYY-MM-DD and
// HH:MM); the store compares them for exact equality. CheckOut is nil while
// the shift is open.
type Record struct {
	ID       int64   `json:"id"`
	EmpID    string  `json:"emp_id"`
	PosID    string  `json:"pos_id"`
	DateWork string  `json:"date_work"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`

	// Joined for per-employee listings
	PositionTitle *string `json:"position_title,omitempty"`
}
