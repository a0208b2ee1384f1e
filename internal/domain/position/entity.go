package position

// Position is identified externally by PosID. TotalRate is the head-count
// budget for the position; assignments consume fractions of it.
type Position struct {
	ID             int64   `json:"id"`
	PosID          string  `json:"pos_id"`
	Title          string  `json:"title"`
	TotalRate      float64 `json:"total_rate"`
	DepartmentGUID string  `json:"department_guid"`
}
