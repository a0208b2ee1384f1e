package assignment

// Assignment links an employee to a position with a negotiated rate. The
// surrogate ID exists only so assignments can be deleted individually; no
// uniqueness is enforced on (emp_id, pos_id).
type Assignment struct {
	ID           int64   `json:"id"`
	EmpID        string  `json:"emp_id"`
	PosID        string  `json:"pos_id"`
	AssignedRate float64 `json:"assigned_rate"`
}

// ListRow is the admin listing row: an assignment joined with the employee
// and position names.
type ListRow struct {
	ID             int64   `json:"id"`
	EmpID          string  `json:"emp_id"`
	PosID          string  `json:"pos_id"`
	AssignedRate   float64 `json:"assigned_rate"`
	FullName       string  `json:"full_name"`
	Title          string  `json:"title"`
	DepartmentGUID string  `json:"department_guid"`
}

// EmployeePositionRow is one position an employee may check in against.
type EmployeePositionRow struct {
	EmpID         string  `json:"emp_id"`
	PosID         string  `json:"pos_id"`
	AssignedRate  float64 `json:"assigned_rate"`
	PositionTitle string  `json:"position_title"`
}
