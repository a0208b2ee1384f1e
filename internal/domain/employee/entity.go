package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee is identified externally by EmpID (the business key printed on
// badges); ID is the internal surrogate key.
type Employee struct {
	ID           int64
	EmpID        string
	FullName     string
	DateOfBirth  time.Time
	Username     string
	PasswordHash string
	Role         Role
}

// AssignedPosition is the position summary embedded in employee listings.
type AssignedPosition struct {
	PosID        string  `json:"pos_id"`
	Title        string  `json:"title"`
	AssignedRate float64 `json:"assigned_rate"`
}

// EmployeeWithPositions is the admin listing row: one employee plus every
// position currently assigned to them.
type EmployeeWithPositions struct {
	EmpID       string             `json:"emp_id"`
	FullName    string             `json:"full_name"`
	DateOfBirth string             `json:"date_of_birth"`
	Username    string             `json:"username"`
	Positions   []AssignedPosition `json:"positions"`
}
