package report

import "time"

// unknownGUID is substituted when a position's department GUID cannot be
// resolved. The export format never carries a null GUID.
const unknownGUID = "unknown"

type empPosKey struct {
	empID string
	posID string
}

// BuildExportDocument reshapes flat joined rows into the nested worklog
// export: one block per employee holding at least one assignment, each with
// one posts entry per assigned position and that position's worklogs.
//
// Precondition: attendanceRows must be ordered by (employee, position,
// date) and assignmentRows by (employee, position). Worklogs are appended
// in given order and employee/position blocks emerge in assignment-row
// discovery order; the function performs no sorting of its own.
//
// Assignments drive the output: a position with zero attendance still
// appears, with an empty worklogs list. Attendance rows whose assignment
// was deleted are dropped, since only assignment rows emit blocks.
func BuildExportDocument(attendanceRows []AttendanceRow, assignmentRows []AssignmentRow) ExportDocument {
	// Group attendance by (employee, position); the first row of a group
	// seeds the position block, later rows only append worklogs.
	attendanceByKey := make(map[empPosKey]*ExportPositionBlock)
	for _, row := range attendanceRows {
		key := empPosKey{empID: row.EmpID, posID: row.PosID}
		block, ok := attendanceByKey[key]
		if !ok {
			block = &ExportPositionBlock{
				GUID:     guidOrUnknown(row.DepartmentGUID),
				PosID:    row.PosID,
				Rate:     row.AssignedRate,
				Worklogs: []ExportWorklogEntry{},
			}
			attendanceByKey[key] = block
		}
		block.Worklogs = append(block.Worklogs, ExportWorklogEntry{
			Date:     LocalizeDate(row.DateWork),
			CheckIn:  row.CheckIn,
			CheckOut: row.CheckOut,
		})
	}

	// Walk the assignment roster, reconciling against the attendance
	// groups so every assignment appears exactly once.
	blocksByEmp := make(map[string]*ExportEmployeeBlock)
	seenPositions := make(map[empPosKey]bool)
	var employeeOrder []string

	for _, row := range assignmentRows {
		emp, ok := blocksByEmp[row.EmpID]
		if !ok {
			emp = &ExportEmployeeBlock{
				FullName:    row.FullName,
				DateOfBirth: row.DateOfBirth.Format("02.01.2006"),
				Posts:       []ExportPositionBlock{},
			}
			blocksByEmp[row.EmpID] = emp
			employeeOrder = append(employeeOrder, row.EmpID)
		}

		key := empPosKey{empID: row.EmpID, posID: row.PosID}
		if seenPositions[key] {
			// Duplicate assignment for the same position collapses onto
			// the already-emitted block.
			continue
		}
		seenPositions[key] = true

		if logged, ok := attendanceByKey[key]; ok {
			emp.Posts = append(emp.Posts, *logged)
		} else {
			emp.Posts = append(emp.Posts, ExportPositionBlock{
				GUID:     guidOrUnknown(row.DepartmentGUID),
				PosID:    row.PosID,
				Rate:     row.AssignedRate,
				Worklogs: []ExportWorklogEntry{},
			})
		}
	}

	doc := ExportDocument{Employees: []ExportEmployeeBlock{}}
	for _, empID := range employeeOrder {
		doc.Employees = append(doc.Employees, *blocksByEmp[empID])
	}
	return doc
}

// LocalizeDate renders an ISO date string as DD.MM.YYYY, the convention the
// export format's consumers expect. Unparseable input passes through
// unchanged.
func LocalizeDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02.01.2006")
}

func guidOrUnknown(guid *string) string {
	if guid == nil || *guid == "" {
		return unknownGUID
	}
	return *guid
}
