package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testBirthDate() time.Time {
	return time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
}

func TestBuildExportDocument_GroupsWorklogsByPosition(t *testing.T) {
	guid := strPtr("0b91cd27-35f8-4bd0-a8f3-66a7d1f6e0a1")
	attendance := []AttendanceRow{
		{
			EmpID: "EMP-1", FullName: "Anna Ivanova", DateOfBirth: testBirthDate(),
			DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1.0,
			DateWork: "2025-01-10", CheckIn: strPtr("09:00"), CheckOut: strPtr("18:00"),
		},
		{
			EmpID: "EMP-1", FullName: "Anna Ivanova", DateOfBirth: testBirthDate(),
			DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1.0,
			DateWork: "2025-01-11", CheckIn: strPtr("09:15"), CheckOut: nil,
		},
	}
	assignments := []AssignmentRow{
		{
			EmpID: "EMP-1", FullName: "Anna Ivanova", DateOfBirth: testBirthDate(),
			DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1.0,
		},
	}

	doc := BuildExportDocument(attendance, assignments)

	require.Len(t, doc.Employees, 1)
	emp := doc.Employees[0]
	assert.Equal(t, "Anna Ivanova", emp.FullName)
	assert.Equal(t, "20.05.1990", emp.DateOfBirth)

	require.Len(t, emp.Posts, 1)
	post := emp.Posts[0]
	assert.Equal(t, "0b91cd27-35f8-4bd0-a8f3-66a7d1f6e0a1", post.GUID)
	assert.Equal(t, "POS-1", post.PosID)
	assert.Equal(t, 1.0, post.Rate)

	require.Len(t, post.Worklogs, 2)
	assert.Equal(t, "10.01.2025", post.Worklogs[0].Date)
	assert.Equal(t, "09:00", *post.Worklogs[0].CheckIn)
	assert.Equal(t, "18:00", *post.Worklogs[0].CheckOut)
	assert.Equal(t, "11.01.2025", post.Worklogs[1].Date)
	assert.Nil(t, post.Worklogs[1].CheckOut)
}

func TestBuildExportDocument_AssignmentWithoutAttendance(t *testing.T) {
	guid := strPtr("5e2a9c48-9f1d-4e33-bb0f-8a4f3b2c1d00")
	assignments := []AssignmentRow{
		{
			EmpID: "EMP-2", FullName: "Boris Petrov", DateOfBirth: testBirthDate(),
			DepartmentGUID: guid, PosID: "POS-9", AssignedRate: 0.5,
		},
	}

	doc := BuildExportDocument(nil, assignments)

	require.Len(t, doc.Employees, 1)
	require.Len(t, doc.Employees[0].Posts, 1)
	post := doc.Employees[0].Posts[0]
	assert.Equal(t, "POS-9", post.PosID)
	assert.Equal(t, 0.5, post.Rate)
	assert.NotNil(t, post.Worklogs)
	assert.Empty(t, post.Worklogs)

	// Zero attendance still serializes worklogs as [], not null.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"worklogs":[]`)
}

func TestBuildExportDocument_UnknownDepartmentGUID(t *testing.T) {
	assignments := []AssignmentRow{
		{
			EmpID: "EMP-3", FullName: "Clara Sidorova", DateOfBirth: testBirthDate(),
			DepartmentGUID: nil, PosID: "POS-2", AssignedRate: 1.0,
		},
		{
			EmpID: "EMP-3", FullName: "Clara Sidorova", DateOfBirth: testBirthDate(),
			DepartmentGUID: strPtr(""), PosID: "POS-3", AssignedRate: 1.0,
		},
	}

	doc := BuildExportDocument(nil, assignments)

	require.Len(t, doc.Employees, 1)
	require.Len(t, doc.Employees[0].Posts, 2)
	assert.Equal(t, "unknown", doc.Employees[0].Posts[0].GUID)
	assert.Equal(t, "unknown", doc.Employees[0].Posts[1].GUID)
}

func TestBuildExportDocument_DiscoveryOrder(t *testing.T) {
	assignments := []AssignmentRow{
		{EmpID: "EMP-B", FullName: "B", DateOfBirth: testBirthDate(), PosID: "POS-2", AssignedRate: 1},
		{EmpID: "EMP-B", FullName: "B", DateOfBirth: testBirthDate(), PosID: "POS-1", AssignedRate: 1},
		{EmpID: "EMP-A", FullName: "A", DateOfBirth: testBirthDate(), PosID: "POS-5", AssignedRate: 1},
	}

	doc := BuildExportDocument(nil, assignments)

	require.Len(t, doc.Employees, 2)
	assert.Equal(t, "B", doc.Employees[0].FullName)
	assert.Equal(t, "A", doc.Employees[1].FullName)

	require.Len(t, doc.Employees[0].Posts, 2)
	assert.Equal(t, "POS-2", doc.Employees[0].Posts[0].PosID)
	assert.Equal(t, "POS-1", doc.Employees[0].Posts[1].PosID)
}

func TestBuildExportDocument_DuplicateAssignmentCollapses(t *testing.T) {
	guid := strPtr("7fa3bb10-61d2-4f6e-a8a9-0cd5e1b2f344")
	assignments := []AssignmentRow{
		{EmpID: "EMP-1", FullName: "Anna", DateOfBirth: testBirthDate(), DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1},
		{EmpID: "EMP-1", FullName: "Anna", DateOfBirth: testBirthDate(), DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1},
	}

	doc := BuildExportDocument(nil, assignments)

	require.Len(t, doc.Employees, 1)
	assert.Len(t, doc.Employees[0].Posts, 1)
}

func TestBuildExportDocument_AttendanceWithoutAssignmentDropped(t *testing.T) {
	attendance := []AttendanceRow{
		{
			EmpID: "EMP-GONE", FullName: "Ghost", DateOfBirth: testBirthDate(),
			PosID: "POS-1", AssignedRate: 1,
			DateWork: "2025-02-01", CheckIn: strPtr("08:00"),
		},
	}

	doc := BuildExportDocument(attendance, nil)

	assert.Empty(t, doc.Employees)
}

func TestBuildExportDocument_WorklogCountMatchesAttendance(t *testing.T) {
	guid := strPtr("c2d4e6f8-1234-4abc-9def-567890abcdef")
	var attendance []AttendanceRow
	dates := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	for _, d := range dates {
		attendance = append(attendance, AttendanceRow{
			EmpID: "EMP-1", FullName: "Anna", DateOfBirth: testBirthDate(),
			DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1,
			DateWork: d, CheckIn: strPtr("09:00"), CheckOut: strPtr("17:00"),
		})
	}
	assignments := []AssignmentRow{
		{EmpID: "EMP-1", FullName: "Anna", DateOfBirth: testBirthDate(), DepartmentGUID: guid, PosID: "POS-1", AssignedRate: 1},
	}

	doc := BuildExportDocument(attendance, assignments)

	total := 0
	for _, emp := range doc.Employees {
		for _, post := range emp.Posts {
			total += len(post.Worklogs)
		}
	}
	assert.Equal(t, len(attendance), total)
}

func TestBuildExportDocument_Empty(t *testing.T) {
	doc := BuildExportDocument(nil, nil)

	assert.NotNil(t, doc.Employees)
	assert.Empty(t, doc.Employees)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"employees":[]}`, string(raw))
}

func TestLocalizeDate(t *testing.T) {
	assert.Equal(t, "31.12.2024", LocalizeDate("2024-12-31"))
	assert.Equal(t, "01.02.2025", LocalizeDate("2025-02-01"))
	assert.Equal(t, "not-a-date", LocalizeDate("not-a-date"))
	assert.Equal(t, "", LocalizeDate(""))
}
