package report

import "time"

// LeaveRow is a leave request joined with its employee and leave type.
type LeaveRow struct {
	ID             string
	EmployeeID     string
	EmpID          string
	EmployeeName   string
	LeaveTypeID    string
	LeaveType      string
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	Reason         string
	Status         string
	AdminRemarks   *string
	CreatedAt      time.Time
	AdminUpdatedAt *time.Time
}
