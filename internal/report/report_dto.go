package report

import "time"

const dateLayout = "2006-01-02"

type ReportFilter struct {
	EmployeeID  string `form:"employee_id"`
	LeaveTypeID string `form:"leave_type_id"`
	Status      string `form:"status"`
	Year        int    `form:"year"`
}

type LeaveReportResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmpID          string     `json:"emp_id"`
	EmployeeName   string     `json:"employee_name"`
	LeaveTypeID    string     `json:"leave_type_id"`
	LeaveType      string     `json:"leave_type"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	TotalDays      int        `json:"total_days"`
	Reason         string     `json:"reason"`
	Status         string     `json:"status"`
	AdminRemarks   *string    `json:"admin_remarks"`
	CreatedAt      time.Time  `json:"created_at"`
	AdminUpdatedAt *time.Time `json:"admin_updated_at"`
}

func mapToResponses(rows []LeaveRow) []LeaveReportResponse {
	resp := make([]LeaveReportResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, LeaveReportResponse{
			ID:             r.ID,
			EmployeeID:     r.EmployeeID,
			EmpID:          r.EmpID,
			EmployeeName:   r.EmployeeName,
			LeaveTypeID:    r.LeaveTypeID,
			LeaveType:      r.LeaveType,
			StartDate:      r.StartDate.Format(dateLayout),
			EndDate:        r.EndDate.Format(dateLayout),
			TotalDays:      r.TotalDays,
			Reason:         r.Reason,
			Status:         r.Status,
			AdminRemarks:   r.AdminRemarks,
			CreatedAt:      r.CreatedAt,
			AdminUpdatedAt: r.AdminUpdatedAt,
		})
	}
	return resp
}
