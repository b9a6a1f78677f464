package leave

import "time"

const dateLayout = "2006-01-02"

type SubmitLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type SubmitLeaveResponse struct {
	RequestID string `json:"request_id"`
	TotalDays int    `json:"total_days"`
}

type DecideLeaveRequest struct {
	Status       string `json:"status" binding:"required"`
	AdminRemarks string `json:"admin_remarks"`
}

type DecisionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type EmployeeLeaveResponse struct {
	ID             string     `json:"id"`
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

func mapToEmployeeLeaveResponses(rows []EmployeeLeaveRow) []EmployeeLeaveResponse {
	resp := make([]EmployeeLeaveResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, EmployeeLeaveResponse{
			ID:             r.ID,
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
