package events

import "time"

const LeaveDecisionsTopic = "hr.leave.decisions.v1"

const LeaveDecidedEventType = "leave_decided"

// LeaveDecidedEvent is published once per approve or reject decision.
type LeaveDecidedEvent struct {
	EventType    string    `json:"event_type"`
	LeaveID      string    `json:"leave_id"`
	EmployeeID   string    `json:"employee_id"`
	LeaveTypeID  string    `json:"leave_type_id"`
	Status       string    `json:"status"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         int       `json:"days"`
	BalanceYear  int       `json:"balance_year,omitempty"`
	AdminRemarks string    `json:"admin_remarks,omitempty"`
	DecidedBy    string    `json:"decided_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
