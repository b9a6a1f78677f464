package events

import "time"

// EmployeeLifecycleTopic is produced by the HR core system.
const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const EmployeeCreatedEventType = "employee_created"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	EmpID      string    `json:"emp_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
