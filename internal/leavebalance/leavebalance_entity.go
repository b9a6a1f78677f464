package leavebalance

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeLeaveBalance is the ledger row for one employee, leave type and year.
// UsedDays only ever grows.
type EmployeeLeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_leave_balance,priority:1"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_leave_balance,priority:2"`
	Year        int       `gorm:"not null;uniqueIndex:uq_employee_leave_balance,priority:3"`
	UsedDays    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmployeeLeaveBalance) TableName() string {
	return "employee_leave_balances"
}

// BalanceRow is one leave type joined with the employee's ledger row, if any.
type BalanceRow struct {
	LeaveTypeID string
	LeaveType   string
	MaxDays     int
	UsedDays    int
}
