package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Leave struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text;not null"`

	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leaves_status_created"`
	AdminRemarks *string    `gorm:"type:text"`
	DecidedBy    *uuid.UUID `gorm:"type:uuid"`

	CreatedAt      time.Time `gorm:"index:idx_leaves_status_created"`
	AdminUpdatedAt *time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

// EmployeeLeaveRow is a request joined with its leave type name.
type EmployeeLeaveRow struct {
	ID             string
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

// CountDays is the inclusive calendar-day span of a request. Both dates are
// expected at midnight UTC; a result below 1 means end precedes start.
func CountDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
