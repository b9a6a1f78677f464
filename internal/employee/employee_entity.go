package employee

import (
	"github.com/google/uuid"
)

// Employee is owned by the HR core system; this service only reads it.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmpID     string    `gorm:"column:emp_id;type:varchar(50);uniqueIndex"`
	FirstName string    `gorm:"type:varchar(100)"`
	Name      string    `gorm:"type:varchar(200)"`
}

func (Employee) TableName() string {
	return "employees"
}
