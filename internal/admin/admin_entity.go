package admin

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_admins_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Salt         string    `gorm:"type:varchar(64);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string {
	return "admins"
}
