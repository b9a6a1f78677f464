package app

import (
	"context"
	"fmt"

	"github.com/allwinajith/elms/internal/admin"
	"github.com/allwinajith/elms/internal/employee"
	"github.com/allwinajith/elms/internal/leave"
	"github.com/allwinajith/elms/internal/leavebalance"
	"github.com/allwinajith/elms/internal/leavetype"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             UUID PRIMARY KEY,
	request_id     VARCHAR(64),
	aggregate_type VARCHAR(50)  NOT NULL,
	aggregate_id   UUID         NOT NULL,
	event_type     VARCHAR(100) NOT NULL,
	topic          VARCHAR(200) NOT NULL,
	payload        JSONB        NOT NULL,
	status         VARCHAR(20)  NOT NULL DEFAULT 'pending',
	retry_count    INT          NOT NULL DEFAULT 0,
	error_message  TEXT,
	next_retry_at  TIMESTAMPTZ,
	processed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_next_retry
	ON outbox_events (status, next_retry_at, created_at);
`

// Migrate creates or updates every table the service owns. The employees
// table is only created when absent so local setups have something to join.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := zap.L().Named("app.migrate")

	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}

	if !db.Migrator().HasTable(&employee.Employee{}) {
		if err := db.WithContext(ctx).AutoMigrate(&employee.Employee{}); err != nil {
			return fmt.Errorf("migrate employees: %w", err)
		}
		log.Info("created employees table")
	}

	models := []any{
		&admin.Admin{},
		&leavetype.LeaveType{},
		&leavebalance.EmployeeLeaveBalance{},
		&leave.Leave{},
	}
	for _, m := range models {
		if err := db.WithContext(ctx).AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}

	if err := db.WithContext(ctx).Exec(outboxDDL).Error; err != nil {
		return fmt.Errorf("migrate outbox_events: %w", err)
	}

	log.Info("migration complete", zap.Int("models", len(models)+1))
	return nil
}
