package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/allwinajith/elms/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployee(ctx context.Context, employeeID string) error
	LeaveTypeMaxDays(ctx context.Context, leaveTypeID string) (int, error)
	HasOverlappingLeave(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindForDecision(ctx context.Context, id string) (*Leave, int, error)
	UpdateDecision(ctx context.Context, id, status string, remarks *string, decidedBy uuid.UUID, at time.Time) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListByEmployee(ctx context.Context, employeeID, status string) ([]EmployeeLeaveRow, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(ctx, r.db, r.tx)
}

// LockEmployee serializes submissions per employee until the surrounding
// transaction ends.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", employeeID).Error
}

// LeaveTypeMaxDays yields 0 for an unknown type so the quota check rejects it.
func (r *repository) LeaveTypeMaxDays(ctx context.Context, leaveTypeID string) (int, error) {
	var maxDays int
	err := r.conn(ctx).
		Raw("SELECT COALESCE((SELECT max_days FROM leave_types WHERE id = ?), 0)", leaveTypeID).
		Scan(&maxDays).Error
	return maxDays, err
}

func (r *repository) HasOverlappingLeave(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	if err := r.conn(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

type decisionRow struct {
	Leave
	MaxDays int
}

// FindForDecision locks the request row and returns it with its type's
// max_days. A request whose leave type was removed reports 0.
func (r *repository) FindForDecision(ctx context.Context, id string) (*Leave, int, error) {
	var row decisionRow
	err := r.conn(ctx).
		Table("leaves l").
		Select("l.*, COALESCE(lt.max_days, 0) AS max_days").
		Joins("LEFT JOIN leave_types lt ON lt.id = l.leave_type_id").
		Where("l.id = ?", id).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "l", Raw: true}}).
		Take(&row).Error
	if err != nil {
		return nil, 0, err
	}
	return &row.Leave, row.MaxDays, nil
}

func (r *repository) UpdateDecision(ctx context.Context, id, status string, remarks *string, decidedBy uuid.UUID, at time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":           status,
			"admin_remarks":    remarks,
			"decided_by":       decidedBy,
			"admin_updated_at": at,
		})
	return res.RowsAffected, res.Error
}

// Delete only removes pending requests.
func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.conn(ctx).
		Where("id = ? AND status = ?", id, StatusPending).
		Delete(&Leave{})
	return res.RowsAffected, res.Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID, status string) ([]EmployeeLeaveRow, error) {
	q := r.conn(ctx).
		Table("leaves l").
		Select(`l.id, l.leave_type_id, COALESCE(lt.name, '') AS leave_type, l.start_date, l.end_date,
			l.total_days, l.reason, l.status, l.admin_remarks, l.created_at, l.admin_updated_at`).
		Joins("LEFT JOIN leave_types lt ON lt.id = l.leave_type_id").
		Where("l.employee_id = ?", employeeID)
	if status != "" {
		q = q.Where("l.status = ?", status)
	}

	var rows []EmployeeLeaveRow
	err := q.Order("l.created_at DESC").Scan(&rows).Error
	return rows, err
}
