package report

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FetchLeaveReports(ctx context.Context, f ReportFilter) ([]LeaveRow, error)
	ListForAdmin(ctx context.Context, status string) ([]LeaveRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Left joins keep requests whose employee or leave type has since been removed.
const leaveRowColumns = `l.id, l.employee_id, COALESCE(e.emp_id, '') AS emp_id,
	COALESCE(NULLIF(e.name, ''), e.first_name, '') AS employee_name,
	l.leave_type_id, COALESCE(lt.name, '') AS leave_type, l.start_date, l.end_date, l.total_days, l.reason,
	l.status, l.admin_remarks, l.created_at, l.admin_updated_at`

func (r *repository) leaves(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leaves l").
		Select(leaveRowColumns).
		Joins("LEFT JOIN employees e ON e.id = l.employee_id").
		Joins("LEFT JOIN leave_types lt ON lt.id = l.leave_type_id")
}

// FetchLeaveReports applies every non-empty filter conjunctively.
func (r *repository) FetchLeaveReports(ctx context.Context, f ReportFilter) ([]LeaveRow, error) {
	q := r.leaves(ctx)
	if f.EmployeeID != "" {
		q = q.Where("l.employee_id = ?", f.EmployeeID)
	}
	if f.LeaveTypeID != "" {
		q = q.Where("l.leave_type_id = ?", f.LeaveTypeID)
	}
	if f.Status != "" {
		q = q.Where("l.status = ?", f.Status)
	}
	if f.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM l.start_date) = ?", f.Year)
	}

	var rows []LeaveRow
	err := q.Order("l.start_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) ListForAdmin(ctx context.Context, status string) ([]LeaveRow, error) {
	q := r.leaves(ctx)
	if status != "" {
		q = q.Where("l.status = ?", status)
	}

	var rows []LeaveRow
	err := q.Order("l.created_at DESC").Scan(&rows).Error
	return rows, err
}
