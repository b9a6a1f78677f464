package leavebalance

import (
	"context"
	"database/sql"

	"github.com/allwinajith/elms/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetOrCreate(ctx context.Context, employeeID, leaveTypeID string, year int) (*EmployeeLeaveBalance, error)
	UsedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error)
	AddUsedDays(ctx context.Context, employeeID, leaveTypeID string, year, days int) (int64, error)
	AddUsedDaysWithinQuota(ctx context.Context, employeeID, leaveTypeID string, year, days, maxDays int) (int64, error)
	FetchBalances(ctx context.Context, employeeID string, year int) ([]BalanceRow, error)
	InitializeYear(ctx context.Context, year int) (int64, error)
	InitializeEmployee(ctx context.Context, employeeID string, year int) (int64, error)
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

func ledgerKey(db *gorm.DB, employeeID, leaveTypeID string, year int) *gorm.DB {
	return db.Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year)
}

// GetOrCreate is safe to race: the loser of a concurrent insert hits the
// unique index, does nothing, and reads the winner's row.
func (r *repository) GetOrCreate(ctx context.Context, employeeID, leaveTypeID string, year int) (*EmployeeLeaveBalance, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, err
	}
	typeID, err := uuid.Parse(leaveTypeID)
	if err != nil {
		return nil, err
	}

	row := EmployeeLeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  empID,
		LeaveTypeID: typeID,
		Year:        year,
	}

	err = r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}

	var stored EmployeeLeaveBalance
	if err := ledgerKey(r.conn(ctx), employeeID, leaveTypeID, year).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *repository) UsedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	var used int
	err := ledgerKey(r.conn(ctx).Model(&EmployeeLeaveBalance{}), employeeID, leaveTypeID, year).
		Select("COALESCE(SUM(used_days), 0)").
		Scan(&used).Error
	return used, err
}

func (r *repository) AddUsedDays(ctx context.Context, employeeID, leaveTypeID string, year, days int) (int64, error) {
	res := ledgerKey(r.conn(ctx).Model(&EmployeeLeaveBalance{}), employeeID, leaveTypeID, year).
		Update("used_days", gorm.Expr("used_days + ?", days))
	return res.RowsAffected, res.Error
}

// AddUsedDaysWithinQuota affects zero rows when the increment would exceed maxDays.
func (r *repository) AddUsedDaysWithinQuota(ctx context.Context, employeeID, leaveTypeID string, year, days, maxDays int) (int64, error) {
	res := ledgerKey(r.conn(ctx).Model(&EmployeeLeaveBalance{}), employeeID, leaveTypeID, year).
		Where("used_days + ? <= ?", days, maxDays).
		Update("used_days", gorm.Expr("used_days + ?", days))
	return res.RowsAffected, res.Error
}

func (r *repository) FetchBalances(ctx context.Context, employeeID string, year int) ([]BalanceRow, error) {
	var rows []BalanceRow
	err := r.conn(ctx).
		Table("leave_types lt").
		Select("lt.id AS leave_type_id, lt.name AS leave_type, lt.max_days, COALESCE(b.used_days, 0) AS used_days").
		Joins("LEFT JOIN employee_leave_balances b ON b.leave_type_id = lt.id AND b.employee_id = ? AND b.year = ?", employeeID, year).
		Order("lt.name").
		Scan(&rows).Error
	return rows, err
}

const initYearSQL = `
INSERT INTO employee_leave_balances (id, employee_id, leave_type_id, year, used_days, created_at, updated_at)
SELECT gen_random_uuid(), e.id, lt.id, CAST(? AS integer), 0, NOW(), NOW()
FROM employees e
CROSS JOIN leave_types lt
ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING`

const initEmployeeSQL = `
INSERT INTO employee_leave_balances (id, employee_id, leave_type_id, year, used_days, created_at, updated_at)
SELECT gen_random_uuid(), CAST(? AS uuid), lt.id, CAST(? AS integer), 0, NOW(), NOW()
FROM leave_types lt
ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING`

func (r *repository) InitializeYear(ctx context.Context, year int) (int64, error) {
	res := r.conn(ctx).Exec(initYearSQL, year)
	return res.RowsAffected, res.Error
}

func (r *repository) InitializeEmployee(ctx context.Context, employeeID string, year int) (int64, error) {
	res := r.conn(ctx).Exec(initEmployeeSQL, employeeID, year)
	return res.RowsAffected, res.Error
}
