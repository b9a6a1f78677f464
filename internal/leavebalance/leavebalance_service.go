package leavebalance

import (
	"context"
	"database/sql"

	"github.com/allwinajith/elms/internal/employee"
	employeeerrors "github.com/allwinajith/elms/internal/employee/errors"
	leavebalanceerrors "github.com/allwinajith/elms/internal/leavebalance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)
	InitializeYear(ctx context.Context, year int) (InitBalancesResponse, error)
	InitializeEmployee(ctx context.Context, employeeID string, year int) (int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func validYear(year int) bool {
	return year >= 1970 && year <= 9999
}

func (s *service) GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if !validYear(year) {
		return nil, leavebalanceerrors.ErrInvalidYear
	}

	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	rows, err := s.repo.FetchBalances(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	return mapToBalanceResponses(rows), nil
}

func (s *service) InitializeYear(ctx context.Context, year int) (InitBalancesResponse, error) {
	if !validYear(year) {
		return InitBalancesResponse{}, leavebalanceerrors.ErrInvalidYear
	}

	inserted, err := s.repo.InitializeYear(ctx, year)
	if err != nil {
		return InitBalancesResponse{}, err
	}

	s.logger.Info("leave balances initialized", zap.Int("year", year), zap.Int64("inserted", inserted))

	return InitBalancesResponse{Year: year, Inserted: inserted}, nil
}

// InitializeEmployee seeds zero rows for a newly hired employee.
func (s *service) InitializeEmployee(ctx context.Context, employeeID string, year int) (int64, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	if !validYear(year) {
		return 0, leavebalanceerrors.ErrInvalidYear
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := s.employees.WithTx(tx).Exists(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, employeeerrors.ErrEmployeeNotFound
	}

	inserted, err := s.repo.WithTx(tx).InitializeEmployee(ctx, employeeID, year)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("employee leave balances initialized",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int64("inserted", inserted),
	)
	return inserted, nil
}
