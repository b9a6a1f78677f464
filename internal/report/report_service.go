package report

import (
	"context"

	"github.com/allwinajith/elms/internal/leave"
	reporterrors "github.com/allwinajith/elms/internal/report/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	FetchLeaveReports(ctx context.Context, f ReportFilter) ([]LeaveReportResponse, error)
	ListForAdmin(ctx context.Context, status string) ([]LeaveReportResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func validateFilter(f ReportFilter) error {
	if f.EmployeeID != "" {
		if _, err := uuid.Parse(f.EmployeeID); err != nil {
			return reporterrors.ErrInvalidEmployeeID
		}
	}
	if f.LeaveTypeID != "" {
		if _, err := uuid.Parse(f.LeaveTypeID); err != nil {
			return reporterrors.ErrInvalidLeaveTypeID
		}
	}
	if f.Status != "" && !leave.ValidStatus(f.Status) {
		return reporterrors.ErrInvalidStatus
	}
	if f.Year != 0 && (f.Year < 1970 || f.Year > 9999) {
		return reporterrors.ErrInvalidYear
	}
	return nil
}

func (s *service) FetchLeaveReports(ctx context.Context, f ReportFilter) ([]LeaveReportResponse, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	rows, err := s.repo.FetchLeaveReports(ctx, f)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("leave report fetched", zap.Int("rows", len(rows)))
	return mapToResponses(rows), nil
}

func (s *service) ListForAdmin(ctx context.Context, status string) ([]LeaveReportResponse, error) {
	if status != "" && !leave.ValidStatus(status) {
		return nil, reporterrors.ErrInvalidStatus
	}

	rows, err := s.repo.ListForAdmin(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}
