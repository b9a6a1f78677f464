package leave

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/events"
	leaveerrors "github.com/allwinajith/elms/internal/leave/errors"
	"github.com/allwinajith/elms/internal/leavebalance"
	"github.com/allwinajith/elms/internal/messaging/kafka"
	"github.com/allwinajith/elms/internal/shared/apperror"
	"github.com/allwinajith/elms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (SubmitLeaveResponse, error)
	ListOwn(ctx context.Context, employeeID, status string) ([]EmployeeLeaveResponse, error)
	Cancel(ctx context.Context, leaveID, employeeID string) error
	Decide(ctx context.Context, leaveID, adminID string, req DecideLeaveRequest) (DecisionResponse, error)
}

type Config struct {
	// ApprovalYearPolicy picks the balance year debited on approval:
	// config.YearPolicyStartDate or config.YearPolicyCurrent.
	ApprovalYearPolicy string
	Now                func() time.Time
}

type service struct {
	db       *sql.DB
	repo     Repository
	balances leavebalance.Repository
	outbox   kafka.OutboxRepository
	cfg      Config
	logger   *zap.Logger
}

// NewService accepts a nil outbox; decisions are then not published.
func NewService(
	db *sql.DB,
	repo Repository,
	balances leavebalance.Repository,
	outbox kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ApprovalYearPolicy == "" {
		cfg.ApprovalYearPolicy = config.YearPolicyStartDate
	}
	return &service{
		db:       db,
		repo:     repo,
		balances: balances,
		outbox:   outbox,
		cfg:      cfg,
		logger:   l,
	}
}

func quotaExceeded(remaining int) error {
	return leaveerrors.ErrQuotaExceeded.
		WithMessage(fmt.Sprintf("Leave quota exceeded. Available: %d days", remaining)).
		WithDetails(map[string]any{"remaining_days": remaining})
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (SubmitLeaveResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return SubmitLeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return SubmitLeaveResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return SubmitLeaveResponse{}, leaveerrors.ErrReasonRequired
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}

	days := CountDays(start, end)
	if days <= 0 {
		return SubmitLeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployee(ctx, employeeID); err != nil {
		return SubmitLeaveResponse{}, err
	}

	used, err := s.balances.WithTx(tx).UsedDays(ctx, employeeID, req.LeaveTypeID, start.Year())
	if err != nil {
		return SubmitLeaveResponse{}, err
	}
	maxDays, err := qtx.LeaveTypeMaxDays(ctx, req.LeaveTypeID)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}
	if used+days > maxDays {
		return SubmitLeaveResponse{}, quotaExceeded(maxDays - used)
	}

	overlap, err := qtx.HasOverlappingLeave(ctx, employeeID, start, end)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}
	if overlap {
		return SubmitLeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:          uuid.New(),
		EmployeeID:  empID,
		LeaveTypeID: typeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   days,
		Reason:      reason,
		Status:      StatusPending,
		CreatedAt:   s.cfg.Now(),
	}
	if err := qtx.Create(ctx, l); err != nil {
		return SubmitLeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SubmitLeaveResponse{}, err
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("days", days),
	)

	return SubmitLeaveResponse{RequestID: l.ID.String(), TotalDays: days}, nil
}

func (s *service) ListOwn(ctx context.Context, employeeID, status string) ([]EmployeeLeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	if status != "" && !ValidStatus(status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	rows, err := s.repo.ListByEmployee(ctx, employeeID, status)
	if err != nil {
		return nil, err
	}
	return mapToEmployeeLeaveResponses(rows), nil
}

func (s *service) Cancel(ctx context.Context, leaveID, employeeID string) error {
	if _, err := uuid.Parse(leaveID); err != nil {
		return leaveerrors.ErrLeaveNotFound
	}
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return leaveerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if l.EmployeeID != empID {
		return leaveerrors.ErrNotOwner
	}
	if l.Status != StatusPending {
		return leaveerrors.ErrNotPending
	}

	affected, err := qtx.Delete(ctx, leaveID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return leaveerrors.ErrCancelFailed
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("leave request cancelled", zap.String("leave_id", leaveID), zap.String("employee_id", employeeID))
	return nil
}

func (s *service) Decide(ctx context.Context, leaveID, adminID string, req DecideLeaveRequest) (DecisionResponse, error) {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return DecisionResponse{}, leaveerrors.ErrInvalidDecisionStatus
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return DecisionResponse{}, leaveerrors.ErrLeaveNotFound
	}
	decidedBy, err := uuid.Parse(adminID)
	if err != nil {
		return DecisionResponse{}, apperror.ErrUnauthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DecisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, maxDays, err := qtx.FindForDecision(ctx, leaveID)
	if err != nil {
		return DecisionResponse{}, mapRepositoryError(err)
	}
	if l.Status != StatusPending {
		return DecisionResponse{}, leaveerrors.ErrAlreadyDecided
	}

	now := s.cfg.Now()
	days := l.TotalDays
	if days <= 0 {
		days = CountDays(l.StartDate, l.EndDate)
	}

	var balanceYear int
	if req.Status == StatusApproved {
		balanceYear = s.balanceYear(l, now)
		if err := s.debit(ctx, tx, l, balanceYear, days, maxDays); err != nil {
			return DecisionResponse{}, err
		}
	}

	var remarks *string
	if r := strings.TrimSpace(req.AdminRemarks); r != "" {
		remarks = &r
	}

	affected, err := qtx.UpdateDecision(ctx, leaveID, req.Status, remarks, decidedBy, now)
	if err != nil {
		return DecisionResponse{}, err
	}
	if affected == 0 {
		return DecisionResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if s.outbox != nil {
		payload := events.LeaveDecidedEvent{
			EventType:   events.LeaveDecidedEventType,
			LeaveID:     leaveID,
			EmployeeID:  l.EmployeeID.String(),
			LeaveTypeID: l.LeaveTypeID.String(),
			Status:      req.Status,
			StartDate:   l.StartDate.Format(dateLayout),
			EndDate:     l.EndDate.Format(dateLayout),
			Days:        days,
			BalanceYear: balanceYear,
			DecidedBy:   adminID,
			OccurredAt:  now.UTC(),
		}
		if remarks != nil {
			payload.AdminRemarks = *remarks
		}

		ev, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			kafka.AggregateLeaveRequest,
			leaveID,
			events.LeaveDecidedEventType,
			events.LeaveDecisionsTopic,
			payload,
		)
		if err != nil {
			return DecisionResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
			return DecisionResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DecisionResponse{}, err
	}

	s.logger.Info("leave request decided",
		zap.String("leave_id", leaveID),
		zap.String("status", req.Status),
		zap.String("decided_by", adminID),
	)

	return DecisionResponse{ID: leaveID, Status: req.Status}, nil
}

// debit charges days against the ledger row, refusing to go past maxDays.
func (s *service) debit(ctx context.Context, tx *sql.Tx, l *Leave, year, days, maxDays int) error {
	employeeID := l.EmployeeID.String()
	leaveTypeID := l.LeaveTypeID.String()
	btx := s.balances.WithTx(tx)

	if _, err := btx.GetOrCreate(ctx, employeeID, leaveTypeID, year); err != nil {
		return err
	}

	affected, err := btx.AddUsedDaysWithinQuota(ctx, employeeID, leaveTypeID, year, days, maxDays)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	used, err := btx.UsedDays(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return err
	}
	return quotaExceeded(maxDays - used)
}

func (s *service) balanceYear(l *Leave, now time.Time) int {
	if s.cfg.ApprovalYearPolicy == config.YearPolicyCurrent {
		return now.Year()
	}
	return l.StartDate.Year()
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}
