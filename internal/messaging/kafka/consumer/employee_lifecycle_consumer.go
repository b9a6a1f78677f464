package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "github.com/allwinajith/elms/internal/employee/errors"
	"github.com/allwinajith/elms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// BalanceInitializer is satisfied by leavebalance.Service.
type BalanceInitializer interface {
	InitializeEmployee(ctx context.Context, employeeID string, year int) (int64, error)
}

// ConsumeEmployeeLifecycle seeds leave balances for each newly created
// employee. Messages that can never succeed are committed and skipped.
// Store failures are retried before the message is given up on.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	balances BalanceInitializer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if handleEmployeeMessage(ctx, msg, balances, log) {
			if err := reader.CommitMessages(ctx, msg); err != nil {
				log.Error("commit employee lifecycle message failed", zap.Error(err))
			}
		}
	}
}

// handleEmployeeMessage reports whether the message should be committed.
func handleEmployeeMessage(ctx context.Context, msg kafkago.Message, balances BalanceInitializer, log *zap.Logger) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return true
	}

	if event.EventType != events.EmployeeCreatedEventType {
		return true
	}

	year := event.OccurredAt.Year()
	if event.OccurredAt.IsZero() {
		year = time.Now().Year()
	}

	var (
		inserted int64
		err      error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		inserted, err = balances.InitializeEmployee(ctx, event.EmployeeID, year)
		if err == nil || !retryable(err) || attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	if err != nil {
		if !retryable(err) {
			log.Warn("skipping employee_created event",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return true
		}

		log.Error("initialize employee balances failed",
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return false
	}

	log.Info("employee leave balances seeded from employee_created event",
		zap.String("employee_id", event.EmployeeID),
		zap.Int("year", year),
		zap.Int64("inserted", inserted),
	)
	return true
}

func retryable(err error) bool {
	return !errors.Is(err, employeeerrors.ErrEmployeeNotFound) &&
		!errors.Is(err, employeeerrors.ErrInvalidEmployeeID)
}
