package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/allwinajith/elms/internal/bootstrap"
	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/employee"
	"github.com/allwinajith/elms/internal/leavebalance"
	"github.com/allwinajith/elms/internal/messaging/kafka"
	"github.com/allwinajith/elms/internal/messaging/kafka/producer"
	"github.com/allwinajith/elms/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type yearInitializer interface {
	InitializeYear(ctx context.Context, year int) (leavebalance.InitBalancesResponse, error)
}

// scheduleBalanceInit runs InitializeYear for the then-current year on each tick of schedule.
func scheduleBalanceInit(
	c *cron.Cron,
	schedule string,
	balances yearInitializer,
	logger *zap.Logger,
	now func() time.Time,
) (cron.EntryID, error) {
	return c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		year := now().Year()
		resp, err := balances.InitializeYear(ctx, year)
		if err != nil {
			logger.Error("yearly balance init failed", zap.Int("year", year), zap.Error(err))
			return
		}
		logger.Info("yearly balance init done", zap.Int("year", year), zap.Int64("inserted", resp.Inserted))
	})
}

// RunWorker relays the outbox to kafka and runs the yearly balance job.
// Without KAFKA_BROKER only the cron job runs.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	infra, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer infra.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Broker != "" {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
		if err != nil {
			return err
		}
		defer kafkaWriter.Close()

		go producer.ProcessOutboxEvents(
			ctx,
			kafka.NewOutboxRepository(infra.DB),
			kafkaWriter,
			logger,
			3*time.Second,
		)
	} else {
		logger.Warn("KAFKA_BROKER not set; outbox relay disabled")
	}

	balances := leavebalance.NewService(
		infra.DB,
		leavebalance.NewRepository(infra.GormDB),
		employee.NewRepository(infra.GormDB),
	)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := scheduleBalanceInit(c, cfg.Leave.BalanceInitCron, balances, logger, time.Now); err != nil {
		return err
	}
	c.Start()
	logger.Info("balance init scheduled", zap.String("schedule", cfg.Leave.BalanceInitCron))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	bootstrap.NewStdoutAuditLogger("worker", logger).Log(ctx, bootstrap.AuditLog{
		Action:  "WORKER_SHUTDOWN",
		Message: "worker shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})
	cancel()
	<-c.Stop().Done()

	return nil
}
