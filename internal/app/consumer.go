package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/allwinajith/elms/internal/bootstrap"
	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/employee"
	"github.com/allwinajith/elms/internal/events"
	"github.com/allwinajith/elms/internal/leavebalance"
	"github.com/allwinajith/elms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const balanceConsumerGroup = "elms-leave-balances"

// RunConsumer seeds balances for employees announced on the lifecycle topic.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	infra, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer infra.Close()

	balances := leavebalance.NewService(
		infra.DB,
		leavebalance.NewRepository(infra.GormDB),
		employee.NewRepository(infra.GormDB),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        balanceConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, balances, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	bootstrap.NewStdoutAuditLogger("consumer", logger).Log(ctx, bootstrap.AuditLog{
		Action:  "CONSUMER_SHUTDOWN",
		Message: "consumer shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})
	cancel()

	return nil
}
