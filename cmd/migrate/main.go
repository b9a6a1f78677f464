package main

import (
	"context"
	"time"

	"github.com/allwinajith/elms/internal/app"
	"github.com/allwinajith/elms/internal/bootstrap"
	"github.com/allwinajith/elms/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	infra, err := app.Connect(cfg, false)
	if err != nil {
		logger.Fatal("connect failed", zap.Error(err))
	}
	defer infra.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Migrate(ctx, infra.GormDB); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
}
