package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/allwinajith/elms/internal/app"
	"github.com/allwinajith/elms/internal/bootstrap"
	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password (defaults to SEED_ADMIN_PASSWORD)")
	flag.Parse()

	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.SeedAdmin(ctx, cfg, *username, *password); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
}
