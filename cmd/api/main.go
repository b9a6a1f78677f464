package main

import (
	"time"

	"github.com/allwinajith/elms/internal/app"
	"github.com/allwinajith/elms/internal/bootstrap"
	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.ContextLogger(logger),
		middleware.CORS(cfg.Server.CORSAllowedOrigins),
	)

	closeInfra, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer closeInfra()

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Server.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger("api", logger),
	)
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
