package app

import (
	"time"

	"github.com/allwinajith/elms/internal/admin"
	"github.com/allwinajith/elms/internal/auth"
	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/employee"
	"github.com/allwinajith/elms/internal/leave"
	"github.com/allwinajith/elms/internal/leavebalance"
	"github.com/allwinajith/elms/internal/leavetype"
	"github.com/allwinajith/elms/internal/messaging/kafka"
	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"
	"github.com/allwinajith/elms/internal/report"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	infra *Infra,
) error {
	db, gormDB, rdb := infra.DB, infra.GormDB, infra.Redis

	// --- Repositories ---
	adminRepo := admin.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	balanceRepo := leavebalance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, auth.DefaultAccessTTL)

	// --- Services ---
	adminService := admin.NewService(db, adminRepo, admin.NewPasswordHasher(bcrypt.DefaultCost), tokens)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb)
	balanceService := leavebalance.NewService(db, balanceRepo, employeeRepo)
	leaveService := leave.NewService(db, leaveRepo, balanceRepo, outboxRepo, leave.Config{
		ApprovalYearPolicy: cfg.Leave.ApprovalYearPolicy,
		Now:                time.Now,
	})
	reportService := report.NewService(reportRepo)

	// --- Handlers ---
	adminHandler := admin.NewHandler(adminService, cfg.IsProduction())
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	balanceHandler := leavebalance.NewHandler(balanceService)
	leaveHandler := leave.NewHandler(leaveService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.GET("/healthz", healthHandler(db, rdb))

	authenticated := middleware.AuthMiddleware(tokens)

	admin.RegisterRoutes(
		router.Group("/api/admin"),
		router.Group("/api/admin", authenticated),
		adminHandler,
		rbacService,
	)

	leaveAPI := router.Group("/api/leave", authenticated)
	{
		leave.RegisterRoutes(leaveAPI, leaveHandler, rbacService, rdb)
		leavebalance.RegisterRoutes(leaveAPI, balanceHandler, rbacService)
		report.RegisterRoutes(leaveAPI, reportHandler, rbacService)
		leavetype.RegisterRoutes(leaveAPI, leaveTypeHandler, rbacService)
	}

	return nil
}
