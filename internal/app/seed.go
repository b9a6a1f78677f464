package app

import (
	"context"

	"github.com/allwinajith/elms/internal/admin"
	"github.com/allwinajith/elms/internal/auth"
	"github.com/allwinajith/elms/internal/config"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates an admin account through the regular service so the
// same validation and hashing apply.
func SeedAdmin(ctx context.Context, cfg *config.Config, username, password string) error {
	infra, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer infra.Close()

	svc := admin.NewService(
		infra.DB,
		admin.NewRepository(infra.GormDB),
		admin.NewPasswordHasher(bcrypt.DefaultCost),
		auth.NewTokenManager(cfg.JWT.Secret, auth.DefaultAccessTTL),
	)

	resp, err := svc.Create(ctx, admin.CreateAdminRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	zap.L().Named("app.seed").Info("admin seeded", zap.String("admin_id", resp.ID), zap.String("username", resp.Username))
	return nil
}
