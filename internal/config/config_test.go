package config_test

import (
	"testing"

	"github.com/allwinajith/elms/internal/config"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_NAME", "elms")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "")
		t.Setenv("LEAVE_APPROVAL_YEAR_POLICY", "")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "3001", cfg.Server.Port)
		assert.Equal(t, config.YearPolicyStartDate, cfg.Leave.ApprovalYearPolicy)
		assert.Equal(t, "0 0 1 1 *", cfg.Leave.BalanceInitCron)
	})

	t.Run("cors origins are split and trimmed", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("DB_NAME", "elms")

		_, err := config.Load()

		assert.EqualError(t, err, "JWT_SECRET is required")
	})

	t.Run("unknown year policy", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LEAVE_APPROVAL_YEAR_POLICY", "fiscal")

		_, err := config.Load()

		assert.Error(t, err)
	})
}
