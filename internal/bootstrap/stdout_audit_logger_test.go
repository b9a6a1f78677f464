package bootstrap_test

import (
	"context"
	"testing"

	"github.com/allwinajith/elms/internal/bootstrap"
	"github.com/allwinajith/elms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger("api", zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithIdentity(ctx, contextutil.Identity{UserID: "admin-1", Role: "ADMIN"})

	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "leave service is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "leave service is shutting down", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "api", fields["process"])
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "admin-1", fields["actor_id"])
	assert.Equal(t, map[string]any{"signal": "terminated"}, fields["meta"])
}
