package bootstrap

import (
	"context"
	"time"

	"github.com/allwinajith/elms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through a dedicated zap logger.
type StdoutAuditLogger struct {
	logger  *zap.Logger
	process string
	now     func() time.Time
}

func NewStdoutAuditLogger(process string, logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit"), process: process, now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("process", l.process),
		zap.String("action", entry.Action),
		zap.Time("at", l.now().UTC()),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if id := contextutil.GetIdentity(ctx); id.UserID != "" {
		fields = append(fields, zap.String("actor_id", id.UserID), zap.String("actor_role", id.Role))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info(entry.Message, fields...)
}
