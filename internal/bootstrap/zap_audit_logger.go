package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit entries through the process logger under
// the "audit" name so they can be filtered out of regular app logs.
type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger() *ZapAuditLogger {
	return &ZapAuditLogger{logger: zap.L().Named("audit")}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Time("at", time.Now().UTC()),
	}
	if entry.Meta != nil {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info("audit event", fields...)
}
