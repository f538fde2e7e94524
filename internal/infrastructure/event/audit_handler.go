package event

import (
	"context"

	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AuditLogHandler writes one structured log line per committed domain event,
// carrying the request and actor ids of the originating request.
type AuditLogHandler struct {
	logger *zap.Logger
}

func NewAuditLogHandler(l *zap.Logger) *AuditLogHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuditLogHandler{logger: l.Named("audit")}
}

// EventTypes is empty: the handler audits every event.
func (h *AuditLogHandler) EventTypes() []string { return nil }

func (h *AuditLogHandler) Handle(ctx context.Context, evt shared.DomainEvent) error {
	logger.WithLogger(ctx, h.logger).Info("domain event",
		zap.String("event_type", evt.EventType()),
		zap.String("event_id", evt.EventID().String()),
		zap.String("aggregate_type", evt.AggregateType()),
		zap.String("aggregate_id", evt.AggregateID().String()),
		zap.Time("occurred_at", evt.OccurredAt()),
	)
	return nil
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)
