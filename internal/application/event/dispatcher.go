package event

import (
	"context"

	"github.com/propledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Dispatcher publishes the pending domain events of aggregates once the
// transaction that changed them has committed.
type Dispatcher struct {
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(publisher shared.EventPublisher, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		publisher: publisher,
		logger:    logger,
	}
}

// Dispatch publishes and clears the events of every aggregate. A nil
// dispatcher only clears them. Publish failures are logged and never
// returned: the state change is already committed.
func (d *Dispatcher) Dispatch(ctx context.Context, aggregates ...shared.AggregateRoot) {
	events := Collect(aggregates...)
	if d == nil || d.publisher == nil || len(events) == 0 {
		return
	}
	if err := d.publisher.Publish(ctx, events...); err != nil {
		d.logger.Warn("Failed to publish domain events",
			zap.Int("event_count", len(events)),
			zap.String("first_event_type", events[0].EventType()),
			zap.Error(err))
	}
}

// DispatchEvents publishes events that do not belong to an aggregate
func (d *Dispatcher) DispatchEvents(ctx context.Context, events ...shared.DomainEvent) {
	if d == nil || d.publisher == nil || len(events) == 0 {
		return
	}
	if err := d.publisher.Publish(ctx, events...); err != nil {
		d.logger.Warn("Failed to publish domain events",
			zap.Int("event_count", len(events)),
			zap.Error(err))
	}
}

// Collect drains the pending events of the given aggregates in order
func Collect(aggregates ...shared.AggregateRoot) []shared.DomainEvent {
	var events []shared.DomainEvent
	for _, agg := range aggregates {
		if agg == nil {
			continue
		}
		events = append(events, agg.GetDomainEvents()...)
		agg.ClearDomainEvents()
	}
	return events
}
