package events

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
	sharedevents "github.com/techgyrl/BadgeBoost/internal/shared/events"

	"github.com/google/uuid"
)

const topic = "credential.badge.lifecycle"

// Bus is the platform event transport consumed by this publisher.
type Bus interface {
	Publish(ctx context.Context, topic string, event sharedevents.Envelope) error
}

// Publisher wraps badge lifecycle events into shared envelopes.
type Publisher struct {
	bus    Bus
	source string
	logger *slog.Logger
}

func NewPublisher(bus Bus, source string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, source: source, logger: logger}
}

func (p Publisher) PublishBadgeEvent(ctx context.Context, event ports.BadgeEvent) error {
	envelope := sharedevents.Envelope{
		EventID:       uuid.NewString(),
		EventType:     event.EventType,
		SourceService: p.source,
		Height:        event.Height,
		EntityType:    "badge",
		EntityID:      strconv.FormatUint(event.BadgeID, 10),
		Actor:         event.Actor,
	}
	if err := p.bus.Publish(ctx, topic, envelope); err != nil {
		return err
	}
	p.logger.Info("badge lifecycle event published",
		"event", "badge_lifecycle_event_published",
		"module", "credential-core/badge-registry",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", envelope.EventType,
		"badge_id", envelope.EntityID,
	)
	return nil
}
