package events

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/ports"
	sharedevents "github.com/techgyrl/BadgeBoost/internal/shared/events"

	"github.com/google/uuid"
)

const topic = "rewards.ledger.activity"

// Bus is the platform event transport consumed by this publisher.
type Bus interface {
	Publish(ctx context.Context, topic string, event sharedevents.Envelope) error
}

// Publisher wraps economy events into shared envelopes.
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

func (p Publisher) PublishLedgerEvent(ctx context.Context, event ports.LedgerEvent) error {
	envelope := sharedevents.Envelope{
		EventID:       uuid.NewString(),
		EventType:     event.EventType,
		SourceService: p.source,
		Height:        event.Height,
		EntityType:    "points_account",
		EntityID:      event.Subject,
		Payload: map[string]any{
			"amount":    event.Amount,
			"reward_id": strconv.FormatUint(event.RewardID, 10),
		},
	}
	if err := p.bus.Publish(ctx, topic, envelope); err != nil {
		return err
	}
	p.logger.Info("ledger event published",
		"event", "ledger_event_published",
		"module", "rewards-economy/rewards-service",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", envelope.EventType,
		"subject", event.Subject,
	)
	return nil
}
