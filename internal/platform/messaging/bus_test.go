package messaging

import (
	"context"
	"testing"

	"github.com/techgyrl/BadgeBoost/internal/shared/events"
)

func TestPublishFansOutToTopicSubscribers(t *testing.T) {
	bus := NewBus(nil)
	first := bus.Subscribe("credential.badge.lifecycle", 4)
	second := bus.Subscribe("credential.badge.lifecycle", 4)
	other := bus.Subscribe("rewards.ledger.activity", 4)

	err := bus.Publish(context.Background(), "credential.badge.lifecycle", events.Envelope{
		EventID:   "evt-1",
		EventType: "badge_issued",
		EntityID:  "1",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for _, ch := range []<-chan events.Envelope{first, second} {
		select {
		case env := <-ch:
			if env.EventID != "evt-1" || env.EventType != "badge_issued" {
				t.Fatalf("unexpected envelope %+v", env)
			}
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}

	select {
	case env := <-other:
		t.Fatalf("unrelated topic received %+v", env)
	default:
	}
}

func TestPublishDropsForSlowSubscriber(t *testing.T) {
	bus := NewBus(nil)
	ch := bus.Subscribe("credential.badge.lifecycle", 1)

	ctx := context.Background()
	topic := "credential.badge.lifecycle"
	if err := bus.Publish(ctx, topic, events.Envelope{EventID: "evt-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	// Buffer is full; the next publish must not block.
	if err := bus.Publish(ctx, topic, events.Envelope{EventID: "evt-2"}); err != nil {
		t.Fatalf("publish with full buffer failed: %v", err)
	}

	env := <-ch
	if env.EventID != "evt-1" {
		t.Fatalf("expected first event retained, got %+v", env)
	}
	select {
	case env := <-ch:
		t.Fatalf("dropped event was delivered: %+v", env)
	default:
	}
}

func TestSubscribeDefaultsBuffer(t *testing.T) {
	bus := NewBus(nil)
	ch := bus.Subscribe("credential.badge.lifecycle", 0)

	if err := bus.Publish(context.Background(), "credential.badge.lifecycle", events.Envelope{EventID: "evt-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	select {
	case env := <-ch:
		if env.EventID != "evt-1" {
			t.Fatalf("unexpected envelope %+v", env)
		}
	default:
		t.Fatal("zero-buffer subscription should fall back to a buffered channel")
	}
}
