package ports

import (
	"context"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/entities"
)

// Clock abstracts the ledger height for deterministic tests.
type Clock interface {
	Height() uint64
}

// AuthorizationGate answers capability questions for badge mutations. It is
// implemented by the issuer-registry application service.
type AuthorizationGate interface {
	IsIssuerAuthorized(ctx context.Context, identity string) (bool, error)
	IsAdmin(ctx context.Context, identity string) (bool, error)
	IsOwner(identity string) bool
	Owner() string
}

// IssueBadgeInput carries validated issuance fields into the repository.
type IssueBadgeInput struct {
	Recipient        string
	BadgeType        string
	Title            string
	Description      string
	MetadataURI      string
	ExpiresAt        *uint64
	VerificationHash string
}

// TransferInput is applied atomically: the owner swap and the history append
// either both happen or neither does.
type TransferInput struct {
	BadgeID       uint64
	PreviousOwner string
	NewOwner      string
	TransferredAt uint64
}

// Repository is the write/read boundary for badge state. Mutating methods
// re-check entity invariants under their own atomicity guarantee and return
// domain errors on violation so no partial write can escape.
type Repository interface {
	CreateBadge(ctx context.Context, badge entities.Badge) (entities.Badge, error)
	GetBadge(ctx context.Context, badgeID uint64) (entities.Badge, bool, error)
	TransferBadge(ctx context.Context, input TransferInput) (entities.Badge, error)
	RevokeBadge(ctx context.Context, badgeID uint64, reason string, now uint64) (entities.Badge, error)
	UpdateExpiry(ctx context.Context, badgeID uint64, expiresAt *uint64, now uint64) (entities.Badge, error)
	ListOwnershipHistory(ctx context.Context, badgeID uint64) ([]entities.OwnershipEntry, error)
}

// BadgeEvent is the transport-agnostic lifecycle notification.
type BadgeEvent struct {
	EventType string
	BadgeID   uint64
	Actor     string
	Height    uint64
}

// EventPublisher emits lifecycle events after a successful mutation. Publish
// failures are logged, not surfaced: the mutation has already committed.
type EventPublisher interface {
	PublishBadgeEvent(ctx context.Context, event BadgeEvent) error
}
