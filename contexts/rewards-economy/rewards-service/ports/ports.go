package ports

import (
	"context"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
)

// Clock abstracts the ledger height for deterministic tests.
type Clock interface {
	Height() uint64
}

// AuthorizationGate answers capability questions for ledger mutations. It is
// implemented by the issuer-registry application service.
type AuthorizationGate interface {
	IsAdmin(ctx context.Context, identity string) (bool, error)
	IsIssuerAuthorized(ctx context.Context, identity string) (bool, error)
	IsOwner(identity string) bool
}

// Repository is the write/read boundary for accounts, rewards and
// redemptions. Each mutating method is one atomic unit: it re-validates the
// balance/inventory invariants it depends on and applies every write
// together, so a rejected call leaves no partial state.
type Repository interface {
	GetAccount(ctx context.Context, identity string) (entities.PointsAccount, bool, error)
	AwardPoints(ctx context.Context, recipient string, amount uint64, now uint64) (entities.PointsAccount, error)
	DeductPoints(ctx context.Context, user string, amount uint64, now uint64) (entities.PointsAccount, error)
	TransferPoints(ctx context.Context, sender string, recipient string, amount uint64, now uint64) (entities.PointsAccount, error)
	Totals(ctx context.Context) (entities.LedgerTotals, error)

	CreateReward(ctx context.Context, reward entities.Reward) (entities.Reward, error)
	GetReward(ctx context.Context, rewardID uint64) (entities.Reward, bool, error)
	SetRewardActive(ctx context.Context, rewardID uint64, active bool) (entities.Reward, error)
	ListRewards(ctx context.Context, activeOnly bool) ([]entities.Reward, error)

	Redeem(ctx context.Context, user string, rewardID uint64, now uint64) (entities.Redemption, error)
	ListRedemptions(ctx context.Context, user string) ([]entities.Redemption, error)
}

// LedgerEvent is the transport-agnostic economy notification.
type LedgerEvent struct {
	EventType string
	Subject   string
	Amount    uint64
	RewardID  uint64
	Height    uint64
}

// EventPublisher emits economy events after a successful mutation.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event LedgerEvent) error
}
