package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/ports"
)

// RewardService owns the reward catalog and the redemption engine. It shares
// the repository with PointsService so a redemption can debit the balance
// and decrement the inventory as one atomic operation.
type RewardService struct {
	Repo   ports.Repository
	Authz  ports.AuthorizationGate
	Clock  ports.Clock
	Events ports.EventPublisher
	Logger *slog.Logger
}

// CreateReward adds a catalog entry. The caller must be an admin, the root
// owner, or an issuer that is authorized at this moment.
func (s RewardService) CreateReward(
	ctx context.Context,
	caller string,
	name string,
	description string,
	cost uint64,
	quantity uint64,
) (entities.Reward, error) {
	caller = strings.TrimSpace(caller)
	name = strings.TrimSpace(name)
	if caller == "" || name == "" || cost == 0 || quantity == 0 {
		return entities.Reward{}, domainerrors.ErrInvalidInput
	}

	allowed, err := s.canCreateReward(ctx, caller)
	if err != nil {
		return entities.Reward{}, err
	}
	if !allowed {
		return entities.Reward{}, domainerrors.ErrUnauthorized
	}

	reward, err := s.Repo.CreateReward(ctx, entities.Reward{
		Name:              name,
		Description:       description,
		Cost:              cost,
		AvailableQuantity: quantity,
		Active:            true,
		CreatedBy:         caller,
		CreatedAt:         s.Clock.Height(),
	})
	if err != nil {
		return entities.Reward{}, err
	}

	resolveLogger(s.Logger).Info("reward created",
		"event", "reward_created",
		"module", "rewards-economy/rewards-service",
		"layer", "application",
		"reward_id", reward.RewardID,
		"created_by", caller,
		"cost", cost,
		"quantity", quantity,
	)
	return reward, nil
}

// SetRewardActive toggles catalog visibility. Admin or root owner only.
func (s RewardService) SetRewardActive(ctx context.Context, caller string, rewardID uint64, active bool) (entities.Reward, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return entities.Reward{}, domainerrors.ErrInvalidInput
	}
	if !s.Authz.IsOwner(caller) {
		isAdmin, err := s.Authz.IsAdmin(ctx, caller)
		if err != nil {
			return entities.Reward{}, err
		}
		if !isAdmin {
			return entities.Reward{}, domainerrors.ErrUnauthorized
		}
	}
	return s.Repo.SetRewardActive(ctx, rewardID, active)
}

// Redeem exchanges points for one inventory unit. Preconditions are checked
// in order inside the repository, first failure wins, and the three effects
// (balance debit, inventory decrement, redemption append) commit together or
// not at all.
func (s RewardService) Redeem(ctx context.Context, caller string, rewardID uint64) (entities.Redemption, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return entities.Redemption{}, domainerrors.ErrInvalidInput
	}

	now := s.Clock.Height()
	redemption, err := s.Repo.Redeem(ctx, caller, rewardID, now)
	if err != nil {
		return entities.Redemption{}, err
	}

	s.publish(ctx, caller, redemption)
	resolveLogger(s.Logger).Info("reward redeemed",
		"event", "reward_redeemed",
		"module", "rewards-economy/rewards-service",
		"layer", "application",
		"user", caller,
		"reward_id", rewardID,
		"points_spent", redemption.PointsSpent,
	)
	return redemption, nil
}

// GetReward returns the catalog entry.
func (s RewardService) GetReward(ctx context.Context, rewardID uint64) (entities.Reward, error) {
	reward, found, err := s.Repo.GetReward(ctx, rewardID)
	if err != nil {
		return entities.Reward{}, err
	}
	if !found {
		return entities.Reward{}, domainerrors.ErrRewardNotFound
	}
	return reward, nil
}

// ListRewards returns catalog entries, optionally only active ones.
func (s RewardService) ListRewards(ctx context.Context, activeOnly bool) ([]entities.Reward, error) {
	return s.Repo.ListRewards(ctx, activeOnly)
}

// ListRedemptions returns the user's redemption history.
func (s RewardService) ListRedemptions(ctx context.Context, user string) ([]entities.Redemption, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return s.Repo.ListRedemptions(ctx, user)
}

func (s RewardService) canCreateReward(ctx context.Context, caller string) (bool, error) {
	if s.Authz.IsOwner(caller) {
		return true, nil
	}
	isAdmin, err := s.Authz.IsAdmin(ctx, caller)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}
	return s.Authz.IsIssuerAuthorized(ctx, caller)
}

func (s RewardService) publish(ctx context.Context, caller string, redemption entities.Redemption) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishLedgerEvent(ctx, ports.LedgerEvent{
		EventType: "reward_redeemed",
		Subject:   caller,
		Amount:    redemption.PointsSpent,
		RewardID:  redemption.RewardID,
		Height:    redemption.Height,
	}); err != nil {
		resolveLogger(s.Logger).Warn("ledger event publish failed",
			"event", "ledger_event_publish_failed",
			"module", "rewards-economy/rewards-service",
			"layer", "application",
			"event_type", "reward_redeemed",
			"error", err,
		)
	}
}
