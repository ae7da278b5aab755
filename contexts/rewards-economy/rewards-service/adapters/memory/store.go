package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/errors"
)

// Store is an in-memory adapter holding accounts, rewards and redemptions
// behind one lock. Holding a single lock across each mutating method is what
// makes a redemption's balance debit and inventory decrement one atomic
// unit.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]entities.PointsAccount
	rewards      map[uint64]entities.Reward
	redemptions  []entities.Redemption
	nextRewardID uint64
	totals       entities.LedgerTotals
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]entities.PointsAccount),
		rewards:      make(map[uint64]entities.Reward),
		redemptions:  make([]entities.Redemption, 0),
		nextRewardID: 1,
	}
}

func (s *Store) GetAccount(_ context.Context, identity string) (entities.PointsAccount, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[strings.TrimSpace(identity)]
	return account, ok, nil
}

func (s *Store) AwardPoints(_ context.Context, recipient string, amount uint64, now uint64) (entities.PointsAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.accountLocked(recipient)
	account.Balance += amount
	account.TotalEarned += amount
	account.LastActivity = now
	s.accounts[account.Identity] = account
	s.totals.TotalIssued += amount
	return account, nil
}

func (s *Store) DeductPoints(_ context.Context, user string, amount uint64, now uint64) (entities.PointsAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.accountLocked(user)
	if account.Balance < amount {
		return entities.PointsAccount{}, domainerrors.ErrInsufficientBalance
	}
	account.Balance -= amount
	account.TotalSpent += amount
	account.LastActivity = now
	s.accounts[account.Identity] = account
	s.totals.TotalDeducted += amount
	return account, nil
}

func (s *Store) TransferPoints(_ context.Context, sender string, recipient string, amount uint64, now uint64) (entities.PointsAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.accountLocked(sender)
	if from.Balance < amount {
		return entities.PointsAccount{}, domainerrors.ErrInsufficientBalance
	}
	to := s.accountLocked(recipient)

	from.Balance -= amount
	from.TotalSpent += amount
	from.LastActivity = now
	to.Balance += amount
	to.TotalEarned += amount
	to.LastActivity = now

	s.accounts[from.Identity] = from
	s.accounts[to.Identity] = to
	return from, nil
}

func (s *Store) Totals(_ context.Context) (entities.LedgerTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totals, nil
}

// CreateReward allocates the next reward id. Ids are strictly increasing and
// never reused.
func (s *Store) CreateReward(_ context.Context, reward entities.Reward) (entities.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward.RewardID = s.nextRewardID
	s.nextRewardID++
	s.rewards[reward.RewardID] = reward
	return reward, nil
}

func (s *Store) GetReward(_ context.Context, rewardID uint64) (entities.Reward, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reward, ok := s.rewards[rewardID]
	return reward, ok, nil
}

func (s *Store) SetRewardActive(_ context.Context, rewardID uint64, active bool) (entities.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward, ok := s.rewards[rewardID]
	if !ok {
		return entities.Reward{}, domainerrors.ErrRewardNotFound
	}
	reward.Active = active
	s.rewards[rewardID] = reward
	return reward, nil
}

func (s *Store) ListRewards(_ context.Context, activeOnly bool) ([]entities.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Reward, 0, len(s.rewards))
	for _, reward := range s.rewards {
		if activeOnly && !reward.Active {
			continue
		}
		items = append(items, reward)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].RewardID < items[j].RewardID
	})
	return items, nil
}

// Redeem checks existence, activity, inventory and balance in that order and
// applies the balance debit, inventory decrement and redemption append under
// one lock hold.
func (s *Store) Redeem(_ context.Context, user string, rewardID uint64, now uint64) (entities.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward, ok := s.rewards[rewardID]
	if !ok {
		return entities.Redemption{}, domainerrors.ErrRewardNotFound
	}
	if !reward.Active {
		return entities.Redemption{}, domainerrors.ErrRewardUnavailable
	}
	if reward.AvailableQuantity == 0 {
		return entities.Redemption{}, domainerrors.ErrRewardUnavailable
	}

	account := s.accountLocked(user)
	if account.Balance < reward.Cost {
		return entities.Redemption{}, domainerrors.ErrInsufficientBalance
	}

	account.Balance -= reward.Cost
	account.TotalSpent += reward.Cost
	account.RewardsRedeemed++
	account.LastActivity = now
	s.accounts[account.Identity] = account

	reward.AvailableQuantity--
	s.rewards[rewardID] = reward

	s.totals.TotalRedeemed += reward.Cost

	redemption := entities.Redemption{
		User:        account.Identity,
		RewardID:    rewardID,
		Height:      now,
		PointsSpent: reward.Cost,
		Timestamp:   now,
	}
	s.redemptions = append(s.redemptions, redemption)
	return redemption, nil
}

func (s *Store) ListRedemptions(_ context.Context, user string) ([]entities.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user = strings.TrimSpace(user)
	items := make([]entities.Redemption, 0)
	for _, redemption := range s.redemptions {
		if redemption.User == user {
			items = append(items, redemption)
		}
	}
	return items, nil
}

// accountLocked returns the lazily-created account for the identity. Caller
// must hold the write lock.
func (s *Store) accountLocked(identity string) entities.PointsAccount {
	key := strings.TrimSpace(identity)
	account, ok := s.accounts[key]
	if !ok {
		account = entities.PointsAccount{Identity: key}
	}
	return account
}
