package memory

import (
	"context"
	"sync"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
)

// Store is an in-memory adapter implementing the badge repository port.
// Every mutating method holds the write lock for its whole body, so each
// repository call is one atomic unit: all of its writes land or none do.
type Store struct {
	mu sync.RWMutex

	nextID  uint64
	badges  map[uint64]entities.Badge
	history map[uint64][]entities.OwnershipEntry
}

func NewStore() *Store {
	return &Store{
		nextID:  1,
		badges:  make(map[uint64]entities.Badge),
		history: make(map[uint64][]entities.OwnershipEntry),
	}
}

// CreateBadge allocates the next badge id. Ids are strictly increasing and
// never reused, even across failed calls.
func (s *Store) CreateBadge(_ context.Context, badge entities.Badge) (entities.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge.BadgeID = s.nextID
	s.nextID++
	badge.Revoked = false
	badge.RevokedReason = ""
	s.badges[badge.BadgeID] = badge
	return badge, nil
}

func (s *Store) GetBadge(_ context.Context, badgeID uint64) (entities.Badge, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badge, ok := s.badges[badgeID]
	return badge, ok, nil
}

// TransferBadge swaps the owner and appends the history entry under one
// lock hold. Owner and revocation state are re-checked here so a stale read
// in the caller cannot produce a partial write.
func (s *Store) TransferBadge(_ context.Context, input ports.TransferInput) (entities.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge, ok := s.badges[input.BadgeID]
	if !ok {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}
	if badge.Owner != input.PreviousOwner {
		return entities.Badge{}, domainerrors.ErrUnauthorized
	}
	if badge.Revoked {
		return entities.Badge{}, domainerrors.ErrTransferFailed
	}

	badge.Owner = input.NewOwner
	s.badges[input.BadgeID] = badge
	s.history[input.BadgeID] = append(s.history[input.BadgeID], entities.OwnershipEntry{
		BadgeID:       input.BadgeID,
		Sequence:      input.TransferredAt,
		PreviousOwner: input.PreviousOwner,
		NewOwner:      input.NewOwner,
		TransferredAt: input.TransferredAt,
	})
	return badge, nil
}

func (s *Store) RevokeBadge(_ context.Context, badgeID uint64, reason string, now uint64) (entities.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge, ok := s.badges[badgeID]
	if !ok {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}
	if badge.Revoked {
		return entities.Badge{}, domainerrors.ErrAlreadyRevoked
	}
	if badge.Expired(now) {
		return entities.Badge{}, domainerrors.ErrBadgeExpired
	}

	badge.Revoked = true
	badge.RevokedReason = reason
	s.badges[badgeID] = badge
	return badge, nil
}

func (s *Store) UpdateExpiry(_ context.Context, badgeID uint64, expiresAt *uint64, now uint64) (entities.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge, ok := s.badges[badgeID]
	if !ok {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}
	if badge.Revoked {
		return entities.Badge{}, domainerrors.ErrAlreadyRevoked
	}
	if badge.Expired(now) {
		return entities.Badge{}, domainerrors.ErrBadgeExpired
	}

	badge.ExpiresAt = expiresAt
	s.badges[badgeID] = badge
	return badge, nil
}

func (s *Store) ListOwnershipHistory(_ context.Context, badgeID uint64) ([]entities.OwnershipEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entities.OwnershipEntry(nil), s.history[badgeID]...), nil
}
