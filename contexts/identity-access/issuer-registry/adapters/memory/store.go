package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/entities"
)

// Store is an in-memory adapter implementing the registry repository port.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	issuers map[string]entities.Issuer
	admins  map[string]entities.Admin
}

func NewStore() *Store {
	return &Store{
		issuers: make(map[string]entities.Issuer),
		admins:  make(map[string]entities.Admin),
	}
}

func (s *Store) GetIssuer(_ context.Context, identity string) (entities.Issuer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	issuer, ok := s.issuers[strings.TrimSpace(identity)]
	return issuer, ok, nil
}

func (s *Store) UpsertIssuer(_ context.Context, issuer entities.Issuer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issuers[strings.TrimSpace(issuer.Identity)] = issuer
	return nil
}

func (s *Store) ListIssuers(_ context.Context) ([]entities.Issuer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Issuer, 0, len(s.issuers))
	for _, issuer := range s.issuers {
		items = append(items, issuer)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Identity < items[j].Identity
	})
	return items, nil
}

func (s *Store) GetAdmin(_ context.Context, identity string) (entities.Admin, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[strings.TrimSpace(identity)]
	return admin, ok, nil
}

func (s *Store) PutAdmin(_ context.Context, admin entities.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admins[strings.TrimSpace(admin.Identity)] = admin
	return nil
}

func (s *Store) RemoveAdmin(_ context.Context, identity string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(identity)
	if _, ok := s.admins[key]; !ok {
		return false, nil
	}
	delete(s.admins, key)
	return true, nil
}
