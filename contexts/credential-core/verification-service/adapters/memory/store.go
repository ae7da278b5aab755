package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/errors"
)

// Store is an in-memory adapter for the verification request ledger.
type Store struct {
	mu       sync.RWMutex
	requests map[string]entities.VerificationRequest
}

func NewStore() *Store {
	return &Store{
		requests: make(map[string]entities.VerificationRequest),
	}
}

func (s *Store) CreateRequest(_ context.Context, request entities.VerificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(request.RequestID)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, ok := s.requests[key]; ok {
		return domainerrors.ErrRequestExists
	}
	s.requests[key] = request
	return nil
}

func (s *Store) GetRequest(_ context.Context, requestID string) (entities.VerificationRequest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[strings.TrimSpace(requestID)]
	return request, ok, nil
}
