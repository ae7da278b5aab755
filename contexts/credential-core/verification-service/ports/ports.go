package ports

import (
	"context"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/entities"
)

// Clock abstracts the ledger height for deterministic tests.
type Clock interface {
	Height() uint64
}

// BadgeRecord is the read projection of a badge this context needs.
type BadgeRecord struct {
	BadgeID   uint64
	Owner     string
	Issuer    string
	Revoked   bool
	ExpiresAt *uint64
}

// Expired reports the derived expiry predicate at the given height.
func (b BadgeRecord) Expired(now uint64) bool {
	return b.ExpiresAt != nil && now >= *b.ExpiresAt
}

// BadgeSource exposes read-only badge lookups from the badge registry.
type BadgeSource interface {
	GetBadge(ctx context.Context, badgeID uint64) (BadgeRecord, bool, error)
}

// IssuerDirectory answers whether an issuer is authorized right now.
type IssuerDirectory interface {
	IsIssuerAuthorized(ctx context.Context, identity string) (bool, error)
}

// RequestStore persists the side ledger of verification requests.
// CreateRequest fails with the context's ErrRequestExists on id collision.
type RequestStore interface {
	CreateRequest(ctx context.Context, request entities.VerificationRequest) error
	GetRequest(ctx context.Context, requestID string) (entities.VerificationRequest, bool, error)
}
