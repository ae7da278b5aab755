package ports

import (
	"context"

	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/entities"
)

// Clock abstracts the ledger height for deterministic tests.
type Clock interface {
	Height() uint64
}

// Repository is the write/read boundary for registry state. Absent entries
// resolve to found=false, never to an error.
type Repository interface {
	GetIssuer(ctx context.Context, identity string) (entities.Issuer, bool, error)
	UpsertIssuer(ctx context.Context, issuer entities.Issuer) error
	ListIssuers(ctx context.Context) ([]entities.Issuer, error)

	GetAdmin(ctx context.Context, identity string) (entities.Admin, bool, error)
	PutAdmin(ctx context.Context, admin entities.Admin) error
	RemoveAdmin(ctx context.Context, identity string) (bool, error)
}
