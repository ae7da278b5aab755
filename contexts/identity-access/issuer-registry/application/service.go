package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/entities"
	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/ports"
)

// Service owns the root owner identity and the issuer/admin capability sets.
// Every other context answers its capability questions through this service.
type Service struct {
	RootOwner string
	Repo      ports.Repository
	Clock     ports.Clock
	Logger    *slog.Logger
}

// AuthorizeIssuer registers or re-authorizes an issuer. Only the root owner
// may call it. Re-authorizing an already-authorized issuer with the same name
// leaves state untouched, so the call is idempotent.
func (s Service) AuthorizeIssuer(ctx context.Context, caller string, issuer string, name string) (entities.Issuer, error) {
	caller = strings.TrimSpace(caller)
	issuer = strings.TrimSpace(issuer)
	name = strings.TrimSpace(name)
	if issuer == "" || name == "" {
		return entities.Issuer{}, domainerrors.ErrInvalidInput
	}
	if !s.IsOwner(caller) {
		return entities.Issuer{}, domainerrors.ErrUnauthorized
	}

	existing, found, err := s.Repo.GetIssuer(ctx, issuer)
	if err != nil {
		return entities.Issuer{}, err
	}
	if found && existing.Authorized && existing.Name == name {
		return existing, nil
	}

	record := entities.Issuer{
		Identity:     issuer,
		Name:         name,
		Authorized:   true,
		AuthorizedAt: s.Clock.Height(),
	}
	if found && existing.Authorized {
		// Name-only update keeps the original authorization height.
		record.AuthorizedAt = existing.AuthorizedAt
	}
	if err := s.Repo.UpsertIssuer(ctx, record); err != nil {
		return entities.Issuer{}, err
	}

	resolveLogger(s.Logger).Info("issuer authorized",
		"event", "issuer_authorized",
		"module", "identity-access/issuer-registry",
		"layer", "application",
		"issuer", record.Identity,
		"authorized_at", record.AuthorizedAt,
	)
	return record, nil
}

// DeauthorizeIssuer clears the Authorized flag. Past issuances by the issuer
// are not touched.
func (s Service) DeauthorizeIssuer(ctx context.Context, caller string, issuer string) (entities.Issuer, error) {
	caller = strings.TrimSpace(caller)
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return entities.Issuer{}, domainerrors.ErrInvalidInput
	}
	if !s.IsOwner(caller) {
		return entities.Issuer{}, domainerrors.ErrUnauthorized
	}

	existing, found, err := s.Repo.GetIssuer(ctx, issuer)
	if err != nil {
		return entities.Issuer{}, err
	}
	if !found {
		return entities.Issuer{}, domainerrors.ErrNotFound
	}
	existing.Authorized = false
	if err := s.Repo.UpsertIssuer(ctx, existing); err != nil {
		return entities.Issuer{}, err
	}

	resolveLogger(s.Logger).Info("issuer deauthorized",
		"event", "issuer_deauthorized",
		"module", "identity-access/issuer-registry",
		"layer", "application",
		"issuer", existing.Identity,
	)
	return existing, nil
}

// IsIssuerAuthorized reports whether the identity is currently an authorized
// issuer. Absent entries resolve to false.
func (s Service) IsIssuerAuthorized(ctx context.Context, identity string) (bool, error) {
	issuer, found, err := s.Repo.GetIssuer(ctx, strings.TrimSpace(identity))
	if err != nil {
		return false, err
	}
	return found && issuer.Authorized, nil
}

// GetIssuer returns the issuer record for the identity.
func (s Service) GetIssuer(ctx context.Context, identity string) (entities.Issuer, error) {
	issuer, found, err := s.Repo.GetIssuer(ctx, strings.TrimSpace(identity))
	if err != nil {
		return entities.Issuer{}, err
	}
	if !found {
		return entities.Issuer{}, domainerrors.ErrNotFound
	}
	return issuer, nil
}

// ListIssuers returns every registered issuer, authorized or not.
func (s Service) ListIssuers(ctx context.Context) ([]entities.Issuer, error) {
	return s.Repo.ListIssuers(ctx)
}

// AddAdmin registers an administrator. Only the root owner may call it.
// Re-adding an existing admin returns the original record unchanged.
func (s Service) AddAdmin(ctx context.Context, caller string, admin string) (entities.Admin, error) {
	caller = strings.TrimSpace(caller)
	admin = strings.TrimSpace(admin)
	if admin == "" {
		return entities.Admin{}, domainerrors.ErrInvalidInput
	}
	if !s.IsOwner(caller) {
		return entities.Admin{}, domainerrors.ErrUnauthorized
	}

	existing, found, err := s.Repo.GetAdmin(ctx, admin)
	if err != nil {
		return entities.Admin{}, err
	}
	if found {
		return existing, nil
	}

	record := entities.Admin{Identity: admin, AddedAt: s.Clock.Height()}
	if err := s.Repo.PutAdmin(ctx, record); err != nil {
		return entities.Admin{}, err
	}

	resolveLogger(s.Logger).Info("admin added",
		"event", "admin_added",
		"module", "identity-access/issuer-registry",
		"layer", "application",
		"admin", record.Identity,
	)
	return record, nil
}

// RemoveAdmin removes an administrator. Only the root owner may call it.
func (s Service) RemoveAdmin(ctx context.Context, caller string, admin string) error {
	caller = strings.TrimSpace(caller)
	admin = strings.TrimSpace(admin)
	if admin == "" {
		return domainerrors.ErrInvalidInput
	}
	if !s.IsOwner(caller) {
		return domainerrors.ErrUnauthorized
	}

	removed, err := s.Repo.RemoveAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if !removed {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IsAdmin reports whether the identity is a registered administrator. The
// root owner is not implicitly an admin; callers combine IsAdmin with IsOwner
// where owner privileges apply.
func (s Service) IsAdmin(ctx context.Context, identity string) (bool, error) {
	_, found, err := s.Repo.GetAdmin(ctx, strings.TrimSpace(identity))
	if err != nil {
		return false, err
	}
	return found, nil
}

// Owner returns the root owner identity fixed at construction.
func (s Service) Owner() string {
	return s.RootOwner
}

// IsOwner reports whether the identity is the root owner.
func (s Service) IsOwner(identity string) bool {
	return strings.TrimSpace(identity) != "" && strings.TrimSpace(identity) == s.RootOwner
}
