package application

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
)

const verificationHashHexLen = 64

// Service coordinates the badge state machine. Every mutation validates all
// preconditions before the repository is asked to write, and repository
// writes are atomic, so a rejected command leaves no trace.
type Service struct {
	Repo   ports.Repository
	Authz  ports.AuthorizationGate
	Clock  ports.Clock
	Events ports.EventPublisher
	Logger *slog.Logger
}

// Issue mints a new badge for the recipient. The caller must be an issuer
// that is authorized at this moment; later deauthorization does not
// invalidate the badge.
func (s Service) Issue(ctx context.Context, caller string, input ports.IssueBadgeInput) (entities.Badge, error) {
	caller = strings.TrimSpace(caller)
	input.Recipient = strings.TrimSpace(input.Recipient)
	input.BadgeType = strings.TrimSpace(input.BadgeType)
	input.Title = strings.TrimSpace(input.Title)
	input.VerificationHash = strings.ToLower(strings.TrimSpace(input.VerificationHash))

	if caller == "" {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	// Capability first; unauthorized callers never see validation results.
	authorized, err := s.Authz.IsIssuerAuthorized(ctx, caller)
	if err != nil {
		return entities.Badge{}, err
	}
	if !authorized {
		return entities.Badge{}, domainerrors.ErrUnauthorized
	}

	if input.Recipient == "" || input.BadgeType == "" || input.Title == "" {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}
	if !isVerificationHash(input.VerificationHash) {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}
	// The root owner is an administrative sentinel, never a credential holder.
	if input.Recipient == s.Authz.Owner() {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	now := s.Clock.Height()
	if input.ExpiresAt != nil && *input.ExpiresAt <= now {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	badge, err := s.Repo.CreateBadge(ctx, entities.Badge{
		Owner:            input.Recipient,
		Issuer:           caller,
		BadgeType:        input.BadgeType,
		Title:            input.Title,
		Description:      input.Description,
		MetadataURI:      strings.TrimSpace(input.MetadataURI),
		IssuedAt:         now,
		ExpiresAt:        input.ExpiresAt,
		VerificationHash: input.VerificationHash,
	})
	if err != nil {
		return entities.Badge{}, err
	}

	s.publish(ctx, "badge_issued", badge.BadgeID, caller, now)
	resolveLogger(s.Logger).Info("badge issued",
		"event", "badge_issued",
		"module", "credential-core/badge-registry",
		"layer", "application",
		"badge_id", badge.BadgeID,
		"issuer", caller,
		"owner", badge.Owner,
	)
	return badge, nil
}

// Transfer hands the badge to a new owner. Only the current owner may call
// it, and a revoked badge can never move again. Expiry is deliberately not
// checked here.
func (s Service) Transfer(ctx context.Context, caller string, badgeID uint64, newOwner string) (entities.Badge, error) {
	caller = strings.TrimSpace(caller)
	newOwner = strings.TrimSpace(newOwner)
	if caller == "" || newOwner == "" {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	badge, found, err := s.Repo.GetBadge(ctx, badgeID)
	if err != nil {
		return entities.Badge{}, err
	}
	if !found {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}
	if badge.Owner != caller {
		return entities.Badge{}, domainerrors.ErrUnauthorized
	}
	if badge.Revoked {
		return entities.Badge{}, domainerrors.ErrTransferFailed
	}

	now := s.Clock.Height()
	updated, err := s.Repo.TransferBadge(ctx, ports.TransferInput{
		BadgeID:       badgeID,
		PreviousOwner: caller,
		NewOwner:      newOwner,
		TransferredAt: now,
	})
	if err != nil {
		return entities.Badge{}, err
	}

	s.publish(ctx, "badge_transferred", badgeID, caller, now)
	resolveLogger(s.Logger).Info("badge transferred",
		"event", "badge_transferred",
		"module", "credential-core/badge-registry",
		"layer", "application",
		"badge_id", badgeID,
		"previous_owner", caller,
		"new_owner", newOwner,
	)
	return updated, nil
}

// Revoke flips the badge into its terminal state. The badge's issuer, any
// registered admin, and the root owner may revoke. Revoking a badge that has
// already expired is rejected as a matter of policy so the expired and
// revoked terminal states stay distinguishable.
func (s Service) Revoke(ctx context.Context, caller string, badgeID uint64, reason string) (entities.Badge, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	badge, found, err := s.Repo.GetBadge(ctx, badgeID)
	if err != nil {
		return entities.Badge{}, err
	}
	if !found {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}

	allowed, err := s.canAdministerBadge(ctx, caller, badge)
	if err != nil {
		return entities.Badge{}, err
	}
	if !allowed {
		return entities.Badge{}, domainerrors.ErrUnauthorized
	}
	if badge.Revoked {
		return entities.Badge{}, domainerrors.ErrAlreadyRevoked
	}

	now := s.Clock.Height()
	if badge.Expired(now) {
		return entities.Badge{}, domainerrors.ErrBadgeExpired
	}

	updated, err := s.Repo.RevokeBadge(ctx, badgeID, strings.TrimSpace(reason), now)
	if err != nil {
		return entities.Badge{}, err
	}

	s.publish(ctx, "badge_revoked", badgeID, caller, now)
	resolveLogger(s.Logger).Info("badge revoked",
		"event", "badge_revoked",
		"module", "credential-core/badge-registry",
		"layer", "application",
		"badge_id", badgeID,
		"revoked_by", caller,
	)
	return updated, nil
}

// UpdateExpiry replaces the badge's expiry height. A nil newExpiresAt clears
// it. Forbidden once the badge is revoked or already expired.
func (s Service) UpdateExpiry(ctx context.Context, caller string, badgeID uint64, newExpiresAt *uint64) (entities.Badge, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	badge, found, err := s.Repo.GetBadge(ctx, badgeID)
	if err != nil {
		return entities.Badge{}, err
	}
	if !found {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}

	allowed, err := s.canAdministerBadge(ctx, caller, badge)
	if err != nil {
		return entities.Badge{}, err
	}
	if !allowed {
		return entities.Badge{}, domainerrors.ErrUnauthorized
	}
	if badge.Revoked {
		return entities.Badge{}, domainerrors.ErrAlreadyRevoked
	}

	now := s.Clock.Height()
	if badge.Expired(now) {
		return entities.Badge{}, domainerrors.ErrBadgeExpired
	}
	if newExpiresAt != nil && *newExpiresAt <= now {
		return entities.Badge{}, domainerrors.ErrInvalidInput
	}

	updated, err := s.Repo.UpdateExpiry(ctx, badgeID, newExpiresAt, now)
	if err != nil {
		return entities.Badge{}, err
	}

	s.publish(ctx, "badge_expiry_updated", badgeID, caller, now)
	return updated, nil
}

// BatchRevokeResult reports the outcome for one id of a batch revocation.
// Failed items carry the specific error code instead of a bare boolean.
type BatchRevokeResult struct {
	BadgeID   uint64 `json:"badge_id"`
	Revoked   bool   `json:"revoked"`
	ErrorCode string `json:"error_code,omitempty"`
}

// BatchRevoke applies Revoke to each id independently. A per-item failure
// does not abort the batch; only an empty id list fails the call itself.
func (s Service) BatchRevoke(ctx context.Context, caller string, badgeIDs []uint64, reason string) ([]BatchRevokeResult, error) {
	if len(badgeIDs) == 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	results := make([]BatchRevokeResult, 0, len(badgeIDs))
	for _, badgeID := range badgeIDs {
		_, err := s.Revoke(ctx, caller, badgeID, reason)
		results = append(results, BatchRevokeResult{
			BadgeID:   badgeID,
			Revoked:   err == nil,
			ErrorCode: codeForError(err),
		})
	}
	return results, nil
}

// GetBadge returns the stored badge record.
func (s Service) GetBadge(ctx context.Context, badgeID uint64) (entities.Badge, error) {
	badge, found, err := s.Repo.GetBadge(ctx, badgeID)
	if err != nil {
		return entities.Badge{}, err
	}
	if !found {
		return entities.Badge{}, domainerrors.ErrBadgeNotFound
	}
	return badge, nil
}

// OwnershipHistory returns every transfer of the badge in ascending order.
func (s Service) OwnershipHistory(ctx context.Context, badgeID uint64) ([]entities.OwnershipEntry, error) {
	_, found, err := s.Repo.GetBadge(ctx, badgeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrBadgeNotFound
	}
	return s.Repo.ListOwnershipHistory(ctx, badgeID)
}

func (s Service) canAdministerBadge(ctx context.Context, caller string, badge entities.Badge) (bool, error) {
	if caller == badge.Issuer || s.Authz.IsOwner(caller) {
		return true, nil
	}
	return s.Authz.IsAdmin(ctx, caller)
}

func (s Service) publish(ctx context.Context, eventType string, badgeID uint64, actor string, height uint64) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishBadgeEvent(ctx, ports.BadgeEvent{
		EventType: eventType,
		BadgeID:   badgeID,
		Actor:     actor,
		Height:    height,
	}); err != nil {
		resolveLogger(s.Logger).Warn("badge event publish failed",
			"event", "badge_event_publish_failed",
			"module", "credential-core/badge-registry",
			"layer", "application",
			"event_type", eventType,
			"badge_id", badgeID,
			"error", err,
		)
	}
}

func isVerificationHash(value string) bool {
	if len(value) != verificationHashHexLen {
		return false
	}
	_, err := hex.DecodeString(value)
	return err == nil
}

func codeForError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domainerrors.ErrBadgeNotFound):
		return "not_found"
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domainerrors.ErrAlreadyRevoked):
		return "already_revoked"
	case errors.Is(err, domainerrors.ErrBadgeExpired):
		return "expired"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal_error"
	}
}
