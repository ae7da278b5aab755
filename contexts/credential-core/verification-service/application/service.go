package application

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/ports"
)

const requestIDHexLen = 64

// Service computes pure verification views over the badge registry and
// issuer directory, and owns the side ledger of verification requests.
type Service struct {
	Badges   ports.BadgeSource
	Issuers  ports.IssuerDirectory
	Requests ports.RequestStore
	Clock    ports.Clock
	Logger   *slog.Logger
}

// VerifyOwnership reports whether the claimed owner currently holds the
// badge. Missing badges verify as false.
func (s Service) VerifyOwnership(ctx context.Context, badgeID uint64, claimedOwner string) (bool, error) {
	claimedOwner = strings.TrimSpace(claimedOwner)
	if claimedOwner == "" {
		return false, nil
	}
	badge, found, err := s.Badges.GetBadge(ctx, badgeID)
	if err != nil {
		return false, err
	}
	return found && badge.Owner == claimedOwner, nil
}

// VerifyAuthenticity returns the point-in-time authenticity facts for the
// badge. IssuerAuthorized reflects the issuer's status at query time, not at
// issuance.
func (s Service) VerifyAuthenticity(ctx context.Context, badgeID uint64) (entities.AuthenticityReport, error) {
	badge, found, err := s.Badges.GetBadge(ctx, badgeID)
	if err != nil {
		return entities.AuthenticityReport{}, err
	}
	if !found {
		return sentinelReport(), nil
	}

	authorized, err := s.Issuers.IsIssuerAuthorized(ctx, badge.Issuer)
	if err != nil {
		return entities.AuthenticityReport{}, err
	}
	return entities.AuthenticityReport{
		Exists:           true,
		Owner:            badge.Owner,
		Issuer:           badge.Issuer,
		Revoked:          badge.Revoked,
		Expired:          badge.Expired(s.Clock.Height()),
		IssuerAuthorized: authorized,
	}, nil
}

// BatchVerify computes the combined validity predicate for each id. A
// missing id yields the sentinel report with valid=false; a per-item miss
// never aborts the batch.
func (s Service) BatchVerify(ctx context.Context, badgeIDs []uint64) ([]entities.BadgeStatus, error) {
	now := s.Clock.Height()
	statuses := make([]entities.BadgeStatus, 0, len(badgeIDs))
	for _, badgeID := range badgeIDs {
		badge, found, err := s.Badges.GetBadge(ctx, badgeID)
		if err != nil {
			return nil, err
		}
		if !found {
			statuses = append(statuses, entities.BadgeStatus{
				BadgeID:            badgeID,
				AuthenticityReport: sentinelReport(),
				Valid:              false,
			})
			continue
		}

		authorized, err := s.Issuers.IsIssuerAuthorized(ctx, badge.Issuer)
		if err != nil {
			return nil, err
		}
		expired := badge.Expired(now)
		statuses = append(statuses, entities.BadgeStatus{
			BadgeID: badgeID,
			AuthenticityReport: entities.AuthenticityReport{
				Exists:           true,
				Owner:            badge.Owner,
				Issuer:           badge.Issuer,
				Revoked:          badge.Revoked,
				Expired:          expired,
				IssuerAuthorized: authorized,
			},
			Valid: !badge.Revoked && !expired,
		})
	}
	return statuses, nil
}

// CreateRequest records a third-party attestation against an existing badge.
// The request is marked verified immediately: it records that a verification
// happened, it does not gate anything. A colliding request id is rejected,
// requests are immutable after creation.
func (s Service) CreateRequest(
	ctx context.Context,
	caller string,
	requestID string,
	badgeID uint64,
	data string,
) (entities.VerificationRequest, error) {
	caller = strings.TrimSpace(caller)
	requestID = strings.ToLower(strings.TrimSpace(requestID))
	if caller == "" || !isRequestID(requestID) {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidInput
	}

	_, found, err := s.Badges.GetBadge(ctx, badgeID)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if !found {
		return entities.VerificationRequest{}, domainerrors.ErrBadgeNotFound
	}

	now := s.Clock.Height()
	request := entities.VerificationRequest{
		RequestID:  requestID,
		Requester:  caller,
		BadgeID:    badgeID,
		Verified:   true,
		VerifiedAt: &now,
		Data:       data,
	}
	if err := s.Requests.CreateRequest(ctx, request); err != nil {
		return entities.VerificationRequest{}, err
	}

	resolveLogger(s.Logger).Info("verification request recorded",
		"event", "verification_request_recorded",
		"module", "credential-core/verification-service",
		"layer", "application",
		"request_id", requestID,
		"badge_id", badgeID,
		"requester", caller,
	)
	return request, nil
}

// GetRequest returns a stored verification request.
func (s Service) GetRequest(ctx context.Context, requestID string) (entities.VerificationRequest, error) {
	request, found, err := s.Requests.GetRequest(ctx, strings.ToLower(strings.TrimSpace(requestID)))
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if !found {
		return entities.VerificationRequest{}, domainerrors.ErrRequestNotFound
	}
	return request, nil
}

func sentinelReport() entities.AuthenticityReport {
	return entities.AuthenticityReport{
		Exists:           false,
		Revoked:          true,
		Expired:          true,
		IssuerAuthorized: false,
	}
}

func isRequestID(value string) bool {
	if len(value) != requestIDHexLen {
		return false
	}
	_, err := hex.DecodeString(value)
	return err == nil
}
