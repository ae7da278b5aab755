package registryadapter

import (
	"context"

	badgeports "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/ports"
)

// BadgeSource projects badge registry records into the read shape the
// verification service consumes.
type BadgeSource struct {
	Badges badgeports.Repository
}

func (s BadgeSource) GetBadge(ctx context.Context, badgeID uint64) (ports.BadgeRecord, bool, error) {
	badge, found, err := s.Badges.GetBadge(ctx, badgeID)
	if err != nil || !found {
		return ports.BadgeRecord{}, false, err
	}
	return ports.BadgeRecord{
		BadgeID:   badge.BadgeID,
		Owner:     badge.Owner,
		Issuer:    badge.Issuer,
		Revoked:   badge.Revoked,
		ExpiresAt: badge.ExpiresAt,
	}, true, nil
}

var _ ports.BadgeSource = BadgeSource{}
