package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the Postgres adapter for badge state. Multi-row mutations
// (transfer) run inside one gorm transaction with a row lock so the owner
// swap and the history append commit together.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateBadge(ctx context.Context, badge entities.Badge) (entities.Badge, error) {
	row := badgeModelFromEntity(badge)
	row.BadgeID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Badge{}, domainerrors.ErrInvalidInput
		}
		return entities.Badge{}, r.logError("badge_repo_create_failed", err, "owner", badge.Owner)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetBadge(ctx context.Context, badgeID uint64) (entities.Badge, bool, error) {
	var row badgeModel
	err := r.db.WithContext(ctx).
		Where("badge_id = ?", badgeID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Badge{}, false, nil
		}
		return entities.Badge{}, false, r.logError("badge_repo_get_failed", err, "badge_id", badgeID)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) TransferBadge(ctx context.Context, input ports.TransferInput) (entities.Badge, error) {
	var updated entities.Badge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row badgeModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("badge_id = ?", input.BadgeID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrBadgeNotFound
			}
			return err
		}
		if row.Owner != input.PreviousOwner {
			return domainerrors.ErrUnauthorized
		}
		if row.Revoked {
			return domainerrors.ErrTransferFailed
		}

		if err := tx.Model(&badgeModel{}).
			Where("badge_id = ?", input.BadgeID).
			Update("owner", input.NewOwner).Error; err != nil {
			return err
		}
		entry := ownershipEntryModel{
			BadgeID:       input.BadgeID,
			Sequence:      input.TransferredAt,
			PreviousOwner: input.PreviousOwner,
			NewOwner:      input.NewOwner,
			TransferredAt: input.TransferredAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		row.Owner = input.NewOwner
		updated = row.toEntity()
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return entities.Badge{}, err
		}
		return entities.Badge{}, r.logError("badge_repo_transfer_failed", err, "badge_id", input.BadgeID)
	}
	return updated, nil
}

func (r *Repository) RevokeBadge(ctx context.Context, badgeID uint64, reason string, now uint64) (entities.Badge, error) {
	var updated entities.Badge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row badgeModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("badge_id = ?", badgeID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrBadgeNotFound
			}
			return err
		}
		if row.Revoked {
			return domainerrors.ErrAlreadyRevoked
		}
		if row.ExpiresAt != nil && now >= *row.ExpiresAt {
			return domainerrors.ErrBadgeExpired
		}

		if err := tx.Model(&badgeModel{}).
			Where("badge_id = ?", badgeID).
			Updates(map[string]any{
				"revoked":        true,
				"revoked_reason": reason,
			}).Error; err != nil {
			return err
		}
		row.Revoked = true
		row.RevokedReason = reason
		updated = row.toEntity()
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return entities.Badge{}, err
		}
		return entities.Badge{}, r.logError("badge_repo_revoke_failed", err, "badge_id", badgeID)
	}
	return updated, nil
}

func (r *Repository) UpdateExpiry(ctx context.Context, badgeID uint64, expiresAt *uint64, now uint64) (entities.Badge, error) {
	var updated entities.Badge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row badgeModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("badge_id = ?", badgeID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrBadgeNotFound
			}
			return err
		}
		if row.Revoked {
			return domainerrors.ErrAlreadyRevoked
		}
		if row.ExpiresAt != nil && now >= *row.ExpiresAt {
			return domainerrors.ErrBadgeExpired
		}

		if err := tx.Model(&badgeModel{}).
			Where("badge_id = ?", badgeID).
			Update("expires_at", expiresAt).Error; err != nil {
			return err
		}
		row.ExpiresAt = expiresAt
		updated = row.toEntity()
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return entities.Badge{}, err
		}
		return entities.Badge{}, r.logError("badge_repo_update_expiry_failed", err, "badge_id", badgeID)
	}
	return updated, nil
}

func (r *Repository) ListOwnershipHistory(ctx context.Context, badgeID uint64) ([]entities.OwnershipEntry, error) {
	var rows []ownershipEntryModel
	if err := r.db.WithContext(ctx).
		Where("badge_id = ?", badgeID).
		Order("transferred_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("badge_repo_list_history_failed", err, "badge_id", badgeID)
	}
	entries := make([]entities.OwnershipEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntity())
	}
	return entries, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "credential-core/badge-registry",
		"layer", "adapter",
		"error", err,
	}, args...)
	r.logger.Error("badge repository error", fields...)
	return err
}

func isDomainError(err error) bool {
	return errors.Is(err, domainerrors.ErrBadgeNotFound) ||
		errors.Is(err, domainerrors.ErrUnauthorized) ||
		errors.Is(err, domainerrors.ErrTransferFailed) ||
		errors.Is(err, domainerrors.ErrAlreadyRevoked) ||
		errors.Is(err, domainerrors.ErrBadgeExpired)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
