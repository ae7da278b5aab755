package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const totalsRowID = 1

// Repository is the Postgres adapter for the points ledger and reward
// catalog. Every mutation runs inside one gorm transaction with row locks so
// balance, inventory and the global counters move together.
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

func (r *Repository) GetAccount(ctx context.Context, identity string) (entities.PointsAccount, bool, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("identity = ?", identity).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.PointsAccount{}, false, nil
		}
		return entities.PointsAccount{}, false, r.logError("rewards_repo_get_account_failed", err, "identity", identity)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) AwardPoints(ctx context.Context, recipient string, amount uint64, now uint64) (entities.PointsAccount, error) {
	var updated entities.PointsAccount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, recipient)
		if err != nil {
			return err
		}
		account.Balance += amount
		account.TotalEarned += amount
		account.LastActivity = now
		if err := saveAccount(tx, account); err != nil {
			return err
		}
		if err := bumpTotals(tx, "total_issued", amount); err != nil {
			return err
		}
		updated = account.toEntity()
		return nil
	})
	if err != nil {
		return entities.PointsAccount{}, r.logError("rewards_repo_award_failed", err, "recipient", recipient)
	}
	return updated, nil
}

func (r *Repository) DeductPoints(ctx context.Context, user string, amount uint64, now uint64) (entities.PointsAccount, error) {
	var updated entities.PointsAccount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, user)
		if err != nil {
			return err
		}
		if account.Balance < amount {
			return domainerrors.ErrInsufficientBalance
		}
		account.Balance -= amount
		account.TotalSpent += amount
		account.LastActivity = now
		if err := saveAccount(tx, account); err != nil {
			return err
		}
		if err := bumpTotals(tx, "total_deducted", amount); err != nil {
			return err
		}
		updated = account.toEntity()
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			return entities.PointsAccount{}, err
		}
		return entities.PointsAccount{}, r.logError("rewards_repo_deduct_failed", err, "user", user)
	}
	return updated, nil
}

func (r *Repository) TransferPoints(ctx context.Context, sender string, recipient string, amount uint64, now uint64) (entities.PointsAccount, error) {
	var updated entities.PointsAccount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		from, err := lockAccount(tx, sender)
		if err != nil {
			return err
		}
		if from.Balance < amount {
			return domainerrors.ErrInsufficientBalance
		}
		to, err := lockAccount(tx, recipient)
		if err != nil {
			return err
		}

		from.Balance -= amount
		from.TotalSpent += amount
		from.LastActivity = now
		to.Balance += amount
		to.TotalEarned += amount
		to.LastActivity = now

		if err := saveAccount(tx, from); err != nil {
			return err
		}
		if err := saveAccount(tx, to); err != nil {
			return err
		}
		updated = from.toEntity()
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			return entities.PointsAccount{}, err
		}
		return entities.PointsAccount{}, r.logError("rewards_repo_transfer_failed", err, "sender", sender)
	}
	return updated, nil
}

func (r *Repository) Totals(ctx context.Context) (entities.LedgerTotals, error) {
	var row totalsModel
	err := r.db.WithContext(ctx).
		Where("id = ?", totalsRowID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.LedgerTotals{}, nil
		}
		return entities.LedgerTotals{}, r.logError("rewards_repo_totals_failed", err)
	}
	return entities.LedgerTotals{
		TotalIssued:   row.TotalIssued,
		TotalDeducted: row.TotalDeducted,
		TotalRedeemed: row.TotalRedeemed,
	}, nil
}

func (r *Repository) CreateReward(ctx context.Context, reward entities.Reward) (entities.Reward, error) {
	row := rewardModel{
		Name:              reward.Name,
		Description:       reward.Description,
		Cost:              reward.Cost,
		AvailableQuantity: reward.AvailableQuantity,
		Active:            reward.Active,
		CreatedBy:         reward.CreatedBy,
		CreatedAt:         reward.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Reward{}, domainerrors.ErrInvalidInput
		}
		return entities.Reward{}, r.logError("rewards_repo_create_reward_failed", err, "name", reward.Name)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetReward(ctx context.Context, rewardID uint64) (entities.Reward, bool, error) {
	var row rewardModel
	err := r.db.WithContext(ctx).
		Where("reward_id = ?", rewardID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Reward{}, false, nil
		}
		return entities.Reward{}, false, r.logError("rewards_repo_get_reward_failed", err, "reward_id", rewardID)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SetRewardActive(ctx context.Context, rewardID uint64, active bool) (entities.Reward, error) {
	var updated entities.Reward
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row rewardModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reward_id = ?", rewardID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrRewardNotFound
			}
			return err
		}
		if err := tx.Model(&rewardModel{}).
			Where("reward_id = ?", rewardID).
			Update("active", active).Error; err != nil {
			return err
		}
		row.Active = active
		updated = row.toEntity()
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRewardNotFound) {
			return entities.Reward{}, err
		}
		return entities.Reward{}, r.logError("rewards_repo_set_active_failed", err, "reward_id", rewardID)
	}
	return updated, nil
}

func (r *Repository) ListRewards(ctx context.Context, activeOnly bool) ([]entities.Reward, error) {
	tx := r.db.WithContext(ctx).Model(&rewardModel{})
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}
	var rows []rewardModel
	if err := tx.Order("reward_id ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("rewards_repo_list_rewards_failed", err)
	}
	rewards := make([]entities.Reward, 0, len(rows))
	for _, row := range rows {
		rewards = append(rewards, row.toEntity())
	}
	return rewards, nil
}

// Redeem checks existence, activity, inventory and balance in that order
// and commits the balance
// debit, inventory decrement and redemption append in one transaction.
func (r *Repository) Redeem(ctx context.Context, user string, rewardID uint64, now uint64) (entities.Redemption, error) {
	var redemption entities.Redemption
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reward rewardModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reward_id = ?", rewardID).
			First(&reward).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrRewardNotFound
			}
			return err
		}
		if !reward.Active {
			return domainerrors.ErrRewardUnavailable
		}
		if reward.AvailableQuantity == 0 {
			return domainerrors.ErrRewardUnavailable
		}

		account, err := lockAccount(tx, user)
		if err != nil {
			return err
		}
		if account.Balance < reward.Cost {
			return domainerrors.ErrInsufficientBalance
		}

		account.Balance -= reward.Cost
		account.TotalSpent += reward.Cost
		account.RewardsRedeemed++
		account.LastActivity = now
		if err := saveAccount(tx, account); err != nil {
			return err
		}
		if err := tx.Model(&rewardModel{}).
			Where("reward_id = ?", rewardID).
			Update("available_quantity", reward.AvailableQuantity-1).Error; err != nil {
			return err
		}

		row := redemptionModel{
			UserID:      user,
			RewardID:    rewardID,
			Height:      now,
			PointsSpent: reward.Cost,
			Timestamp:   now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := bumpTotals(tx, "total_redeemed", reward.Cost); err != nil {
			return err
		}
		redemption = row.toEntity()
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return entities.Redemption{}, err
		}
		return entities.Redemption{}, r.logError("rewards_repo_redeem_failed", err, "user", user, "reward_id", rewardID)
	}
	return redemption, nil
}

func (r *Repository) ListRedemptions(ctx context.Context, user string) ([]entities.Redemption, error) {
	var rows []redemptionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", user).
		Order("height ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("rewards_repo_list_redemptions_failed", err, "user", user)
	}
	redemptions := make([]entities.Redemption, 0, len(rows))
	for _, row := range rows {
		redemptions = append(redemptions, row.toEntity())
	}
	return redemptions, nil
}

// lockAccount reads the account row with a row lock, creating the lazy zero
// record when absent.
func lockAccount(tx *gorm.DB, identity string) (accountModel, error) {
	var row accountModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("identity = ?", identity).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accountModel{Identity: identity}, nil
		}
		return accountModel{}, err
	}
	return row, nil
}

func saveAccount(tx *gorm.DB, account accountModel) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "identity"}},
		DoUpdates: clause.Assignments(map[string]any{
			"balance":          account.Balance,
			"total_earned":     account.TotalEarned,
			"total_spent":      account.TotalSpent,
			"rewards_redeemed": account.RewardsRedeemed,
			"last_activity":    account.LastActivity,
		}),
	}).Create(&account).Error
}

func bumpTotals(tx *gorm.DB, column string, amount uint64) error {
	row := totalsModel{ID: totalsRowID}
	switch column {
	case "total_issued":
		row.TotalIssued = amount
	case "total_deducted":
		row.TotalDeducted = amount
	case "total_redeemed":
		row.TotalRedeemed = amount
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{column: gorm.Expr(column+" + ?", amount)}),
	}).Create(&row).Error
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "rewards-economy/rewards-service",
		"layer", "adapter",
		"error", err,
	}, args...)
	r.logger.Error("rewards repository error", fields...)
	return err
}

func isDomainError(err error) bool {
	return errors.Is(err, domainerrors.ErrRewardNotFound) ||
		errors.Is(err, domainerrors.ErrRewardUnavailable) ||
		errors.Is(err, domainerrors.ErrInsufficientBalance)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
