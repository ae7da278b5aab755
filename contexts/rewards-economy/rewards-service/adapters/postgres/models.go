package postgresadapter

import (
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
)

type accountModel struct {
	Identity        string `gorm:"column:identity;primaryKey"`
	Balance         uint64 `gorm:"column:balance"`
	TotalEarned     uint64 `gorm:"column:total_earned"`
	TotalSpent      uint64 `gorm:"column:total_spent"`
	RewardsRedeemed uint64 `gorm:"column:rewards_redeemed"`
	LastActivity    uint64 `gorm:"column:last_activity"`
}

func (accountModel) TableName() string {
	return "points_accounts"
}

func (m accountModel) toEntity() entities.PointsAccount {
	return entities.PointsAccount{
		Identity:        m.Identity,
		Balance:         m.Balance,
		TotalEarned:     m.TotalEarned,
		TotalSpent:      m.TotalSpent,
		RewardsRedeemed: m.RewardsRedeemed,
		LastActivity:    m.LastActivity,
	}
}

type rewardModel struct {
	RewardID          uint64 `gorm:"column:reward_id;primaryKey;autoIncrement"`
	Name              string `gorm:"column:name"`
	Description       string `gorm:"column:description"`
	Cost              uint64 `gorm:"column:cost"`
	AvailableQuantity uint64 `gorm:"column:available_quantity"`
	Active            bool   `gorm:"column:active"`
	CreatedBy         string `gorm:"column:created_by"`
	CreatedAt         uint64 `gorm:"column:created_at"`
}

func (rewardModel) TableName() string {
	return "rewards"
}

func (m rewardModel) toEntity() entities.Reward {
	return entities.Reward{
		RewardID:          m.RewardID,
		Name:              m.Name,
		Description:       m.Description,
		Cost:              m.Cost,
		AvailableQuantity: m.AvailableQuantity,
		Active:            m.Active,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

type redemptionModel struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string `gorm:"column:user_id"`
	RewardID    uint64 `gorm:"column:reward_id"`
	Height      uint64 `gorm:"column:height"`
	PointsSpent uint64 `gorm:"column:points_spent"`
	Timestamp   uint64 `gorm:"column:ts"`
}

func (redemptionModel) TableName() string {
	return "redemptions"
}

func (m redemptionModel) toEntity() entities.Redemption {
	return entities.Redemption{
		User:        m.UserID,
		RewardID:    m.RewardID,
		Height:      m.Height,
		PointsSpent: m.PointsSpent,
		Timestamp:   m.Timestamp,
	}
}

// totalsModel is a single-row table (id always 1) carrying the global
// conservation counters.
type totalsModel struct {
	ID            uint64 `gorm:"column:id;primaryKey"`
	TotalIssued   uint64 `gorm:"column:total_issued"`
	TotalDeducted uint64 `gorm:"column:total_deducted"`
	TotalRedeemed uint64 `gorm:"column:total_redeemed"`
}

func (totalsModel) TableName() string {
	return "ledger_totals"
}
