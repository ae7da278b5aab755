package postgresadapter

import (
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/entities"
)

type badgeModel struct {
	BadgeID          uint64  `gorm:"column:badge_id;primaryKey;autoIncrement"`
	Owner            string  `gorm:"column:owner"`
	Issuer           string  `gorm:"column:issuer"`
	BadgeType        string  `gorm:"column:badge_type"`
	Title            string  `gorm:"column:title"`
	Description      string  `gorm:"column:description"`
	MetadataURI      string  `gorm:"column:metadata_uri"`
	IssuedAt         uint64  `gorm:"column:issued_at"`
	ExpiresAt        *uint64 `gorm:"column:expires_at"`
	Revoked          bool    `gorm:"column:revoked"`
	RevokedReason    string  `gorm:"column:revoked_reason"`
	VerificationHash string  `gorm:"column:verification_hash"`
}

func (badgeModel) TableName() string {
	return "badges"
}

func badgeModelFromEntity(badge entities.Badge) badgeModel {
	return badgeModel{
		BadgeID:          badge.BadgeID,
		Owner:            badge.Owner,
		Issuer:           badge.Issuer,
		BadgeType:        badge.BadgeType,
		Title:            badge.Title,
		Description:      badge.Description,
		MetadataURI:      badge.MetadataURI,
		IssuedAt:         badge.IssuedAt,
		ExpiresAt:        badge.ExpiresAt,
		Revoked:          badge.Revoked,
		RevokedReason:    badge.RevokedReason,
		VerificationHash: badge.VerificationHash,
	}
}

func (m badgeModel) toEntity() entities.Badge {
	return entities.Badge{
		BadgeID:          m.BadgeID,
		Owner:            m.Owner,
		Issuer:           m.Issuer,
		BadgeType:        m.BadgeType,
		Title:            m.Title,
		Description:      m.Description,
		MetadataURI:      m.MetadataURI,
		IssuedAt:         m.IssuedAt,
		ExpiresAt:        m.ExpiresAt,
		Revoked:          m.Revoked,
		RevokedReason:    m.RevokedReason,
		VerificationHash: m.VerificationHash,
	}
}

type ownershipEntryModel struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	BadgeID       uint64 `gorm:"column:badge_id"`
	Sequence      uint64 `gorm:"column:sequence"`
	PreviousOwner string `gorm:"column:previous_owner"`
	NewOwner      string `gorm:"column:new_owner"`
	TransferredAt uint64 `gorm:"column:transferred_at"`
}

func (ownershipEntryModel) TableName() string {
	return "badge_ownership_history"
}

func (m ownershipEntryModel) toEntity() entities.OwnershipEntry {
	return entities.OwnershipEntry{
		BadgeID:       m.BadgeID,
		Sequence:      m.Sequence,
		PreviousOwner: m.PreviousOwner,
		NewOwner:      m.NewOwner,
		TransferredAt: m.TransferredAt,
	}
}
