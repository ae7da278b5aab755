package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type IssueBadgeRequest struct {
	Recipient        string  `json:"recipient"`
	BadgeType        string  `json:"badge_type"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	MetadataURI      string  `json:"metadata_uri,omitempty"`
	ExpiresAt        *uint64 `json:"expires_at,omitempty"`
	VerificationHash string  `json:"verification_hash"`
}

type BadgeDTO struct {
	BadgeID          uint64  `json:"badge_id"`
	Owner            string  `json:"owner"`
	Issuer           string  `json:"issuer"`
	BadgeType        string  `json:"badge_type"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	MetadataURI      string  `json:"metadata_uri,omitempty"`
	IssuedAt         uint64  `json:"issued_at"`
	ExpiresAt        *uint64 `json:"expires_at,omitempty"`
	Revoked          bool    `json:"revoked"`
	RevokedReason    string  `json:"revoked_reason,omitempty"`
	VerificationHash string  `json:"verification_hash"`
}

type BadgeResponse struct {
	Status string   `json:"status"`
	Data   BadgeDTO `json:"data"`
}

type TransferBadgeRequest struct {
	NewOwner string `json:"new_owner"`
}

type RevokeBadgeRequest struct {
	Reason string `json:"reason,omitempty"`
}

type UpdateExpiryRequest struct {
	ExpiresAt *uint64 `json:"expires_at"`
}

type BatchRevokeRequest struct {
	BadgeIDs []uint64 `json:"badge_ids"`
	Reason   string   `json:"reason,omitempty"`
}

type BatchRevokeItemDTO struct {
	BadgeID   uint64 `json:"badge_id"`
	Revoked   bool   `json:"revoked"`
	ErrorCode string `json:"error_code,omitempty"`
}

type BatchRevokeResponse struct {
	Status string               `json:"status"`
	Data   []BatchRevokeItemDTO `json:"data"`
}

type OwnershipEntryDTO struct {
	BadgeID       uint64 `json:"badge_id"`
	Sequence      uint64 `json:"sequence"`
	PreviousOwner string `json:"previous_owner"`
	NewOwner      string `json:"new_owner"`
	TransferredAt uint64 `json:"transferred_at"`
}

type OwnershipHistoryResponse struct {
	Status string              `json:"status"`
	Data   []OwnershipEntryDTO `json:"data"`
}
