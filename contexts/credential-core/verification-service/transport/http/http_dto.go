package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OwnershipCheckResponse struct {
	Status string `json:"status"`
	Data   struct {
		BadgeID      uint64 `json:"badge_id"`
		ClaimedOwner string `json:"claimed_owner"`
		Owned        bool   `json:"owned"`
	} `json:"data"`
}

type AuthenticityDTO struct {
	Exists           bool   `json:"exists"`
	Owner            string `json:"owner,omitempty"`
	Issuer           string `json:"issuer,omitempty"`
	Revoked          bool   `json:"revoked"`
	Expired          bool   `json:"expired"`
	IssuerAuthorized bool   `json:"issuer_authorized"`
}

type AuthenticityResponse struct {
	Status string          `json:"status"`
	Data   AuthenticityDTO `json:"data"`
}

type BatchVerifyRequest struct {
	BadgeIDs []uint64 `json:"badge_ids"`
}

type BadgeStatusDTO struct {
	BadgeID uint64 `json:"badge_id"`
	AuthenticityDTO
	Valid bool `json:"valid"`
}

type BatchVerifyResponse struct {
	Status string           `json:"status"`
	Data   []BadgeStatusDTO `json:"data"`
}

type CreateRequestRequest struct {
	RequestID string `json:"request_id"`
	BadgeID   uint64 `json:"badge_id"`
	Data      string `json:"data,omitempty"`
}

type VerificationRequestDTO struct {
	RequestID  string  `json:"request_id"`
	Requester  string  `json:"requester"`
	BadgeID    uint64  `json:"badge_id"`
	Verified   bool    `json:"verified"`
	VerifiedAt *uint64 `json:"verified_at,omitempty"`
	Data       string  `json:"data,omitempty"`
}

type VerificationRequestResponse struct {
	Status string                 `json:"status"`
	Data   VerificationRequestDTO `json:"data"`
}
