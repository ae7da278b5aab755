package entities

// Badge is an issued credential record. Records are created once and never
// deleted; Revoked is monotone and only ever flips false to true.
type Badge struct {
	BadgeID          uint64  `json:"badge_id"`
	Owner            string  `json:"owner"`
	Issuer           string  `json:"issuer"`
	BadgeType        string  `json:"badge_type"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	MetadataURI      string  `json:"metadata_uri,omitempty"`
	IssuedAt         uint64  `json:"issued_at"`
	ExpiresAt        *uint64 `json:"expires_at,omitempty"`
	Revoked          bool    `json:"revoked"`
	RevokedReason    string  `json:"revoked_reason,omitempty"`
	VerificationHash string  `json:"verification_hash"`
}

// Expired reports whether the badge has passed its expiry at the given
// height. Expiry is never stored as state; it is always derived here.
func (b Badge) Expired(now uint64) bool {
	return b.ExpiresAt != nil && now >= *b.ExpiresAt
}
