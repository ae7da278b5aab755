package entities

// AuthenticityReport is the point-in-time answer to "is this badge real".
// For a missing badge the service returns the conservative sentinel
// (exists=false, revoked=true, expired=true, issuer_authorized=false);
// callers must treat that as unverifiable, not as badge data.
type AuthenticityReport struct {
	Exists           bool   `json:"exists"`
	Owner            string `json:"owner,omitempty"`
	Issuer           string `json:"issuer,omitempty"`
	Revoked          bool   `json:"revoked"`
	Expired          bool   `json:"expired"`
	IssuerAuthorized bool   `json:"issuer_authorized"`
}

// BadgeStatus extends the authenticity report with the combined validity
// predicate used by batch verification.
type BadgeStatus struct {
	BadgeID uint64 `json:"badge_id"`
	AuthenticityReport
	Valid bool `json:"valid"`
}

// VerificationRequest is a one-shot third-party attestation record. It is
// immutable after creation.
type VerificationRequest struct {
	RequestID  string  `json:"request_id"`
	Requester  string  `json:"requester"`
	BadgeID    uint64  `json:"badge_id"`
	Verified   bool    `json:"verified"`
	VerifiedAt *uint64 `json:"verified_at,omitempty"`
	Data       string  `json:"data,omitempty"`
}
