package entities

// Issuer is an identity permitted to create badges and rewards while its
// Authorized flag is set. Deauthorized issuers keep their record so past
// issuances stay attributable.
type Issuer struct {
	Identity     string `json:"identity"`
	Name         string `json:"name"`
	Authorized   bool   `json:"authorized"`
	AuthorizedAt uint64 `json:"authorized_at"`
}

// Admin is an identity allowed to perform administrative mutations
// (revocations, points awards, reward management) alongside the root owner.
type Admin struct {
	Identity string `json:"identity"`
	AddedAt  uint64 `json:"added_at"`
}
