package entities

// OwnershipEntry is an append-only record of a single badge transfer, keyed
// by badge id and the height at transfer time.
type OwnershipEntry struct {
	BadgeID       uint64 `json:"badge_id"`
	Sequence      uint64 `json:"sequence"`
	PreviousOwner string `json:"previous_owner"`
	NewOwner      string `json:"new_owner"`
	TransferredAt uint64 `json:"transferred_at"`
}
