package entities

// Reward is a catalog entry with bounded inventory.
type Reward struct {
	RewardID          uint64 `json:"reward_id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Cost              uint64 `json:"cost"`
	AvailableQuantity uint64 `json:"available_quantity"`
	Active            bool   `json:"active"`
	CreatedBy         string `json:"created_by"`
	CreatedAt         uint64 `json:"created_at"`
}

// Redemption is the append-only record of one reward redemption, keyed by
// user, reward and the height at redemption time.
type Redemption struct {
	User        string `json:"user"`
	RewardID    uint64 `json:"reward_id"`
	Height      uint64 `json:"height"`
	PointsSpent uint64 `json:"points_spent"`
	Timestamp   uint64 `json:"timestamp"`
}
