package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AwardPointsRequest struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type DeductPointsRequest struct {
	User   string `json:"user"`
	Amount uint64 `json:"amount"`
}

type TransferPointsRequest struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type AccountDTO struct {
	Identity        string `json:"identity"`
	Balance         uint64 `json:"balance"`
	TotalEarned     uint64 `json:"total_earned"`
	TotalSpent      uint64 `json:"total_spent"`
	RewardsRedeemed uint64 `json:"rewards_redeemed"`
	LastActivity    uint64 `json:"last_activity"`
}

type AccountResponse struct {
	Status string     `json:"status"`
	Data   AccountDTO `json:"data"`
}

type LedgerTotalsResponse struct {
	Status string `json:"status"`
	Data   struct {
		TotalIssued   uint64 `json:"total_issued"`
		TotalDeducted uint64 `json:"total_deducted"`
		TotalRedeemed uint64 `json:"total_redeemed"`
	} `json:"data"`
}

type CreateRewardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Cost        uint64 `json:"cost"`
	Quantity    uint64 `json:"quantity"`
}

type SetRewardActiveRequest struct {
	Active bool `json:"active"`
}

type RewardDTO struct {
	RewardID          uint64 `json:"reward_id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Cost              uint64 `json:"cost"`
	AvailableQuantity uint64 `json:"available_quantity"`
	Active            bool   `json:"active"`
	CreatedBy         string `json:"created_by"`
	CreatedAt         uint64 `json:"created_at"`
}

type RewardResponse struct {
	Status string    `json:"status"`
	Data   RewardDTO `json:"data"`
}

type RewardListResponse struct {
	Status string      `json:"status"`
	Data   []RewardDTO `json:"data"`
}

type RedemptionDTO struct {
	User        string `json:"user"`
	RewardID    uint64 `json:"reward_id"`
	Height      uint64 `json:"height"`
	PointsSpent uint64 `json:"points_spent"`
	Timestamp   uint64 `json:"timestamp"`
}

type RedemptionResponse struct {
	Status string        `json:"status"`
	Data   RedemptionDTO `json:"data"`
}

type RedemptionListResponse struct {
	Status string          `json:"status"`
	Data   []RedemptionDTO `json:"data"`
}
