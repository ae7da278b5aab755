package entities

// PointsAccount tracks one identity's balance and activity statistics.
// Accounts are created lazily on first award or transfer-in; a missing
// account reads as the zero value.
type PointsAccount struct {
	Identity        string `json:"identity"`
	Balance         uint64 `json:"balance"`
	TotalEarned     uint64 `json:"total_earned"`
	TotalSpent      uint64 `json:"total_spent"`
	RewardsRedeemed uint64 `json:"rewards_redeemed"`
	LastActivity    uint64 `json:"last_activity"`
}

// LedgerTotals are the global conservation counters:
// sum(balances) == TotalIssued - TotalDeducted - TotalRedeemed.
type LedgerTotals struct {
	TotalIssued   uint64 `json:"total_issued"`
	TotalDeducted uint64 `json:"total_deducted"`
	TotalRedeemed uint64 `json:"total_redeemed"`
}
