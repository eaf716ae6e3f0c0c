package models

// BalanceResponse represents the balance of the current user
// swagger:model BalanceResponse
type BalanceResponse struct {
	// example: 1250
	Balance float64 `json:"balance"`
}
