package models

// FeeTopUpRequest represents the JSON body of a fee top-up log entry
// swagger:model FeeTopUpRequest
type FeeTopUpRequest struct {
	// required: true
	TransactionID string `json:"transactionId"`
	// required: true
	// example: btc
	FromCurrency string `json:"fromCurrency"`
	// required: true
	// example: 0.01
	FromAmount float64 `json:"fromAmount"`
	// required: true
	WalletAddress       string  `json:"walletAddress"`
	ChangeNowSolAmount  float64 `json:"changeNowSolAmount"`
	PureMarketSolAmount float64 `json:"pureMarketSolAmount"`
	TreasuryTopUpSol    float64 `json:"treasuryTopUpSol"`
}

// FeeTopUpEntry is one record of the treasury audit log
// swagger:model FeeTopUpEntry
type FeeTopUpEntry struct {
	// example: 2025-01-01T12:00:00.000Z
	Timestamp           string  `json:"timestamp"`
	TransactionID       string  `json:"transactionId"`
	FromCurrency        string  `json:"fromCurrency"`
	FromAmount          float64 `json:"fromAmount"`
	WalletAddress       string  `json:"walletAddress"`
	ChangeNowSolAmount  float64 `json:"changeNowSolAmount"`
	PureMarketSolAmount float64 `json:"pureMarketSolAmount"`
	TreasuryTopUpSol    float64 `json:"treasuryTopUpSol"`
}

// FeeTopUpResponse is returned after an entry is appended
// swagger:model FeeTopUpResponse
type FeeTopUpResponse struct {
	Success bool          `json:"success"`
	Entry   FeeTopUpEntry `json:"entry"`
}

// FeeTopUpLogResponse lists the whole log in insertion order
// swagger:model FeeTopUpLogResponse
type FeeTopUpLogResponse struct {
	Log []FeeTopUpEntry `json:"log"`
}
