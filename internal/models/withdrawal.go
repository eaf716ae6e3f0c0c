package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal statuses
const (
	WithdrawalStatusPending = "pending"
)

// WithdrawalDB represents a withdrawal request row
type WithdrawalDB struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	WalletAddress string          `db:"wallet_address"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// WithdrawRequest represents the JSON body for a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// required: true
	// example: 100
	Amount *float64 `json:"amount"`

	// required: true
	// example: 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
	WalletAddress string `json:"walletAddress"`
}

// Withdrawal describes a freshly created withdrawal
// swagger:model Withdrawal
type Withdrawal struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	WalletAddress string  `json:"walletAddress"`
	Status        string  `json:"status"`
}

// WithdrawResponse represents a successful withdrawal request
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	Withdrawal Withdrawal `json:"withdrawal"`
	// example: 900
	Balance float64 `json:"balance"`
}

// WithdrawalListItem is one entry of the withdrawal history
// swagger:model WithdrawalListItem
type WithdrawalListItem struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	WalletAddress string    `json:"wallet_address"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// WithdrawalListResponse lists withdrawals newest first
// swagger:model WithdrawalListResponse
type WithdrawalListResponse struct {
	Withdrawals []WithdrawalListItem `json:"withdrawals"`
}
