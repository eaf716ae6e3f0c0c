package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// SpinCooldownDB is one recorded spin. It both enforces the cooldown and,
// while unclaimed, holds the reward of an anonymous spin.
type SpinCooldownDB struct {
	ID          int64          `db:"id"`
	UserID      sql.NullInt64  `db:"user_id"`
	IPAddress   string         `db:"ip_address"`
	Fingerprint sql.NullString `db:"fingerprint"`
	Amount      int64          `db:"amount"`
	Claimed     bool           `db:"claimed"`
	SpunAt      time.Time      `db:"spun_at"`
}

// LastSpinsDB holds the latest spin timestamp per cooldown key.
type LastSpinsDB struct {
	IP          sql.NullTime `db:"last_ip"`
	User        sql.NullTime `db:"last_user"`
	Fingerprint sql.NullTime `db:"last_fingerprint"`
}

// SpinAttempt identifies who is spinning. UserID and Fingerprint are optional.
type SpinAttempt struct {
	IP          string
	UserID      *int64
	Fingerprint *string
}

// SpinResult is the outcome of a successful spin.
type SpinResult struct {
	Index  int
	Value  int64
	Rarity string
	// Balance is set only for authenticated spins.
	Balance *decimal.Decimal
}

// ClaimResult is the outcome of claiming an anonymous spin.
type ClaimResult struct {
	Balance decimal.Decimal
	Claimed int64
}

// SpinRequest is the optional body of spin check and execute
// swagger:model SpinRequest
type SpinRequest struct {
	// example: 3f1c9a0e
	Fingerprint string `json:"fingerprint,omitempty"`
}

// SpinCheckResponse reports whether the caller may spin
// swagger:model SpinCheckResponse
type SpinCheckResponse struct {
	// example: false
	CanSpin bool `json:"canSpin"`
	// example: 3600000
	RemainingMs int64 `json:"remainingMs"`
}

// SpinExecuteResponse describes the reward
// swagger:model SpinExecuteResponse
type SpinExecuteResponse struct {
	// example: 7
	Index int `json:"index"`
	// example: 1800
	Value int64 `json:"value"`
	// example: legendary
	Rarity string `json:"rarity"`
	// Present only for authenticated spins
	Balance *float64 `json:"balance,omitempty"`
	// example: 43200000
	CooldownMs int64 `json:"cooldownMs"`
}

// CooldownErrorResponse is returned with 429
// swagger:model CooldownErrorResponse
type CooldownErrorResponse struct {
	// example: Cooldown active
	Error string `json:"error"`
	// example: 3600000
	RemainingMs int64 `json:"remainingMs"`
}

// ClaimSpinRequest carries the amount shown to the anonymous player
// swagger:model ClaimSpinRequest
type ClaimSpinRequest struct {
	// required: true
	// example: 250
	Amount *float64 `json:"amount"`
}

// ClaimSpinResponse represents a successful claim
// swagger:model ClaimSpinResponse
type ClaimSpinResponse struct {
	// example: 500
	Balance float64 `json:"balance"`
	// example: 250
	Claimed int64 `json:"claimed"`
}
