package models

// Event types published to the event topic
const (
	EventWithdrawalRequested = "withdrawal_requested"
	EventSpinCredited        = "spin_credited"
)

// Event is a balance change announced to downstream consumers
// such as the payout processor.
type Event struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	UserID        int64  `json:"user_id"`
	Amount        string `json:"amount"`
	WalletAddress string `json:"wallet_address,omitempty"`
	WithdrawalID  int64  `json:"withdrawal_id,omitempty"`
}
