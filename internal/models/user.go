package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64           `db:"id"`            // Primary key
	Username     string          `db:"username"`      // Unique username
	PasswordHash string          `db:"password_hash"` // bcrypt hash
	Balance      decimal.Decimal `db:"balance"`       // Token balance, never negative
	CreatedAt    time.Time       `db:"created_at"`    // Creation timestamp
}

// User is the public view of an account
// swagger:model User
type User struct {
	// example: 1
	ID int64 `json:"id"`
	// example: ahab
	Username string `json:"username"`
	// example: 250
	Balance float64 `json:"balance"`
}

// NewUser converts a database row into its public view.
func NewUser(u *UserDB) *User {
	if u == nil {
		return nil
	}
	balance, _ := u.Balance.Float64()
	return &User{ID: u.UserID, Username: u.Username, Balance: balance}
}

// Session is the server-side state behind a session cookie.
type Session struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Internal server error
	Error string `json:"error"`
}
