package models

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// required: true
	// example: ahab
	Username string `json:"username"`

	// required: true
	// example: moby-dick
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: ahab
	Username string `json:"username"`

	// required: true
	// example: moby-dick
	Password string `json:"password"`
}

// UserResponse wraps the current user. User is null for anonymous callers.
// swagger:model UserResponse
type UserResponse struct {
	User *User `json:"user"`
}

// SuccessResponse is returned by operations without a payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	// example: true
	Success bool `json:"success"`
}
