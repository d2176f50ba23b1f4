package account

import "time"

type User struct {
	ID              string
	Username        string // lowercased lookup key
	PasswordHash    string
	DisplayUsername string // as typed at signup
	CreatedAt       time.Time
}

// Username and password both need at least 8 characters, same rule the
// clients enforce.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=8"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=8"`
	Password string `json:"password" binding:"required,min=8"`
}

type DeleteRequest struct {
	Username string `json:"username" binding:"required,min=8"`
	Password string `json:"password" binding:"required,min=8"`
}
