package model

// User represents a registered account. The internal ID never leaves the
// process; Reference is the externally visible identity used in routes and
// payloads.
type User struct {
	ID                 int    `json:"-" db:"id"`
	Username           string `json:"username" db:"username"`
	PasswordHash       string `json:"-" db:"password_hash"`
	CurrentAccessToken string `json:"-" db:"current_access_token"` // single active token, replaced on each login
	Reference          string `json:"reference" db:"reference"`
}

// UserCredentials represents the register and login request body
type UserCredentials struct {
	Username string `json:"username" binding:"required,max=25"`
	Password string `json:"password"`
}

// AuthResponse represents the register and login success payload
type AuthResponse struct {
	Details   string `json:"details"`
	Reference string `json:"reference"`
	Token     string `json:"token"`
}
