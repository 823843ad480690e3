package domain

import "time"

// User models a marina staff account able to sign in to the dashboard.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claim is the identity payload embedded in a session token. It is a copy of
// the authenticated user minus the password hash.
type Claim struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ClaimFrom strips a user down to the fields a token may carry.
func ClaimFrom(u *User) Claim {
	return Claim{UserID: u.ID, Name: u.Name, Email: u.Email}
}
