package model

import "time"

// User is a row of the users table.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary strips the password hash.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

// UserSummary is the authenticated identity handed to callers.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
