package models

import "time"

// Token is an opaque bearer credential bound to exactly one user.
type Token struct {
	Token     string
	UserID    string
	CreatedAt time.Time

	// User is populated by lookups that join the owning account.
	User *User
}
