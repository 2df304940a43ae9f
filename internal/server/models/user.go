// Package models defines server-side records persisted in the account store.
package models

import "time"

// User is an account identity. Password always holds a bcrypt hash once the
// record has been persisted; it is never exposed through the public API.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
