// Package auth issues the opaque bearer tokens handed out on login.
package auth

import (
	"github.com/google/uuid"
)

// TokenIssuer generates globally unique opaque token values.
type TokenIssuer interface {
	NewToken() (string, error)
}

// UUIDIssuer issues random (version 4) UUID strings.
type UUIDIssuer struct{}

func NewUUIDIssuer() *UUIDIssuer { return &UUIDIssuer{} }

func (UUIDIssuer) NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
