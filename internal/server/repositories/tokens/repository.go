// Package tokens declares the account store contract for issued bearer tokens.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/gophaccount/internal/server/models"
)

// Repository persists tokens and resolves them back to their owner.
type Repository interface {
	// Create stores token as a credential of userID.
	Create(ctx context.Context, token string, userID string) error

	// FindWithUser looks up a token by exact match and joins its owner.
	// Implementations return common.ErrorNotFound when the token is absent.
	FindWithUser(ctx context.Context, token string) (*models.Token, error)
}
