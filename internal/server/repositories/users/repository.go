// Package users declares the account store contract for user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophaccount/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in the store-generated ID and timestamps.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail returns common.ErrorNotFound when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
