// Package services contains server-side business logic. AccountService
// handles registration, login with opaque token issuance, and token lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/cryptox"
	"github.com/dmitrijs2005/gophaccount/internal/server/auth"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/dmitrijs2005/gophaccount/internal/server/repositories/repomanager"
)

var (
	ErrUserNotFound     = common.NewError(common.KindNotFound, "user does not exist")
	ErrPasswordMismatch = common.NewError(common.KindUnauthenticated, "password does not match")
	ErrTokenNotFound    = common.NewError(common.KindNotFound, "token does not exist")
)

// LoginResult is the authenticated user together with the raw token issued for it.
type LoginResult struct {
	User  *models.User
	Token string
}

// AccountService orchestrates the account store, the password hasher and
// the token issuer. It keeps no state between calls.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PasswordHasher
	issuer      auth.TokenIssuer
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, h cryptox.PasswordHasher, i auth.TokenIssuer) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      h,
		issuer:      i,
	}
}

// Register hashes password and stores a new user. Duplicate emails come
// back as a common.KindConflict error from the store.
func (s *AccountService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{Email: email, Password: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and persists a fresh token for the user.
// Each successful call yields a new, independent token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return nil, ErrPasswordMismatch
		}
		return nil, fmt.Errorf("error verifying password: %w", err)
	}

	token, err := s.issuer.NewToken()
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	if err := s.repomanager.Tokens(s.db).Create(ctx, token, user.ID); err != nil {
		return nil, fmt.Errorf("error storing token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// LookupByToken returns the user a previously issued token belongs to.
func (s *AccountService) LookupByToken(ctx context.Context, token string) (*models.User, error) {
	t, err := s.repomanager.Tokens(s.db).FindWithUser(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("error searching token: %w", err)
	}
	return t.User, nil
}
