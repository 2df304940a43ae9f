package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/dbx"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// invalidByteSequence is raised for text PostgreSQL cannot store, such as NUL.
const invalidByteSequence = "22021"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token string, userID string) error {
	query := `
		INSERT INTO tokens (token, user_id)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, token, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindWithUser(ctx context.Context, token string) (*models.Token, error) {
	query := `
		SELECT t.token, t.user_id, t.created_at,
		       u.id, u.email, u.password, u.created_at, u.updated_at
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token = $1
	`
	t := &models.Token{User: &models.User{}}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&t.Token, &t.UserID, &t.CreatedAt,
		&t.User.ID, &t.User.Email, &t.User.Password, &t.User.CreatedAt, &t.User.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		// no stored token can contain bytes the column rejects
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == invalidByteSequence {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
