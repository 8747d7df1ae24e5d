package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/models"
)

// PostgresUserRepository backs the user store with a users table.
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a repository on top of an open connection pool.
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT email, api_key, credits
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	const query = `
		SELECT email, api_key, credits
		FROM users
		WHERE api_key = $1
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, apiKey)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) Save(ctx context.Context, email, apiKey string, credits int64) error {
	const query = `
		INSERT INTO users (email, api_key, credits, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`
	args := []any{email, apiKey, credits}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	// DO NOTHING swallows the conflict at the SQL level; zero rows affected
	// means another signup for this email won the race.
	if rowsAffected == 0 {
		return ErrUserExists
	}
	return nil
}

// DecrementCredits deducts one credit in a single conditional UPDATE, so
// concurrent callers can never drive the balance below zero.
func (r *PostgresUserRepository) DecrementCredits(ctx context.Context, email string) (bool, error) {
	const query = `
		UPDATE users
		SET credits = credits - 1, updated_at = NOW()
		WHERE email = $1 AND credits > 0
	`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("credit decrement",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
