package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/models"
	"github.com/currencygw/gw-currency-converter/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrInvalidAPIKey     = errors.New("invalid API key")
)

// UserReader defines read-only operations for users.
// Implementations return (nil, nil) when no record matches.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

// UserWriter defines write operations for users. Save rejects an email
// that already has a record with repositories.ErrUserExists.
type UserWriter interface {
	Save(ctx context.Context, email, apiKey string, credits int64) error
}

// AuthService handles signup and API-key resolution.
type AuthService struct {
	reader         UserReader
	writer         UserWriter
	initialCredits int64
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, initialCredits int64) *AuthService {
	return &AuthService{
		reader:         reader,
		writer:         writer,
		initialCredits: initialCredits,
	}
}

// Signup registers a new user and returns their API key and starting credits.
// Emails are lowercased first, so signup is case-insensitive.
func (svc *AuthService) Signup(ctx context.Context, email string) (string, int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return "", 0, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return "", 0, ErrUserAlreadyExists
	}

	apiKey := uuid.NewString()
	if err := svc.writer.Save(ctx, email, apiKey, svc.initialCredits); err != nil {
		// A concurrent signup can slip in between the existence check and
		// the save; the store reports that as a duplicate.
		if errors.Is(err, repositories.ErrUserExists) {
			return "", 0, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return "", 0, err
	}

	return apiKey, svc.initialCredits, nil
}

// ResolveAPIKey resolves an opaque API key to the owning user record.
// An empty key is a distinct failure from a key that matches no user.
func (svc *AuthService) ResolveAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	user, err := svc.reader.GetByAPIKey(ctx, apiKey)
	if err != nil {
		logger.Log.Errorw("failed to look up api key", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidAPIKey
	}

	return user, nil
}
