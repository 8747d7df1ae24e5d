package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/currencygw/gw-currency-converter/internal/models"
)

// ErrUserExists is returned by Save when a record for the email already
// exists. Every store implementation reports duplicates through it, so a
// signup that loses a race is still rejected instead of clobbering the
// winner's record.
var ErrUserExists = errors.New("user already exists")

// MemoryUserRepository keeps user records in process memory.
// State lives for the process lifetime only and is lost on restart.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by lowercased email
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*models.User),
	}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// GetByAPIKey scans all records for a matching API key and returns the
// owning user, or nil if no record matches.
func (r *MemoryUserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.APIKey == apiKey {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

// Save stores a new user record under its email. Saving an email that
// already has a record fails with ErrUserExists.
func (r *MemoryUserRepository) Save(ctx context.Context, email, apiKey string, credits int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; ok {
		return ErrUserExists
	}

	r.users[email] = &models.User{
		Email:   email,
		APIKey:  apiKey,
		Credits: credits,
	}
	return nil
}

// DecrementCredits atomically deducts one credit from the user.
// It returns false without mutating the record when the user does not
// exist or has no credits left.
func (r *MemoryUserRepository) DecrementCredits(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok || user.Credits <= 0 {
		return false, nil
	}
	user.Credits--
	return true, nil
}
