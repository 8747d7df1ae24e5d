package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/models"
)

// decrementRetries bounds the optimistic CAS loop in DecrementCredits.
const decrementRetries = 5

// RedisUserRepository backs the user store with Redis. Records are stored
// as JSON under user:email:<email> with a user:apikey:<key> index for
// request-time lookup.
type RedisUserRepository struct {
	client *redis.Client
}

// NewRedisUserRepository creates a repository on top of a connected client.
func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{client: client}
}

func emailKey(email string) string { return "user:email:" + email }

func apiKeyKey(apiKey string) string { return "user:apikey:" + apiKey }

func (r *RedisUserRepository) getByEmailKey(ctx context.Context, key string) (*models.User, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read user record", "key", key, "error", err)
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("corrupt user record", "key", key, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *RedisUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getByEmailKey(ctx, emailKey(email))
}

func (r *RedisUserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	email, err := r.client.Get(ctx, apiKeyKey(apiKey)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to resolve api key index", "error", err)
		return nil, err
	}
	return r.getByEmailKey(ctx, emailKey(email))
}

// Save stores a new user record. The email key is claimed with SETNX, so
// a signup that loses a race fails with ErrUserExists instead of replacing
// the winner's record.
func (r *RedisUserRepository) Save(ctx context.Context, email, apiKey string, credits int64) error {
	user := models.User{Email: email, APIKey: apiKey, Credits: credits}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	claimed, err := r.client.SetNX(ctx, emailKey(email), data, 0).Result()
	if err != nil {
		logger.Log.Errorw("failed to save user record", "key", emailKey(email), "error", err)
		return err
	}
	if !claimed {
		return ErrUserExists
	}

	err = r.client.Set(ctx, apiKeyKey(apiKey), email, 0).Err()

	logger.Log.Infow("user saved",
		"key", emailKey(email),
		"error", err,
	)

	return err
}

// DecrementCredits deducts one credit with a WATCH-guarded transaction so
// concurrent deductions against the same user never lose updates.
func (r *RedisUserRepository) DecrementCredits(ctx context.Context, email string) (bool, error) {
	key := emailKey(email)
	deducted := false

	txn := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		var user models.User
		if err := json.Unmarshal([]byte(val), &user); err != nil {
			return err
		}
		if user.Credits <= 0 {
			return nil
		}
		user.Credits--

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err == nil {
			deducted = true
		}
		return err
	}

	for i := 0; i < decrementRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to decrement credits", "email", email, "error", err)
			return false, err
		}
		return deducted, nil
	}
	return false, fmt.Errorf("decrement credits for %s: too many concurrent updates", email)
}
