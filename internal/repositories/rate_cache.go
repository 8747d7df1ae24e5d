package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/currencygw/gw-currency-converter/internal/logger"
)

// HistoricalRateCacheRepository caches date-pinned exchange rates in Redis.
// A rate for a past date never changes, so entries are safe to serve for
// their whole expiration window.
type HistoricalRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewHistoricalRateCacheRepository creates a new repository instance with optional TTL.
func NewHistoricalRateCacheRepository(client *redis.Client, expiration time.Duration) *HistoricalRateCacheRepository {
	return &HistoricalRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetHistoricalRate fetches a cached rate for a currency pair on a given date.
func (r *HistoricalRateCacheRepository) GetHistoricalRate(ctx context.Context, base, target, date string) (float64, error) {
	key := fmt.Sprintf("historical_rate:%s:%s:%s", base, target, date)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("historical rate not found in cache for %s->%s on %s", base, target, date)
		}
		logger.Log.Errorw("failed to read cached historical rate", "key", key, "error", err)
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Errorw("corrupt cached historical rate", "key", key, "value", val, "error", err)
		return 0, err
	}

	logger.Log.Infow("historical rate cache hit",
		"key", key,
		"result", rate,
	)

	return rate, nil
}

// SetHistoricalRate caches a rate for a currency pair on a given date.
func (r *HistoricalRateCacheRepository) SetHistoricalRate(ctx context.Context, base, target, date string, rate float64) error {
	key := fmt.Sprintf("historical_rate:%s:%s:%s", base, target, date)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow("historical rate cached",
		"key", key,
		"rate", rate,
		"error", err,
	)

	return err
}
