package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistoricalRateCacheRepository(t *testing.T) {
	rdb := startRedis(t)
	repo := NewHistoricalRateCacheRepository(rdb, 2*time.Second)
	ctx := context.Background()

	t.Run("Set and Get historical rate", func(t *testing.T) {
		err := repo.SetHistoricalRate(ctx, "EUR", "USD", "2024-01-15", 0.85)
		assert.NoError(t, err)

		got, err := repo.GetHistoricalRate(ctx, "EUR", "USD", "2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 0.85, got)
	})

	t.Run("Get missing entry returns error", func(t *testing.T) {
		_, err := repo.GetHistoricalRate(ctx, "ABC", "XYZ", "2024-01-15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "historical rate not found")
	})

	t.Run("Cached rate expires", func(t *testing.T) {
		err := repo.SetHistoricalRate(ctx, "GBP", "USD", "2024-01-15", 1.27)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetHistoricalRate(ctx, "GBP", "USD", "2024-01-15")
		assert.Error(t, err)
	})
}
