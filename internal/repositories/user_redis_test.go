package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis launches a throwaway Redis container and returns a connected
// client. Needs a Docker daemon; run with -short to skip.
func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	t.Cleanup(func() { rdb.Close() })

	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestRedisUserRepository(t *testing.T) {
	rdb := startRedis(t)
	repo := NewRedisUserRepository(rdb)
	ctx := context.Background()

	t.Run("Save and lookups", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, "alice@example.com", "key-123", 100))

		byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, byEmail)
		assert.Equal(t, "key-123", byEmail.APIKey)
		assert.Equal(t, int64(100), byEmail.Credits)

		byKey, err := repo.GetByAPIKey(ctx, "key-123")
		assert.NoError(t, err)
		assert.NotNil(t, byKey)
		assert.Equal(t, "alice@example.com", byKey.Email)
	})

	t.Run("Missing lookups return nil", func(t *testing.T) {
		byEmail, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, byEmail)

		byKey, err := repo.GetByAPIKey(ctx, "no-such-key")
		assert.NoError(t, err)
		assert.Nil(t, byKey)
	})

	t.Run("Duplicate save is rejected", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, "bob@example.com", "key-b1", 100))

		err := repo.Save(ctx, "bob@example.com", "key-b2", 100)
		assert.ErrorIs(t, err, ErrUserExists)

		// The losing save must not have touched the original record.
		stored, err := repo.GetByEmail(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "key-b1", stored.APIKey)
	})

	t.Run("Decrement to exhaustion", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, "carol@example.com", "key-c1", 2))

		for i := 0; i < 2; i++ {
			ok, err := repo.DecrementCredits(ctx, "carol@example.com")
			assert.NoError(t, err)
			assert.True(t, ok)
		}

		ok, err := repo.DecrementCredits(ctx, "carol@example.com")
		assert.NoError(t, err)
		assert.False(t, ok)

		stored, err := repo.GetByEmail(ctx, "carol@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stored.Credits)
	})

	t.Run("Decrement unknown user", func(t *testing.T) {
		ok, err := repo.DecrementCredits(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

// Concurrent decrements exercise the WATCH/CAS retry loop: with 10 credits
// and 50 callers, exactly 10 deductions may land and none may be lost.
func TestRedisUserRepository_DecrementCredits_Concurrent(t *testing.T) {
	rdb := startRedis(t)
	repo := NewRedisUserRepository(rdb)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "dave@example.com", "key-d1", 10))

	const callers = 50
	var wg sync.WaitGroup
	results := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.DecrementCredits(ctx, "dave@example.com")
			// Contention past the retry budget surfaces as an error; that
			// counts as a failed deduction, never a lost update.
			if err != nil {
				results <- false
				return
			}
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	var deducted int
	for ok := range results {
		if ok {
			deducted++
		}
	}

	stored, err := repo.GetByEmail(ctx, "dave@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(10-deducted), stored.Credits)
	assert.LessOrEqual(t, deducted, 10)
	assert.Positive(t, deducted)
	assert.GreaterOrEqual(t, stored.Credits, int64(0))
}
