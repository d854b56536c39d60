package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

func TestRedisCatalog_UnreachableIsMiss(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCatalogWithClient(client, time.Minute, zap.New(core))
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()

	assert.Error(t, c.Ping(ctx))

	c.SetActiveServices(ctx, []models.Service{{ID: 1, Name: "Haircut"}})
	services, ok := c.GetActiveServices(ctx)
	assert.False(t, ok)
	assert.Nil(t, services)
	c.Invalidate(ctx)

	assert.Equal(t, 3, logs.Len())
}

func TestNewRedisCatalog_BadURL(t *testing.T) {
	_, err := NewRedisCatalog("not a url", time.Minute, zap.NewNop())
	assert.Error(t, err)
}

// Set REDIS_TEST_URL to run against a real server.
func TestRedisCatalog_RoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	c, err := NewRedisCatalog(url, time.Minute, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))
	c.Invalidate(ctx)

	_, ok := c.GetActiveServices(ctx)
	assert.False(t, ok)

	c.SetActiveServices(ctx, []models.Service{{ID: 1, Name: "Haircut", Price: 30, DurationMinutes: 30, IsActive: true}})

	services, ok := c.GetActiveServices(ctx)
	require.True(t, ok)
	require.Len(t, services, 1)
	assert.Equal(t, "Haircut", services[0].Name)

	c.Invalidate(ctx)
	_, ok = c.GetActiveServices(ctx)
	assert.False(t, ok)
}
