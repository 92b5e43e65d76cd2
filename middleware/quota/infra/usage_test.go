package infra

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seokit/middleware/quota/domain"
)

func TestMemoryUsage_CountsPerTool(t *testing.T) {
	m := NewMemoryUsage(WithTrackClients(true))
	ctx := context.Background()

	require.NoError(t, m.Record(ctx, domain.UsageEvent{Client: "a", Tool: "rewrite", Allowed: true}))
	require.NoError(t, m.Record(ctx, domain.UsageEvent{Client: "a", Tool: "rewrite", Allowed: false}))
	require.NoError(t, m.Record(ctx, domain.UsageEvent{Client: "b", Tool: "dns", Allowed: true}))

	byTool, err := m.ByTool(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Counters{Allowed: 1, Denied: 1}, byTool["rewrite"])
	assert.Equal(t, domain.Counters{Allowed: 1}, byTool["dns"])
	assert.Equal(t, domain.Counters{Allowed: 2, Denied: 1}, m.Total())
	assert.Len(t, m.ByClient(), 2)
}

func TestMemoryUsage_ClientsNotTrackedByDefault(t *testing.T) {
	m := NewMemoryUsage()
	require.NoError(t, m.Record(context.Background(), domain.UsageEvent{Client: "a", Tool: "dns", Allowed: true}))
	assert.Empty(t, m.ByClient())
}

func TestParseToolHash(t *testing.T) {
	got := parseToolHash(map[string]string{
		"rewrite:allowed":       "3",
		"rewrite:denied":        "1",
		"canonical-url:allowed": "2",
		"broken":                "9",
		"dns:allowed":           "x",
		"dns:other":             "4",
	})

	assert.Equal(t, domain.Counters{Allowed: 3, Denied: 1}, got["rewrite"])
	assert.Equal(t, domain.Counters{Allowed: 2}, got["canonical-url"])
	assert.NotContains(t, got, "broken")
	assert.NotContains(t, got, "dns")
}

// Roda só com um Redis real: USAGE_REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestRedisUsage_RoundTrip(t *testing.T) {
	addr := os.Getenv("USAGE_REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("USAGE_REDIS_TEST_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prefix := "seokit:test:" + time.Now().Format("150405.000000")
	r := NewRedisUsage(rdb, WithUsagePrefix(prefix), WithUsageTTL(time.Minute))
	t.Cleanup(func() {
		keys, _ := rdb.Keys(context.Background(), prefix+":*").Result()
		if len(keys) > 0 {
			_ = rdb.Del(context.Background(), keys...).Err()
		}
	})

	require.NoError(t, r.Record(ctx, domain.UsageEvent{Tool: "dns", Allowed: true}))
	require.NoError(t, r.Record(ctx, domain.UsageEvent{Tool: "dns", Allowed: false}))

	byTool, err := r.ByTool(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Counters{Allowed: 1, Denied: 1}, byTool["dns"])
}
