package infra

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"seokit/middleware/quota/domain"
)

// RedisUsage grava os contadores em hashes do Redis:
//
//	<prefix>:total            allowed|denied
//	<prefix>:tool             <tool>:allowed|<tool>:denied
//	<prefix>:minute:<yyyymmddhhmm>   allowed|denied   (com TTL)
//	<prefix>:client:<key>     allowed|denied          (com TTL, opcional)
type RedisUsage struct {
	rdb redis.UniversalClient

	prefix string
	// ttl vale para as chaves por minuto e por cliente; total e tool são cumulativos.
	ttl          time.Duration
	bucket       string // "minute" (padrão) ou "none"
	trackClients bool
}

type RedisUsageOption func(*RedisUsage)

func WithUsagePrefix(prefix string) RedisUsageOption {
	return func(r *RedisUsage) { r.prefix = strings.Trim(prefix, ":") }
}

func WithUsageTTL(d time.Duration) RedisUsageOption {
	return func(r *RedisUsage) { r.ttl = d }
}

func WithUsageBucket(bucket string) RedisUsageOption {
	return func(r *RedisUsage) { r.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func WithUsageTrackClients(track bool) RedisUsageOption {
	return func(r *RedisUsage) { r.trackClients = track }
}

func NewRedisUsage(rdb redis.UniversalClient, opts ...RedisUsageOption) *RedisUsage {
	r := &RedisUsage{
		rdb:    rdb,
		prefix: "seokit:usage",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func field(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}

func (r *RedisUsage) Record(ctx context.Context, ev domain.UsageEvent) error {
	if r == nil || r.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	f := field(ev.Allowed)

	pipe := r.rdb.Pipeline()
	pipe.HIncrBy(ctx, r.prefix+":total", f, 1)

	if tool := strings.TrimSpace(ev.Tool); tool != "" {
		pipe.HIncrBy(ctx, r.prefix+":tool", tool+":"+f, 1)
	}

	if r.bucket == "minute" {
		key := fmt.Sprintf("%s:minute:%s", r.prefix, at.UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, key, f, 1)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
	}

	if r.trackClients {
		if c := strings.TrimSpace(string(ev.Client)); c != "" {
			key := r.prefix + ":client:" + c
			pipe.HIncrBy(ctx, key, f, 1)
			if r.ttl > 0 {
				pipe.Expire(ctx, key, r.ttl)
			}
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// ByTool lê o hash <prefix>:tool e monta os contadores por ferramenta.
func (r *RedisUsage) ByTool(ctx context.Context) (map[string]domain.Counters, error) {
	raw, err := r.rdb.HGetAll(ctx, r.prefix+":tool").Result()
	if err != nil {
		return nil, err
	}
	return parseToolHash(raw), nil
}

func parseToolHash(raw map[string]string) map[string]domain.Counters {
	out := make(map[string]domain.Counters)
	for k, v := range raw {
		i := strings.LastIndex(k, ":")
		if i <= 0 {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		tool, kind := k[:i], k[i+1:]
		c := out[tool]
		switch kind {
		case "allowed":
			c.Allowed += n
		case "denied":
			c.Denied += n
		default:
			continue
		}
		out[tool] = c
	}
	return out
}
