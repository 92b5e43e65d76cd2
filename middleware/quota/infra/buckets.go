package infra

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"seokit/janitor"
	"seokit/middleware/quota/domain"
)

// Buckets guarda um token bucket (x/time/rate) por cliente e esquece os
// clientes ociosos periodicamente.
type Buckets struct {
	mu           sync.Mutex
	entries      map[domain.ClientKey]*bucketEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type bucketEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type BucketsOption func(*Buckets)

func WithIdleTTL(d time.Duration) BucketsOption {
	return func(b *Buckets) { b.idleTTL = d }
}

func WithCleanupEvery(d time.Duration) BucketsOption {
	return func(b *Buckets) { b.cleanupEvery = d }
}

func NewBuckets(rps float64, burst int, opts ...BucketsOption) *Buckets {
	b := &Buckets{
		entries:      make(map[domain.ClientKey]*bucketEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Buckets) RPS() float64 { return float64(b.rps) }
func (b *Buckets) Burst() int   { return b.burst }

// Bucket implementa domain.BucketStore.
func (b *Buckets) Bucket(key domain.ClientKey) domain.Bucket {
	return b.limiter(key)
}

func (b *Buckets) limiter(key domain.ClientKey) *rate.Limiter {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	if ent, ok := b.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(b.rps, b.burst)
	b.entries[key] = &bucketEntry{lim: lim, lastSeen: now}
	return lim
}

func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *Buckets) Cleanup() {
	cutoff := time.Now().Add(-b.idleTTL)

	b.mu.Lock()
	defer b.mu.Unlock()

	for k, ent := range b.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(b.entries, k)
		}
	}
}

// StartJanitor limpa clientes ociosos a cada cleanupEvery até o ctx encerrar.
func (b *Buckets) StartJanitor(ctx context.Context) <-chan struct{} {
	return janitor.Start(ctx, b.cleanupEvery, b.Cleanup)
}
