package infra

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"seokit/middleware/quota/domain"
)

func TestBuckets_SameClientSameBucket(t *testing.T) {
	b := NewBuckets(10, 1)

	if b.Bucket("k") != b.Bucket("k") {
		t.Fatalf("expected same bucket for same client")
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", b.Len())
	}
}

func TestBuckets_LowBurstRejectsSecondCall(t *testing.T) {
	b := NewBuckets(0.02, 1)

	bk := b.Bucket(domain.ClientKey("k"))
	if !bk.Allow() {
		t.Fatalf("expected first Allow to be true")
	}
	if bk.Allow() {
		t.Fatalf("expected second immediate Allow to be false (burst=1)")
	}
	if bk.Tokens() >= 1 {
		t.Fatalf("expected bucket to be drained, got %f tokens", bk.Tokens())
	}
}

func TestBuckets_CleanupForgetsIdleClients(t *testing.T) {
	b := NewBuckets(10, 1, WithIdleTTL(2*time.Millisecond), WithCleanupEvery(0))

	before := b.Bucket("k")
	time.Sleep(5 * time.Millisecond)
	b.Cleanup()

	if b.Len() != 0 {
		t.Fatalf("expected idle client to be removed")
	}
	if after := b.Bucket("k"); before == after {
		t.Fatalf("expected bucket to be recreated after cleanup")
	}
}

func TestBuckets_JanitorEvictsUntilCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := NewBuckets(10, 1, WithIdleTTL(time.Nanosecond), WithCleanupEvery(time.Millisecond))
	b.Bucket(domain.ClientKey("idle"))

	ctx, cancel := context.WithCancel(context.Background())
	done := b.StartJanitor(ctx)

	deadline := time.Now().Add(time.Second)
	for b.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	if b.Len() != 0 {
		t.Fatalf("expected janitor to evict idle client, still have %d", b.Len())
	}
}
