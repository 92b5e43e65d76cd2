package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"seokit/toolkit/domain"
)

func countingCheck(n *atomic.Int32) CheckFunc {
	return func(context.Context) (domain.ServerStatus, error) {
		c := n.Add(1)
		return domain.ServerStatus{URL: "https://example.com", StatusCode: 200, Up: true, ResponseTimeMS: int(c)}, nil
	}
}

func TestMonitor_ChecksUntilStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	var n atomic.Int32
	m := &Monitor{URL: "https://example.com", Interval: 5 * time.Millisecond, Check: countingCheck(&n)}
	m.Start(context.Background())
	require.True(t, m.Running())

	require.Eventually(t, func() bool { return n.Load() >= 3 }, 2*time.Second, time.Millisecond)
	m.Stop()

	assert.False(t, m.Running())
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, n.Load(), "no checks after Stop")

	snap := m.Snapshot()
	assert.Equal(t, int(after), snap.Checks)
	assert.Len(t, snap.History, int(after))
	assert.Equal(t, "5ms", snap.Interval)
}

func TestMonitor_HistoryIsBounded(t *testing.T) {
	defer goleak.VerifyNone(t)

	var n atomic.Int32
	m := &Monitor{Interval: time.Millisecond, Check: countingCheck(&n), History: 3}
	m.Start(context.Background())
	require.Eventually(t, func() bool { return n.Load() >= 10 }, 2*time.Second, time.Millisecond)
	m.Stop()

	snap := m.Snapshot()
	require.Len(t, snap.History, 3)
	// mais recente por último
	last := snap.History[len(snap.History)-1].ResponseTimeMS
	assert.Equal(t, snap.Checks, last)
}

func TestMonitor_StopIsIdempotentAndSafeBeforeStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &Monitor{Interval: time.Millisecond, Check: countingCheck(new(atomic.Int32))}
	m.Stop()

	m.Start(context.Background())
	m.Start(context.Background())
	m.Stop()
	m.Stop()
	assert.False(t, m.Running())
}

func TestMonitor_ParentContextStopsIt(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	m := &Monitor{Interval: time.Millisecond, Check: countingCheck(new(atomic.Int32))}
	m.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return !m.Running() }, 2*time.Second, time.Millisecond)
	m.Stop()
}

func TestMonitor_InvalidConfigDoesNotStart(t *testing.T) {
	m := &Monitor{Interval: 0, Check: countingCheck(new(atomic.Int32))}
	m.Start(context.Background())
	assert.False(t, m.Running())
	m.Stop()
}
