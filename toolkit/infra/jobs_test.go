package infra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"seokit/toolkit/application"
	"seokit/toolkit/domain"
)

// add registra uma task já criada.
func add(s *JobStore, t *application.Task) (string, bool) {
	id, _, ok := s.Submit(func() *application.Task { return t })
	return id, ok
}

func echoOp(delay time.Duration) application.Operation[string, string] {
	return application.Operation[string, string]{
		Name:      "echo",
		Transform: func(_ context.Context, s string) (string, error) { return s, nil },
		Delay:     delay,
	}
}

func TestJobStore_AddGet(t *testing.T) {
	s := NewJobStore()
	task := echoOp(0).Start(context.Background(), "hi")
	id, ok := add(s, task)
	require.True(t, ok)
	require.NotEmpty(t, id)

	<-task.Done()
	snap, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, domain.StateSuccess, snap.State)
	assert.Equal(t, "hi", snap.Result)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestJobStore_MaxJobs(t *testing.T) {
	s := NewJobStore(WithMaxJobs(1))
	_, ok := add(s, application.NewTask("a"))
	require.True(t, ok)
	_, ok = add(s, application.NewTask("b"))
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestJobStore_CleanupKeepsRunningTasks(t *testing.T) {
	s := NewJobStore(WithJobTTL(time.Nanosecond))

	done := echoOp(0).Start(context.Background(), "x")
	<-done.Done()
	_, ok := add(s, done)
	require.True(t, ok)

	// idle nunca termina, então nunca expira
	_, ok = add(s, application.NewTask("pending"))
	require.True(t, ok)

	time.Sleep(time.Millisecond)
	s.Cleanup()
	assert.Equal(t, 1, s.Len())
}

func TestJobStore_SubmitDoesNotStartWhenFull(t *testing.T) {
	s := NewJobStore(WithMaxJobs(1))

	_, first, ok := s.Submit(func() *application.Task { return application.NewTask("a") })
	require.True(t, ok)
	require.NotNil(t, first)

	started := false
	id, task, ok := s.Submit(func() *application.Task {
		started = true
		return application.NewTask("b")
	})
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Nil(t, task)
	assert.False(t, started, "start must not run when the store is full")
	assert.Equal(t, 1, s.Len())
}

func TestJobStore_JanitorStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewJobStore(WithJobTTL(time.Nanosecond), WithJobCleanupEvery(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	task := echoOp(0).Start(context.Background(), "x")
	<-task.Done()
	add(s, task)

	done := s.StartJanitor(ctx)
	require.Eventually(t, func() bool { return s.Len() == 0 }, 2*time.Second, time.Millisecond)
	cancel()
	<-done
}
