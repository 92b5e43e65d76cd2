package infra

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"seokit/janitor"
	"seokit/toolkit/application"
	"seokit/toolkit/domain"
)

// JobStore guarda as tasks assíncronas por id, com limpeza periódica das
// que já terminaram há mais de ttl.
type JobStore struct {
	mu           sync.Mutex
	jobs         map[string]*jobEntry
	ttl          time.Duration
	cleanupEvery time.Duration
	max          int
}

type jobEntry struct {
	task    *application.Task
	created time.Time
}

type JobOption func(*JobStore)

func WithJobTTL(d time.Duration) JobOption {
	return func(s *JobStore) { s.ttl = d }
}

func WithJobCleanupEvery(d time.Duration) JobOption {
	return func(s *JobStore) { s.cleanupEvery = d }
}

// WithMaxJobs limita quantas tasks ficam guardadas; 0 = sem limite.
func WithMaxJobs(n int) JobOption {
	return func(s *JobStore) { s.max = n }
}

func NewJobStore(opts ...JobOption) *JobStore {
	s := &JobStore{
		jobs:         make(map[string]*jobEntry),
		ttl:          10 * time.Minute,
		cleanupEvery: time.Minute,
		max:          10000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit reserva a vaga antes de iniciar: start só roda quando cabe mais uma
// task, então uma submissão recusada nunca deixa trabalho solto.
func (s *JobStore) Submit(start func() *application.Task) (string, *application.Task, bool) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.jobs) >= s.max {
		return "", nil, false
	}
	t := start()
	s.jobs[id] = &jobEntry{task: t, created: time.Now()}
	return id, t, true
}

func (s *JobStore) Get(id string) (domain.OpSnapshot, bool) {
	s.mu.Lock()
	ent, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		return domain.OpSnapshot{}, false
	}
	snap := ent.task.Snapshot()
	snap.ID = id
	return snap, true
}

func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup remove as tasks terminadas há mais de ttl. Tasks em loading ficam.
func (s *JobStore) Cleanup() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ent := range s.jobs {
		snap := ent.task.Snapshot()
		if !snap.State.Done() {
			continue
		}
		if snap.EndedAt.Before(cutoff) {
			delete(s.jobs, id)
		}
	}
}

// StartJanitor limpa tasks antigas periodicamente. Pare cancelando o contexto.
func (s *JobStore) StartJanitor(ctx context.Context) <-chan struct{} {
	return janitor.Start(ctx, s.cleanupEvery, s.Cleanup)
}
