package infra

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"seokit/toolkit/application"
	"seokit/toolkit/domain"
)

var ErrTooManyMonitors = errors.New("too many monitors")

// MonitorRegistry mantém os monitores ativos por id.
type MonitorRegistry struct {
	mu       sync.Mutex
	monitors map[string]*application.Monitor
	max      int
	history  int
}

func NewMonitorRegistry(max, history int) *MonitorRegistry {
	return &MonitorRegistry{
		monitors: make(map[string]*application.Monitor),
		max:      max,
		history:  history,
	}
}

// Start cria e inicia um monitor. O ctx é o ciclo de vida do processo, não
// da requisição: o monitor continua depois que a resposta sai.
func (r *MonitorRegistry) Start(ctx context.Context, url string, interval time.Duration, check application.CheckFunc) (string, error) {
	m := &application.Monitor{URL: url, Interval: interval, Check: check, History: r.history}
	id := uuid.NewString()

	r.mu.Lock()
	if r.max > 0 && len(r.monitors) >= r.max {
		r.mu.Unlock()
		return "", ErrTooManyMonitors
	}
	r.monitors[id] = m
	r.mu.Unlock()

	m.Start(ctx)
	return id, nil
}

func (r *MonitorRegistry) Get(id string) (domain.MonitorSnapshot, bool) {
	r.mu.Lock()
	m, ok := r.monitors[id]
	r.mu.Unlock()
	if !ok {
		return domain.MonitorSnapshot{}, false
	}
	snap := m.Snapshot()
	snap.ID = id
	return snap, true
}

// Stop para e remove o monitor. Devolve o último snapshot.
func (r *MonitorRegistry) Stop(id string) (domain.MonitorSnapshot, bool) {
	r.mu.Lock()
	m, ok := r.monitors[id]
	delete(r.monitors, id)
	r.mu.Unlock()
	if !ok {
		return domain.MonitorSnapshot{}, false
	}
	m.Stop()
	snap := m.Snapshot()
	snap.ID = id
	return snap, true
}

// StopAll é chamado no shutdown.
func (r *MonitorRegistry) StopAll() {
	r.mu.Lock()
	all := r.monitors
	r.monitors = make(map[string]*application.Monitor)
	r.mu.Unlock()

	for _, m := range all {
		m.Stop()
	}
}

func (r *MonitorRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.monitors)
}
