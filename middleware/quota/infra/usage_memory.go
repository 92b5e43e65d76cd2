package infra

import (
	"context"
	"maps"
	"sync"

	"seokit/middleware/quota/domain"
)

// MemoryUsage conta chamadas por ferramenta (e opcionalmente por cliente)
// em memória. Não expira nada; serve para um processo único e para testes.
type MemoryUsage struct {
	mu       sync.Mutex
	total    domain.Counters
	byTool   map[string]domain.Counters
	byClient map[domain.ClientKey]domain.Counters

	trackClients bool
}

type MemoryUsageOption func(*MemoryUsage)

func WithTrackClients(track bool) MemoryUsageOption {
	return func(m *MemoryUsage) { m.trackClients = track }
}

func NewMemoryUsage(opts ...MemoryUsageOption) *MemoryUsage {
	m := &MemoryUsage{
		byTool:   make(map[string]domain.Counters),
		byClient: make(map[domain.ClientKey]domain.Counters),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func bump(c domain.Counters, allowed bool) domain.Counters {
	if allowed {
		c.Allowed++
	} else {
		c.Denied++
	}
	return c
}

func (m *MemoryUsage) Record(_ context.Context, ev domain.UsageEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = bump(m.total, ev.Allowed)
	if ev.Tool != "" {
		m.byTool[ev.Tool] = bump(m.byTool[ev.Tool], ev.Allowed)
	}
	if m.trackClients && ev.Client != "" {
		m.byClient[ev.Client] = bump(m.byClient[ev.Client], ev.Allowed)
	}
	return nil
}

func (m *MemoryUsage) Total() domain.Counters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

func (m *MemoryUsage) ByTool(context.Context) (map[string]domain.Counters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.byTool), nil
}

func (m *MemoryUsage) ByClient() map[domain.ClientKey]domain.Counters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.byClient)
}
