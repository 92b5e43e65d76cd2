package application

import (
	"context"
	"sync"
	"time"

	"seokit/toolkit/domain"
)

// DefaultMonitorHistory é quantas checagens o monitor guarda.
const DefaultMonitorHistory = 50

// CheckFunc faz uma checagem de status. Erros são só de validação e por
// isso são verificados antes do monitor começar.
type CheckFunc func(ctx context.Context) (domain.ServerStatus, error)

// Monitor repete a checagem em intervalo fixo até Stop.
//
// É o único trabalho recorrente do sistema: Stop cancela o ticker e espera a
// goroutine sair, então nada fica vazando depois que o monitor é descartado.
type Monitor struct {
	URL      string
	Interval time.Duration
	Check    CheckFunc
	// History limita o histórico; <= 0 usa DefaultMonitorHistory.
	History int

	mu      sync.Mutex
	history []domain.ServerStatus
	checks  int
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Start faz uma checagem imediata e depois uma a cada Interval.
// Chamar Start num monitor já rodando não faz nada.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running || m.Interval <= 0 || m.Check == nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.markStopped()

		t := time.NewTicker(m.Interval)
		defer t.Stop()

		m.runCheck(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.runCheck(ctx)
			}
		}
	}()
}

// Stop para o monitor e espera a goroutine terminar. É idempotente.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Monitor) markStopped() {
	m.mu.Lock()
	m.running = false
	m.mu.Unlock()
}

func (m *Monitor) runCheck(ctx context.Context) {
	st, err := m.Check(ctx)
	if err != nil {
		return
	}

	limit := m.History
	if limit <= 0 {
		limit = DefaultMonitorHistory
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks++
	m.history = append(m.history, st)
	if len(m.history) > limit {
		m.history = append([]domain.ServerStatus(nil), m.history[len(m.history)-limit:]...)
	}
}

func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Snapshot devolve uma cópia do estado atual (mais recente por último).
func (m *Monitor) Snapshot() domain.MonitorSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.MonitorSnapshot{
		URL:      m.URL,
		Interval: m.Interval.String(),
		Running:  m.running,
		Checks:   m.checks,
		History:  append([]domain.ServerStatus(nil), m.history...),
	}
}
