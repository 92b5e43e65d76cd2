package application

import (
	"context"
	"time"

	"seokit/middleware/quota/domain"
)

// InFlightService adquire/libera vagas com timeout, sem saber nada de HTTP.
type InFlightService struct {
	Slots          domain.Slots
	AcquireTimeout time.Duration
}

// Acquire tenta pegar uma vaga.
// AcquireTimeout <= 0 espera até o ctx cancelar; > 0 espera no máximo o timeout.
// Com ok=false nenhuma vaga foi adquirida.
func (s InFlightService) Acquire(ctx context.Context) (func(), bool) {
	if s.Slots == nil {
		return func() {}, true
	}
	if s.AcquireTimeout <= 0 {
		return s.Slots.Acquire(ctx)
	}

	acqCtx, cancel := context.WithTimeout(ctx, s.AcquireTimeout)
	defer cancel()
	return s.Slots.Acquire(acqCtx)
}
