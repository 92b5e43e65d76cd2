package infra

import (
	"context"

	"seokit/middleware/quota/domain"
)

type semaphore struct {
	sem chan struct{}
}

// NewSemaphore cria max vagas baseadas em channel.
func NewSemaphore(max int) domain.Slots {
	return &semaphore{sem: make(chan struct{}, max)}
}

func (s *semaphore) Acquire(ctx context.Context) (func(), bool) {
	select {
	case s.sem <- struct{}{}:
		return func() { <-s.sem }, true
	case <-ctx.Done():
		return nil, false
	}
}
