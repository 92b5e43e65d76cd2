package application

import (
	"math"
	"time"

	"seokit/middleware/quota/domain"
)

// Service concentra a regra de cota por cliente.
//
// Não sabe nada de HTTP (headers/status), apenas devolve a decisão.
type Service struct {
	Store      domain.BucketStore
	RetryAfter time.Duration
}

func (s Service) Decide(key domain.ClientKey) domain.Decision {
	if s.Store == nil {
		return domain.Decision{Allowed: true, Remaining: -1}
	}
	if s.RetryAfter <= 0 {
		s.RetryAfter = time.Second
	}

	b := s.Store.Bucket(key)
	if b == nil {
		return domain.Decision{Allowed: true, Remaining: -1}
	}
	if b.Allow() {
		return domain.Decision{Allowed: true, Remaining: remaining(b)}
	}
	return domain.Decision{Allowed: false, Remaining: 0, RetryAfter: s.RetryAfter}
}

func remaining(b domain.Bucket) int {
	t := math.Floor(b.Tokens())
	if t < 0 {
		return 0
	}
	return int(t)
}
