package infra

import (
	"math/rand/v2"
	"sync"
	"time"
)

// LockedRand implementa domain.Random com um mutex em volta de *rand.Rand.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand cria uma fonte semeada. seed == 0 usa uma semente derivada do relógio.
func NewRand(seed uint64) *LockedRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &LockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *LockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
