package infra

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand_SameSeedSameSequence(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 20 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestLockedRand_ConcurrentUse(t *testing.T) {
	r := NewRand(0)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v := r.IntN(10)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 10)
			}
		}()
	}
	wg.Wait()
}
