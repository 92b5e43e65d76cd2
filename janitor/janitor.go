// Package janitor roda limpezas periódicas em segundo plano.
package janitor

import (
	"context"
	"time"
)

// Start chama sweep a cada every até ctx encerrar. every <= 0 não inicia nada.
// O canal devolvido fecha quando a goroutine termina.
func Start(ctx context.Context, every time.Duration, sweep func()) <-chan struct{} {
	done := make(chan struct{})
	if every <= 0 {
		close(done)
		return done
	}

	t := time.NewTicker(every)
	go func() {
		defer close(done)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				sweep()
			}
		}
	}()
	return done
}
