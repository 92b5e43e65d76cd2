package domain

import (
	"context"
	"time"
)

// UsageEvent registra uma chamada a uma ferramenta e a decisão de cota.
//
// Cuidado com cardinalidade: Tool vem de uma lista fechada, mas Client não.
type UsageEvent struct {
	Client  ClientKey
	Tool    string
	Allowed bool
	At      time.Time
}

type Counters struct {
	Allowed int64 `json:"allowed"`
	Denied  int64 `json:"denied"`
}

// UsageRecorder persiste eventos. Erros são best-effort: nunca derrubam a requisição.
type UsageRecorder interface {
	Record(ctx context.Context, ev UsageEvent) error
}

// UsageReader expõe os contadores agregados por ferramenta.
type UsageReader interface {
	ByTool(ctx context.Context) (map[string]Counters, error)
}
