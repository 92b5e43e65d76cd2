package domain

import "time"

// OpState é o ciclo de vida de uma operação: idle → loading → (success | error).
// Não existe retry, cancelamento parcial ou resultado parcial.
type OpState string

const (
	StateIdle    OpState = "idle"
	StateLoading OpState = "loading"
	StateSuccess OpState = "success"
	StateError   OpState = "error"
)

func (s OpState) Done() bool { return s == StateSuccess || s == StateError }

// OpSnapshot é uma foto imutável do estado de uma operação.
type OpSnapshot struct {
	ID        string    `json:"id,omitempty"`
	Tool      string    `json:"tool"`
	State     OpState   `json:"state"`
	Result    any       `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"started_at,omitzero"`
	EndedAt   time.Time `json:"ended_at,omitzero"`
}

type MonitorRequest struct {
	URL             string `json:"url"`
	IntervalSeconds int    `json:"interval_seconds"`
}

type MonitorSnapshot struct {
	ID       string         `json:"id"`
	URL      string         `json:"url"`
	Interval string         `json:"interval"`
	Running  bool           `json:"running"`
	Checks   int            `json:"checks"`
	History  []ServerStatus `json:"history"`
}
