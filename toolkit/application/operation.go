package application

import (
	"context"
	"sync"
	"time"

	"seokit/toolkit/domain"
)

// Operation é o pipeline único de todas as ferramentas:
// validação → espera simulada → transformação → resultado.
//
// Validate é opcional e roda antes da espera, para que entradas inválidas
// falhem sem "trabalho". Transform nunca é chamado se a validação falhar.
type Operation[In, Out any] struct {
	Name      string
	Validate  func(In) error
	Transform func(context.Context, In) (Out, error)
	Delay     time.Duration
}

// Run executa a operação de forma síncrona.
func (o Operation[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	var zero Out
	if o.Validate != nil {
		if err := o.Validate(in); err != nil {
			return zero, err
		}
	}
	if err := Sleep(ctx, o.Delay); err != nil {
		return zero, err
	}
	return o.Transform(ctx, in)
}

// Start cria uma Task já em loading e roda a operação em background.
func (o Operation[In, Out]) Start(ctx context.Context, in In) *Task {
	t := NewTask(o.Name)
	t.begin()
	go func() {
		out, err := o.Run(ctx, in)
		t.finish(out, err)
	}()
	return t
}

// Task acompanha uma execução: idle → loading → (success | error).
// É segura para leitura concorrente enquanto a operação roda.
type Task struct {
	mu   sync.Mutex
	snap domain.OpSnapshot
	done chan struct{}
}

func NewTask(tool string) *Task {
	return &Task{
		snap: domain.OpSnapshot{Tool: tool, State: domain.StateIdle},
		done: make(chan struct{}),
	}
}

func (t *Task) begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snap.State = domain.StateLoading
	t.snap.StartedAt = time.Now().UTC()
}

func (t *Task) finish(out any, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.State.Done() {
		return
	}
	t.snap.EndedAt = time.Now().UTC()
	if err != nil {
		t.snap.State = domain.StateError
		t.snap.Error = err.Error()
	} else {
		t.snap.State = domain.StateSuccess
		t.snap.Result = out
	}
	close(t.done)
}

func (t *Task) Snapshot() domain.OpSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// Done fecha quando a task chega em success ou error.
func (t *Task) Done() <-chan struct{} { return t.done }

// Sleep espera d respeitando o ctx. d <= 0 não espera.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
