package domain

import "context"

// Slots representa uma capacidade finita de requisições simultâneas.
//
// Acquire bloqueia até conseguir uma vaga ou até o ctx encerrar; o release
// devolvido deve ser chamado exatamente uma vez.
type Slots interface {
	Acquire(ctx context.Context) (release func(), ok bool)
}
