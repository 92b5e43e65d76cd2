package domain

import "time"

// Random é a fonte de aleatoriedade dos geradores simulados.
//
// A implementação padrão é não-semeada; testes injetam uma fonte fixa
// para obter estruturas determinísticas.
type Random interface {
	// IntN retorna um inteiro em [0, n). n deve ser > 0.
	IntN(n int) int
	// Float64 retorna um valor em [0.0, 1.0).
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Clock abstrai o relógio para datas derivadas (idade de domínio, status).
type Clock interface {
	Now() time.Time
}

// ClockFunc adapta uma função a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock usa time.Now.
var SystemClock Clock = ClockFunc(time.Now)
