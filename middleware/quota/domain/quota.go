package domain

import "time"

// ClientKey identifica quem consome a cota (IP, API key...).
type ClientKey string

// Bucket decide se uma chamada cabe na cota agora.
//
// Tokens informa quantas chamadas ainda cabem sem esperar; serve só para
// o header X-Quota-Remaining.
type Bucket interface {
	Allow() bool
	Tokens() float64
}

// BucketStore devolve o bucket de cada cliente.
type BucketStore interface {
	Bucket(ClientKey) Bucket
}

type Decision struct {
	Allowed bool
	// Remaining é o saldo depois da decisão (arredondado para baixo).
	Remaining int
	// RetryAfter só é preenchido quando bloqueia.
	RetryAfter time.Duration
}
