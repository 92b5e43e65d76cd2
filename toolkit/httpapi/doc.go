// Package httpapi expõe as ferramentas via HTTP (chi).
//
// Cada ferramenta é um POST em /api/tools/{tool} com corpo JSON. Com
// ?async=1 a chamada devolve 202 e um id para acompanhar em /api/jobs/{id},
// espelhando o ciclo idle → loading → (success | error) da interface.
package httpapi
