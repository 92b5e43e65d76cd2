// Package domain define os contratos de cota, uso e vagas em voo.
//
// Não depende de net/http nem de implementações concretas.
package domain
