// Package application contém as regras de cota e de vagas em voo.
//
// Depende só do pacote domain e não conhece net/http.
// Ex.: Service.Decide(key) devolve uma Decision (allow/deny + saldo + retry-after).
package application
