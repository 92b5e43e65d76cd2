// Package infra contém implementações concretas para os contratos do
// pacote domain e o estado de processo do servidor.
//
// Exemplos:
//   - LockedRand: fonte aleatória (math/rand/v2) segura para uso concorrente
//   - JobStore: tasks assíncronas por id com limpeza periódica
//   - MonitorRegistry: monitores de status ativos, parados no shutdown
//   - StripMarkup: remove HTML do texto livre (bluemonday)
//   - WriteBacklinksXLSX: exportação do relatório de backlinks (excelize)
package infra
