// Package infra contém as implementações concretas dos contratos de quota/domain.
//
// Exemplos:
//   - Buckets: token bucket por cliente usando golang.org/x/time/rate
//   - Semaphore: vagas em voo com channel
//   - MemoryUsage / RedisUsage: contadores de uso por ferramenta
package infra
