// Package quota fornece os middlewares HTTP (net/http) que protegem a API de
// ferramentas: cota por cliente (token bucket) e limite de requisições em voo.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos (sem dependência de net/http)
//   - application: decisão allow/deny e acquire com timeout
//   - infra: token buckets por cliente, semáforo, contadores de uso (memória/redis)
//   - quota (este pacote): middlewares + extração de chave/ferramenta + status/headers
//
// Fluxo numa chamada a /api/tools/{tool}:
//
//  1. Extrai a chave do cliente (header/XFF/IP) e o nome da ferramenta
//  2. Pede a decisão para a camada application
//  3. Registra o uso por ferramenta (best-effort)
//  4. Se bloqueado responde 429 (cota) ou 503 (em voo); senão segue
//
// As variáveis QUOTA_* e INFLIGHT_* do binário (cmd/seokit) controlam o comportamento.
package quota
