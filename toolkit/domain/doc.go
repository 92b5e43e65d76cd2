// Package domain define os tipos e contratos das ferramentas de SEO.
//
// Este pacote não depende de net/http nem de implementações concretas.
// Todos os "entities" são objetos de valor criados por requisição e descartados
// depois que o resultado é entregue; nada aqui é persistido.
package domain
