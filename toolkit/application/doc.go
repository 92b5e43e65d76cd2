// Package application contém as ferramentas propriamente ditas: transformações
// de texto, métricas derivadas, geradores simulados e a máquina de estados
// genérica que embrulha todas elas.
//
// Ele depende apenas do pacote domain e não conhece net/http.
// Ex.: Rewrite(text, level) retorna um RewriteResult com as métricas calculadas.
package application
