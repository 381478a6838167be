package orcamento

import (
	"github.com/plansaude/api-corretora/internal/tabelapreco"
)

// CalcularTotal soma o valor da faixa etária de cada idade na tabela.
// Função pura: mesma tabela e mesmas idades produzem sempre o mesmo total.
// A mesma conta é refeita onde quer que o total seja exibido.
func CalcularTotal(t *tabelapreco.TabelaPreco, idades []int) float64 {
	var total float64
	for _, idade := range idades {
		total += t.ValorParaIdade(idade)
	}
	return total
}
