package orcamento

import (
	"testing"

	"github.com/plansaude/api-corretora/internal/tabelapreco"
)

func TestCalcularTotal(t *testing.T) {
	v100 := 100.0
	v150 := 150.0
	v300 := 300.0
	tabela := &tabelapreco.TabelaPreco{
		Valor0018:   &v100,
		Valor1923:   &v150,
		Valor59Mais: &v300,
	}

	t.Run("soma por faixa etária", func(t *testing.T) {
		total := CalcularTotal(tabela, []int{10, 20, 60})
		if total != 550 {
			t.Fatalf("esperado 550, obtido %v", total)
		}
	})

	t.Run("faixa sem valor conta zero", func(t *testing.T) {
		total := CalcularTotal(tabela, []int{10, 30})
		if total != 100 {
			t.Fatalf("esperado 100, obtido %v", total)
		}
	})

	t.Run("idades repetidas somam repetido", func(t *testing.T) {
		total := CalcularTotal(tabela, []int{10, 10, 10})
		if total != 300 {
			t.Fatalf("esperado 300, obtido %v", total)
		}
	})

	t.Run("determinístico", func(t *testing.T) {
		idades := []int{5, 25, 45, 70}
		if CalcularTotal(tabela, idades) != CalcularTotal(tabela, idades) {
			t.Fatal("duas chamadas com as mesmas entradas divergiram")
		}
	})

	t.Run("lista vazia vale zero", func(t *testing.T) {
		if got := CalcularTotal(tabela, nil); got != 0 {
			t.Fatalf("esperado 0, obtido %v", got)
		}
	})
}

func TestEstagioValido(t *testing.T) {
	for _, e := range Estagios {
		if !EstagioValido(e) {
			t.Errorf("estágio %q deveria ser válido", e)
		}
	}
	if EstagioValido("arquivado") {
		t.Error("estágio desconhecido aceito")
	}
	if EstagioValido("") {
		t.Error("estágio vazio aceito")
	}
}
