package tabelapreco

// Chaves das dez faixas etárias, na ordem das colunas da tabela.
const (
	Faixa0018   = "00_18"
	Faixa1923   = "19_23"
	Faixa2428   = "24_28"
	Faixa2933   = "29_33"
	Faixa3438   = "34_38"
	Faixa3943   = "39_43"
	Faixa4448   = "44_48"
	Faixa4953   = "49_53"
	Faixa5458   = "54_58"
	Faixa59Mais = "59_mais"
)

// FaixaParaIdade mapeia uma idade para a chave da sua faixa etária.
// Limites superiores inclusivos: 18, 23, 28, 33, 38, 43, 48, 53, 58.
func FaixaParaIdade(idade int) string {
	switch {
	case idade <= 18:
		return Faixa0018
	case idade <= 23:
		return Faixa1923
	case idade <= 28:
		return Faixa2428
	case idade <= 33:
		return Faixa2933
	case idade <= 38:
		return Faixa3438
	case idade <= 43:
		return Faixa3943
	case idade <= 48:
		return Faixa4448
	case idade <= 53:
		return Faixa4953
	case idade <= 58:
		return Faixa5458
	default:
		return Faixa59Mais
	}
}

// ValorDaFaixa retorna o valor da coluna correspondente à faixa.
// Coluna não preenchida vale zero.
func (t *TabelaPreco) ValorDaFaixa(faixa string) float64 {
	var v *float64
	switch faixa {
	case Faixa0018:
		v = t.Valor0018
	case Faixa1923:
		v = t.Valor1923
	case Faixa2428:
		v = t.Valor2428
	case Faixa2933:
		v = t.Valor2933
	case Faixa3438:
		v = t.Valor3438
	case Faixa3943:
		v = t.Valor3943
	case Faixa4448:
		v = t.Valor4448
	case Faixa4953:
		v = t.Valor4953
	case Faixa5458:
		v = t.Valor5458
	case Faixa59Mais:
		v = t.Valor59Mais
	}
	if v == nil {
		return 0
	}
	return *v
}

// ValorParaIdade é o atalho usado pelo cálculo de orçamento e pela exibição.
func (t *TabelaPreco) ValorParaIdade(idade int) float64 {
	return t.ValorDaFaixa(FaixaParaIdade(idade))
}
