package orcamento

// Estágios do pipeline de vendas. "cadastrado" e "perdido" são finais por
// convenção, mas qualquer transição entre os cinco é aceita: o estágio é um
// rótulo com histórico, não um fluxo imposto.
const (
	EstagioLeads      = "leads"
	EstagioNegociacao = "negociacao"
	EstagioFila       = "fila"
	EstagioCadastrado = "cadastrado"
	EstagioPerdido    = "perdido"
)

// Estagios lista os estágios na ordem do quadro kanban.
var Estagios = []string{
	EstagioLeads,
	EstagioNegociacao,
	EstagioFila,
	EstagioCadastrado,
	EstagioPerdido,
}

// EstagioValido diz se s é um dos cinco estágios conhecidos.
func EstagioValido(s string) bool {
	for _, e := range Estagios {
		if s == e {
			return true
		}
	}
	return false
}
