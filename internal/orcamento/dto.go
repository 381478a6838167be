package orcamento

// request DTOs

type CriarOrcamentoRequest struct {
	TabelaPrecoID uint   `json:"tabela_preco_id"`
	Nome          string `json:"nome"`
	Telefone      string `json:"telefone"`
	TipoDocumento string `json:"tipo_documento"`
	Idades        []int  `json:"idades"`
}

type NovaObservacao struct {
	Texto string `json:"texto"`
	Data  string `json:"data,omitempty"`
}

type AtualizarEstagioRequest struct {
	Estagio    string          `json:"estagio"`
	Observacao *NovaObservacao `json:"observacao,omitempty"`
}

// response DTOs

type CriarOrcamentoResponse struct {
	ID         uint    `json:"id"`
	ValorTotal float64 `json:"valor_total"`
}
