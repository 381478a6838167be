package orcamento

import (
	"time"

	"github.com/plansaude/api-corretora/internal/tabelapreco"
	"gorm.io/gorm"
)

// Observacao é uma anotação do histórico do orçamento. O histórico é
// somente-acréscimo: entradas nunca são editadas ou removidas.
type Observacao struct {
	Texto string `json:"texto"`
	Data  string `json:"data"`
}

// Orcamento é uma proposta precificada para um cliente, com a lista de
// idades e o total calculado a partir da tabela de preço selecionada.
type Orcamento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TabelaPrecoID uint                    `gorm:"not null;index" json:"tabela_preco_id"`
	TabelaPreco   tabelapreco.TabelaPreco `gorm:"foreignKey:TabelaPrecoID" json:"tabela_preco"`

	Nome          string `gorm:"size:255;not null" json:"nome"`
	Telefone      string `gorm:"size:30;not null" json:"telefone"`
	TipoDocumento string `gorm:"size:4;not null" json:"tipo_documento"`

	Idades     []int   `gorm:"type:jsonb;serializer:json" json:"idades"`
	ValorTotal float64 `gorm:"not null" json:"valor_total"`

	DataOrcamento string `gorm:"size:10" json:"data_orcamento"`
	CorretorID    uint   `gorm:"not null;index" json:"corretor_id"`

	Estagio     string        `gorm:"size:20;not null;default:'leads'" json:"estagio"`
	Observacoes []Observacao  `gorm:"type:jsonb;serializer:json" json:"observacoes"`
}

func (Orcamento) TableName() string { return "orcamentos" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Orcamento{})
}
