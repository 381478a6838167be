package tabelapreco

import (
	"time"

	"github.com/plansaude/api-corretora/internal/acomodacao"
	"github.com/plansaude/api-corretora/internal/cidade"
	"github.com/plansaude/api-corretora/internal/modalidade"
	"github.com/plansaude/api-corretora/internal/operadora"
	"gorm.io/gorm"
)

// Tipos de coparticipação aceitos nas tabelas
const (
	ComCoparticipacao     = "Com Coparticipação"
	CoparticipacaoParcial = "Coparticipação Parcial"
)

// Tipos de documento do titular
const (
	DocumentoCPF  = "CPF"
	DocumentoCNPJ = "CNPJ"
)

// TabelaPreco é uma linha de preço: combinação de cidade, operadora,
// acomodação, modalidade, coparticipação e documento, com vigência e os
// valores por faixa etária. Valores nulos contam como zero no cálculo.
type TabelaPreco struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CidadeID     uint `gorm:"not null;index" json:"cidade_id"`
	OperadoraID  uint `gorm:"not null;index" json:"operadora_id"`
	AcomodacaoID uint `gorm:"not null;index" json:"acomodacao_id"`
	ModalidadeID uint `gorm:"not null;index" json:"modalidade_id"`

	Cidade     cidade.Cidade         `gorm:"foreignKey:CidadeID" json:"cidade"`
	Operadora  operadora.Operadora   `gorm:"foreignKey:OperadoraID" json:"operadora"`
	Acomodacao acomodacao.Acomodacao `gorm:"foreignKey:AcomodacaoID" json:"acomodacao"`
	Modalidade modalidade.Modalidade `gorm:"foreignKey:ModalidadeID" json:"modalidade"`

	TipoCoparticipacao string `gorm:"size:50;not null" json:"tipo_coparticipacao"`
	TipoDocumento      string `gorm:"size:4;not null" json:"tipo_documento"`

	// Vigência em formato ISO (YYYY-MM-DD)
	ValidadeInicio string `gorm:"size:10;not null" json:"validade_inicio"`
	ValidadeFim    string `gorm:"size:10;not null" json:"validade_fim"`

	Valor0018   *float64 `gorm:"column:valor_00_18" json:"valor_00_18"`
	Valor1923   *float64 `gorm:"column:valor_19_23" json:"valor_19_23"`
	Valor2428   *float64 `gorm:"column:valor_24_28" json:"valor_24_28"`
	Valor2933   *float64 `gorm:"column:valor_29_33" json:"valor_29_33"`
	Valor3438   *float64 `gorm:"column:valor_34_38" json:"valor_34_38"`
	Valor3943   *float64 `gorm:"column:valor_39_43" json:"valor_39_43"`
	Valor4448   *float64 `gorm:"column:valor_44_48" json:"valor_44_48"`
	Valor4953   *float64 `gorm:"column:valor_49_53" json:"valor_49_53"`
	Valor5458   *float64 `gorm:"column:valor_54_58" json:"valor_54_58"`
	Valor59Mais *float64 `gorm:"column:valor_59_mais" json:"valor_59_mais"`
}

func (TabelaPreco) TableName() string { return "tabelas_preco" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TabelaPreco{})
}
