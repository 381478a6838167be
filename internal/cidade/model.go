package cidade

import (
	"time"

	"gorm.io/gorm"
)

// Cidade é um município atendido pela corretora. Os valores de referência
// (consultas, exames, terapias) são usados apenas como apoio comercial.
type Cidade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome        string `gorm:"size:255;not null" json:"nome"`
	Estado      string `gorm:"size:2;not null" json:"estado"`
	CodigoIBGE  string `gorm:"size:20" json:"codigo_ibge"`
	Observacoes string `json:"observacoes"`

	ConsultasEletivas  *float64 `json:"consultas_eletivas"`
	ConsultasUrgencias *float64 `json:"consultas_urgencias"`
	ExamesSimples      *float64 `json:"exames_simples"`
	ExamesComplexos    *float64 `json:"exames_complexos"`
	TerapiasEspeciais  *float64 `json:"terapias_especiais"`
	DemaisTerapias     *float64 `json:"demais_terapias"`
}

func (Cidade) TableName() string { return "cidades" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cidade{})
}
