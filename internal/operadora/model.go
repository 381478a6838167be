package operadora

import (
	"time"

	"gorm.io/gorm"
)

// Operadora é uma operadora de planos de saúde credenciada.
type Operadora struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	NomeCompleto string `gorm:"size:255;not null;unique" json:"nome_completo"`
	Validade     string `json:"validade"`
	DataCadastro string `gorm:"size:10" json:"data_cadastro"`
}

func (Operadora) TableName() string { return "operadoras" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Operadora{})
}
