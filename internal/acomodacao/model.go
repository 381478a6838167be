package acomodacao

import (
	"time"

	"gorm.io/gorm"
)

type Acomodacao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome        string `gorm:"size:255;not null;unique" json:"nome"`
	RegistroANS string `gorm:"size:50" json:"registro_ans"`
}

func (Acomodacao) TableName() string { return "acomodacoes" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Acomodacao{})
}
