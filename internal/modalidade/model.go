package modalidade

import (
	"time"

	"gorm.io/gorm"
)

type Modalidade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome string `gorm:"size:255;not null;unique" json:"nome"`
}

func (Modalidade) TableName() string { return "modalidades" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Modalidade{})
}
