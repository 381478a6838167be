package corretor

import (
	"time"

	"gorm.io/gorm"
)

// Papéis de usuário aceitos. "admin", "administrador" e "backoffice" têm
// visão administrativa (todos os orçamentos); "usuario" vê apenas os seus.
const (
	TipoUsuarioPadrao        = "usuario"
	TipoUsuarioAdmin         = "admin"
	TipoUsuarioAdministrador = "administrador"
	TipoUsuarioBackoffice    = "backoffice"
)

func TipoUsuarioValido(tipo string) bool {
	switch tipo {
	case TipoUsuarioPadrao, TipoUsuarioAdmin, TipoUsuarioAdministrador, TipoUsuarioBackoffice:
		return true
	}
	return false
}

// Corretor é o usuário do sistema. O CPF (apenas dígitos) é o identificador
// de login; a senha é armazenada como hash bcrypt.
type Corretor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome     string `gorm:"size:255;not null" json:"nome"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Telefone string `gorm:"size:30" json:"telefone"`
	CPF      string `gorm:"column:cpf;size:11;not null;unique" json:"cpf"`
	Senha    string `gorm:"size:100;not null" json:"-"`

	DataCadastro     string  `gorm:"size:10" json:"data_cadastro"`
	DataDesligamento *string `gorm:"size:10" json:"data_desligamento,omitempty"`
	TipoUsuario      string  `gorm:"size:20;not null;default:'usuario'" json:"tipo_usuario"`
}

func (Corretor) TableName() string { return "corretores" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Corretor{})
}
