package corretor

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *Corretor) error
	BuscarPorCPF(db *gorm.DB, cpf string) (*Corretor, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Corretor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Corretor, error)
	ListarTodos(db *gorm.DB) ([]Corretor, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Corretor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Corretor) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorCPF(db *gorm.DB, cpf string) (*Corretor, error) {
	var c Corretor
	err := db.Where("cpf = ?", cpf).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Corretor, error) {
	var c Corretor
	err := db.Where("email = ?", email).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Corretor, error) {
	var c Corretor
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Corretor, error) {
	var corretores []Corretor
	err := db.Order("nome").Find(&corretores).Error
	return corretores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Corretor) error {
	var existente Corretor
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.CPF = novosDados.CPF
	existente.DataCadastro = novosDados.DataCadastro
	existente.DataDesligamento = novosDados.DataDesligamento
	existente.TipoUsuario = novosDados.TipoUsuario
	if novosDados.Senha != "" {
		existente.Senha = novosDados.Senha
	}

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Corretor{}, id).Error
}
