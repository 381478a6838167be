package cidade

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *Cidade) error
	ListarTodas(db *gorm.DB) ([]Cidade, error)
	BuscarPorID(db *gorm.DB, id uint) (*Cidade, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Cidade) error
	Deletar(db *gorm.DB, id uint) error
	ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cidade) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Cidade, error) {
	var cidades []Cidade
	err := db.Order("nome").Find(&cidades).Error
	return cidades, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cidade, error) {
	var c Cidade
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Cidade) error {
	var existente Cidade
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Estado = novosDados.Estado
	existente.CodigoIBGE = novosDados.CodigoIBGE
	existente.Observacoes = novosDados.Observacoes
	existente.ConsultasEletivas = novosDados.ConsultasEletivas
	existente.ConsultasUrgencias = novosDados.ConsultasUrgencias
	existente.ExamesSimples = novosDados.ExamesSimples
	existente.ExamesComplexos = novosDados.ExamesComplexos
	existente.TerapiasEspeciais = novosDados.TerapiasEspeciais
	existente.DemaisTerapias = novosDados.DemaisTerapias

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cidade{}, id).Error
}

// Usada para bloquear a exclusão de cidades com tabela de preço vigente.
func (r *repositoryImpl) ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Table("tabelas_preco").Where("cidade_id = ?", id).Count(&count).Error
	return count > 0, err
}
