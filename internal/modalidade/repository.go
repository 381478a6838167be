package modalidade

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, m *Modalidade) error
	ListarTodas(db *gorm.DB) ([]Modalidade, error)
	BuscarPorID(db *gorm.DB, id uint) (*Modalidade, error)
	BuscarPorNome(db *gorm.DB, nome string) (*Modalidade, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Modalidade) error
	Deletar(db *gorm.DB, id uint) error
	ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Modalidade) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Modalidade, error) {
	var modalidades []Modalidade
	err := db.Order("nome").Find(&modalidades).Error
	return modalidades, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Modalidade, error) {
	var m Modalidade
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome string) (*Modalidade, error) {
	var m Modalidade
	err := db.Where("nome = ?", nome).First(&m).Error
	return &m, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Modalidade) error {
	var existente Modalidade
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.Nome = novosDados.Nome
	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Modalidade{}, id).Error
}

func (r *repositoryImpl) ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Table("tabelas_preco").Where("modalidade_id = ?", id).Count(&count).Error
	return count > 0, err
}
