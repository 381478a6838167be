package orcamento

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, o *Orcamento) error
	ListarTodos(db *gorm.DB) ([]Orcamento, error)
	ListarPorCorretor(db *gorm.DB, corretorID uint) ([]Orcamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Orcamento, error)
	Atualizar(db *gorm.DB, o *Orcamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *Orcamento) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Orcamento, error) {
	var list []Orcamento
	err := db.
		Preload("TabelaPreco").
		Preload("TabelaPreco.Cidade").
		Preload("TabelaPreco.Operadora").
		Preload("TabelaPreco.Modalidade").
		Preload("TabelaPreco.Acomodacao").
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorCorretor(db *gorm.DB, corretorID uint) ([]Orcamento, error) {
	var list []Orcamento
	err := db.
		Where("corretor_id = ?", corretorID).
		Preload("TabelaPreco").
		Preload("TabelaPreco.Cidade").
		Preload("TabelaPreco.Operadora").
		Preload("TabelaPreco.Modalidade").
		Preload("TabelaPreco.Acomodacao").
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Orcamento, error) {
	var o Orcamento
	err := db.
		Preload("TabelaPreco").
		Preload("TabelaPreco.Cidade").
		Preload("TabelaPreco.Operadora").
		Preload("TabelaPreco.Modalidade").
		Preload("TabelaPreco.Acomodacao").
		First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Orcamento) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Orcamento{}, id).Error
}
