package acomodacao

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, a *Acomodacao) error
	ListarTodas(db *gorm.DB) ([]Acomodacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Acomodacao, error)
	BuscarPorNome(db *gorm.DB, nome string) (*Acomodacao, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Acomodacao) error
	Deletar(db *gorm.DB, id uint) error
	ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Acomodacao) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Acomodacao, error) {
	var acomodacoes []Acomodacao
	err := db.Order("nome").Find(&acomodacoes).Error
	return acomodacoes, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Acomodacao, error) {
	var a Acomodacao
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome string) (*Acomodacao, error) {
	var a Acomodacao
	err := db.Where("nome = ?", nome).First(&a).Error
	return &a, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Acomodacao) error {
	var existente Acomodacao
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.Nome = novosDados.Nome
	existente.RegistroANS = novosDados.RegistroANS
	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Acomodacao{}, id).Error
}

func (r *repositoryImpl) ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Table("tabelas_preco").Where("acomodacao_id = ?", id).Count(&count).Error
	return count > 0, err
}
