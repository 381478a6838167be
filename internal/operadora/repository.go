package operadora

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, o *Operadora) error
	ListarTodas(db *gorm.DB) ([]Operadora, error)
	BuscarPorID(db *gorm.DB, id uint) (*Operadora, error)
	BuscarPorNome(db *gorm.DB, nomeCompleto string) (*Operadora, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Operadora) error
	Deletar(db *gorm.DB, id uint) error
	ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *Operadora) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Operadora, error) {
	var operadoras []Operadora
	err := db.Order("nome_completo").Find(&operadoras).Error
	return operadoras, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Operadora, error) {
	var o Operadora
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nomeCompleto string) (*Operadora, error) {
	var o Operadora
	err := db.Where("nome_completo = ?", nomeCompleto).First(&o).Error
	return &o, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Operadora) error {
	var existente Operadora
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.NomeCompleto = novosDados.NomeCompleto
	existente.Validade = novosDados.Validade
	existente.DataCadastro = novosDados.DataCadastro

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Operadora{}, id).Error
}

func (r *repositoryImpl) ReferenciadaPorTabelas(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Table("tabelas_preco").Where("operadora_id = ?", id).Count(&count).Error
	return count > 0, err
}
