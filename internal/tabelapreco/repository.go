package tabelapreco

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, t *TabelaPreco) error
	ListarFiltrado(db *gorm.DB, cidadeID uint, tipoDocumento string) ([]TabelaPreco, error)
	BuscarPorID(db *gorm.DB, id uint) (*TabelaPreco, error)
	Atualizar(db *gorm.DB, id uint, novosDados *TabelaPreco) error
	Deletar(db *gorm.DB, id uint) error
	ReferenciadaPorOrcamentos(db *gorm.DB, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *TabelaPreco) error {
	return db.Create(t).Error
}

// ListarFiltrado retorna as tabelas que batem com os filtros opcionais
// (cidadeID zero e tipoDocumento vazio não filtram), ordenadas por cidade,
// operadora, modalidade, acomodação e início de vigência, para a seleção
// manual pelo corretor. Não há filtro automático por vigência corrente.
func (r *repositoryImpl) ListarFiltrado(db *gorm.DB, cidadeID uint, tipoDocumento string) ([]TabelaPreco, error) {
	q := db.Model(&TabelaPreco{}).
		Joins("JOIN cidades ON cidades.id = tabelas_preco.cidade_id").
		Joins("JOIN operadoras ON operadoras.id = tabelas_preco.operadora_id").
		Joins("JOIN modalidades ON modalidades.id = tabelas_preco.modalidade_id").
		Joins("JOIN acomodacoes ON acomodacoes.id = tabelas_preco.acomodacao_id").
		Preload("Cidade").
		Preload("Operadora").
		Preload("Modalidade").
		Preload("Acomodacao").
		Order("cidades.nome, operadoras.nome_completo, modalidades.nome, acomodacoes.nome, tabelas_preco.validade_inicio")

	if cidadeID != 0 {
		q = q.Where("tabelas_preco.cidade_id = ?", cidadeID)
	}
	if tipoDocumento != "" {
		q = q.Where("tabelas_preco.tipo_documento = ?", tipoDocumento)
	}

	var list []TabelaPreco
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*TabelaPreco, error) {
	var t TabelaPreco
	err := db.
		Preload("Cidade").
		Preload("Operadora").
		Preload("Modalidade").
		Preload("Acomodacao").
		First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *TabelaPreco) error {
	var existente TabelaPreco
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.CidadeID = novosDados.CidadeID
	existente.OperadoraID = novosDados.OperadoraID
	existente.AcomodacaoID = novosDados.AcomodacaoID
	existente.ModalidadeID = novosDados.ModalidadeID
	existente.TipoCoparticipacao = novosDados.TipoCoparticipacao
	existente.TipoDocumento = novosDados.TipoDocumento
	existente.ValidadeInicio = novosDados.ValidadeInicio
	existente.ValidadeFim = novosDados.ValidadeFim
	existente.Valor0018 = novosDados.Valor0018
	existente.Valor1923 = novosDados.Valor1923
	existente.Valor2428 = novosDados.Valor2428
	existente.Valor2933 = novosDados.Valor2933
	existente.Valor3438 = novosDados.Valor3438
	existente.Valor3943 = novosDados.Valor3943
	existente.Valor4448 = novosDados.Valor4448
	existente.Valor4953 = novosDados.Valor4953
	existente.Valor5458 = novosDados.Valor5458
	existente.Valor59Mais = novosDados.Valor59Mais

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&TabelaPreco{}, id).Error
}

func (r *repositoryImpl) ReferenciadaPorOrcamentos(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Table("orcamentos").Where("tabela_preco_id = ?", id).Count(&count).Error
	return count > 0, err
}
