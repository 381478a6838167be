package tabelapreco

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func existeRegistro(db *gorm.DB, tabela string, id uint) bool {
	var count int64
	if err := db.Table(tabela).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func validarTabela(db *gorm.DB, t *TabelaPreco) string {
	if t.CidadeID == 0 || !existeRegistro(db, "cidades", t.CidadeID) {
		return "cidade informada não existe"
	}
	if t.OperadoraID == 0 || !existeRegistro(db, "operadoras", t.OperadoraID) {
		return "operadora informada não existe"
	}
	if t.AcomodacaoID == 0 || !existeRegistro(db, "acomodacoes", t.AcomodacaoID) {
		return "acomodação informada não existe"
	}
	if t.ModalidadeID == 0 || !existeRegistro(db, "modalidades", t.ModalidadeID) {
		return "modalidade informada não existe"
	}
	if t.TipoCoparticipacao != ComCoparticipacao && t.TipoCoparticipacao != CoparticipacaoParcial {
		return fmt.Sprintf("tipo_coparticipacao deve ser '%s' ou '%s'", ComCoparticipacao, CoparticipacaoParcial)
	}
	if t.TipoDocumento != DocumentoCPF && t.TipoDocumento != DocumentoCNPJ {
		return "tipo_documento deve ser 'CPF' ou 'CNPJ'"
	}
	inicio, err := time.Parse("2006-01-02", t.ValidadeInicio)
	if err != nil {
		return "validade_inicio inválida (use YYYY-MM-DD)"
	}
	fim, err := time.Parse("2006-01-02", t.ValidadeFim)
	if err != nil {
		return "validade_fim inválida (use YYYY-MM-DD)"
	}
	if fim.Before(inicio) {
		return "validade_fim anterior a validade_inicio"
	}
	return ""
}

// CriarTabela trata POST /precos
func (h *Handler) CriarTabela(w http.ResponseWriter, r *http.Request) {
	var t TabelaPreco
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validarTabela(h.DB, &t); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(h.DB, &t); err != nil {
		http.Error(w, "erro ao salvar tabela de preço", http.StatusInternalServerError)
		return
	}

	criada, err := h.Repository.BuscarPorID(h.DB, t.ID)
	if err != nil {
		http.Error(w, "erro ao carregar tabela de preço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(criada)
}

// ListarTabelas trata GET /precos?cidade_id=&tipo_documento=
func (h *Handler) ListarTabelas(w http.ResponseWriter, r *http.Request) {
	var cidadeID uint
	if s := r.URL.Query().Get("cidade_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			http.Error(w, "cidade_id inválido", http.StatusBadRequest)
			return
		}
		cidadeID = uint(id)
	}

	tipoDocumento := r.URL.Query().Get("tipo_documento")
	if tipoDocumento != "" && tipoDocumento != DocumentoCPF && tipoDocumento != DocumentoCNPJ {
		http.Error(w, "tipo_documento deve ser 'CPF' ou 'CNPJ'", http.StatusBadRequest)
		return
	}

	tabelas, err := h.Repository.ListarFiltrado(h.DB, cidadeID, tipoDocumento)
	if err != nil {
		http.Error(w, "erro ao listar tabelas de preço", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tabelas)
}

// BuscarPorID trata GET /precos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "tabela de preço não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarTabela trata PUT /precos/{id}
func (h *Handler) AtualizarTabela(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados TabelaPreco
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validarTabela(h.DB, &dados); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "tabela de preço não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar tabela de preço", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("tabela de preço atualizada com sucesso"))
}

// DeletarTabela trata DELETE /precos/{id}
func (h *Handler) DeletarTabela(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "tabela de preço não encontrada", http.StatusNotFound)
		return
	}

	emUso, err := h.Repository.ReferenciadaPorOrcamentos(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao verificar vínculos da tabela", http.StatusInternalServerError)
		return
	}
	if emUso {
		http.Error(w, "tabela possui orçamentos vinculados", http.StatusConflict)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir tabela de preço", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("tabela de preço excluída com sucesso"))
}
