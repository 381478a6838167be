package acomodacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// CriarAcomodacao trata POST /acomodacoes
func (h *Handler) CriarAcomodacao(w http.ResponseWriter, r *http.Request) {
	var a Acomodacao
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(a.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorNome(h.DB, a.Nome); err == nil {
		http.Error(w, "acomodação já cadastrada", http.StatusConflict)
		return
	}

	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar acomodação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListarAcomodacoes trata GET /acomodacoes
func (h *Handler) ListarAcomodacoes(w http.ResponseWriter, r *http.Request) {
	acomodacoes, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar acomodações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(acomodacoes)
}

// BuscarPorID trata GET /acomodacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "acomodação não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarAcomodacao trata PUT /acomodacoes/{id}
func (h *Handler) AtualizarAcomodacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Acomodacao
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dados.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if existente, err := h.Repository.BuscarPorNome(h.DB, dados.Nome); err == nil && existente.ID != uint(id) {
		http.Error(w, "acomodação já cadastrada", http.StatusConflict)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "acomodação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar acomodação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("acomodação atualizada com sucesso"))
}

// DeletarAcomodacao trata DELETE /acomodacoes/{id}
func (h *Handler) DeletarAcomodacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "acomodação não encontrada", http.StatusNotFound)
		return
	}

	emUso, err := h.Repository.ReferenciadaPorTabelas(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao verificar vínculos da acomodação", http.StatusInternalServerError)
		return
	}
	if emUso {
		http.Error(w, "acomodação possui tabelas de preço vinculadas", http.StatusConflict)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir acomodação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("acomodação excluída com sucesso"))
}
