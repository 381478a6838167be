package modalidade

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

// CriarModalidade trata POST /modalidades
func (h *Handler) CriarModalidade(w http.ResponseWriter, r *http.Request) {
	var m Modalidade
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(m.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorNome(h.DB, m.Nome); err == nil {
		http.Error(w, "modalidade já cadastrada", http.StatusConflict)
		return
	}

	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		http.Error(w, "erro ao salvar modalidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// ListarModalidades trata GET /modalidades
func (h *Handler) ListarModalidades(w http.ResponseWriter, r *http.Request) {
	modalidades, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar modalidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(modalidades)
}

// BuscarPorID trata GET /modalidades/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "modalidade não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarModalidade trata PUT /modalidades/{id}
func (h *Handler) AtualizarModalidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Modalidade
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dados.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if existente, err := h.Repository.BuscarPorNome(h.DB, dados.Nome); err == nil && existente.ID != uint(id) {
		http.Error(w, "modalidade já cadastrada", http.StatusConflict)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "modalidade não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar modalidade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("modalidade atualizada com sucesso"))
}

// DeletarModalidade trata DELETE /modalidades/{id}
func (h *Handler) DeletarModalidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "modalidade não encontrada", http.StatusNotFound)
		return
	}

	emUso, err := h.Repository.ReferenciadaPorTabelas(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao verificar vínculos da modalidade", http.StatusInternalServerError)
		return
	}
	if emUso {
		http.Error(w, "modalidade possui tabelas de preço vinculadas", http.StatusConflict)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir modalidade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("modalidade excluída com sucesso"))
}
