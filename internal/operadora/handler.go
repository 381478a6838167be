package operadora

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

// CriarOperadora trata POST /operadoras
func (h *Handler) CriarOperadora(w http.ResponseWriter, r *http.Request) {
	var o Operadora
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(o.NomeCompleto) == "" {
		http.Error(w, "O campo 'nome_completo' é obrigatório", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorNome(h.DB, o.NomeCompleto); err == nil {
		http.Error(w, "operadora já cadastrada", http.StatusConflict)
		return
	}

	if err := h.Repository.Salvar(h.DB, &o); err != nil {
		http.Error(w, "erro ao salvar operadora", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// ListarOperadoras trata GET /operadoras
func (h *Handler) ListarOperadoras(w http.ResponseWriter, r *http.Request) {
	operadoras, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar operadoras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(operadoras)
}

// BuscarPorID trata GET /operadoras/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "operadora não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarOperadora trata PUT /operadoras/{id}
func (h *Handler) AtualizarOperadora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Operadora
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dados.NomeCompleto) == "" {
		http.Error(w, "O campo 'nome_completo' é obrigatório", http.StatusBadRequest)
		return
	}

	if existente, err := h.Repository.BuscarPorNome(h.DB, dados.NomeCompleto); err == nil && existente.ID != uint(id) {
		http.Error(w, "operadora já cadastrada", http.StatusConflict)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "operadora não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar operadora", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("operadora atualizada com sucesso"))
}

// DeletarOperadora trata DELETE /operadoras/{id}
func (h *Handler) DeletarOperadora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "operadora não encontrada", http.StatusNotFound)
		return
	}

	emUso, err := h.Repository.ReferenciadaPorTabelas(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao verificar vínculos da operadora", http.StatusInternalServerError)
		return
	}
	if emUso {
		http.Error(w, "operadora possui tabelas de preço vinculadas", http.StatusConflict)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir operadora", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("operadora excluída com sucesso"))
}
