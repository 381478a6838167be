package cidade

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func validarCidade(c *Cidade) string {
	if strings.TrimSpace(c.Nome) == "" {
		return "O campo 'nome' é obrigatório"
	}
	if strings.TrimSpace(c.Estado) == "" {
		return "O campo 'estado' é obrigatório"
	}
	return ""
}

// CriarCidade trata POST /cidades
func (h *Handler) CriarCidade(w http.ResponseWriter, r *http.Request) {
	var c Cidade
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validarCidade(&c); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar cidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarCidades trata GET /cidades
func (h *Handler) ListarCidades(w http.ResponseWriter, r *http.Request) {
	cidades, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar cidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cidades)
}

// BuscarPorID trata GET /cidades/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "cidade não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarCidade trata PUT /cidades/{id}
func (h *Handler) AtualizarCidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Cidade
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validarCidade(&dados); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "cidade não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar cidade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cidade atualizada com sucesso"))
}

// DeletarCidade trata DELETE /cidades/{id}
func (h *Handler) DeletarCidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "cidade não encontrada", http.StatusNotFound)
		return
	}

	emUso, err := h.Repository.ReferenciadaPorTabelas(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao verificar vínculos da cidade", http.StatusInternalServerError)
		return
	}
	if emUso {
		http.Error(w, "cidade possui tabelas de preço vinculadas", http.StatusConflict)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir cidade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cidade excluída com sucesso"))
}
