package orcamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/plansaude/api-corretora/internal/auth"
	"github.com/plansaude/api-corretora/internal/notificacao"
	"github.com/plansaude/api-corretora/internal/tabelapreco"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Tabelas    tabelapreco.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Tabelas:    tabelapreco.NewRepository(),
	}
}

func validarCriacao(req *CriarOrcamentoRequest) string {
	if req.TabelaPrecoID == 0 {
		return "O campo 'tabela_preco_id' é obrigatório"
	}
	if strings.TrimSpace(req.Nome) == "" {
		return "O campo 'nome' é obrigatório"
	}
	if strings.TrimSpace(req.Telefone) == "" {
		return "O campo 'telefone' é obrigatório"
	}
	if req.TipoDocumento != tabelapreco.DocumentoCPF && req.TipoDocumento != tabelapreco.DocumentoCNPJ {
		return "tipo_documento deve ser 'CPF' ou 'CNPJ'"
	}
	if len(req.Idades) == 0 {
		return "Informe pelo menos uma idade"
	}
	for _, idade := range req.Idades {
		if idade <= 0 {
			return "idades devem ser inteiros positivos"
		}
	}
	return ""
}

// CriarOrcamento trata POST /orcamentos. Resolve a tabela, calcula o total e
// grava o orçamento numa única transação.
func (h *Handler) CriarOrcamento(w http.ResponseWriter, r *http.Request) {
	corretorID := r.Context().Value(auth.CtxCorretorID).(uint)

	var req CriarOrcamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validarCriacao(&req); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var criado Orcamento
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		tabela, err := h.Tabelas.BuscarPorID(tx, req.TabelaPrecoID)
		if err != nil {
			return err
		}

		criado = Orcamento{
			TabelaPrecoID: tabela.ID,
			Nome:          req.Nome,
			Telefone:      req.Telefone,
			TipoDocumento: req.TipoDocumento,
			Idades:        req.Idades,
			ValorTotal:    CalcularTotal(tabela, req.Idades),
			DataOrcamento: time.Now().Format("2006-01-02"),
			CorretorID:    corretorID,
			Estagio:       EstagioLeads,
			Observacoes:   []Observacao{},
		}
		return h.Repository.Salvar(tx, &criado)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "tabela de preço informada não existe", http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao salvar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CriarOrcamentoResponse{ID: criado.ID, ValorTotal: criado.ValorTotal})
}

// ListarOrcamentos trata GET /orcamentos. Papéis administrativos veem todos;
// os demais, apenas os próprios.
func (h *Handler) ListarOrcamentos(w http.ResponseWriter, r *http.Request) {
	corretorID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	var (
		orcamentos []Orcamento
		err        error
	)
	if isAdmin {
		orcamentos, err = h.Repository.ListarTodos(h.DB)
	} else {
		orcamentos, err = h.Repository.ListarPorCorretor(h.DB, corretorID)
	}
	if err != nil {
		http.Error(w, "erro ao listar orçamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orcamentos)
}

// BuscarPorID trata GET /orcamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	corretorID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "orçamento não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && obj.CorretorID != corretorID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarEstagio trata PUT /orcamentos/{id}/estagio. Aceita qualquer um dos
// cinco estágios independente do atual e pode anexar uma observação ao
// histórico.
func (h *Handler) AtualizarEstagio(w http.ResponseWriter, r *http.Request) {
	corretorID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req AtualizarEstagioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !EstagioValido(req.Estagio) {
		http.Error(w, "estágio inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "orçamento não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && obj.CorretorID != corretorID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	estagioAnterior := obj.Estagio
	obj.Estagio = req.Estagio
	if req.Observacao != nil && strings.TrimSpace(req.Observacao.Texto) != "" {
		data := req.Observacao.Data
		if data == "" {
			data = time.Now().Format("02/01/2006 15:04")
		}
		obj.Observacoes = append(obj.Observacoes, Observacao{
			Texto: req.Observacao.Texto,
			Data:  data,
		})
	}

	if err := h.Repository.Atualizar(h.DB, obj); err != nil {
		http.Error(w, "erro ao atualizar orçamento", http.StatusInternalServerError)
		return
	}

	if obj.Estagio == EstagioCadastrado && estagioAnterior != EstagioCadastrado {
		go notificacao.EnviarAlertaCadastro(obj.ID, obj.Nome, obj.ValorTotal)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// DeletarOrcamento trata DELETE /orcamentos/{id}
func (h *Handler) DeletarOrcamento(w http.ResponseWriter, r *http.Request) {
	corretorID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "orçamento não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && obj.CorretorID != corretorID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir orçamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("orçamento excluído com sucesso"))
}
