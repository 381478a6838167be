package corretor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/plansaude/api-corretora/internal/auth"
	"github.com/plansaude/api-corretora/internal/utils"

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

// Login valida CPF e senha e emite access token + refresh token rotativo
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	cpf := utils.NormalizarDocumento(req.CPF)
	if cpf == "" || req.Senha == "" {
		http.Error(w, "CPF e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorCPF(h.DB, cpf)
	if err != nil {
		http.Error(w, "CPF ou senha inválidos", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Senha) {
		http.Error(w, "CPF ou senha inválidos", http.StatusUnauthorized)
		return
	}

	token, err := auth.IssueTokensOnLogin(h.DB, w, user.ID, user.TipoUsuario)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		Success:  true,
		Token:    token,
		Corretor: montarResumo(user),
	})
}

// CriarCorretor cadastra novo corretor (livre de autenticação)
func (h *Handler) CriarCorretor(w http.ResponseWriter, r *http.Request) {
	var req criarCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	req.CPF = utils.NormalizarDocumento(req.CPF)
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Telefone) == "" || req.CPF == "" || req.Senha == "" {
		http.Error(w, "nome, email, telefone, cpf e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	if req.TipoUsuario == "" {
		req.TipoUsuario = TipoUsuarioPadrao
	}
	if !TipoUsuarioValido(req.TipoUsuario) {
		http.Error(w, "tipo_usuario inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorCPF(h.DB, req.CPF); err == nil {
		http.Error(w, "CPF já cadastrado", http.StatusConflict)
		return
	}
	if _, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil {
		http.Error(w, "E-mail já cadastrado", http.StatusConflict)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	dataCadastro := req.DataCadastro
	if dataCadastro == "" {
		dataCadastro = time.Now().Format("2006-01-02")
	}

	c := Corretor{
		Nome:         req.Nome,
		Email:        req.Email,
		Telefone:     req.Telefone,
		CPF:          req.CPF,
		Senha:        hash,
		DataCadastro: dataCadastro,
		TipoUsuario:  req.TipoUsuario,
	}
	if req.DataDesligamento != "" {
		c.DataDesligamento = &req.DataDesligamento
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar corretor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarCorretores retorna todos ou apenas o próprio registro
func (h *Handler) ListarCorretores(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	if isAdmin {
		corretores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar corretores", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(corretores)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode([]Corretor{*obj})
}

// BuscarPorID retorna um corretor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarCorretor altera dados de um corretor existente
func (h *Handler) AtualizarCorretor(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req criarCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	req.CPF = utils.NormalizarDocumento(req.CPF)
	if req.TipoUsuario != "" && !TipoUsuarioValido(req.TipoUsuario) {
		http.Error(w, "tipo_usuario inválido", http.StatusBadRequest)
		return
	}

	if existente, err := h.Repository.BuscarPorCPF(h.DB, req.CPF); err == nil && existente.ID != uint(id) {
		http.Error(w, "CPF já cadastrado", http.StatusConflict)
		return
	}
	if existente, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil && existente.ID != uint(id) {
		http.Error(w, "E-mail já cadastrado", http.StatusConflict)
		return
	}

	dados := Corretor{
		Nome:         req.Nome,
		Email:        req.Email,
		Telefone:     req.Telefone,
		CPF:          req.CPF,
		DataCadastro: req.DataCadastro,
		TipoUsuario:  req.TipoUsuario,
	}
	if req.DataDesligamento != "" {
		dados.DataDesligamento = &req.DataDesligamento
	}
	if req.Senha != "" {
		hash, err := utils.HashSenha(req.Senha)
		if err != nil {
			http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
			return
		}
		dados.Senha = hash
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar corretor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("corretor atualizado com sucesso"))
}

// DeletarCorretor remove um corretor
func (h *Handler) DeletarCorretor(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxCorretorID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir corretor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("corretor excluído com sucesso"))
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxCorretorID).(uint)

	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}
