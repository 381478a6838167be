package orcamento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plansaude/api-corretora/internal/acomodacao"
	"github.com/plansaude/api-corretora/internal/auth"
	"github.com/plansaude/api-corretora/internal/cidade"
	"github.com/plansaude/api-corretora/internal/modalidade"
	"github.com/plansaude/api-corretora/internal/operadora"
	"github.com/plansaude/api-corretora/internal/tabelapreco"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("erro ao abrir sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&cidade.Cidade{},
		&operadora.Operadora{},
		&modalidade.Modalidade{},
		&acomodacao.Acomodacao{},
		&tabelapreco.TabelaPreco{},
		&Orcamento{},
	); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func seedTabela(t *testing.T, db *gorm.DB) *tabelapreco.TabelaPreco {
	t.Helper()
	c := cidade.Cidade{Nome: "Campinas", Estado: "SP"}
	o := operadora.Operadora{NomeCompleto: "Operadora Teste"}
	m := modalidade.Modalidade{Nome: "Saúde"}
	a := acomodacao.Acomodacao{Nome: "Enfermaria"}
	for _, obj := range []interface{}{&c, &o, &m, &a} {
		if err := db.Create(obj).Error; err != nil {
			t.Fatalf("erro ao criar registro base: %v", err)
		}
	}

	v100 := 100.0
	v150 := 150.0
	v300 := 300.0
	tab := tabelapreco.TabelaPreco{
		CidadeID:           c.ID,
		OperadoraID:        o.ID,
		AcomodacaoID:       a.ID,
		ModalidadeID:       m.ID,
		TipoCoparticipacao: tabelapreco.ComCoparticipacao,
		TipoDocumento:      tabelapreco.DocumentoCPF,
		ValidadeInicio:     "2026-01-01",
		ValidadeFim:        "2026-12-31",
		Valor0018:          &v100,
		Valor1923:          &v150,
		Valor59Mais:        &v300,
	}
	if err := db.Create(&tab).Error; err != nil {
		t.Fatalf("erro ao criar tabela de preço: %v", err)
	}
	return &tab
}

func comAuth(r *http.Request, corretorID uint, isAdmin bool) *http.Request {
	ctx := context.WithValue(r.Context(), auth.CtxCorretorID, corretorID)
	ctx = context.WithValue(ctx, auth.CtxTipoUsuario, "usuario")
	ctx = context.WithValue(ctx, auth.CtxIsAdmin, isAdmin)
	return r.WithContext(ctx)
}

func criarOrcamentoHTTP(t *testing.T, h *Handler, corretorID uint, payload CriarOrcamentoRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/orcamentos", bytes.NewReader(body))
	req = comAuth(req, corretorID, false)
	rr := httptest.NewRecorder()
	h.CriarOrcamento(rr, req)
	return rr
}

func TestCriarOrcamento(t *testing.T) {
	t.Run("sucesso calcula e persiste", func(t *testing.T) {
		db := novoBancoTeste(t)
		tab := seedTabela(t, db)
		h := NewHandler(db)

		rr := criarOrcamentoHTTP(t, h, 7, CriarOrcamentoRequest{
			TabelaPrecoID: tab.ID,
			Nome:          "Maria",
			Telefone:      "19999990000",
			TipoDocumento: "CPF",
			Idades:        []int{10, 20, 60},
		})
		if rr.Code != http.StatusCreated {
			t.Fatalf("esperado 201, obtido %d: %s", rr.Code, rr.Body.String())
		}

		var resp CriarOrcamentoResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if resp.ValorTotal != 550 {
			t.Fatalf("esperado valor_total 550, obtido %v", resp.ValorTotal)
		}

		var salvo Orcamento
		if err := db.First(&salvo, resp.ID).Error; err != nil {
			t.Fatalf("orçamento não persistido: %v", err)
		}
		if salvo.Estagio != EstagioLeads {
			t.Fatalf("estágio inicial esperado %q, obtido %q", EstagioLeads, salvo.Estagio)
		}
		if len(salvo.Observacoes) != 0 {
			t.Fatalf("histórico deveria iniciar vazio, obtido %v", salvo.Observacoes)
		}
		if salvo.CorretorID != 7 {
			t.Fatalf("dono esperado 7, obtido %d", salvo.CorretorID)
		}
	})

	t.Run("lista de idades vazia falha sem persistir", func(t *testing.T) {
		db := novoBancoTeste(t)
		tab := seedTabela(t, db)
		h := NewHandler(db)

		rr := criarOrcamentoHTTP(t, h, 7, CriarOrcamentoRequest{
			TabelaPrecoID: tab.ID,
			Nome:          "Maria",
			Telefone:      "19999990000",
			TipoDocumento: "CPF",
		})
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, obtido %d", rr.Code)
		}

		var count int64
		db.Model(&Orcamento{}).Count(&count)
		if count != 0 {
			t.Fatalf("nenhum orçamento deveria existir, obtido %d", count)
		}
	})

	t.Run("idade não positiva falha", func(t *testing.T) {
		db := novoBancoTeste(t)
		tab := seedTabela(t, db)
		h := NewHandler(db)

		rr := criarOrcamentoHTTP(t, h, 7, CriarOrcamentoRequest{
			TabelaPrecoID: tab.ID,
			Nome:          "Maria",
			Telefone:      "19999990000",
			TipoDocumento: "CPF",
			Idades:        []int{10, 0},
		})
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, obtido %d", rr.Code)
		}
	})

	t.Run("tabela inexistente falha sem persistir", func(t *testing.T) {
		db := novoBancoTeste(t)
		seedTabela(t, db)
		h := NewHandler(db)

		rr := criarOrcamentoHTTP(t, h, 7, CriarOrcamentoRequest{
			TabelaPrecoID: 9999,
			Nome:          "Maria",
			Telefone:      "19999990000",
			TipoDocumento: "CPF",
			Idades:        []int{30},
		})
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, obtido %d", rr.Code)
		}

		var count int64
		db.Model(&Orcamento{}).Count(&count)
		if count != 0 {
			t.Fatalf("nenhum orçamento deveria existir, obtido %d", count)
		}
	})

	t.Run("campos obrigatórios em branco falham", func(t *testing.T) {
		db := novoBancoTeste(t)
		tab := seedTabela(t, db)
		h := NewHandler(db)

		rr := criarOrcamentoHTTP(t, h, 7, CriarOrcamentoRequest{
			TabelaPrecoID: tab.ID,
			Nome:          "   ",
			Telefone:      "19999990000",
			TipoDocumento: "CPF",
			Idades:        []int{30},
		})
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, obtido %d", rr.Code)
		}
	})
}

func TestListarOrcamentos(t *testing.T) {
	db := novoBancoTeste(t)
	tab := seedTabela(t, db)
	h := NewHandler(db)

	for _, dono := range []uint{1, 1, 2} {
		rr := criarOrcamentoHTTP(t, h, dono, CriarOrcamentoRequest{
			TabelaPrecoID: tab.ID,
			Nome:          "Cliente",
			Telefone:      "11999990000",
			TipoDocumento: "CPF",
			Idades:        []int{30},
		})
		if rr.Code != http.StatusCreated {
			t.Fatalf("seed falhou: %d", rr.Code)
		}
	}

	listar := func(corretorID uint, isAdmin bool) []Orcamento {
		req := httptest.NewRequest(http.MethodGet, "/orcamentos", nil)
		req = comAuth(req, corretorID, isAdmin)
		rr := httptest.NewRecorder()
		h.ListarOrcamentos(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d", rr.Code)
		}
		var list []Orcamento
		if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		return list
	}

	t.Run("não-admin vê apenas os próprios", func(t *testing.T) {
		list := listar(1, false)
		if len(list) != 2 {
			t.Fatalf("esperado 2 orçamentos, obtido %d", len(list))
		}
		for _, o := range list {
			if o.CorretorID != 1 {
				t.Fatalf("orçamento de outro corretor na listagem: %d", o.CorretorID)
			}
		}
	})

	t.Run("admin vê todos", func(t *testing.T) {
		list := listar(99, true)
		if len(list) != 3 {
			t.Fatalf("esperado 3 orçamentos, obtido %d", len(list))
		}
	})
}

func TestAtualizarEstagio(t *testing.T) {
	db := novoBancoTeste(t)
	tab := seedTabela(t, db)
	h := NewHandler(db)

	rr := criarOrcamentoHTTP(t, h, 1, CriarOrcamentoRequest{
		TabelaPrecoID: tab.ID,
		Nome:          "Cliente",
		Telefone:      "11999990000",
		TipoDocumento: "CPF",
		Idades:        []int{30},
	})
	var criado CriarOrcamentoResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &criado); err != nil {
		t.Fatalf("seed falhou: %v", err)
	}

	atualizar := func(corretorID uint, isAdmin bool, payload AtualizarEstagioRequest) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut, "/orcamentos/1/estagio", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(criado.ID)})
		req = comAuth(req, corretorID, isAdmin)
		w := httptest.NewRecorder()
		h.AtualizarEstagio(w, req)
		return w
	}

	t.Run("qualquer transição entre estágios válidos", func(t *testing.T) {
		// inclusive sair de um estágio final
		sequencia := []string{EstagioPerdido, EstagioNegociacao, EstagioCadastrado, EstagioFila}
		for _, e := range sequencia {
			w := atualizar(1, false, AtualizarEstagioRequest{Estagio: e})
			if w.Code != http.StatusOK {
				t.Fatalf("transição para %q: esperado 200, obtido %d", e, w.Code)
			}
		}

		var salvo Orcamento
		if err := db.First(&salvo, criado.ID).Error; err != nil {
			t.Fatalf("erro ao carregar orçamento: %v", err)
		}
		if salvo.Estagio != EstagioFila {
			t.Fatalf("estágio final esperado %q, obtido %q", EstagioFila, salvo.Estagio)
		}
	})

	t.Run("estágio desconhecido rejeitado", func(t *testing.T) {
		w := atualizar(1, false, AtualizarEstagioRequest{Estagio: "arquivado"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, obtido %d", w.Code)
		}
	})

	t.Run("observação é anexada ao histórico", func(t *testing.T) {
		w := atualizar(1, false, AtualizarEstagioRequest{
			Estagio:    EstagioNegociacao,
			Observacao: &NovaObservacao{Texto: "cliente pediu retorno"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d", w.Code)
		}

		w = atualizar(1, false, AtualizarEstagioRequest{
			Estagio:    EstagioNegociacao,
			Observacao: &NovaObservacao{Texto: "segunda ligação", Data: "01/08/2026 10:00"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d", w.Code)
		}

		var salvo Orcamento
		if err := db.First(&salvo, criado.ID).Error; err != nil {
			t.Fatalf("erro ao carregar orçamento: %v", err)
		}
		if len(salvo.Observacoes) != 2 {
			t.Fatalf("esperado histórico com 2 entradas, obtido %d", len(salvo.Observacoes))
		}
		if salvo.Observacoes[0].Texto != "cliente pediu retorno" {
			t.Fatalf("histórico fora de ordem: %+v", salvo.Observacoes)
		}
		if salvo.Observacoes[0].Data == "" {
			t.Fatal("observação sem data atribuída pelo servidor")
		}
		if salvo.Observacoes[1].Data != "01/08/2026 10:00" {
			t.Fatalf("data informada pelo cliente não preservada: %q", salvo.Observacoes[1].Data)
		}
	})

	t.Run("outro corretor não altera", func(t *testing.T) {
		w := atualizar(2, false, AtualizarEstagioRequest{Estagio: EstagioFila})
		if w.Code != http.StatusForbidden {
			t.Fatalf("esperado 403, obtido %d", w.Code)
		}
	})

	t.Run("orçamento inexistente retorna 404", func(t *testing.T) {
		body, _ := json.Marshal(AtualizarEstagioRequest{Estagio: EstagioFila})
		req := httptest.NewRequest(http.MethodPut, "/orcamentos/9999/estagio", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "9999"})
		req = comAuth(req, 1, false)
		w := httptest.NewRecorder()
		h.AtualizarEstagio(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("esperado 404, obtido %d", w.Code)
		}
	})
}

func TestDeletarOrcamento(t *testing.T) {
	db := novoBancoTeste(t)
	tab := seedTabela(t, db)
	h := NewHandler(db)

	rr := criarOrcamentoHTTP(t, h, 1, CriarOrcamentoRequest{
		TabelaPrecoID: tab.ID,
		Nome:          "Cliente",
		Telefone:      "11999990000",
		TipoDocumento: "CPF",
		Idades:        []int{30},
	})
	var criado CriarOrcamentoResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &criado); err != nil {
		t.Fatalf("seed falhou: %v", err)
	}

	deletar := func(id string, corretorID uint) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/orcamentos/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		req = comAuth(req, corretorID, false)
		w := httptest.NewRecorder()
		h.DeletarOrcamento(w, req)
		return w
	}

	t.Run("outro corretor não exclui", func(t *testing.T) {
		if w := deletar(fmt.Sprint(criado.ID), 2); w.Code != http.StatusForbidden {
			t.Fatalf("esperado 403, obtido %d", w.Code)
		}
	})

	t.Run("dono exclui", func(t *testing.T) {
		if w := deletar(fmt.Sprint(criado.ID), 1); w.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d", w.Code)
		}
		var count int64
		db.Model(&Orcamento{}).Count(&count)
		if count != 0 {
			t.Fatalf("orçamento deveria ter sido removido, obtido %d", count)
		}
	})

	t.Run("id inexistente retorna 404", func(t *testing.T) {
		if w := deletar("9999", 1); w.Code != http.StatusNotFound {
			t.Fatalf("esperado 404, obtido %d", w.Code)
		}
	})
}
