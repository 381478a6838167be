package cidade_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plansaude/api-corretora/internal/acomodacao"
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
	err = db.AutoMigrate(
		&cidade.Cidade{},
		&operadora.Operadora{},
		&modalidade.Modalidade{},
		&acomodacao.Acomodacao{},
		&tabelapreco.TabelaPreco{},
	)
	if err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func TestCidadeCRUD(t *testing.T) {
	db := novoBancoTeste(t)
	h := cidade.NewHandler(db)

	t.Run("criar exige nome e estado", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"estado": "SP"})
		w := httptest.NewRecorder()
		h.CriarCidade(w, httptest.NewRequest(http.MethodPost, "/cidades", bytes.NewReader(body)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, obtido %d", w.Code)
		}
	})

	t.Run("criar e buscar", func(t *testing.T) {
		valor := 45.0
		body, _ := json.Marshal(cidade.Cidade{
			Nome:              "Campinas",
			Estado:            "SP",
			CodigoIBGE:        "3509502",
			ConsultasEletivas: &valor,
		})
		w := httptest.NewRecorder()
		h.CriarCidade(w, httptest.NewRequest(http.MethodPost, "/cidades", bytes.NewReader(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("esperado 201, obtido %d: %s", w.Code, w.Body.String())
		}

		var criada cidade.Cidade
		if err := json.Unmarshal(w.Body.Bytes(), &criada); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}

		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodGet, "/cidades/1", nil),
			map[string]string{"id": fmt.Sprint(criada.ID)},
		)
		w = httptest.NewRecorder()
		h.BuscarPorID(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d", w.Code)
		}
		var lida cidade.Cidade
		json.Unmarshal(w.Body.Bytes(), &lida)
		if lida.Nome != "Campinas" || lida.ConsultasEletivas == nil || *lida.ConsultasEletivas != 45.0 {
			t.Fatalf("cidade lida diverge: %+v", lida)
		}
	})

	t.Run("buscar inexistente retorna 404", func(t *testing.T) {
		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodGet, "/cidades/999", nil),
			map[string]string{"id": "999"},
		)
		w := httptest.NewRecorder()
		h.BuscarPorID(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("esperado 404, obtido %d", w.Code)
		}
	})
}

func TestDeletarCidade(t *testing.T) {
	db := novoBancoTeste(t)
	h := cidade.NewHandler(db)

	livre := cidade.Cidade{Nome: "Sorocaba", Estado: "SP"}
	vinculada := cidade.Cidade{Nome: "Santos", Estado: "SP"}
	for _, c := range []*cidade.Cidade{&livre, &vinculada} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("erro ao criar cidade: %v", err)
		}
	}

	op := operadora.Operadora{NomeCompleto: "Operadora Teste"}
	mod := modalidade.Modalidade{Nome: "Adesão"}
	aco := acomodacao.Acomodacao{Nome: "Enfermaria"}
	db.Create(&op)
	db.Create(&mod)
	db.Create(&aco)
	tab := tabelapreco.TabelaPreco{
		CidadeID:           vinculada.ID,
		OperadoraID:        op.ID,
		ModalidadeID:       mod.ID,
		AcomodacaoID:       aco.ID,
		TipoCoparticipacao: tabelapreco.ComCoparticipacao,
		TipoDocumento:      tabelapreco.DocumentoCPF,
		ValidadeInicio:     "2026-01-01",
		ValidadeFim:        "2026-12-31",
	}
	if err := db.Create(&tab).Error; err != nil {
		t.Fatalf("erro ao criar tabela: %v", err)
	}

	deletar := func(id uint) *httptest.ResponseRecorder {
		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodDelete, "/cidades/x", nil),
			map[string]string{"id": fmt.Sprint(id)},
		)
		w := httptest.NewRecorder()
		h.DeletarCidade(w, req)
		return w
	}

	t.Run("cidade com tabelas vinculadas conflita", func(t *testing.T) {
		if w := deletar(vinculada.ID); w.Code != http.StatusConflict {
			t.Fatalf("esperado 409, obtido %d: %s", w.Code, w.Body.String())
		}
		var count int64
		db.Model(&cidade.Cidade{}).Count(&count)
		if count != 2 {
			t.Fatalf("cidade não deveria ter sido removida, restam %d", count)
		}
	})

	t.Run("cidade sem vínculos é removida", func(t *testing.T) {
		if w := deletar(livre.ID); w.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d: %s", w.Code, w.Body.String())
		}
		var count int64
		db.Model(&cidade.Cidade{}).Count(&count)
		if count != 1 {
			t.Fatalf("esperada 1 cidade restante, obtido %d", count)
		}
	})
}
