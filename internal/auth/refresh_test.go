package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("erro ao abrir sqlite: %v", err)
	}
	if err := db.AutoMigrate(&RefreshToken{}); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func cookieDoRecorder(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == RefreshCookie {
			return c
		}
	}
	t.Fatal("cookie de refresh ausente")
	return nil
}

func TestRefreshRotaciona(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := novoBancoTeste(t)

	// login grava o primeiro refresh
	wLogin := httptest.NewRecorder()
	if _, err := IssueTokensOnLogin(db, wLogin, 5, "usuario"); err != nil {
		t.Fatalf("erro no login: %v", err)
	}
	primeiro := cookieDoRecorder(t, wLogin)

	refresh := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		RefreshHTTPHandler(db).ServeHTTP(w, req)
		return w
	}

	t.Run("refresh válido emite novo par e revoga o anterior", func(t *testing.T) {
		w := refresh(primeiro)
		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, obtido %d: %s", w.Code, w.Body.String())
		}
		novo := cookieDoRecorder(t, w)
		if novo.Value == primeiro.Value {
			t.Fatal("refresh não rotacionou o token")
		}

		var revogados int64
		db.Model(&RefreshToken{}).Where("revoked_at IS NOT NULL").Count(&revogados)
		if revogados != 1 {
			t.Fatalf("esperado 1 token revogado, obtido %d", revogados)
		}
	})

	t.Run("reuso de refresh revogado falha", func(t *testing.T) {
		if w := refresh(primeiro); w.Code != http.StatusUnauthorized {
			t.Fatalf("esperado 401, obtido %d", w.Code)
		}
	})

	t.Run("sem cookie falha", func(t *testing.T) {
		if w := refresh(nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("esperado 401, obtido %d", w.Code)
		}
	})
}

func TestLogoutRevoga(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := novoBancoTeste(t)

	wLogin := httptest.NewRecorder()
	if _, err := IssueTokensOnLogin(db, wLogin, 9, "usuario"); err != nil {
		t.Fatalf("erro no login: %v", err)
	}
	cookie := cookieDoRecorder(t, wLogin)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	LogoutHTTPHandler(db).ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("esperado 204, obtido %d", w.Code)
	}

	var rt RefreshToken
	if err := db.First(&rt).Error; err != nil {
		t.Fatalf("refresh token não encontrado: %v", err)
	}
	if rt.RevokedAt == nil {
		t.Fatal("logout deveria revogar o refresh token")
	}

	// cookie limpo na resposta
	limpo := cookieDoRecorder(t, w)
	if limpo.Value != "" || limpo.MaxAge >= 0 {
		t.Fatalf("cookie deveria ser limpo: %+v", limpo)
	}
}
