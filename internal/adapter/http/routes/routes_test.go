package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitacora_materiales/internal/domain/entities"
	mock_interfaces "bitacora_materiales/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	bitacoras := mock_interfaces.NewMockIBitacoraRepository(ctrl)
	materiales := mock_interfaces.NewMockIMaterialRepository(ctrl)
	catalogo := mock_interfaces.NewMockICatalogRepository(ctrl)
	r := NewRouter(Repositories{Bitacoras: bitacoras, Materiales: materiales, Catalogo: catalogo})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("short search term never reaches the store", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/materiales/buscar?origen=claro&q=ca", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"items":[]`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list goes through the material store", func(t *testing.T) {
		materiales.EXPECT().ListByBitacoraID(gomock.Any(), "42").Return([]entities.MaterialEntry{{ID: "m-1", BitacoraID: "42"}}, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/materiales/listar/42", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"m-1"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestOpenRepositories_UnknownDriver(t *testing.T) {
	if _, err := OpenRepositories(context.Background(), "sqlite"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
