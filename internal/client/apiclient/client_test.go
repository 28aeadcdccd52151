package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	request "bitacora_materiales/internal/adapter/http/dto/request"
	"bitacora_materiales/internal/client/apierr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func server(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", time.Second)
}

func TestSearchCatalog(t *testing.T) {
	t.Run("envelope", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/materiales/buscar", r.URL.Path)
			assert.Equal(t, "cicsa", r.URL.Query().Get("origen"))
			assert.Equal(t, "cable fo", r.URL.Query().Get("q"))
			_, _ = io.WriteString(w, `{"ok":true,"items":[{"codigo":"A1","descripcion":"CABLE FO","unidad":"M","costo":"14.55"}]}`)
		})
		items, err := c.SearchCatalog(context.Background(), "cicsa", "cable fo")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].Costo.Equal(decimal.RequireFromString("14.55")))
	})

	t.Run("bare array", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"codigo":"A1","descripcion":"CABLE"},{"codigo":"A2","descripcion":"CABLE 2"}]`)
		})
		items, err := c.SearchCatalog(context.Background(), "claro", "cable")
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.True(t, items[1].Costo.IsZero())
	})

	t.Run("invalid origin is a business error", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"ok":false,"code":"INVALID_ORIGIN","error":"Origen inválido"}`)
		})
		_, err := c.SearchCatalog(context.Background(), "x", "cable")
		b, ok := apierr.AsBusiness(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, "Origen inválido", b.Message)
		assert.Equal(t, http.StatusBadRequest, b.Status)
	})
}

func TestSaveMaterial(t *testing.T) {
	t.Run("payload and success", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "42", body["bitacora_id"])
			assert.Equal(t, "BR-07", body["brigada"])
			assert.Equal(t, "1.3", body["cantidad"])
			_, _ = io.WriteString(w, `{"ok":true,"item":{"id":"m-1","codigo":"A1","cantidad":"1.3","created_at":"2025-03-04 10:30"}}`)
		})
		m, err := c.SaveMaterial(context.Background(), request.SaveMaterialRequest{
			BitacoraID: "42", Brigada: "BR-07", Codigo: "A1", Cantidad: decimal.RequireFromString("1.3"),
		})
		require.NoError(t, err)
		assert.Equal(t, "m-1", m.ID)
		assert.Equal(t, "2025-03-04 10:30", m.CreatedAt)
	})

	t.Run("ok false with 200 is still a business error", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"ok":false,"error":"stock"}`)
		})
		_, err := c.SaveMaterial(context.Background(), request.SaveMaterialRequest{BitacoraID: "42", Codigo: "A1"})
		assert.Equal(t, "stock", apierr.UserMessage(err))
	})

	t.Run("html gateway error is transport", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, `<html>bad gateway</html>`)
		})
		_, err := c.SaveMaterial(context.Background(), request.SaveMaterialRequest{BitacoraID: "42", Codigo: "A1"})
		assert.True(t, apierr.IsTransport(err), "got %v", err)
	})

	t.Run("timeout is transport", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.SaveMaterial(ctx, request.SaveMaterialRequest{BitacoraID: "42", Codigo: "A1"})
		assert.True(t, apierr.IsTransport(err), "got %v", err)
		assert.Equal(t, apierr.TransportMessage, apierr.UserMessage(err))
	})
}

func TestSaveBatchListDelete(t *testing.T) {
	c := server(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/materiales/guardar-lote":
			var body request.SaveBatchRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "BR-07", body.Brigada)
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"ok":true,"items":[{"id":"m-1"},{"id":"m-2"}]}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/materiales/listar/42":
			_, _ = io.WriteString(w, `{"ok":true,"items":[]}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/materiales/borrar/m-1":
			_, _ = io.WriteString(w, `{"ok":true}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/bitacoras/42":
			_, _ = io.WriteString(w, `{"ok":true,"item":{"id":"42","titulo":"Poste 7","brigadas":["BR-07","BR-12"]}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"ok":false,"code":"NOT_FOUND","error":"Registro no encontrado"}`)
		}
	})
	ctx := context.Background()

	saved, err := c.SaveBatch(ctx, request.SaveBatchRequest{BitacoraID: "42", Brigada: "BR-07", Materiales: []request.BatchLineRequest{{Codigo: "A1"}, {Codigo: "B2"}}})
	require.NoError(t, err)
	assert.Len(t, saved, 2)

	items, err := c.ListMaterials(ctx, "42")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	require.NoError(t, c.DeleteMaterial(ctx, "m-1"))
	err = c.DeleteMaterial(ctx, "m-9")
	assert.Equal(t, "Registro no encontrado", apierr.UserMessage(err))

	b, err := c.GetBitacora(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"BR-07", "BR-12"}, b.Brigadas)
}

func TestImportCatalog(t *testing.T) {
	t.Run("uploads multipart", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "claro", r.URL.Query().Get("origen"))
			f, fh, err := r.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			assert.Equal(t, "catalogo.xlsx", fh.Filename)
			raw, _ := io.ReadAll(f)
			assert.Equal(t, "xlsx-bytes", string(raw))
			_, _ = io.WriteString(w, `{"ok":true,"report":{"read":3,"skipped":1,"written":2,"failed":0}}`)
		})
		rep, err := c.ImportCatalog(context.Background(), "claro", "catalogo.xlsx", strings.NewReader("xlsx-bytes"))
		require.NoError(t, err)
		assert.Equal(t, 2, rep.Written)
		assert.Equal(t, 1, rep.Skipped)
	})

	t.Run("partial import returns report and error", func(t *testing.T) {
		c := server(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusMultiStatus)
			_, _ = io.WriteString(w, `{"ok":false,"report":{"read":200,"written":100,"failed":100},"error":"Algunos lotes no se pudieron guardar"}`)
		})
		rep, err := c.ImportCatalog(context.Background(), "claro", "c.xlsx", strings.NewReader("x"))
		require.Error(t, err)
		assert.Equal(t, 100, rep.Failed)
		assert.Equal(t, "Algunos lotes no se pudieron guardar", apierr.UserMessage(err))
	})
}

func TestPing_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(url, time.Second).Ping(context.Background())
	assert.True(t, apierr.IsTransport(err))
}
