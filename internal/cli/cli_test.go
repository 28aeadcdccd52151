package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"bitacora_materiales/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiStub struct {
	mu   sync.Mutex
	hits []string
}

func (s *apiStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits = append(s.hits, r.Method+" "+r.URL.Path)
		s.mu.Unlock()

		switch {
		case r.URL.Path == "/api/materiales/buscar":
			_, _ = io.WriteString(w, `{"ok":true,"items":[{"codigo":"A1","descripcion":"CABLE FO","unidad":"M","costo":"14.55"}]}`)
		case r.URL.Path == "/api/bitacoras/42":
			_, _ = io.WriteString(w, `{"ok":true,"item":{"id":"42","titulo":"Poste 7","brigadas":["BR-07"]}}`)
		case r.URL.Path == "/api/materiales/listar/42":
			_, _ = io.WriteString(w, `{"ok":true,"items":[{"id":"m-1","codigo":"A1","descripcion":"CABLE FO","cantidad":"1.5","unidad":"M","brigada":"BR-07","created_at":"2025-03-04 10:30"}]}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/materiales/borrar/m-1":
			_, _ = io.WriteString(w, `{"ok":true}`)
		case r.URL.Path == "/api/catalogo/importar":
			assert.Equal(t, "cicsa", r.URL.Query().Get("origen"))
			_, _ = io.WriteString(w, `{"ok":true,"report":{"read":3,"skipped":1,"written":2,"failed":0}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"ok":false,"code":"MATERIAL_NOT_FOUND","error":"Registro no encontrado"}`)
		}
	}
}

func (s *apiStub) count(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.hits {
		if strings.HasPrefix(h, prefix) {
			n++
		}
	}
	return n
}

type result struct {
	out string
	err string
	e   error
}

func execute(t *testing.T, stdin string, args ...string) (result, *apiStub) {
	t.Helper()
	stub := &apiStub{}
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--api-url", srv.URL, "--log-file", filepath.Join(t.TempDir(), "cli.log")}, args...))
	e := cmd.Execute()
	return result{out: out.String(), err: errOut.String(), e: e}, stub
}

func TestSearchCmd(t *testing.T) {
	t.Run("prints a table", func(t *testing.T) {
		res, stub := execute(t, "", "search", "cable", "fo")
		require.NoError(t, res.e)
		assert.Contains(t, res.out, "A1")
		assert.Contains(t, res.out, "CABLE FO")
		assert.Contains(t, res.out, "14.55")
		assert.Equal(t, 1, stub.count("GET /api/materiales/buscar"))
	})

	t.Run("short terms never reach the API", func(t *testing.T) {
		res, stub := execute(t, "", "search", "ca")
		require.NoError(t, res.e)
		assert.Contains(t, res.out, "Sin resultados")
		assert.Zero(t, stub.count("GET"))
	})

	t.Run("json output", func(t *testing.T) {
		res, _ := execute(t, "", "search", "cable", "--json")
		require.NoError(t, res.e)
		assert.Contains(t, res.out, `"codigo": "A1"`)
	})
}

func TestListCmd(t *testing.T) {
	t.Run("logbook and entries", func(t *testing.T) {
		res, stub := execute(t, "", "list", "--bitacora", "42")
		require.NoError(t, res.e)
		assert.Contains(t, res.out, "Poste 7")
		assert.Contains(t, res.out, "BR-07")
		assert.Contains(t, res.out, "2025-03-04 10:30")
		assert.Equal(t, 1, stub.count("GET /api/bitacoras/42"))
		assert.Equal(t, 1, stub.count("GET /api/materiales/listar/42"))
	})

	t.Run("requires a logbook", func(t *testing.T) {
		res, _ := execute(t, "", "list")
		assert.ErrorIs(t, res.e, errMissingBitacora)
	})
}

func TestDeleteCmd(t *testing.T) {
	t.Run("declined prompt sends nothing", func(t *testing.T) {
		res, stub := execute(t, "n\n", "delete", "m-1", "--bitacora", "42")
		require.NoError(t, res.e)
		assert.Contains(t, res.out, "Cancelado")
		assert.Zero(t, stub.count("DELETE"))
	})

	t.Run("confirmed prompt deletes and re-lists", func(t *testing.T) {
		res, stub := execute(t, "s\n", "delete", "m-1", "--bitacora", "42")
		require.NoError(t, res.e)
		assert.Contains(t, res.out, "Material eliminado")
		assert.Equal(t, 1, stub.count("DELETE /api/materiales/borrar/m-1"))
		assert.Equal(t, 1, stub.count("GET /api/materiales/listar/42"))
	})

	t.Run("server message is shown", func(t *testing.T) {
		res, _ := execute(t, "", "delete", "m-9", "--yes")
		require.Error(t, res.e)
		assert.Equal(t, "Registro no encontrado", res.e.Error())
		assert.Contains(t, res.err, "Error: Registro no encontrado")
	})
}

func TestImportCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogo.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("xlsx"), 0o600))

	res, stub := execute(t, "", "import", "--file", path, "--origen", "cicsa")
	require.NoError(t, res.e)
	assert.Contains(t, res.out, "Guardadas: 2")
	assert.Equal(t, 1, stub.count("POST /api/catalogo/importar"))
}

func TestInvalidConfig(t *testing.T) {
	res, _ := execute(t, "", "list", "--bitacora", "42", "--mode", "wizard")
	assert.ErrorIs(t, res.e, config.ErrInvalidMode)
}
