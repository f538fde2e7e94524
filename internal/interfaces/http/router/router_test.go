package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propledger/backend/internal/interfaces/http/handler"
	"github.com/propledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	t.Run("defaults to v1", func(t *testing.T) {
		r := NewRouter(gin.New())
		assert.Equal(t, "v1", r.apiVersion)
	})

	t.Run("mounts groups under the version prefix", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine, WithAPIVersion("v2"))
		r.Register(NewDomainGroup("test", "/test").GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		}))
		r.Setup()

		w := serve(engine, http.MethodGet, "/api/v2/test/ping", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})
}

func TestDomainGroup(t *testing.T) {
	t.Run("applies group middleware and nests subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("parent", "/parent").Use(func(c *gin.Context) {
			c.Header("X-Group", "parent")
			c.Next()
		})
		g.Group("child", "/child").PATCH("/:id", func(c *gin.Context) {
			c.String(http.StatusOK, c.Param("id"))
		})
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodPatch, "/api/v1/parent/child/42", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "42", w.Body.String())
		assert.Equal(t, "parent", w.Header().Get("X-Group"))
	})

	t.Run("lists its routes", func(t *testing.T) {
		g := NewDomainGroup("items", "/items").
			GET("", func(*gin.Context) {}).
			PUT("/:id", func(*gin.Context) {})
		assert.Equal(t, []string{"GET ", "PUT /:id"}, g.Routes())
		assert.Equal(t, "items", g.Name())
		assert.Equal(t, "/items", g.Prefix())
	})
}

func ledgerHandlers() LedgerHandlers {
	return LedgerHandlers{
		Accounts:         &handler.AccountHandler{},
		Registry:         &handler.RegistryHandler{},
		Property:         &handler.PropertyHandler{},
		Billables:        &handler.BillableHandler{},
		CashTransactions: &handler.CashTransactionHandler{},
		Deposits:         &handler.DepositHandler{},
		Movements:        &handler.MovementHandler{},
		Journal:          &handler.JournalHandler{},
	}
}

func TestLedgerGroups(t *testing.T) {
	t.Run("covers every resource", func(t *testing.T) {
		prefixes := make([]string, 0)
		for _, g := range LedgerGroups(ledgerHandlers(), nil) {
			prefixes = append(prefixes, g.Prefix())
		}
		assert.ElementsMatch(t, []string{
			"/accounts", "/concepts", "/expense-types", "/instruments", "/units", "/contracts",
			"/billables", "/cash-transactions", "/deposits", "/transfers", "/expenses", "/journal-entries",
		}, prefixes)
	})

	t.Run("guards only money-moving POSTs with the idempotency middleware", func(t *testing.T) {
		engine := gin.New()
		guard := func(c *gin.Context) {
			c.AbortWithStatus(http.StatusTeapot)
		}
		NewRouter(engine).SetupLedger(ledgerHandlers(), guard)

		for _, path := range []string{"/cash-transactions", "/deposits", "/transfers", "/expenses"} {
			w := serve(engine, http.MethodPost, "/api/v1"+path, "{}")
			assert.Equal(t, http.StatusTeapot, w.Code, path)
		}

		// Unguarded routes reach the handler, which rejects the malformed body
		// before touching its service.
		for _, path := range []string{"/accounts", "/billables", "/billables/generate-global", "/billables/rollback-bulk"} {
			w := serve(engine, http.MethodPost, "/api/v1"+path, "{")
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
		}
	})

	t.Run("rejects malformed ids before reaching services", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine).SetupLedger(ledgerHandlers(), nil)

		for _, path := range []string{
			"/accounts/nope", "/billables/nope", "/cash-transactions/nope", "/deposits/nope", "/journal-entries/nope", "/units/nope",
		} {
			w := serve(engine, http.MethodGet, "/api/v1"+path, "")
			require.Equal(t, http.StatusBadRequest, w.Code, path)
			assert.Contains(t, w.Body.String(), "INVALID_ID", path)
		}
	})
}

func TestSetupDocs(t *testing.T) {
	t.Run("serves the generated document", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine).SetupDocs(middleware.SwaggerConfig{Enabled: true})

		w := serve(engine, http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusOK, w.Code)
		var doc struct {
			Info struct {
				Title string `json:"title"`
			} `json:"info"`
			BasePath string                    `json:"basePath"`
			Paths    map[string]map[string]any `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "PropLedger API", doc.Info.Title)
		assert.Equal(t, "/api/v1", doc.BasePath)
		assert.Contains(t, doc.Paths["/billables/rollback-bulk"], "post")
		assert.Contains(t, doc.Paths["/accounts/{id}/deactivate"], "patch")
	})

	t.Run("disabled docs are not found", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine).SetupDocs(middleware.SwaggerConfig{})

		w := serve(engine, http.MethodGet, "/swagger/index.html", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
