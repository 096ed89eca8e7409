package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lingo-gate/internal/registry"
	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopEngine struct{}

func (noopEngine) LoadModel(pairKey, config string) error          { return nil }
func (noopEngine) IsSupported(from, to string) bool                { return false }
func (noopEngine) Translate(from, to, text string) (string, error) { return text, nil }
func (noopEngine) Close() error                                    { return nil }

func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()
	reg, err := registry.New(noopEngine{}, types.EngineConfig{ModelsDir: t.TempDir()})
	require.NoError(t, err)
	return NewServer(db, reg)
}

func perform(t *testing.T, handler gin.HandlerFunc, method, target, body string, setup func(*gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if setup != nil {
		setup(c)
	}

	handler(c)
	return w
}

func TestHealth(t *testing.T) {
	t.Run("healthy without database", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := perform(t, s.Health, http.MethodGet, "/health", "", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp["status"])
		assert.NotEmpty(t, resp["timestamp"])
		assert.NotContains(t, resp, "database")
	})

	t.Run("reports uptime", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := perform(t, s.Health, http.MethodGet, "/health", "", func(c *gin.Context) {
			c.Set("serverStartTime", time.Now().Add(-5*time.Second))
		})

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["uptime"])
	})

	t.Run("reports database status", func(t *testing.T) {
		database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		s := newTestServer(t, database)

		w := perform(t, s.Health, http.MethodGet, "/health", "", nil)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp["status"])
		assert.Equal(t, "ok", resp["database"])
	})
}

func TestDetect(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("detects english", func(t *testing.T) {
		w := perform(t, s.Detect, http.MethodPost, "/detect",
			`{"text":"The quick brown fox jumps over the lazy dog"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"language":"en"}`, w.Body.String())
	})

	t.Run("detects chinese", func(t *testing.T) {
		w := perform(t, s.Detect, http.MethodPost, "/detect", `{"text":"今天天气很好，我们一起去公园散步吧"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"language":"zh"}`, w.Body.String())
	})

	t.Run("missing text rejected", func(t *testing.T) {
		w := perform(t, s.Detect, http.MethodPost, "/detect", `{}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_JSON")
	})
}

func TestLanguages(t *testing.T) {
	s := newTestServer(t, nil)

	w := perform(t, s.Languages, http.MethodGet, "/languages", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pairs":[],"languages":[]}`, w.Body.String())
}
