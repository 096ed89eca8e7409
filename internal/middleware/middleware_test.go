package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(types.AuthConfig{Key: key}))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/translate", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestAuth(t *testing.T) {
	t.Run("open mode allows everything", func(t *testing.T) {
		r := newAuthRouter("")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/translate", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		r := newAuthRouter("secret")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/translate", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("bearer header accepted", func(t *testing.T) {
		r := newAuthRouter("secret")

		req := httptest.NewRequest(http.MethodPost, "/translate", nil)
		req.Header.Set("Authorization", "Bearer secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("query key accepted", func(t *testing.T) {
		r := newAuthRouter("secret")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/translate?key=secret", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		r := newAuthRouter("secret")

		req := httptest.NewRequest(http.MethodPost, "/translate", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("health exempt from auth", func(t *testing.T) {
		r := newAuthRouter("secret")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non bearer header ignored", func(t *testing.T) {
		r := newAuthRouter("secret")

		req := httptest.NewRequest(http.MethodPost, "/translate", nil)
		req.Header.Set("Authorization", "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestExtractAuthKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query wins over header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?key=from-query", nil)
		c.Request.Header.Set("Authorization", "Bearer from-header")

		assert.Equal(t, "from-query", extractAuthKey(c))
	})

	t.Run("empty without credentials", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Equal(t, "", extractAuthKey(c))
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg types.CORSConfig) *gin.Engine {
		r := gin.New()
		r.Use(CORS(cfg))
		r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		return r
	}

	t.Run("wildcard origin", func(t *testing.T) {
		r := newRouter(types.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type"},
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short circuit", func(t *testing.T) {
		r := newRouter(types.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
		})

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		r := newRouter(types.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"https://allowed.example.com"},
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://other.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled passes through", func(t *testing.T) {
		r := newRouter(types.CORSConfig{Enabled: false})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestIsMonitoringEndpoint(t *testing.T) {
	assert.True(t, isMonitoringEndpoint("/health"))
	assert.False(t, isMonitoringEndpoint("/translate"))
	assert.False(t, isMonitoringEndpoint("/healthz"))
}
