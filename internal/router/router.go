// Package router assembles the gin engine and route table.
package router

import (
	"time"

	"lingo-gate/internal/adapter"
	"lingo-gate/internal/handler"
	"lingo-gate/internal/middleware"
	"lingo-gate/internal/services"
	"lingo-gate/internal/translate"
	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP engine. Every adapter route and the detect
// endpoint sit behind the access guard; /health does not.
func NewRouter(
	serverHandler *handler.Server,
	translateService *translate.Service,
	configManager types.ConfigManager,
	requestLogService *services.RequestLogService,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	router.GET("/health", serverHandler.Health)

	protected := router.Group("")
	protected.Use(middleware.Auth(configManager.GetAuthConfig()))
	protected.Use(middleware.RequestLog(requestLogService))

	for _, a := range adapter.All() {
		a := a
		protected.POST("/"+a.Name(), func(c *gin.Context) {
			a.Handle(c, translateService)
		})
	}
	protected.POST("/detect", serverHandler.Detect)
	protected.GET("/languages", serverHandler.Languages)

	return router
}
