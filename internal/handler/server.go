// Package handler contains the non-adapter HTTP handlers.
package handler

import (
	"net/http"
	"time"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/langid"
	"lingo-gate/internal/registry"
	"lingo-gate/internal/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server aggregates handler dependencies.
type Server struct {
	DB       *gorm.DB
	Registry *registry.Registry
}

// NewServer creates a new handler server.
func NewServer(db *gorm.DB, reg *registry.Registry) *Server {
	return &Server{DB: db, Registry: reg}
}

// Health returns service liveness. Exempt from the access guard.
func (s *Server) Health(c *gin.Context) {
	result := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if startTime, exists := c.Get("serverStartTime"); exists {
		if st, ok := startTime.(time.Time); ok {
			result["uptime"] = time.Since(st).Round(time.Second).String()
		}
	}

	if s.DB != nil {
		result["database"] = "ok"
		if sqlDB, err := s.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			result["status"] = "degraded"
			result["database"] = "unavailable"
		}
	}

	c.JSON(http.StatusOK, result)
}

// DetectRequest is the detect-language request payload.
type DetectRequest struct {
	Text string `json:"text" binding:"required"`
}

// DetectResponse is the detect-language response payload.
type DetectResponse struct {
	Language string `json:"language"`
}

// Detect identifies the language of a text, unconstrained by the loaded
// models since no target model set is implied.
func (s *Server) Detect(c *gin.Context) {
	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	language, err := langid.Detect(req.Text)
	if err != nil {
		response.Error(c, app_errors.ParseAPIError(err))
		return
	}

	response.JSON(c, DetectResponse{Language: language})
}

// Languages lists the loaded language pairs.
func (s *Server) Languages(c *gin.Context) {
	response.JSON(c, gin.H{
		"pairs":     s.Registry.Pairs(),
		"languages": s.Registry.Languages(),
	})
}
