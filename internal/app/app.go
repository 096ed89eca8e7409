// Package app provides the main application logic and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lingo-gate/internal/engine"
	"lingo-gate/internal/registry"
	"lingo-gate/internal/services"
	"lingo-gate/internal/store"
	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

// App holds all services and manages the application lifecycle.
type App struct {
	router            *gin.Engine
	configManager     types.ConfigManager
	engine            engine.Engine
	registry          *registry.Registry
	requestLogService *services.RequestLogService
	cache             store.Store
	httpServer        *http.Server
}

// AppParams defines the dependencies for the App.
type AppParams struct {
	dig.In
	Router            *gin.Engine
	ConfigManager     types.ConfigManager
	Engine            engine.Engine
	Registry          *registry.Registry
	RequestLogService *services.RequestLogService
	Cache             store.Store
}

// NewApp is the constructor for App, with dependencies injected by dig.
func NewApp(params AppParams) *App {
	return &App{
		router:            params.Router,
		configManager:     params.ConfigManager,
		engine:            params.Engine,
		registry:          params.Registry,
		requestLogService: params.RequestLogService,
		cache:             params.Cache,
	}
}

// Start begins serving. Model discovery already ran during construction;
// a registry failure never reaches this point.
func (a *App) Start() error {
	a.configManager.DisplayServerConfig()

	pairs := a.registry.Pairs()
	logrus.Infof("Serving %d language pair(s): %v", len(pairs), a.registry.Languages())

	a.requestLogService.Start()

	serverConfig := a.configManager.GetEffectiveServerConfig()
	addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)

	a.httpServer = &http.Server{
		Addr:         addr,
		Handler:      a.router,
		ReadTimeout:  time.Duration(serverConfig.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(serverConfig.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(serverConfig.IdleTimeout) * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on %s", addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts the application down: HTTP server first, then the
// background services, finally the engine handle.
func (a *App) Stop(ctx context.Context) {
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			logrus.Errorf("Server shutdown error: %v", err)
		}
	}

	a.requestLogService.Stop()

	if err := a.cache.Close(); err != nil {
		logrus.Errorf("Cache close error: %v", err)
	}

	if err := a.engine.Close(); err != nil {
		logrus.Errorf("Engine close error: %v", err)
	}

	logrus.Info("Application stopped")
}
