// Package container wires the application dependencies.
package container

import (
	"lingo-gate/internal/app"
	"lingo-gate/internal/config"
	"lingo-gate/internal/db"
	"lingo-gate/internal/engine"
	"lingo-gate/internal/handler"
	"lingo-gate/internal/langid"
	"lingo-gate/internal/registry"
	"lingo-gate/internal/router"
	"lingo-gate/internal/services"
	"lingo-gate/internal/store"
	"lingo-gate/internal/translate"
	"lingo-gate/internal/types"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection container.
// Providers run lazily: model discovery happens when the registry is first
// resolved, which is during App construction, before the server listens.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewManager,

		func(cm types.ConfigManager) (engine.Engine, error) {
			return engine.NewEngine(cm.GetEngineConfig())
		},

		func(eng engine.Engine, cm types.ConfigManager) (*registry.Registry, error) {
			return registry.New(eng, cm.GetEngineConfig())
		},

		func(reg *registry.Registry) *langid.Resolver {
			return langid.NewResolver(reg.Languages())
		},

		func() store.Store {
			return store.NewMemoryStore()
		},

		func(eng engine.Engine, resolver *langid.Resolver, cache store.Store, cm types.ConfigManager) *translate.Service {
			return translate.NewService(eng, resolver, cache, cm.GetEngineConfig())
		},

		db.NewDB,
		services.NewRequestLogService,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
