// Package translate implements the canonical translation pipeline shared by
// every protocol adapter: resolve languages, validate the pair against the
// loaded models, invoke the engine and package the result.
package translate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"lingo-gate/internal/engine"
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/langid"
	"lingo-gate/internal/store"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// Request is the canonical translation request produced by an adapter.
// Source may be empty or "auto" to request detection.
type Request struct {
	Text   string
	Source string
	Target string
}

// Result is the canonical translation result consumed by an adapter.
// Source and Target carry the resolved ISO 639-1 codes.
type Result struct {
	Text   string
	Source string
	Target string
}

// Service is the single choke point all adapters go through. It holds no
// mutable state of its own: registry state is fixed after startup and the
// engine is internally thread-safe, so Do may be called concurrently.
type Service struct {
	engine   engine.Engine
	resolver *langid.Resolver
	cache    store.Store
	cacheTTL time.Duration
}

// NewService creates the translation orchestrator.
func NewService(eng engine.Engine, resolver *langid.Resolver, cache store.Store, cfg types.EngineConfig) *Service {
	return &Service{
		engine:   eng,
		resolver: resolver,
		cache:    cache,
		cacheTTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

// Do runs the canonical pipeline. Each step short-circuits on failure and
// nothing is retried: an engine failure is terminal for the request.
func (s *Service) Do(req Request) (Result, error) {
	if req.Text == "" {
		return Result{}, app_errors.NewValidationError("Text is required")
	}

	source, err := s.resolver.ResolveSource(req.Source, req.Text)
	if err != nil {
		return Result{}, err
	}

	target, err := s.resolver.ResolveTarget(req.Target)
	if err != nil {
		return Result{}, err
	}

	if !s.engine.IsSupported(source, target) {
		return Result{}, app_errors.NewUnsupportedPairError(source, target)
	}

	if cached, ok := s.cacheGet(source, target, req.Text); ok {
		return Result{Text: cached, Source: source, Target: target}, nil
	}

	translated, err := s.engine.Translate(source, target, req.Text)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": source,
			"target": target,
		}).Errorf("Engine translation failed: %v", err)
		return Result{}, app_errors.NewEngineError(err)
	}

	s.cacheSet(source, target, req.Text, translated)

	return Result{Text: translated, Source: source, Target: target}, nil
}

// cacheKey derives a bounded-size key from the full request triple.
func cacheKey(source, target, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("translation:%s:%s:%s", source, target, hex.EncodeToString(sum[:]))
}

func (s *Service) cacheGet(source, target, text string) (string, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return "", false
	}
	value, err := s.cache.Get(cacheKey(source, target, text))
	if err != nil {
		return "", false
	}
	return string(value), true
}

func (s *Service) cacheSet(source, target, text, translated string) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(cacheKey(source, target, text), []byte(translated), s.cacheTTL); err != nil {
		logrus.Debugf("Failed to cache translation: %v", err)
	}
}
