//go:build !bergamot

package engine

import (
	"fmt"
	"sync"

	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// echoEngine is the development engine compiled when the bergamot native
// library is not linked in (no `bergamot` build tag). It tracks loaded
// pairs like the real engine but returns the input text unchanged.
type echoEngine struct {
	mu    sync.RWMutex
	pairs map[string]struct{}
}

// NewEngine creates an echo engine. The worker count is accepted for
// interface parity and ignored.
func NewEngine(cfg types.EngineConfig) (Engine, error) {
	logrus.Warn("Built without the bergamot tag; using the echo engine (translations return input text)")
	return &echoEngine{pairs: make(map[string]struct{})}, nil
}

func (e *echoEngine) LoadModel(pairKey, config string) error {
	if len(pairKey) != 4 {
		return fmt.Errorf("invalid pair key %q", pairKey)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pairs[pairKey] = struct{}{}
	return nil
}

func (e *echoEngine) IsSupported(from, to string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.pairs[from+to]
	return ok
}

func (e *echoEngine) Translate(from, to, text string) (string, error) {
	if !e.IsSupported(from, to) {
		return "", fmt.Errorf("no model loaded for %s -> %s", from, to)
	}
	return text, nil
}

func (e *echoEngine) Close() error {
	return nil
}
