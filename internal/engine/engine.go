// Package engine defines the translation engine capability and its
// implementations. The orchestration layer owns exactly one Engine for the
// process lifetime and consumes it through this narrow interface; adapters
// never see engine internals.
package engine

import "errors"

// ErrCreateFailed is returned when the native engine cannot be instantiated.
var ErrCreateFailed = errors.New("failed to create translation engine")

// Engine is the capability surface of the translation backend. It is
// expected to be internally thread-safe: Translate may be called
// concurrently from multiple request-handling goroutines.
type Engine interface {
	// LoadModel registers a language-pair model under pairKey from a
	// textual configuration blob assembled by the registry.
	LoadModel(pairKey, config string) error

	// IsSupported reports whether a model for (from, to) has been loaded.
	IsSupported(from, to string) bool

	// Translate translates text from one language to another. Both codes
	// must name a loaded pair.
	Translate(from, to, text string) (string, error)

	// Close releases the engine and all loaded models.
	Close() error
}
