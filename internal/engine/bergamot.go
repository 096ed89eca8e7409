//go:build bergamot

package engine

/*
#cgo LDFLAGS: -ltranslation -lstdc++
#include <stdbool.h>
#include <stdlib.h>
#include <translation.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// bergamotEngine wraps the native bergamot translator behind the Engine
// interface. The native handle carries its own worker pool, so calls are
// safe from concurrent goroutines without external locking.
type bergamotEngine struct {
	handle *C.TranslatorWrapper
}

// NewEngine creates a bergamot-backed engine with the configured worker count.
func NewEngine(cfg types.EngineConfig) (Engine, error) {
	handle := C.bergamot_create(C.size_t(cfg.Workers))
	if handle == nil {
		return nil, ErrCreateFailed
	}
	logrus.Infof("Initialized bergamot engine with %d workers", cfg.Workers)
	return &bergamotEngine{handle: handle}, nil
}

func (e *bergamotEngine) LoadModel(pairKey, config string) error {
	cPair := C.CString(pairKey)
	defer C.free(unsafe.Pointer(cPair))
	cConfig := C.CString(config)
	defer C.free(unsafe.Pointer(cConfig))

	C.bergamot_load_model_from_config(e.handle, cPair, cConfig)
	return nil
}

func (e *bergamotEngine) IsSupported(from, to string) bool {
	cFrom := C.CString(from)
	defer C.free(unsafe.Pointer(cFrom))
	cTo := C.CString(to)
	defer C.free(unsafe.Pointer(cTo))

	return bool(C.bergamot_is_supported(e.handle, cFrom, cTo))
}

func (e *bergamotEngine) Translate(from, to, text string) (string, error) {
	cFrom := C.CString(from)
	defer C.free(unsafe.Pointer(cFrom))
	cTo := C.CString(to)
	defer C.free(unsafe.Pointer(cTo))
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))

	result := C.bergamot_translate(e.handle, cFrom, cTo, cText)
	if result == nil {
		return "", fmt.Errorf("engine returned no result for %s -> %s", from, to)
	}
	defer C.bergamot_free_translation(result)

	return C.GoString(result), nil
}

func (e *bergamotEngine) Close() error {
	if e.handle != nil {
		C.bergamot_destroy(e.handle)
		e.handle = nil
	}
	return nil
}
