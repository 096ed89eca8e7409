// Package adapter contains the protocol adapters: one per external wire
// format, each a pure mapping between that format and the canonical
// translation pipeline. Business logic lives exclusively in the translate
// service; adapters only decode, delegate and encode.
package adapter

import (
	"fmt"
	"sort"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/response"
	"lingo-gate/internal/translate"

	"github.com/gin-gonic/gin"
)

// Adapter maps one external API shape onto the canonical request/result.
type Adapter interface {
	// Name is the route suffix the adapter is mounted under (POST /<name>).
	Name() string

	// Handle decodes the inbound payload, drives the translation service
	// and encodes the outbound payload.
	Handle(c *gin.Context, svc *translate.Service)
}

var adapterRegistry = make(map[string]Adapter)

// Register adds an adapter to the registry. Called from init functions.
func Register(a Adapter) {
	if _, exists := adapterRegistry[a.Name()]; exists {
		panic(fmt.Sprintf("adapter '%s' is already registered", a.Name()))
	}
	adapterRegistry[a.Name()] = a
}

// All returns the registered adapters sorted by name.
func All() []Adapter {
	names := make([]string, 0, len(adapterRegistry))
	for name := range adapterRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	adapters := make([]Adapter, 0, len(names))
	for _, name := range names {
		adapters = append(adapters, adapterRegistry[name])
	}
	return adapters
}

// run executes one canonical request and handles the error response path.
// On success the resolved languages are attached to the gin context for the
// request-log middleware.
func run(c *gin.Context, svc *translate.Service, req translate.Request) (translate.Result, bool) {
	result, err := svc.Do(req)
	if err != nil {
		response.Error(c, app_errors.ParseAPIError(err))
		return translate.Result{}, false
	}
	annotate(c, result.Source, result.Target, len(req.Text))
	return result, true
}

// annotate records resolved request facts for the request-log middleware.
func annotate(c *gin.Context, source, target string, chars int) {
	c.Set("sourceLang", source)
	c.Set("targetLang", target)
	if prev, ok := c.Get("charCount"); ok {
		if prevChars, ok := prev.(int); ok {
			chars += prevChars
		}
	}
	c.Set("charCount", chars)
}
