package bridge

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Handler processes one bridge command. The params are the raw JSON "params"
// object of the request; the returned value is serialised into the response
// "result" field.
type Handler interface {
	Handle(params json.RawMessage) (any, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(params json.RawMessage) (any, error)

// Handle calls the wrapped function.
func (f HandlerFunc) Handle(params json.RawMessage) (any, error) {
	return f(params)
}

// Registry maps command names to their handlers. Commands are registered
// once at startup and looked up per request; there is no fallback chain.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty command Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{}}
}

// Register registers a handler under the command name passed. Registering a
// name twice is a wiring mistake and returns an error.
func (r *Registry) Register(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("bridge: command %q already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// Lookup returns the handler registered under the command name passed.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the sorted names of all registered commands.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
