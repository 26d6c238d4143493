// Package blueprint models the blueprint asset boundary of the bridge:
// named assets with components and properties that can be created, modified
// and compiled. The in-memory store stands in for a host-specific asset
// system.
package blueprint

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no blueprint exists under a name.
	ErrNotFound = errors.New("blueprint: not found")
	// ErrExists is returned when creating a blueprint under a name that is
	// already in use.
	ErrExists = errors.New("blueprint: name already in use")
)

// Component is one component attached to a blueprint.
type Component struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Blueprint is a named asset with a parent class, components and properties.
// Any modification invalidates a previous compile.
type Blueprint struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	ParentClass string         `json:"parent_class"`
	Components  []Component    `json:"components,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	Compiled    bool           `json:"compiled"`
}

// Store is the blueprint asset boundary. Implementations must be safe for
// concurrent use.
type Store interface {
	// Create registers a new blueprint under the name passed.
	Create(name, parentClass string) (Blueprint, error)
	// ByName returns the blueprint stored under the name passed.
	ByName(name string) (Blueprint, error)
	// AddComponent attaches a component to a blueprint.
	AddComponent(name string, comp Component) error
	// SetProperty sets a property on a blueprint.
	SetProperty(name, key string, value any) error
	// Compile marks a blueprint as compiled and returns its final state.
	Compile(name string) (Blueprint, error)
}

// MemoryStore is a mutex-guarded in-memory Store.
type MemoryStore struct {
	mu         sync.RWMutex
	blueprints map[string]*Blueprint
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blueprints: map[string]*Blueprint{}}
}

func (s *MemoryStore) Create(name, parentClass string) (Blueprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blueprints[name]; ok {
		return Blueprint{}, ErrExists
	}
	bp := &Blueprint{
		ID:          uuid.New(),
		Name:        name,
		ParentClass: parentClass,
		Properties:  map[string]any{},
	}
	s.blueprints[name] = bp
	return *bp, nil
}

func (s *MemoryStore) ByName(name string) (Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bp, ok := s.blueprints[name]
	if !ok {
		return Blueprint{}, ErrNotFound
	}
	return *bp, nil
}

func (s *MemoryStore) AddComponent(name string, comp Component) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bp, ok := s.blueprints[name]
	if !ok {
		return ErrNotFound
	}
	bp.Components = append(bp.Components, comp)
	bp.Compiled = false
	return nil
}

func (s *MemoryStore) SetProperty(name, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bp, ok := s.blueprints[name]
	if !ok {
		return ErrNotFound
	}
	bp.Properties[key] = value
	bp.Compiled = false
	return nil
}

func (s *MemoryStore) Compile(name string) (Blueprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bp, ok := s.blueprints[name]
	if !ok {
		return Blueprint{}, ErrNotFound
	}
	bp.Compiled = true
	return *bp, nil
}
