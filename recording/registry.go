package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ggchart"
)

// BackendFactory creates a backend for a canvas of the given size.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func(width, height int) (ggchart.Backend, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register("recording", func(width, height int) (ggchart.Backend, error) {
		return NewRecorder(width, height), nil
	})
}

// Register registers a backend factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("svg", func(w, h int) (ggchart.Backend, error) {
//	        return NewSVGBackend(w, h), nil
//	    })
//	}
//
// Register panics if factory is nil or if a backend with the same name
// is already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
// The name must match a previously registered backend; the raster
// backend registers when its package is imported:
//
//	import _ "github.com/gogpu/ggchart/backend/raster"
func NewBackend(name string, width, height int) (ggchart.Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	b, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("recording: create backend %q: %w", name, err)
	}
	return b, nil
}

// MustBackend creates a new backend instance by name, panicking on error.
func MustBackend(name string, width, height int) ggchart.Backend {
	b, err := NewBackend(name, width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
