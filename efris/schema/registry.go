package schema

import (
	"fmt"
	"sync"
)

// UnknownInterfaceError reports a lookup for a code or direction the
// registry has no table for.
type UnknownInterfaceError struct {
	InterfaceCode string
	Direction     Direction
}

func (e *UnknownInterfaceError) Error() string {
	return fmt.Sprintf("no schema registered for interface %s (%s)", e.InterfaceCode, e.Direction)
}

type key struct {
	code string
	dir  Direction
}

// Registry maps (interfaceCode, direction) to its rule table. Build it
// once at startup; lookups are read-shared without locking after that.
type Registry struct {
	tables map[key]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{tables: make(map[key]*Descriptor)}
}

func (r *Registry) Register(d *Descriptor) {
	r.tables[key{d.InterfaceCode, d.Direction}] = d
}

func (r *Registry) Lookup(interfaceCode string, dir Direction) (*Descriptor, error) {
	d, ok := r.tables[key{interfaceCode, dir}]
	if !ok {
		return nil, &UnknownInterfaceError{InterfaceCode: interfaceCode, Direction: dir}
	}
	return d, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry with every built-in interface table.
// Request and response tables are registered independently, the catalog's
// requiredness drift between near-duplicate interfaces is preserved as is.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register(T101Response())
		defaultRegistry.Register(T104Response())
		defaultRegistry.Register(T109Request())
		defaultRegistry.Register(T109Response())
		defaultRegistry.Register(T110Request())
		defaultRegistry.Register(T115Response())
		defaultRegistry.Register(T119Request())
		defaultRegistry.Register(T119Response())
		defaultRegistry.Register(T129Request())
		defaultRegistry.Register(T129Response())
		defaultRegistry.Register(T130Request())
		defaultRegistry.Register(T130Response())
	})
	return defaultRegistry
}
