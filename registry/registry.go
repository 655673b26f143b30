// Package registry implements the descriptor registry for the JSS object model.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/caspersuite/jss-object-sdk/descriptor"
)

// Registry manages the registration and retrieval of capability descriptors,
// keyed by object kind. Safe for concurrent use.
type Registry struct {
	descriptors map[string]*descriptor.Descriptor
	byPath      map[string]string
	mu          sync.RWMutex
	strictMode  bool
}

// Option configures the Registry.
type Option func(*Registry)

// WithStrictMode toggles invariant validation at registration time. Strict
// mode is on by default; turning it off defers validation to the caller,
// which catalog tooling uses when assembling descriptors incrementally.
func WithStrictMode(strict bool) Option {
	return func(r *Registry) {
		r.strictMode = strict
	}
}

// New creates a new, empty descriptor registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		descriptors: make(map[string]*descriptor.Descriptor),
		byPath:      make(map[string]string),
		strictMode:  true,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a descriptor for an object kind. The descriptor is normalized
// in place; in strict mode it is also validated. Registering a kind twice is
// an error.
func (r *Registry) Register(d *descriptor.Descriptor) error {
	return r.add(d, false)
}

// Replace adds a descriptor for an object kind, overwriting any existing
// registration. Site catalogs use this to override builtin descriptors.
func (r *Registry) Replace(d *descriptor.Descriptor) error {
	return r.add(d, true)
}

func (r *Registry) add(d *descriptor.Descriptor, replace bool) error {
	if d == nil {
		return fmt.Errorf("descriptor cannot be nil")
	}

	d.Normalize()
	if r.strictMode {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.descriptors[d.Kind]; exists {
		if !replace {
			return fmt.Errorf("object kind already registered: %s", d.Kind)
		}
		// Path ownership follows the replacement.
		if prev.Path != "" && r.byPath[prev.Path] == d.Kind {
			delete(r.byPath, prev.Path)
		}
	}

	r.descriptors[d.Kind] = d
	if d.Path != "" {
		if _, taken := r.byPath[d.Path]; !taken {
			r.byPath[d.Path] = d.Kind
		}
	}
	return nil
}

// Lookup retrieves the descriptor for an object kind.
func (r *Registry) Lookup(kind string) (*descriptor.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[kind]
	if !ok {
		return nil, &descriptor.NotRegisteredError{Kind: kind}
	}
	return d, nil
}

// LookupByPath retrieves the descriptor owning a base endpoint path.
// Kinds that share an endpoint (account groups on /accounts) resolve to the
// kind registered first for that path.
func (r *Registry) LookupByPath(path string) (*descriptor.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.byPath[path]
	if !ok {
		return nil, &descriptor.NotRegisteredError{Kind: path}
	}
	return r.descriptors[kind], nil
}

// Has reports whether a kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.descriptors[kind]
	return ok
}

// Kinds returns all registered object kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.descriptors))
	for kind := range r.descriptors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}

// Mutating returns the kinds that permit server-side mutation, sorted.
// Useful for auditing which object types a credential could alter.
func (r *Registry) Mutating() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var kinds []string
	for kind, d := range r.descriptors {
		if d.Mutating() {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}
