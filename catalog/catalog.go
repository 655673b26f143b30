// Package catalog provides user-extensible descriptor catalogs: site-specific
// object types, endpoint overrides, and defaults that are loaded from disk
// and merged into a registry.
package catalog

import (
	"fmt"
	"time"

	"github.com/caspersuite/jss-object-sdk/descriptor"
	"github.com/caspersuite/jss-object-sdk/registry"
)

// Catalog is an aggregate of capability descriptors resolved from a catalog
// document.
//
// Invariants:
// - Each entry's kind matches its map key
// - Each descriptor satisfies the descriptor invariants
// - Generated timestamp must be set once entries exist
type Catalog struct {
	Generated time.Time
	Objects   map[string]*descriptor.Descriptor
	Version   int
}

// CurrentVersion is the catalog document version this package writes.
const CurrentVersion = 1

// New creates an empty catalog with the current version.
func New() *Catalog {
	return &Catalog{
		Version:   CurrentVersion,
		Generated: time.Now().UTC(),
		Objects:   make(map[string]*descriptor.Descriptor),
	}
}

// Add normalizes, validates, and adds a descriptor.
func (c *Catalog) Add(d *descriptor.Descriptor) error {
	if d == nil {
		return fmt.Errorf("descriptor cannot be nil")
	}
	d.Normalize()
	if err := d.Validate(); err != nil {
		return err
	}
	if c.Objects == nil {
		c.Objects = make(map[string]*descriptor.Descriptor)
	}
	if _, exists := c.Objects[d.Kind]; exists {
		return fmt.Errorf("catalog already contains %q", d.Kind)
	}
	c.Objects[d.Kind] = d
	return nil
}

// Get retrieves a descriptor by kind.
// Returns nil if not found.
func (c *Catalog) Get(kind string) *descriptor.Descriptor {
	if c.Objects == nil {
		return nil
	}
	return c.Objects[kind]
}

// Len returns the number of cataloged descriptors.
func (c *Catalog) Len() int {
	return len(c.Objects)
}

// ValidateMetadata checks the aggregate-level rules that do not depend on
// individual entries.
func (c *Catalog) ValidateMetadata() error {
	if c.Len() > 0 && c.Generated.IsZero() {
		return fmt.Errorf("generated timestamp is required")
	}
	return nil
}

// Validate checks catalog invariants.
func (c *Catalog) Validate() error {
	if err := c.ValidateMetadata(); err != nil {
		return err
	}
	for kind, d := range c.Objects {
		if d == nil {
			return fmt.Errorf("catalog entry %q: descriptor cannot be nil", kind)
		}
		if d.Kind != kind {
			return fmt.Errorf("catalog entry %q: descriptor kind %q does not match", kind, d.Kind)
		}
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges every cataloged descriptor into r. Kinds already registered
// are replaced, so a site catalog can override builtin descriptors.
func (c *Catalog) Apply(r *registry.Registry) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	for _, kind := range sortedKinds(c.Objects) {
		if err := r.Replace(c.Objects[kind]); err != nil {
			return fmt.Errorf("applying catalog: %w", err)
		}
	}
	return nil
}
