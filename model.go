// Package objectsdk ties the object-model pieces together: a descriptor
// registry, optional site catalogs, and a server version to gate endpoint
// availability. It builds URL paths and blank records; issuing requests
// against a server is out of scope.
package objectsdk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"github.com/caspersuite/jss-object-sdk/catalog"
	"github.com/caspersuite/jss-object-sdk/descriptor"
	"github.com/caspersuite/jss-object-sdk/endpoint"
	"github.com/caspersuite/jss-object-sdk/parser"
	"github.com/caspersuite/jss-object-sdk/record"
	"github.com/caspersuite/jss-object-sdk/registry"
)

// Model resolves object kinds into their capability descriptors, endpoint
// builders, and blank records.
type Model struct {
	registry      *registry.Registry
	serverVersion string
	logger        *slog.Logger
}

// New creates a model. Without options it carries the builtin catalog,
// including the legacy scraped types, and gates nothing on server version.
func New(opts ...Option) (*Model, error) {
	cfg := modelConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.serverVersion != "" {
		if _, err := semver.NewVersion(cfg.serverVersion); err != nil {
			return nil, fmt.Errorf("invalid server version %q: %w", cfg.serverVersion, err)
		}
	}

	reg := cfg.registry
	if reg == nil {
		var err error
		reg, err = registry.Builtin()
		if err != nil {
			return nil, err
		}
		if err := registry.RegisterScraped(reg); err != nil {
			return nil, err
		}
	}

	m := &Model{
		registry:      reg,
		serverVersion: cfg.serverVersion,
		logger:        cfg.logger,
	}

	repo := catalog.NewFileRepository(
		catalog.WithDocumentParser(".json", parser.NewJSONCatalogParser()),
	)
	for _, path := range cfg.catalogPaths {
		cat, err := repo.Load(context.Background(), path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog %q: %w", path, err)
		}
		if cat == nil {
			return nil, fmt.Errorf("catalog %q does not exist", path)
		}
		if err := cat.Apply(reg); err != nil {
			return nil, fmt.Errorf("catalog %q: %w", path, err)
		}
		m.logger.Debug("objectsdk: loaded site catalog", "path", path, "objects", cat.Len())
	}

	return m, nil
}

// ObjectType is a descriptor resolved for use: its endpoint builder plus the
// blank-record constructor.
type ObjectType struct {
	Descriptor *descriptor.Descriptor

	paths *endpoint.Builder
}

// Object resolves an object kind. When the model carries a server version,
// kinds the server release does not expose resolve to an UnavailableError.
func (m *Model) Object(kind string) (*ObjectType, error) {
	d, err := m.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	if m.serverVersion != "" && d.MinVersion != "" {
		available, err := d.AvailableOn(m.serverVersion)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, &descriptor.UnavailableError{
				Kind:          d.Kind,
				MinVersion:    d.MinVersion,
				ServerVersion: m.serverVersion,
			}
		}
	}

	paths, err := endpoint.ForDescriptor(d)
	if err != nil {
		return nil, err
	}

	return &ObjectType{Descriptor: d, paths: paths}, nil
}

// Kinds returns the resolvable object kinds, sorted.
func (m *Model) Kinds() []string {
	return m.registry.Kinds()
}

// Registry exposes the underlying descriptor registry.
func (m *Model) Registry() *registry.Registry {
	return m.registry
}

// Paths returns the endpoint builder for this object type.
func (o *ObjectType) Paths() *endpoint.Builder {
	return o.paths
}

// Blank constructs a blank record from the descriptor's default data keys.
// Integer and boolean defaults are stringified; nested mappings become
// nested records.
func (o *ObjectType) Blank() (record.Record, error) {
	return record.FromDataKeys(o.Descriptor.DataKeys)
}
