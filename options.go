package objectsdk

import (
	"log/slog"

	"github.com/caspersuite/jss-object-sdk/registry"
)

// Option defines a functional option for configuring the Model.
type Option func(*modelConfig)

type modelConfig struct {
	registry      *registry.Registry
	serverVersion string
	catalogPaths  []string
	logger        *slog.Logger
}

// WithServerVersion pins the server release the model talks to, enabling
// endpoint availability gating (e.g. "9.81.0").
func WithServerVersion(version string) Option {
	return func(cfg *modelConfig) {
		cfg.serverVersion = version
	}
}

// WithRegistry replaces the builtin catalog with a caller-provided registry.
func WithRegistry(r *registry.Registry) Option {
	return func(cfg *modelConfig) {
		cfg.registry = r
	}
}

// WithCatalogFile merges a site catalog on top of the registry, replacing
// builtin descriptors it redefines. Files ending in ".json" are parsed as
// JSON, everything else as YAML. May be given more than once; catalogs apply
// in order.
func WithCatalogFile(path string) Option {
	return func(cfg *modelConfig) {
		cfg.catalogPaths = append(cfg.catalogPaths, path)
	}
}

// WithLogger sets the logger used for catalog loading diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *modelConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
