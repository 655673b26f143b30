package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// DocumentParser decodes raw catalog bytes into a Document. The parser
// package provides JSON and YAML implementations.
type DocumentParser interface {
	Parse(data []byte) (*Document, error)
}

// FileRepository loads and saves catalogs on the local filesystem. YAML is
// the native format; other formats attach per file extension.
type FileRepository struct {
	parsers map[string]DocumentParser
}

// RepositoryOption configures a FileRepository.
type RepositoryOption func(*FileRepository)

// WithDocumentParser routes files with the given extension (e.g. ".json")
// through a parser instead of the YAML decoder.
func WithDocumentParser(ext string, p DocumentParser) RepositoryOption {
	return func(r *FileRepository) {
		r.parsers[strings.ToLower(ext)] = p
	}
}

// NewFileRepository creates a new FileRepository.
func NewFileRepository(opts ...RepositoryOption) *FileRepository {
	r := &FileRepository{parsers: make(map[string]DocumentParser)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads a catalog from the given path. A missing file or directory is
// not an error; it returns a nil catalog.
func (r *FileRepository) Load(ctx context.Context, path string) (*Catalog, error) {
	// Constrain file access to the catalog's directory.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open catalog %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", base, err)
	}

	doc, err := r.decode(base, data)
	if err != nil {
		return nil, err
	}

	cat, err := doc.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return cat, nil
}

func (r *FileRepository) decode(base string, data []byte) (*Document, error) {
	if p, ok := r.parsers[strings.ToLower(filepath.Ext(base))]; ok {
		doc, err := p.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("decoding catalog %q: %w", base, err)
		}
		return doc, nil
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog YAML: %w", err)
	}
	return &doc, nil
}

// Save writes a catalog to the given path.
func (r *FileRepository) Save(ctx context.Context, cat *Catalog, path string) error {
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening directory for write %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	base := filepath.Base(path)

	file, err := root.OpenFile(base, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating catalog %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	doc := FromEntity(cat)

	encoder := yaml.NewEncoder(file)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	return nil
}

// Exists checks if a catalog exists at the given path.
func (r *FileRepository) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
