package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/caspersuite/jss-object-sdk/descriptor"
)

// Document is the on-disk representation of a catalog. Field names follow the
// documented attribute conventions (can_list, id_url, data_keys, ...), so
// catalog files read like the reference tables they encode.
type Document struct {
	Version   int                    `yaml:"version" json:"version"`
	Generated string                 `yaml:"generated,omitempty" json:"generated,omitempty"`
	Objects   map[string]ObjectEntry `yaml:"objects" json:"objects"`
}

// ObjectEntry is one descriptor in a catalog document.
type ObjectEntry struct {
	Path          string            `yaml:"path,omitempty" json:"path,omitempty"`
	CanList       bool              `yaml:"can_list,omitempty" json:"can_list,omitempty"`
	CanGet        bool              `yaml:"can_get,omitempty" json:"can_get,omitempty"`
	CanPut        bool              `yaml:"can_put,omitempty" json:"can_put,omitempty"`
	CanPost       bool              `yaml:"can_post,omitempty" json:"can_post,omitempty"`
	CanDelete     bool              `yaml:"can_delete,omitempty" json:"can_delete,omitempty"`
	IDURL         string            `yaml:"id_url,omitempty" json:"id_url,omitempty"`
	Container     string            `yaml:"container,omitempty" json:"container,omitempty"`
	DefaultSearch string            `yaml:"default_search,omitempty" json:"default_search,omitempty"`
	SearchTypes   map[string]string `yaml:"search_types,omitempty" json:"search_types,omitempty"`
	CanSubset     bool              `yaml:"can_subset,omitempty" json:"can_subset,omitempty"`
	ListType      string            `yaml:"list_type,omitempty" json:"list_type,omitempty"`
	DataKeys      map[string]any    `yaml:"data_keys,omitempty" json:"data_keys,omitempty"`
	MinVersion    string            `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Scraped       bool              `yaml:"scraped,omitempty" json:"scraped,omitempty"`
	RawPath       string            `yaml:"raw_path,omitempty" json:"raw_path,omitempty"`
}

// ToEntity converts a parsed document into the domain aggregate.
func (doc *Document) ToEntity() (*Catalog, error) {
	c := &Catalog{
		Version: doc.Version,
		Objects: make(map[string]*descriptor.Descriptor, len(doc.Objects)),
	}

	if doc.Generated != "" {
		generated, err := time.Parse(time.RFC3339, doc.Generated)
		if err != nil {
			return nil, fmt.Errorf("invalid generated timestamp %q: %w", doc.Generated, err)
		}
		c.Generated = generated
	}

	for kind, entry := range doc.Objects {
		d, err := entry.toDescriptor(kind)
		if err != nil {
			return nil, err
		}
		c.Objects[kind] = d
	}

	return c, nil
}

func (entry ObjectEntry) toDescriptor(kind string) (*descriptor.Descriptor, error) {
	dataKeys, err := normalizeDataKeys(entry.DataKeys)
	if err != nil {
		return nil, fmt.Errorf("catalog entry %q: data keys: %w", kind, err)
	}

	d := &descriptor.Descriptor{
		Kind:          kind,
		Path:          entry.Path,
		CanList:       entry.CanList,
		CanGet:        entry.CanGet,
		CanPut:        entry.CanPut,
		CanPost:       entry.CanPost,
		CanDelete:     entry.CanDelete,
		IDURL:         entry.IDURL,
		Container:     entry.Container,
		DefaultSearch: entry.DefaultSearch,
		SearchTypes:   entry.SearchTypes,
		CanSubset:     entry.CanSubset,
		ListType:      entry.ListType,
		DataKeys:      dataKeys,
		MinVersion:    entry.MinVersion,
		Scraped:       entry.Scraped,
		RawPath:       entry.RawPath,
	}
	d.Normalize()
	return d, nil
}

// normalizeDataKeys coerces decoder output into DataKeys. JSON decoders hand
// back float64 for every number and YAML decoders may hand back uint64, so
// integral values are folded to int before the kind check.
func normalizeDataKeys(raw map[string]any) (descriptor.DataKeys, error) {
	if raw == nil {
		return nil, nil
	}

	dk := make(descriptor.DataKeys, len(raw))
	for key, value := range raw {
		normalized, err := normalizeDataValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		dk[key] = normalized
	}

	if err := dk.Validate(); err != nil {
		return nil, err
	}
	return dk, nil
}

func normalizeDataValue(value any) (any, error) {
	switch v := value.(type) {
	case string, bool, int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return nil, fmt.Errorf("unsupported fractional default %v", v)
		}
		return int(v), nil
	case map[string]any:
		return normalizeDataKeys(v)
	default:
		return nil, fmt.Errorf("unsupported default value type %T", value)
	}
}

// FromEntity converts the domain aggregate into its document form.
func FromEntity(c *Catalog) *Document {
	doc := &Document{
		Version: c.Version,
		Objects: make(map[string]ObjectEntry, len(c.Objects)),
	}
	if !c.Generated.IsZero() {
		doc.Generated = c.Generated.UTC().Format(time.RFC3339)
	}

	for kind, d := range c.Objects {
		doc.Objects[kind] = ObjectEntry{
			Path:          d.Path,
			CanList:       d.CanList,
			CanGet:        d.CanGet,
			CanPut:        d.CanPut,
			CanPost:       d.CanPost,
			CanDelete:     d.CanDelete,
			IDURL:         d.IDURL,
			Container:     d.Container,
			DefaultSearch: d.DefaultSearch,
			SearchTypes:   d.SearchTypes,
			CanSubset:     d.CanSubset,
			ListType:      d.ListType,
			DataKeys:      d.DataKeys,
			MinVersion:    d.MinVersion,
			Scraped:       d.Scraped,
			RawPath:       d.RawPath,
		}
	}

	return doc
}

func sortedKinds(objects map[string]*descriptor.Descriptor) []string {
	kinds := make([]string, 0, len(objects))
	for kind := range objects {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
