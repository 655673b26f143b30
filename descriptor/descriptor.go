// Package descriptor contains the capability descriptors that drive the JSS
// object model. A descriptor records, per object type, which REST operations
// the server supports, how its URLs are assembled, which lookup keys it
// accepts, and the default field values for a newly constructed blank record.
package descriptor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/caspersuite/jss-object-sdk/values"
)

// Conventional defaults shared by almost every API-addressable object type.
const (
	// DefaultIDURL is the URL fragment for ID-based addressing.
	DefaultIDURL = "/id/"

	// DefaultSearchKey is the lookup key used when no search type is named.
	DefaultSearchKey = "name"
)

// Operation identifies a single REST operation an object type may support.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpPut    Operation = "put"
	OpPost   Operation = "post"
	OpDelete Operation = "delete"
)

// Descriptor is the capability descriptor for one object type.
//
// Invariants:
// - Kind must be a valid object tag
// - DefaultSearch must be a key present in SearchTypes
// - ID-addressed operations (get/put/delete) require an IDURL fragment
// - DataKeys values must be strings, booleans, integers, or nested mappings
// - Scraped descriptors carry a RawPath and support no REST operations
type Descriptor struct {
	// Kind is the singular object tag, e.g. "computer_group". It keys the
	// registry and names the item element in API responses.
	Kind string

	// Path is the base endpoint path, e.g. "/computergroups".
	Path string

	CanList   bool
	CanGet    bool
	CanPut    bool
	CanPost   bool
	CanDelete bool

	// IDURL is the URL fragment for ID-based addressing. Defaults to "/id/".
	IDURL string

	// Container is the pluralized collection tag. It disambiguates object
	// types whose endpoints share a response envelope. Empty means the
	// collection tag is derived server-side and callers don't need it.
	Container string

	// DefaultSearch is the lookup key used when a search does not name one.
	// Defaults to "name".
	DefaultSearch string

	// SearchTypes maps lookup-key names to URL fragments, e.g.
	// "serial_number" -> "/serialnumber/".
	SearchTypes map[string]string

	// CanSubset reports whether the endpoint accepts partial-field queries.
	CanSubset bool

	// ListType is the singular element tag inside a list container, for the
	// handful of types where it differs from Kind.
	ListType string

	// DataKeys holds default field values for a blank record of this type.
	DataKeys DataKeys

	// MinVersion is an optional semver constraint naming the earliest server
	// release that exposes this endpoint (e.g. ">= 9.3"). Empty means the
	// endpoint has always been available.
	MinVersion string

	// Scraped marks legacy types addressed through UI pages rather than the
	// API. Scraped descriptors carry RawPath and support no REST operations.
	Scraped bool

	// RawPath is the literal page path for scraped types, including any
	// query string, e.g. "legacy/packages.html?id=-1&o=c".
	RawPath string
}

// Normalize fills conventional defaults in place: the ID fragment, the default
// search key, and its search-type entry. Scraped descriptors are left alone.
func (d *Descriptor) Normalize() {
	if d.Scraped {
		return
	}

	if d.IDURL == "" {
		d.IDURL = DefaultIDURL
	}
	if d.DefaultSearch == "" {
		d.DefaultSearch = DefaultSearchKey
	}
	if d.SearchTypes == nil {
		d.SearchTypes = map[string]string{
			DefaultSearchKey: "/name/",
		}
	}
}

// Validate checks descriptor invariants. It does not normalize; callers that
// build descriptors by hand should call Normalize first.
func (d *Descriptor) Validate() error {
	if _, err := values.NewObjectTag(d.Kind); err != nil {
		return fmt.Errorf("descriptor kind: %w", err)
	}

	if d.Scraped {
		return d.validateScraped()
	}

	if d.Path == "" {
		return fmt.Errorf("descriptor %q: path is required", d.Kind)
	}
	if !strings.HasPrefix(d.Path, "/") {
		return fmt.Errorf("descriptor %q: path must start with '/'", d.Kind)
	}
	if strings.HasSuffix(d.Path, "/") {
		return fmt.Errorf("descriptor %q: path must not end with '/'", d.Kind)
	}

	if (d.CanGet || d.CanPut || d.CanDelete || d.CanPost) && d.IDURL == "" {
		return fmt.Errorf("descriptor %q: id_url is required for ID-addressed operations", d.Kind)
	}

	if d.DefaultSearch != "" || len(d.SearchTypes) > 0 {
		if _, ok := d.SearchTypes[d.DefaultSearch]; !ok {
			return fmt.Errorf("descriptor %q: default search %q is not a registered search type", d.Kind, d.DefaultSearch)
		}
	}
	for key, fragment := range d.SearchTypes {
		if _, err := values.NewSearchKey(key); err != nil {
			return fmt.Errorf("descriptor %q: %w", d.Kind, err)
		}
		if !strings.HasPrefix(fragment, "/") || !strings.HasSuffix(fragment, "/") {
			return fmt.Errorf("descriptor %q: search type %q: fragment %q must be '/'-delimited", d.Kind, key, fragment)
		}
	}

	if d.Container != "" {
		if _, err := values.NewObjectTag(d.Container); err != nil {
			return fmt.Errorf("descriptor %q: container: %w", d.Kind, err)
		}
	}
	if d.ListType != "" {
		if _, err := values.NewObjectTag(d.ListType); err != nil {
			return fmt.Errorf("descriptor %q: list type: %w", d.Kind, err)
		}
	}

	if err := d.DataKeys.Validate(); err != nil {
		return fmt.Errorf("descriptor %q: data keys: %w", d.Kind, err)
	}

	if d.MinVersion != "" {
		if err := validateConstraint(d.MinVersion); err != nil {
			return fmt.Errorf("descriptor %q: min version: %w", d.Kind, err)
		}
	}

	return nil
}

func (d *Descriptor) validateScraped() error {
	if d.RawPath == "" {
		return fmt.Errorf("descriptor %q: raw path is required for scraped types", d.Kind)
	}
	if d.CanList || d.CanGet || d.CanPut || d.CanPost || d.CanDelete {
		return fmt.Errorf("descriptor %q: scraped types support no REST operations", d.Kind)
	}
	return nil
}

// Supports reports whether the descriptor grants the given operation.
func (d *Descriptor) Supports(op Operation) bool {
	switch op {
	case OpList:
		return d.CanList
	case OpGet:
		return d.CanGet
	case OpPut:
		return d.CanPut
	case OpPost:
		return d.CanPost
	case OpDelete:
		return d.CanDelete
	}
	return false
}

// Operations returns the supported operation set in a stable order.
func (d *Descriptor) Operations() []Operation {
	var ops []Operation
	for _, op := range []Operation{OpList, OpGet, OpPut, OpPost, OpDelete} {
		if d.Supports(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// Mutating reports whether the object type permits server-side mutation.
func (d *Descriptor) Mutating() bool {
	return d.CanPut || d.CanPost || d.CanDelete
}

// ItemTag returns the element tag for a single item inside a list container:
// ListType when set, otherwise Kind.
func (d *Descriptor) ItemTag() string {
	if d.ListType != "" {
		return d.ListType
	}
	return d.Kind
}

// SearchKeys returns the registered lookup-key names, sorted.
func (d *Descriptor) SearchKeys() []string {
	keys := make([]string, 0, len(d.SearchTypes))
	for key := range d.SearchTypes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
