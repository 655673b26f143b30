// Package endpoint assembles API URL paths from capability descriptors. It
// only builds paths; issuing requests is the caller's concern.
package endpoint

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/caspersuite/jss-object-sdk/descriptor"
)

// Builder constructs endpoint paths for one object type. The zero value is
// not usable; obtain one with ForDescriptor.
type Builder struct {
	d *descriptor.Descriptor
}

// ForDescriptor returns a path builder bound to d.
func ForDescriptor(d *descriptor.Descriptor) (*Builder, error) {
	if d == nil {
		return nil, fmt.Errorf("descriptor cannot be nil")
	}
	return &Builder{d: d}, nil
}

// List returns the collection path, e.g. "/computers".
func (b *Builder) List() (string, error) {
	if err := b.require(descriptor.OpList); err != nil {
		return "", err
	}
	return b.d.Path, nil
}

// ByID returns the single-item path for an ID, e.g. "/computers/id/42".
func (b *Builder) ByID(id int) (string, error) {
	if err := b.require(descriptor.OpGet); err != nil {
		return "", err
	}
	return b.idPath(id), nil
}

// Search returns a lookup path for a named search type. An empty key selects
// the descriptor's default search. The value is path-escaped, except that the
// wildcard characters of the "match" search type pass through.
func (b *Builder) Search(key, value string) (string, error) {
	if err := b.require(descriptor.OpGet); err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("object type %q: search value cannot be empty", b.d.Kind)
	}

	if key == "" {
		key = b.d.DefaultSearch
	}
	fragment, ok := b.d.SearchTypes[key]
	if !ok {
		return "", fmt.Errorf("object type %q has no search type %q (have %s)",
			b.d.Kind, key, strings.Join(b.d.SearchKeys(), ", "))
	}

	return b.d.Path + fragment + escapeSearchValue(key, value), nil
}

// Create returns the creation path. New objects are POSTed to ID 0 and the
// server assigns the real ID.
func (b *Builder) Create() (string, error) {
	if err := b.require(descriptor.OpPost); err != nil {
		return "", err
	}
	return b.idPath(0), nil
}

// Update returns the update path for an existing object ID.
func (b *Builder) Update(id int) (string, error) {
	if err := b.require(descriptor.OpPut); err != nil {
		return "", err
	}
	return b.idPath(id), nil
}

// Delete returns the deletion path for an existing object ID.
func (b *Builder) Delete(id int) (string, error) {
	if err := b.require(descriptor.OpDelete); err != nil {
		return "", err
	}
	return b.idPath(id), nil
}

// Subset appends a partial-field selection to a previously built path:
// "<path>/subset/<field1&field2>". Fails for object types without subset
// support and for empty field lists.
func (b *Builder) Subset(path string, fields ...string) (string, error) {
	if !b.d.CanSubset {
		return "", &descriptor.UnsupportedOperationError{Kind: b.d.Kind, Operation: "subset"}
	}
	if len(fields) == 0 {
		return "", fmt.Errorf("object type %q: subset requires at least one field", b.d.Kind)
	}

	escaped := make([]string, len(fields))
	for i, field := range fields {
		if field == "" {
			return "", fmt.Errorf("object type %q: subset field cannot be empty", b.d.Kind)
		}
		escaped[i] = url.PathEscape(field)
	}

	return path + "/subset/" + strings.Join(escaped, "&"), nil
}

// Raw returns the literal page path of a scraped object type.
func (b *Builder) Raw() (string, error) {
	if !b.d.Scraped {
		return "", fmt.Errorf("object type %q is API-addressed, not scraped", b.d.Kind)
	}
	return b.d.RawPath, nil
}

func (b *Builder) idPath(id int) string {
	return b.d.Path + b.d.IDURL + strconv.Itoa(id)
}

func (b *Builder) require(op descriptor.Operation) error {
	if b.d.Scraped {
		return &descriptor.UnsupportedOperationError{Kind: b.d.Kind, Operation: op}
	}
	if !b.d.Supports(op) {
		return &descriptor.UnsupportedOperationError{Kind: b.d.Kind, Operation: op}
	}
	return nil
}

// escapeSearchValue path-escapes a lookup value. The "match" search type
// accepts "*" wildcards, which must survive escaping.
func escapeSearchValue(key, value string) string {
	if key == "match" {
		parts := strings.Split(value, "*")
		for i, part := range parts {
			parts[i] = url.PathEscape(part)
		}
		return strings.Join(parts, "*")
	}
	return url.PathEscape(value)
}
