// Package record builds blank records from descriptor data keys and gives
// path-style access to their fields.
package record

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/caspersuite/jss-object-sdk/descriptor"
)

// Record is a nested field structure for a newly constructed blank object.
// Leaves are strings; branches are nested Records.
type Record map[string]any

// Separator joins field path segments, e.g. "general/name".
const Separator = "/"

// FromDataKeys constructs a blank record from a descriptor's data keys.
// Integer and boolean defaults are stringified; nested mappings populate
// nested records recursively.
func FromDataKeys(dk descriptor.DataKeys) (Record, error) {
	rec := make(Record, len(dk))
	for key, value := range dk {
		if key == "" {
			return nil, fmt.Errorf("data key cannot be empty")
		}

		leaf, ok, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if ok {
			rec[key] = leaf
			continue
		}

		nested, err := FromDataKeys(asDataKeys(value))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		rec[key] = nested
	}
	return rec, nil
}

// stringify converts a scalar default to its string form. The second return
// is false for nested mappings, which the caller recurses into.
func stringify(value any) (string, bool, error) {
	switch v := value.(type) {
	case string:
		return v, true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), true, nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true, nil
	case descriptor.DataKeys, map[string]any:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("unsupported default value type %T", value)
	}
}

func asDataKeys(value any) descriptor.DataKeys {
	switch v := value.(type) {
	case descriptor.DataKeys:
		return v
	case map[string]any:
		return descriptor.DataKeys(v)
	}
	return nil
}

// Get returns the leaf value at a field path like "general/name".
func (r Record) Get(path string) (string, bool) {
	parent, leaf, ok := r.walk(path, false)
	if !ok {
		return "", false
	}
	value, ok := parent[leaf].(string)
	return value, ok
}

// Set assigns a leaf value at a field path, creating intermediate records as
// needed. Fails if a path segment is already occupied by a leaf.
func (r Record) Set(path, value string) error {
	parent, leaf, ok := r.walk(path, true)
	if !ok {
		return fmt.Errorf("field path %q crosses a leaf value", path)
	}
	if _, isBranch := parent[leaf].(Record); isBranch {
		return fmt.Errorf("field path %q names a nested record, not a field", path)
	}
	parent[leaf] = value
	return nil
}

// walk resolves the record containing the final path segment. With create
// set, missing intermediate records are allocated.
func (r Record) walk(path string, create bool) (Record, string, bool) {
	segments := strings.Split(path, Separator)
	current := r

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok {
			if !create {
				return nil, "", false
			}
			branch := make(Record)
			current[segment] = branch
			current = branch
			continue
		}

		branch, ok := next.(Record)
		if !ok {
			return nil, "", false
		}
		current = branch
	}

	return current, segments[len(segments)-1], true
}

// Paths returns every leaf field path, sorted.
func (r Record) Paths() []string {
	var paths []string
	r.appendPaths("", &paths)
	sort.Strings(paths)
	return paths
}

func (r Record) appendPaths(prefix string, out *[]string) {
	for key, value := range r {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}
		if branch, ok := value.(Record); ok {
			branch.appendPaths(path, out)
			continue
		}
		*out = append(*out, path)
	}
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for key, value := range r {
		if branch, ok := value.(Record); ok {
			out[key] = branch.Clone()
			continue
		}
		out[key] = value
	}
	return out
}
