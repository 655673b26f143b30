package values

import (
	"fmt"
	"strings"
)

// SearchKey represents a validated lookup-key name (e.g. "name", "serial_number").
// Search keys index into a descriptor's search-type table, so they follow the
// same character rules as object tags but additionally allow hyphens, which a
// few server-side lookup names use.
type SearchKey struct {
	value string
}

// NewSearchKey creates a SearchKey with strict validation.
func NewSearchKey(key string) (SearchKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return SearchKey{}, fmt.Errorf("search key cannot be empty")
	}

	if len(key) > 64 {
		return SearchKey{}, fmt.Errorf("search key too long (max 64 chars)")
	}

	for _, ch := range key {
		if !isValidTagChar(ch) && ch != '-' {
			return SearchKey{}, fmt.Errorf("invalid search key %q: must contain only lowercase letters, digits, underscores, and hyphens", key)
		}
	}

	return SearchKey{value: key}, nil
}

// MustNewSearchKey creates a SearchKey or panics
func MustNewSearchKey(key string) SearchKey {
	sk, err := NewSearchKey(key)
	if err != nil {
		panic(err)
	}
	return sk
}

// String returns the string representation
func (s SearchKey) String() string {
	return s.value
}

// IsEmpty returns true if this is the zero value
func (s SearchKey) IsEmpty() bool {
	return s.value == ""
}

// Equals checks if two search keys are equal
func (s SearchKey) Equals(other SearchKey) bool {
	return s.value == other.value
}
