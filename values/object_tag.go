// Package values contains validated value objects for the JSS object model.
package values

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ObjectTag represents a validated XML tag name used for object kinds,
// containers, and list element tags.
// Enforces non-empty, lowercase, XML-safe tag names.
type ObjectTag struct {
	value string
}

// NewObjectTag creates an ObjectTag with strict validation.
// A valid tag must:
// - Be non-empty
// - Start with a lowercase letter
// - Contain only lowercase letters, digits, and underscores
// - Be at most 64 characters long
func NewObjectTag(tag string) (ObjectTag, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ObjectTag{}, fmt.Errorf("object tag cannot be empty")
	}

	if len(tag) > 64 {
		return ObjectTag{}, fmt.Errorf("object tag too long (max 64 chars)")
	}

	first := rune(tag[0])
	if first < 'a' || first > 'z' {
		return ObjectTag{}, fmt.Errorf("invalid object tag %q: must start with a lowercase letter", tag)
	}

	for _, ch := range tag {
		if !isValidTagChar(ch) {
			return ObjectTag{}, fmt.Errorf("invalid object tag %q: must contain only lowercase letters, digits, and underscores", tag)
		}
	}

	return ObjectTag{value: tag}, nil
}

func isValidTagChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

// MustNewObjectTag creates an ObjectTag or panics
func MustNewObjectTag(tag string) ObjectTag {
	ot, err := NewObjectTag(tag)
	if err != nil {
		panic(err)
	}
	return ot
}

// String returns the string representation
func (o ObjectTag) String() string {
	return o.value
}

// IsEmpty returns true if this is the zero value
func (o ObjectTag) IsEmpty() bool {
	return o.value == ""
}

// Equals checks if two object tags are equal
func (o ObjectTag) Equals(other ObjectTag) bool {
	return o.value == other.value
}

// MarshalJSON implements json.Marshaler.
// Uses json.Marshal for proper character escaping.
func (o ObjectTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (o *ObjectTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid object tag JSON: %w", err)
	}

	tag, err := NewObjectTag(s)
	if err != nil {
		return err
	}
	*o = tag
	return nil
}
