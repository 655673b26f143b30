package descriptor

import (
	"fmt"
	"sort"
)

// DataKeys holds default field values for a newly constructed blank record.
// Values may be strings, booleans, integers, or nested DataKeys; integers and
// booleans are stringified when the blank record is built, and nested mappings
// populate nested default structures recursively.
type DataKeys map[string]any

// Validate checks that every value is one of the permitted kinds. Nested
// mappings are validated recursively.
func (dk DataKeys) Validate() error {
	for _, key := range dk.sortedKeys() {
		if key == "" {
			return fmt.Errorf("data key cannot be empty")
		}
		if err := validateDataValue(key, dk[key]); err != nil {
			return err
		}
	}
	return nil
}

func validateDataValue(key string, value any) error {
	switch v := value.(type) {
	case string, bool:
		return nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case DataKeys:
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	case map[string]any:
		if err := DataKeys(v).Validate(); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	default:
		return fmt.Errorf("%s: unsupported default value type %T", key, value)
	}
}

// Keys returns the top-level key names, sorted.
func (dk DataKeys) Keys() []string {
	return dk.sortedKeys()
}

func (dk DataKeys) sortedKeys() []string {
	keys := make([]string, 0, len(dk))
	for key := range dk {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy. Mutating the copy never affects the original, so
// registered descriptors can hand their defaults to callers safely.
func (dk DataKeys) Clone() DataKeys {
	if dk == nil {
		return nil
	}
	out := make(DataKeys, len(dk))
	for key, value := range dk {
		switch v := value.(type) {
		case DataKeys:
			out[key] = v.Clone()
		case map[string]any:
			out[key] = DataKeys(v).Clone()
		default:
			out[key] = value
		}
	}
	return out
}
