package record

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Subset returns a copy of the record reduced to the leaf fields whose paths
// match any of the glob patterns, e.g. "general/*" or "scope/**". Patterns
// use '/'-separated doublestar globs.
func (r Record) Subset(patterns ...string) (Record, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("subset requires at least one pattern")
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid subset pattern %q", pattern)
		}
	}

	out := make(Record)
	for _, path := range r.Paths() {
		matched := false
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, path)
			if err != nil {
				return nil, fmt.Errorf("subset pattern %q: %w", pattern, err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		value, _ := r.Get(path)
		if err := out.Set(path, value); err != nil {
			return nil, err
		}
	}

	return out, nil
}
