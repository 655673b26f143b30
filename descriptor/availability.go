package descriptor

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// AvailableOn reports whether the endpoint exists on the given server release.
// Descriptors without a MinVersion constraint are available everywhere.
// Server versions that don't parse as semver are treated as satisfying
// nothing, so the caller gets a hard error instead of a misleading URL.
func (d *Descriptor) AvailableOn(serverVersion string) (bool, error) {
	if d.MinVersion == "" {
		return true, nil
	}

	c, err := semver.NewConstraint(d.MinVersion)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", d.MinVersion, err)
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		return false, fmt.Errorf("invalid server version %q: %w", serverVersion, err)
	}

	return c.Check(v), nil
}

func validateConstraint(constraint string) error {
	if _, err := semver.NewConstraint(constraint); err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return nil
}
