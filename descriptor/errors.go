package descriptor

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrNotRegistered is returned when an object kind has no descriptor.
	ErrNotRegistered = errors.New("object kind not registered")

	// ErrOperationUnsupported is returned when a descriptor does not grant
	// the requested REST operation.
	ErrOperationUnsupported = errors.New("operation not supported")

	// ErrUnavailable is returned when the endpoint does not exist on the
	// connected server release.
	ErrUnavailable = errors.New("endpoint not available on server release")
)

// UnsupportedOperationError indicates an operation the object type does not
// grant. Provides the kind and the refused operation.
type UnsupportedOperationError struct {
	Kind      string
	Operation Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("object type %q does not support %s", e.Kind, e.Operation)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, descriptor.ErrOperationUnsupported)
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrOperationUnsupported
}

// NotRegisteredError indicates a lookup for an unknown object kind.
type NotRegisteredError struct {
	Kind string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("object kind not registered: %q", e.Kind)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, descriptor.ErrNotRegistered)
func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// UnavailableError indicates an endpoint missing from the server release.
type UnavailableError struct {
	Kind          string
	MinVersion    string
	ServerVersion string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf(
		"object type %q requires server %s, connected to %s",
		e.Kind, e.MinVersion, e.ServerVersion,
	)
}

// Is implements error matching for errors.Is() checks.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
