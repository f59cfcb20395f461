package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrDuplicateID  = errors.New("duplicate node ID")
)

// nodeError wraps a sentinel with the offending node ID so callers can
// both match with errors.Is and report the key that failed.
func nodeError(op, id string, cause error) error {
	return fmt.Errorf("%s %q: %w", op, id, cause)
}
