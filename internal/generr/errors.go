// Package generr provides the error kinds raised during generation.
//
// Fatal conditions are exposed as sentinel errors so callers can test for
// them with errors.Is() after unwrapping whatever context was layered on
// with fmt.Errorf and %w. Non-fatal conditions (unsupported constructs) are
// not errors at all: they degrade the output and are collected as warnings
// alongside the generated package.
package generr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec indicates the input document is missing a mandatory
	// piece (no paths, unresolvable $ref). Generation aborts and no output
	// is produced.
	ErrInvalidSpec = errors.New("invalid specification")

	// ErrNameCollision indicates deterministic uniquification ran out of
	// suffix attempts.
	ErrNameCollision = errors.New("name collision exhausted")
)

// InvalidSpecf wraps ErrInvalidSpec with a formatted description.
func InvalidSpecf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}
