package python

import (
	"fmt"

	"github.com/solvberg/pygmalion/internal/generr"
)

// maxSuffixAttempts bounds deterministic uniquification. Hitting the bound
// means something is badly wrong with the input, not a recoverable state.
const maxSuffixAttempts = 10000

// NameRegistry owns the set of names claimed within one naming scope (global
// class names, one tag's method names, one schema's field names). Registries
// are created fresh per generation run and threaded through calls explicitly;
// there is no process-wide naming state.
type NameRegistry struct {
	kind    NameKind
	claimed map[string]bool
}

// NewNameRegistry creates an empty registry for one scope.
func NewNameRegistry(kind NameKind) *NameRegistry {
	return &NameRegistry{
		kind:    kind,
		claimed: make(map[string]bool),
	}
}

// Claim sanitizes raw and reserves a unique name in this scope. On collision
// the name receives a numeric suffix (_2, _3, ...) in first-seen order, so
// identical claim sequences always yield identical results.
func (r *NameRegistry) Claim(raw string) (string, error) {
	base := Sanitize(raw, r.kind)
	if !r.claimed[base] {
		r.claimed[base] = true
		return base, nil
	}

	for i := 2; i <= maxSuffixAttempts; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !r.claimed[candidate] {
			r.claimed[candidate] = true
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no free name for %q after %d attempts", generr.ErrNameCollision, raw, maxSuffixAttempts)
}

// Claimed reports whether name has been handed out by this registry.
func (r *NameRegistry) Claimed(name string) bool {
	return r.claimed[name]
}
