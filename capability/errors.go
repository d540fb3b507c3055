package capability

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error patterns. These allow errors.Is() checks
// while the typed errors below carry the detail.
var (
	// ErrUnsatisfied is matched by every requirement violation.
	ErrUnsatisfied = errors.New("capability not satisfied")

	// ErrUnknownCapability is returned for identifiers absent from the
	// catalogue.
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrCycle is matched by cycle errors raised at catalogue construction.
	ErrCycle = errors.New("capability extension cycle")

	// ErrDuplicateCapability is returned when an ID is defined twice.
	ErrDuplicateCapability = errors.New("capability already defined")

	// ErrInvalidDefinition is returned for structurally invalid definitions.
	ErrInvalidDefinition = errors.New("invalid capability definition")
)

// CycleError reports a cycle in the extension graph, including the path that
// closed it. Raised when the catalogue is built, never during verification.
type CycleError struct {
	Path []ID
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = string(id)
	}
	return fmt.Sprintf("capability extension cycle: %s", strings.Join(parts, " -> "))
}

// Is implements error matching for errors.Is(err, ErrCycle).
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// Violation identifies the single requirement that failed a verification.
type Violation struct {
	// Type is the name of the candidate type.
	Type string
	// Capability is the capability the type was verified against.
	Capability ID
	// Origin is the capability that declared the failing requirement; for a
	// derived capability this may be one of its bases.
	Origin ID
	// Requirement is the failing requirement itself.
	Requirement Requirement
}

func (e *Violation) Error() string {
	return fmt.Sprintf("%s is not %s: %s", e.Type, e.Capability, e.Requirement.Desc)
}

// Is implements error matching for errors.Is(err, ErrUnsatisfied).
func (e *Violation) Is(target error) bool {
	return target == ErrUnsatisfied
}
