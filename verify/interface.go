package verify

import (
	"reflect"

	"github.com/cursorkit/cursorkit/capability"
)

// Verifier evaluates (type, capability) pairs against a catalogue.
type Verifier interface {
	// Verify checks t against the named capability. The returned error is
	// non-nil only when the capability is not in the catalogue; an
	// unsatisfied requirement is reported through the Result, not the error.
	Verify(t reflect.Type, id capability.ID) (capability.Result, error)

	// VerifyValue is Verify applied to the dynamic type of v.
	VerifyValue(v any, id capability.ID) (capability.Result, error)
}
