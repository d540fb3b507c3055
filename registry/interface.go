package registry

import "github.com/cursorkit/cursorkit/capability"

// CapabilityRegistry manages capability definitions beyond the built-in
// taxonomy.
type CapabilityRegistry interface {
	// Register adds a capability definition. Bases must already be known;
	// cycles and duplicate IDs are rejected.
	Register(def capability.Capability) error

	// Get returns the definition for id.
	Get(id capability.ID) (capability.Capability, bool)

	// List returns all registered capability IDs in definition order.
	List() []capability.ID

	// Catalogue returns an immutable snapshot of the current definitions.
	Catalogue() *capability.Catalogue
}
