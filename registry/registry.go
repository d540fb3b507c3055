// Package registry implements a capability registry: the built-in taxonomy
// plus user-composed capabilities, with catalogue snapshots for verification
// and a JSON Schema of the gap-report document for toolchain integration.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/report"
)

// Registry implements CapabilityRegistry using in-memory storage.
type Registry struct {
	mu         sync.RWMutex
	cat        *capability.Catalogue
	strictMode bool
	reflector  *jsonschema.Reflector
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithStrictMode controls whether registering an ID that shadows an existing
// definition is an error. Enabled by default.
func WithStrictMode(strict bool) RegistryOption {
	return func(r *Registry) {
		r.strictMode = strict
	}
}

// WithCatalogue seeds the registry with the given catalogue instead of the
// built-in taxonomy.
func WithCatalogue(cat *capability.Catalogue) RegistryOption {
	return func(r *Registry) {
		r.cat = cat
	}
}

// NewRegistry creates a registry seeded with the built-in taxonomy.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		cat:        capability.Builtins(),
		strictMode: true,
		reflector:  new(jsonschema.Reflector),
	}
	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a capability definition. The extended catalogue is validated
// as a whole, so unknown bases and cycles are caught here, at definition
// time.
func (r *Registry) Register(def capability.Capability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cat.Get(def.ID); exists {
		if r.strictMode {
			return fmt.Errorf("%w: %s", capability.ErrDuplicateCapability, def.ID)
		}
		return nil
	}

	extended, err := r.cat.With(def)
	if err != nil {
		return err
	}
	r.cat = extended
	return nil
}

// Get returns the definition for id.
func (r *Registry) Get(id capability.ID) (capability.Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cat.Get(id)
}

// List returns all registered capability IDs in definition order.
func (r *Registry) List() []capability.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cat.IDs()
}

// Catalogue returns the current catalogue. Catalogues are immutable, so the
// snapshot stays valid across later registrations.
func (r *Registry) Catalogue() *capability.Catalogue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cat
}

// ReportSchema generates the JSON Schema describing the gap-report document,
// for consumers that ingest reports rather than call the library.
func (r *Registry) ReportSchema() (string, error) {
	s := r.reflector.Reflect(&report.Report{})
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report schema: %w", err)
	}
	return string(b), nil
}
