// Package parser parses and validates expectation manifests: declarative
// "type X must (not) satisfy capability Y" documents run in CI against the
// capability catalogue.
package parser

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/cursorkit/cursorkit/capability"
)

// Want is the expected verdict of a check.
type Want string

const (
	WantSatisfied   Want = "satisfied"
	WantUnsatisfied Want = "unsatisfied"
)

// Manifest is a set of conformance expectations, optionally pinned to a
// range of catalogue versions.
type Manifest struct {
	// CatalogueVersion is a semver constraint (e.g. ">= 1.0.0 < 2") the
	// library's catalogue version must satisfy. Empty means any.
	CatalogueVersion string `yaml:"catalogueVersion,omitempty" json:"catalogueVersion,omitempty"`

	Checks []Check `yaml:"checks" json:"checks"`
}

// Check pairs a subject with a capability expectation. Both Type and
// Capability accept glob patterns, expanded against the subject table and
// the registered capability IDs respectively.
type Check struct {
	Type       string `yaml:"type" json:"type"`
	Capability string `yaml:"capability" json:"capability"`
	Want       Want   `yaml:"want" json:"want"`
}

// CheckCatalogueVersion verifies the manifest's version constraint against
// the built-in catalogue version.
func (m *Manifest) CheckCatalogueVersion() error {
	if m.CatalogueVersion == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(m.CatalogueVersion)
	if err != nil {
		return fmt.Errorf("invalid catalogueVersion constraint %q: %w", m.CatalogueVersion, err)
	}
	current, err := semver.NewVersion(capability.CatalogueVersion)
	if err != nil {
		return fmt.Errorf("invalid catalogue version %q: %w", capability.CatalogueVersion, err)
	}
	if !constraint.Check(current) {
		return fmt.Errorf("manifest requires catalogue %q, have %s", m.CatalogueVersion, capability.CatalogueVersion)
	}
	return nil
}

// ExpandCapabilities returns the IDs matching the check's capability
// pattern, preserving the given order.
func (c Check) ExpandCapabilities(ids []capability.ID) ([]capability.ID, error) {
	var out []capability.ID
	for _, id := range ids {
		ok, err := doublestar.Match(c.Capability, string(id))
		if err != nil {
			return nil, fmt.Errorf("invalid capability pattern %q: %w", c.Capability, err)
		}
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// MatchesType reports whether the check's type pattern matches name.
func (c Check) MatchesType(name string) (bool, error) {
	ok, err := doublestar.Match(c.Type, name)
	if err != nil {
		return false, fmt.Errorf("invalid type pattern %q: %w", c.Type, err)
	}
	return ok, nil
}
