package cursorkit

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/parser"
)

// Mismatch is one expectation a manifest run did not meet.
type Mismatch struct {
	Type       string
	Capability capability.ID
	Want       parser.Want
	// Reason is the violated requirement when the expectation was
	// "satisfied", empty otherwise.
	Reason string
}

func (m Mismatch) String() string {
	if m.Reason != "" {
		return fmt.Sprintf("%s: expected %s, but: %s", m.Type, m.Capability, m.Reason)
	}
	return fmt.Sprintf("%s: expected NOT %s, but it is satisfied", m.Type, m.Capability)
}

// RunManifest evaluates every expectation in m against the named subjects.
// Type and capability patterns are expanded; each (subject, capability) pair
// produced by a check must match the check's wanted verdict. The returned
// mismatches are sorted for stable output; a nil slice means the manifest
// holds.
func (c *Checker) RunManifest(m *parser.Manifest, subjects map[string]reflect.Type) ([]Mismatch, error) {
	if err := m.CheckCatalogueVersion(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(subjects))
	for name := range subjects {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := c.registry.List()

	var mismatches []Mismatch
	for _, check := range m.Checks {
		caps, err := check.ExpandCapabilities(ids)
		if err != nil {
			return nil, err
		}
		matchedAny := false
		for _, name := range names {
			ok, err := check.MatchesType(name)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			matchedAny = true
			for _, id := range caps {
				err := c.Check(subjects[name], id)
				switch {
				case err == nil && check.Want == parser.WantUnsatisfied:
					mismatches = append(mismatches, Mismatch{
						Type: name, Capability: id, Want: check.Want,
					})
				case err != nil && check.Want == parser.WantSatisfied:
					reason := err.Error()
					var v *capability.Violation
					if errors.As(err, &v) {
						reason = v.Requirement.Desc
					}
					mismatches = append(mismatches, Mismatch{
						Type: name, Capability: id, Want: check.Want, Reason: reason,
					})
				}
			}
		}
		if !matchedAny {
			return nil, fmt.Errorf("no subject matches type pattern %q", check.Type)
		}
	}
	return mismatches, nil
}
