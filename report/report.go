// Package report builds capability gap reports: for one candidate type, the
// verdict against every catalogued capability with the full violation list.
// Reports feed tooling such as CI gates and the CLI rather than the
// build-time accept/reject path.
package report

import (
	"fmt"
	"reflect"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/typeinfo"
	"github.com/cursorkit/cursorkit/verify"
)

// Report is the gap assessment of a single type.
type Report struct {
	Type             string  `yaml:"type" json:"type"`
	CatalogueVersion string  `yaml:"catalogueVersion" json:"catalogueVersion"`
	Entries          []Entry `yaml:"capabilities" json:"capabilities"`
}

// Entry is the verdict for one capability.
type Entry struct {
	Capability capability.ID `yaml:"capability" json:"capability"`
	Satisfied  bool          `yaml:"satisfied" json:"satisfied"`
	Violations []string      `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// Option configures Analyze.
type Option func(*config)

type config struct {
	filter string
}

// WithFilter restricts the report to capabilities whose ID matches the glob
// pattern, e.g. "*Cursor".
func WithFilter(pattern string) Option {
	return func(c *config) {
		c.filter = pattern
	}
}

// Analyze verifies t against every capability in the engine's catalogue and
// collects the verdicts in catalogue order.
func Analyze(eng *verify.Engine, t reflect.Type, opts ...Option) (Report, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	rep := Report{
		Type:             typeinfo.Extract(t).Name(),
		CatalogueVersion: capability.CatalogueVersion,
	}
	for _, id := range eng.Catalogue().IDs() {
		if cfg.filter != "" {
			ok, err := doublestar.Match(cfg.filter, string(id))
			if err != nil {
				return Report{}, fmt.Errorf("invalid capability filter %q: %w", cfg.filter, err)
			}
			if !ok {
				continue
			}
		}
		res, err := eng.Verify(t, id)
		if err != nil {
			return Report{}, err
		}
		rep.Entries = append(rep.Entries, Entry{
			Capability: id,
			Satisfied:  res.Satisfied(),
			Violations: res.Reasons(),
		})
	}
	return rep, nil
}

// Satisfied returns the IDs of satisfied capabilities, in report order.
func (r Report) Satisfied() []capability.ID {
	var out []capability.ID
	for _, e := range r.Entries {
		if e.Satisfied {
			out = append(out, e.Capability)
		}
	}
	return out
}

// YAML renders the report for export.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
