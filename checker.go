package cursorkit

import (
	"log/slog"
	"reflect"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/registry"
	"github.com/cursorkit/cursorkit/report"
	"github.com/cursorkit/cursorkit/verify"
)

// Checker verifies types against capabilities registered in a registry.
// It is the high-level facade over the verification engine.
type Checker struct {
	registry   *registry.Registry
	handler    ViolationHandler
	logger     *slog.Logger
	exhaustive bool
}

// ViolationHandler is called for every requirement violation a check
// surfaces. It allows custom logging or auditing.
type ViolationHandler func(typeName string, id capability.ID, requirement string)

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithRegistry uses the given registry instead of a fresh built-in one.
func WithRegistry(reg *registry.Registry) CheckerOption {
	return func(c *Checker) {
		c.registry = reg
	}
}

// WithViolationHandler sets the handler invoked on violations.
func WithViolationHandler(handler ViolationHandler) CheckerOption {
	return func(c *Checker) {
		c.handler = handler
	}
}

// WithLogger sets the logger passed to the engine.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithExhaustive makes checks collect every violation instead of stopping
// at the first.
func WithExhaustive(exhaustive bool) CheckerOption {
	return func(c *Checker) {
		c.exhaustive = exhaustive
	}
}

// NewChecker creates a Checker backed by the built-in taxonomy.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = registry.NewRegistry()
	}
	return c
}

// Registry returns the checker's capability registry.
func (c *Checker) Registry() *registry.Registry {
	return c.registry
}

// engine builds a verifier over the registry's current catalogue. Engines
// are stateless, so building one per call keeps later registrations visible
// without shared mutable state.
func (c *Checker) engine() *verify.Engine {
	return verify.New(
		verify.WithCatalogue(c.registry.Catalogue()),
		verify.WithFailFast(!c.exhaustive),
		verify.WithLogger(c.logger),
	)
}

// Check verifies t against the named capability. It returns nil when the
// capability is satisfied, the first *capability.Violation when it is not,
// and a catalogue error for unknown identifiers.
func (c *Checker) Check(t reflect.Type, id capability.ID) error {
	res, err := c.engine().Verify(t, id)
	if err != nil {
		return err
	}
	for _, v := range res.Violations {
		if c.handler != nil {
			c.handler(v.Type, v.Capability, v.Requirement.Desc)
		}
	}
	return res.Err()
}

// CheckValue is Check applied to the dynamic type of v.
func (c *Checker) CheckValue(v any, id capability.ID) error {
	return c.Check(reflect.TypeOf(v), id)
}

// Satisfies reports whether t satisfies the named capability, swallowing
// catalogue errors as false.
func (c *Checker) Satisfies(t reflect.Type, id capability.ID) bool {
	return c.Check(t, id) == nil
}

// MustSatisfy panics unless t satisfies the named capability. Intended for
// package-level or init-time assertions, where a violation should stop the
// program the way a failed compile would.
func (c *Checker) MustSatisfy(t reflect.Type, id capability.ID) {
	if err := c.Check(t, id); err != nil {
		panic(err)
	}
}

// GapReport verifies t against every registered capability and returns the
// full gap assessment.
func (c *Checker) GapReport(t reflect.Type, opts ...report.Option) (report.Report, error) {
	eng := verify.New(
		verify.WithCatalogue(c.registry.Catalogue()),
		verify.WithFailFast(false),
		verify.WithLogger(c.logger),
	)
	return report.Analyze(eng, t, opts...)
}
