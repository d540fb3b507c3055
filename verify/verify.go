// Package verify implements the verification engine: given a candidate type
// and a capability, it resolves the capability's effective requirement set
// and evaluates each requirement against the type's extracted traits.
// Verification is pure: no state is kept between calls, so an Engine is
// safe for concurrent use.
package verify

import (
	"log/slog"
	"reflect"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/typeinfo"
)

// Engine is the default Verifier.
type Engine struct {
	cat      *capability.Catalogue
	failFast bool
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCatalogue verifies against the given catalogue instead of the
// built-in taxonomy.
func WithCatalogue(cat *capability.Catalogue) Option {
	return func(e *Engine) {
		e.cat = cat
	}
}

// WithFailFast controls whether evaluation stops at the first unmet
// requirement (the default) or collects every violation. Exhaustive mode is
// meant for tooling that reports all capability gaps at once; the verdict is
// identical either way.
func WithFailFast(failFast bool) Option {
	return func(e *Engine) {
		e.failFast = failFast
	}
}

// WithLogger sets the logger used for debug-level evaluation traces.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine. Without options it verifies against the built-in
// taxonomy, fail-fast, without logging.
func New(opts ...Option) *Engine {
	e := &Engine{
		cat:      capability.Builtins(),
		failFast: true,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalogue returns the catalogue the engine verifies against.
func (e *Engine) Catalogue() *capability.Catalogue {
	return e.cat
}

// Verify checks t against the named capability.
func (e *Engine) Verify(t reflect.Type, id capability.ID) (capability.Result, error) {
	tr := typeinfo.Extract(t)
	res := capability.Result{Type: tr.Name(), Capability: id}

	reqs, err := e.cat.Flatten(id)
	if err != nil {
		return res, err
	}

	for _, req := range reqs {
		if e.satisfies(tr, req) {
			continue
		}
		e.logger.Debug("requirement violated",
			"type", tr.Name(),
			"capability", id,
			"origin", req.Origin,
			"requirement", req.Desc,
		)
		res.Violations = append(res.Violations, &capability.Violation{
			Type:        tr.Name(),
			Capability:  id,
			Origin:      req.Origin,
			Requirement: req,
		})
		if e.failFast {
			break
		}
	}
	return res, nil
}

// VerifyValue is Verify applied to the dynamic type of v.
func (e *Engine) VerifyValue(v any, id capability.ID) (capability.Result, error) {
	return e.Verify(reflect.TypeOf(v), id)
}

func (e *Engine) satisfies(tr typeinfo.Traits, req capability.Requirement) bool {
	if req.Kind == capability.KindProperty {
		return e.property(tr, req.Prop)
	}
	return e.method(tr, req)
}

func (e *Engine) property(tr typeinfo.Traits, prop capability.Property) bool {
	switch prop {
	case capability.PropDefaultConstructible:
		return tr.DefaultConstructible()
	case capability.PropCopyConstructible, capability.PropCopyAssignable, capability.PropSwappable:
		return tr.Copyable()
	case capability.PropDestructible:
		return tr.Destructible()
	case capability.PropEqualityComparable, capability.PropInequalityComparable:
		return equatable(tr)
	}
	return false
}

// equatable accepts either an Equal(T) bool method or safe reflect
// comparability. Inequality follows from equality; Go has no separate
// operator to get wrong.
func equatable(tr typeinfo.Traits) bool {
	if op, ok := tr.Op("Equal"); ok &&
		len(op.In) == 1 && op.In[0] == tr.Type &&
		len(op.Out) == 1 && op.Out[0].Kind() == reflect.Bool {
		return true
	}
	return tr.Comparable()
}

var intType = reflect.TypeFor[int]()

func (e *Engine) method(tr typeinfo.Traits, req capability.Requirement) bool {
	op, ok := tr.Op(req.Method)
	if !ok {
		return false
	}

	switch req.Param {
	case capability.ParamNone:
		if len(op.In) != 0 {
			return false
		}
	case capability.ParamSelf:
		if len(op.In) != 1 || op.In[0] != tr.Type {
			return false
		}
	case capability.ParamDistance:
		if len(op.In) != 1 || op.In[0] != intType {
			return false
		}
	}

	switch req.Result {
	case capability.ResultNone:
		return true
	case capability.ResultSelfRef:
		return len(op.Out) == 1 && op.Out[0] == reflect.PointerTo(tr.Type)
	case capability.ResultSelfValue:
		return len(op.Out) == 1 && op.Out[0] == tr.Type
	case capability.ResultBool:
		return len(op.Out) == 1 && op.Out[0].Kind() == reflect.Bool
	case capability.ResultReadable:
		return len(op.Out) == 1
	case capability.ResultConvertibleToValue:
		return len(op.Out) == 1 && convertsToValue(op.Out[0], tr)
	case capability.ResultConvertibleToRef:
		return len(op.Out) == 1 && tr.Ref != nil && op.Out[0].ConvertibleTo(tr.Ref)
	case capability.ResultConvertibleToSelf:
		return len(op.Out) == 1 && op.Out[0].ConvertibleTo(tr.Type)
	case capability.ResultDerefConvertibleToValue:
		if len(op.Out) != 1 {
			return false
		}
		inner := typeinfo.Extract(op.Out[0])
		return inner.Ref != nil && convertsToValue(inner.Ref, tr)
	case capability.ResultDerefYieldsRef:
		if len(op.Out) != 1 {
			return false
		}
		inner := typeinfo.Extract(op.Out[0])
		return inner.Ref != nil && tr.Ref != nil && inner.Ref == tr.Ref
	case capability.ResultDistance:
		return len(op.Out) == 1 && op.Out[0] == intType
	}
	return false
}

// convertsToValue treats a pointer result as the Go spelling of a reference:
// *E converts to the value type E by dereferencing.
func convertsToValue(rt reflect.Type, tr typeinfo.Traits) bool {
	if tr.Value == nil {
		return false
	}
	if rt.ConvertibleTo(tr.Value) {
		return true
	}
	return rt.Kind() == reflect.Pointer && rt.Elem().ConvertibleTo(tr.Value)
}
