// Package capability defines the catalogue of cursor capabilities: named
// roles, the extension relationships between them, and the atomic
// requirements a candidate type must meet for each role. The catalogue is
// data, not code; verification engines interpret it against extracted type
// traits. Definitions are immutable once a Catalogue is built.
package capability

import "fmt"

// ID uniquely identifies a capability in a catalogue.
type ID string

// Built-in capability identifiers.
const (
	DefaultConstructible ID = "DefaultConstructible"
	EqualityComparable   ID = "EqualityComparable"
	Cursor               ID = "Cursor"
	InputCursor          ID = "InputCursor"
	ForwardCursor        ID = "ForwardCursor"
	BidirectionalCursor  ID = "BidirectionalCursor"
	RandomAccessCursor   ID = "RandomAccessCursor"
)

// CatalogueVersion is the semantic version of the built-in taxonomy. Manifest
// files may pin a constraint against it.
const CatalogueVersion = "1.0.0"

// Capability is a named role: the bases it extends plus the requirements it
// adds on top of them.
type Capability struct {
	ID       ID
	Extends  []ID
	Requires []Requirement
}

// Kind discriminates how a requirement is evaluated.
type Kind int

const (
	// KindProperty checks a structural property of the type itself.
	KindProperty Kind = iota
	// KindMethod checks an operation: name, parameters, and result rule.
	KindMethod
)

// Property enumerates the structural properties a type can be required to
// exhibit.
type Property int

const (
	PropNone Property = iota
	PropDefaultConstructible
	PropCopyConstructible
	PropCopyAssignable
	PropDestructible
	PropSwappable
	PropEqualityComparable
	PropInequalityComparable
)

// ParamKind describes the parameter list of a required method.
type ParamKind int

const (
	// ParamNone requires a niladic method.
	ParamNone ParamKind = iota
	// ParamSelf requires exactly one parameter of the candidate type.
	ParamSelf
	// ParamDistance requires exactly one int parameter.
	ParamDistance
)

// ResultRule constrains what a required method must return. Reference and
// value types are the ones derived from the candidate's Deref method.
type ResultRule int

const (
	// ResultNone only requires the method to exist with the right parameters.
	ResultNone ResultRule = iota
	// ResultSelfRef requires a pointer to the candidate type.
	ResultSelfRef
	// ResultSelfValue requires the candidate type itself, by value.
	ResultSelfValue
	// ResultBool requires a boolean.
	ResultBool
	// ResultReadable requires exactly one result of any type.
	ResultReadable
	// ResultConvertibleToValue requires the result to convert to the value type.
	ResultConvertibleToValue
	// ResultConvertibleToRef requires the result to convert to the reference type.
	ResultConvertibleToRef
	// ResultConvertibleToSelf requires the result to convert to the candidate type.
	ResultConvertibleToSelf
	// ResultDerefConvertibleToValue requires the result to be dereferenceable
	// with a result convertible to the value type.
	ResultDerefConvertibleToValue
	// ResultDerefYieldsRef requires the result to be dereferenceable with the
	// exact reference type as its result.
	ResultDerefYieldsRef
	// ResultDistance requires the distance type (int).
	ResultDistance
)

// Requirement is an atomic, checkable fact about a candidate type.
type Requirement struct {
	Kind   Kind
	Prop   Property
	Method string
	Param  ParamKind
	Result ResultRule

	// Desc names the requirement in violations, e.g. "pre-decrement not
	// available".
	Desc string

	// Origin is the capability that declared the requirement. It is set by
	// Catalogue.Flatten and ignored (and overwritten) in definitions.
	Origin ID
}

// Key returns the dedupe identity of a requirement. Two capabilities in an
// extension chain may state the same fact; the flattened set keeps the first.
func (r Requirement) Key() string {
	if r.Kind == KindProperty {
		return fmt.Sprintf("prop/%d", r.Prop)
	}
	return fmt.Sprintf("method/%s/%d/%d", r.Method, r.Param, r.Result)
}

// Method constructs a method requirement.
func Method(name string, param ParamKind, result ResultRule, desc string) Requirement {
	return Requirement{Kind: KindMethod, Method: name, Param: param, Result: result, Desc: desc}
}

// Structural constructs a property requirement.
func Structural(prop Property, desc string) Requirement {
	return Requirement{Kind: KindProperty, Prop: prop, Desc: desc}
}
