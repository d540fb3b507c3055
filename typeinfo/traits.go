// Package typeinfo extracts the capability-relevant view of a candidate
// type: its operation set and structural properties. Extraction is pure and
// performs no allocation beyond the trait value itself; engines evaluate
// catalogue requirements against the result.
package typeinfo

import (
	"reflect"
	"sync"
)

// Traits is the derived view of a candidate type. Ref and Value mirror the
// reference and value types of the iterator-traits convention: Ref is the
// result of the Deref method, Value is Ref with one pointer level removed.
// Both are nil when the type has no readable Deref.
type Traits struct {
	Type  reflect.Type
	Ref   reflect.Type
	Value reflect.Type
}

// Op is a method of the candidate with the receiver stripped from the
// parameter list, so interface and concrete methods look alike.
type Op struct {
	Name string
	In   []reflect.Type
	Out  []reflect.Type
}

// Extract derives the traits of t. A nil type yields zero traits.
func Extract(t reflect.Type) Traits {
	tr := Traits{Type: t}
	if t == nil {
		return tr
	}
	if op, ok := tr.Op("Deref"); ok && len(op.In) == 0 && len(op.Out) == 1 {
		tr.Ref = op.Out[0]
		tr.Value = tr.Ref
		if tr.Value.Kind() == reflect.Pointer {
			tr.Value = tr.Value.Elem()
		}
	}
	return tr
}

// For derives the traits of the type parameter.
func For[T any]() Traits {
	return Extract(reflect.TypeFor[T]())
}

// Name returns the candidate's type name as reflect renders it.
func (tr Traits) Name() string {
	if tr.Type == nil {
		return "<nil>"
	}
	return tr.Type.String()
}

// Op looks up a method by name against the candidate's full method set (the
// pointer method set for concrete types, the declared set for interfaces).
func (tr Traits) Op(name string) (Op, bool) {
	if tr.Type == nil {
		return Op{}, false
	}
	recv := tr.Type
	skip := 1
	switch recv.Kind() {
	case reflect.Interface:
		skip = 0
	case reflect.Pointer:
		// Already the pointer method set.
	default:
		recv = reflect.PointerTo(recv)
	}
	m, ok := recv.MethodByName(name)
	if !ok {
		return Op{}, false
	}
	ft := m.Type
	op := Op{Name: name}
	for i := skip; i < ft.NumIn(); i++ {
		op.In = append(op.In, ft.In(i))
	}
	for i := 0; i < ft.NumOut(); i++ {
		op.Out = append(op.Out, ft.Out(i))
	}
	return op, true
}

// DefaultConstructible reports whether the type has a usable zero value of
// its own. Interface types do not: an interface value is constructed from
// some concrete type, never from the interface itself.
func (tr Traits) DefaultConstructible() bool {
	return tr.Type != nil && tr.Type.Kind() != reflect.Interface
}

// Comparable reports whether == on two values of the type is safe.
// reflect.Type.Comparable is optimistic for interface kinds (comparison can
// panic depending on the dynamic value), so those are excluded.
func (tr Traits) Comparable() bool {
	return tr.Type != nil && tr.Type.Kind() != reflect.Interface && tr.Type.Comparable()
}

// Copyable reports whether a value of the type can be copied without
// duplicating lock state, in the spirit of vet's copylocks check.
func (tr Traits) Copyable() bool {
	return tr.Type != nil && !containsLock(tr.Type, make(map[reflect.Type]bool))
}

// Destructible reports whether the type is valid at all. Go's collector
// reclaims every value, so this only excludes the nil type; it exists
// because the taxonomy names destructibility explicitly.
func (tr Traits) Destructible() bool {
	return tr.Type != nil
}

var lockerType = reflect.TypeFor[sync.Locker]()

// containsLock walks value-embedded state looking for types whose pointer
// form implements sync.Locker (sync.Mutex and friends).
func containsLock(t reflect.Type, visited map[reflect.Type]bool) bool {
	if visited[t] {
		return false
	}
	visited[t] = true

	if t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(lockerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsLock(t.Field(i).Type, visited) {
				return true
			}
		}
	case reflect.Array:
		return containsLock(t.Elem(), visited)
	}
	return false
}
