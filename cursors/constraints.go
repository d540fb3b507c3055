package cursors

import "reflect"

// Generic bounds for the cursor roles. These are the build-time counterpart
// of the runtime verdict: a generic algorithm constrained on one of these
// interfaces refuses to compile against a type missing the surface, and the
// compiler names the missing method.
//
// T is the cursor type itself, R its reference type. Cursor methods mutate,
// so the bounds are satisfied by *T.

// Input is the surface of a single-pass readable cursor.
type Input[T, R any] interface {
	Deref() R
	Next() *T
}

// Forward adds multi-pass copies: post-increment hands back a real cursor.
type Forward[T, R any] interface {
	Input[T, R]
	PostNext() T
}

// Bidirectional adds backward movement.
type Bidirectional[T, R any] interface {
	Forward[T, R]
	Prev() *T
	PostPrev() T
}

// RandomAccess adds constant-time jumps, indexing, and ordering.
type RandomAccess[T, R any] interface {
	Bidirectional[T, R]
	Advance(n int) *T
	Offset(n int) T
	Distance(o T) int
	At(n int) R
	Less(o T) bool
}

// Compile-time conformance of the built-in cursors to their intended rungs.
var (
	_ RandomAccess[SliceCursor[int], *int] = (*SliceCursor[int])(nil)
	_ Bidirectional[ListCursor[int], *int] = (*ListCursor[int])(nil)
	_ Forward[ChainCursor[int], *int]      = (*ChainCursor[int])(nil)
	_ Input[ScanCursor, byte]              = (*ScanCursor)(nil)
)

// Subjects returns the built-in verification subjects by name,
// instantiated for int elements where generic. The CLI and expectation
// manifests resolve type names against this table.
func Subjects() map[string]reflect.Type {
	return map[string]reflect.Type{
		"SliceCursor":   reflect.TypeFor[SliceCursor[int]](),
		"ListCursor":    reflect.TypeFor[ListCursor[int]](),
		"ChainCursor":   reflect.TypeFor[ChainCursor[int]](),
		"ScanCursor":    reflect.TypeFor[ScanCursor](),
		"SinkCursor":    reflect.TypeFor[SinkCursor[int]](),
		"GuardedCursor": reflect.TypeFor[GuardedCursor[int]](),
		"Opaque":        reflect.TypeFor[Opaque](),
	}
}
