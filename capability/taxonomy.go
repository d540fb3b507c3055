package capability

// Builtins returns the fixed cursor taxonomy. The extension graph is a chain
// (Cursor through RandomAccessCursor) with two independent leaves mixed into
// it: EqualityComparable at InputCursor and DefaultConstructible at
// ForwardCursor.
//
// The candidate surface is a method convention, since Go has no operator
// overloading: Deref/Next/PostNext/Prev/PostPrev for traversal,
// Advance/Offset/Distance/At/Less for random access, Equal (or reflect
// comparability) for equality. The reference type is Deref's result; the
// value type is the reference type with one pointer level removed; the
// distance type is int.
func Builtins() *Catalogue {
	c, err := New(
		Capability{
			ID: DefaultConstructible,
			Requires: []Requirement{
				Structural(PropDefaultConstructible, "type is not default-constructible"),
			},
		},
		Capability{
			ID: EqualityComparable,
			Requires: []Requirement{
				Structural(PropEqualityComparable, "equality operator not available"),
			},
		},
		Capability{
			ID: Cursor,
			Requires: []Requirement{
				Structural(PropCopyConstructible, "type is not copy-constructible"),
				Structural(PropCopyAssignable, "type is not copy-assignable"),
				Structural(PropDestructible, "type is not destructible"),
				Structural(PropSwappable, "type is not swappable"),
				Method("Deref", ParamNone, ResultNone, "dereference not available"),
				Method("Next", ParamNone, ResultSelfRef, "pre-increment does not return a reference to the cursor type"),
			},
		},
		Capability{
			ID:      InputCursor,
			Extends: []ID{EqualityComparable, Cursor},
			Requires: []Requirement{
				Structural(PropInequalityComparable, "inequality comparison does not yield a boolean"),
				Method("Deref", ParamNone, ResultReadable, "dereference does not yield a readable value"),
				Method("Deref", ParamNone, ResultConvertibleToValue, "dereference does not convert to the value type"),
				// Restates the Cursor rule; collapsed by the idempotent union.
				Method("Next", ParamNone, ResultSelfRef, "pre-increment does not return a reference to the cursor type"),
				Method("PostNext", ParamNone, ResultNone, "post-increment not available"),
				Method("PostNext", ParamNone, ResultDerefConvertibleToValue, "dereferenced post-increment does not convert to the value type"),
			},
		},
		Capability{
			ID:      ForwardCursor,
			Extends: []ID{DefaultConstructible, InputCursor},
			Requires: []Requirement{
				Method("PostNext", ParamNone, ResultSelfValue, "post-increment does not return a cursor value"),
				Method("PostNext", ParamNone, ResultDerefYieldsRef, "dereferenced post-increment does not yield the reference type"),
			},
		},
		Capability{
			ID:      BidirectionalCursor,
			Extends: []ID{ForwardCursor},
			Requires: []Requirement{
				Method("Prev", ParamNone, ResultSelfRef, "pre-decrement not available"),
				Method("PostPrev", ParamNone, ResultConvertibleToSelf, "post-decrement does not convert to the cursor type"),
				Method("PostPrev", ParamNone, ResultDerefYieldsRef, "dereferenced post-decrement does not yield the reference type"),
			},
		},
		Capability{
			ID:      RandomAccessCursor,
			Extends: []ID{BidirectionalCursor},
			Requires: []Requirement{
				// Indexing first: it is the gap that distinguishes linked
				// structures, so it is the one a bidirectional cursor reports.
				Method("At", ParamDistance, ResultConvertibleToRef, "indexing operator not available"),
				Method("Advance", ParamDistance, ResultSelfRef, "compound advance does not return a reference to the cursor type"),
				Method("Offset", ParamDistance, ResultSelfValue, "offset does not return a cursor value"),
				Method("Distance", ParamSelf, ResultDistance, "distance between cursors is not the distance type"),
				Method("Less", ParamSelf, ResultBool, "ordering comparison does not yield a boolean"),
			},
		},
	)
	if err != nil {
		// The built-in taxonomy is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}
