package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorkit/cursorkit/capability"
)

func TestNew_RejectsCycle(t *testing.T) {
	_, err := capability.New(
		capability.Capability{ID: "A", Extends: []capability.ID{"B"}},
		capability.Capability{ID: "B", Extends: []capability.ID{"A"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, capability.ErrCycle)
}

func TestNew_RejectsSelfExtension(t *testing.T) {
	_, err := capability.New(
		capability.Capability{ID: "A", Extends: []capability.ID{"A"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, capability.ErrCycle)
}

func TestNew_RejectsUnknownBase(t *testing.T) {
	_, err := capability.New(
		capability.Capability{ID: "A", Extends: []capability.ID{"Missing"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, capability.ErrUnknownCapability)
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := capability.New(
		capability.Capability{ID: "A"},
		capability.Capability{ID: "A"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, capability.ErrDuplicateCapability)
}

func TestNew_RejectsEmptyID(t *testing.T) {
	_, err := capability.New(capability.Capability{})
	require.Error(t, err)
	assert.ErrorIs(t, err, capability.ErrInvalidDefinition)
}

func TestFlatten_UnknownID(t *testing.T) {
	cat := capability.Builtins()
	_, err := cat.Flatten("NoSuchCapability")
	assert.ErrorIs(t, err, capability.ErrUnknownCapability)
}

func TestFlatten_RootFirst(t *testing.T) {
	cat := capability.Builtins()

	tests := []struct {
		name        string
		id          capability.ID
		firstOrigin capability.ID
	}{
		{"InputCursor starts at EqualityComparable", capability.InputCursor, capability.EqualityComparable},
		{"ForwardCursor starts at DefaultConstructible", capability.ForwardCursor, capability.DefaultConstructible},
		{"BidirectionalCursor starts at DefaultConstructible", capability.BidirectionalCursor, capability.DefaultConstructible},
		{"Cursor starts at itself", capability.Cursor, capability.Cursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs, err := cat.Flatten(tt.id)
			require.NoError(t, err)
			require.NotEmpty(t, reqs)
			assert.Equal(t, tt.firstOrigin, reqs[0].Origin)
		})
	}
}

func TestFlatten_DedupesRestatedRequirements(t *testing.T) {
	cat := capability.Builtins()

	// InputCursor restates Cursor's pre-increment rule; the union keeps one
	// copy, attributed to the base that stated it first.
	reqs, err := cat.Flatten(capability.InputCursor)
	require.NoError(t, err)

	var preIncrement []capability.Requirement
	for _, r := range reqs {
		if r.Kind == capability.KindMethod && r.Method == "Next" && r.Result == capability.ResultSelfRef {
			preIncrement = append(preIncrement, r)
		}
	}
	require.Len(t, preIncrement, 1)
	assert.Equal(t, capability.Cursor, preIncrement[0].Origin)
}

func TestFlatten_IsSupersetOfBases(t *testing.T) {
	cat := capability.Builtins()

	keys := func(id capability.ID) map[string]struct{} {
		reqs, err := cat.Flatten(id)
		require.NoError(t, err)
		out := make(map[string]struct{}, len(reqs))
		for _, r := range reqs {
			out[r.Key()] = struct{}{}
		}
		return out
	}

	for _, id := range cat.IDs() {
		derived := keys(id)
		for _, base := range cat.Ancestors(id) {
			for key := range keys(base) {
				_, ok := derived[key]
				assert.True(t, ok, "%s is missing requirement %s inherited from %s", id, key, base)
			}
		}
	}
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	base := capability.Builtins()
	before := len(base.IDs())

	extended, err := base.With(capability.Capability{
		ID:      "OrderedCursor",
		Extends: []capability.ID{capability.InputCursor},
	})
	require.NoError(t, err)

	assert.Len(t, base.IDs(), before)
	assert.Len(t, extended.IDs(), before+1)

	_, ok := extended.Get("OrderedCursor")
	assert.True(t, ok)
}

func TestAncestors(t *testing.T) {
	cat := capability.Builtins()
	got := cat.Ancestors(capability.RandomAccessCursor)
	assert.ElementsMatch(t, []capability.ID{
		capability.DefaultConstructible,
		capability.EqualityComparable,
		capability.Cursor,
		capability.InputCursor,
		capability.ForwardCursor,
		capability.BidirectionalCursor,
	}, got)
}
