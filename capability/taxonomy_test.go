package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorkit/cursorkit/capability"
)

func TestBuiltins_Shape(t *testing.T) {
	cat := capability.Builtins()

	assert.Equal(t, []capability.ID{
		capability.DefaultConstructible,
		capability.EqualityComparable,
		capability.Cursor,
		capability.InputCursor,
		capability.ForwardCursor,
		capability.BidirectionalCursor,
		capability.RandomAccessCursor,
	}, cat.IDs())

	tests := []struct {
		id      capability.ID
		extends []capability.ID
	}{
		{capability.DefaultConstructible, nil},
		{capability.EqualityComparable, nil},
		{capability.Cursor, nil},
		{capability.InputCursor, []capability.ID{capability.EqualityComparable, capability.Cursor}},
		{capability.ForwardCursor, []capability.ID{capability.DefaultConstructible, capability.InputCursor}},
		{capability.BidirectionalCursor, []capability.ID{capability.ForwardCursor}},
		{capability.RandomAccessCursor, []capability.ID{capability.BidirectionalCursor}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			def, ok := cat.Get(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.extends, def.Extends)
			assert.NotEmpty(t, def.Requires)
		})
	}
}

func TestBuiltins_RandomAccessChecksIndexingFirst(t *testing.T) {
	cat := capability.Builtins()
	def, ok := cat.Get(capability.RandomAccessCursor)
	require.True(t, ok)
	require.NotEmpty(t, def.Requires)
	assert.Equal(t, "At", def.Requires[0].Method)
}

func TestBuiltins_PostDecrementReturnsCursorValue(t *testing.T) {
	cat := capability.Builtins()
	def, ok := cat.Get(capability.BidirectionalCursor)
	require.True(t, ok)

	var postPrev *capability.Requirement
	for i, req := range def.Requires {
		if req.Method == "PostPrev" && req.Result == capability.ResultConvertibleToSelf {
			postPrev = &def.Requires[i]
			break
		}
	}
	require.NotNil(t, postPrev, "post-decrement must yield a value convertible to the cursor type")
	assert.Equal(t, capability.ParamNone, postPrev.Param)
}

func TestBuiltins_ResultRulesAreDistinct(t *testing.T) {
	rules := []capability.ResultRule{
		capability.ResultNone,
		capability.ResultSelfRef,
		capability.ResultSelfValue,
		capability.ResultBool,
		capability.ResultReadable,
		capability.ResultConvertibleToValue,
		capability.ResultConvertibleToRef,
		capability.ResultConvertibleToSelf,
		capability.ResultDerefConvertibleToValue,
		capability.ResultDerefYieldsRef,
		capability.ResultDistance,
	}
	seen := make(map[capability.ResultRule]bool, len(rules))
	for _, r := range rules {
		assert.False(t, seen[r], "result rule %d declared twice", r)
		seen[r] = true
	}
}

func TestBuiltins_EveryRequirementHasDescription(t *testing.T) {
	cat := capability.Builtins()
	for _, id := range cat.IDs() {
		def, _ := cat.Get(id)
		for _, req := range def.Requires {
			assert.NotEmpty(t, req.Desc, "%s has an undescribed requirement", id)
		}
	}
}
