package report_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/cursors"
	"github.com/cursorkit/cursorkit/report"
	"github.com/cursorkit/cursorkit/verify"
)

func TestAnalyze_ListCursor(t *testing.T) {
	eng := verify.New(verify.WithFailFast(false))
	rep, err := report.Analyze(eng, reflect.TypeFor[cursors.ListCursor[int]]())
	require.NoError(t, err)

	assert.Equal(t, "cursors.ListCursor[int]", rep.Type)
	assert.Equal(t, capability.CatalogueVersion, rep.CatalogueVersion)
	assert.Len(t, rep.Entries, 7)

	satisfied := rep.Satisfied()
	assert.Contains(t, satisfied, capability.BidirectionalCursor)
	assert.NotContains(t, satisfied, capability.RandomAccessCursor)

	for _, e := range rep.Entries {
		if e.Capability == capability.RandomAccessCursor {
			assert.Contains(t, e.Violations, "indexing operator not available")
		}
		if e.Satisfied {
			assert.Empty(t, e.Violations)
		}
	}
}

func TestAnalyze_Filter(t *testing.T) {
	eng := verify.New(verify.WithFailFast(false))
	rep, err := report.Analyze(eng, reflect.TypeFor[cursors.SliceCursor[int]](),
		report.WithFilter("*Cursor"))
	require.NoError(t, err)

	assert.Len(t, rep.Entries, 5)
	for _, e := range rep.Entries {
		assert.NotEqual(t, capability.DefaultConstructible, e.Capability)
		assert.NotEqual(t, capability.EqualityComparable, e.Capability)
	}
}

func TestAnalyze_InvalidFilter(t *testing.T) {
	eng := verify.New()
	_, err := report.Analyze(eng, reflect.TypeFor[cursors.SliceCursor[int]](),
		report.WithFilter("[invalid"))
	assert.Error(t, err)
}

func TestReport_YAML(t *testing.T) {
	eng := verify.New(verify.WithFailFast(false))
	rep, err := report.Analyze(eng, reflect.TypeFor[cursors.ChainCursor[int]]())
	require.NoError(t, err)

	out, err := rep.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "capabilities:")
	assert.Contains(t, string(out), "ForwardCursor")
	assert.Contains(t, string(out), "pre-decrement not available")
}
