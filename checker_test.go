package cursorkit_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cursorkit "github.com/cursorkit/cursorkit"
	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/cursors"
	"github.com/cursorkit/cursorkit/parser"
	"github.com/cursorkit/cursorkit/registry"
	"github.com/cursorkit/cursorkit/report"
)

var (
	sliceCursor = reflect.TypeFor[cursors.SliceCursor[int]]()
	listCursor  = reflect.TypeFor[cursors.ListCursor[int]]()
	chainCursor = reflect.TypeFor[cursors.ChainCursor[int]]()
)

func TestChecker_Check(t *testing.T) {
	c := cursorkit.NewChecker()

	assert.NoError(t, c.Check(sliceCursor, capability.RandomAccessCursor))

	err := c.Check(listCursor, capability.RandomAccessCursor)
	require.Error(t, err)
	assert.ErrorIs(t, err, capability.ErrUnsatisfied)
	assert.Contains(t, err.Error(), "indexing operator not available")
}

func TestChecker_CheckValue(t *testing.T) {
	c := cursorkit.NewChecker()
	assert.NoError(t, c.CheckValue(cursors.SliceBegin([]int{1}), capability.InputCursor))
}

func TestChecker_Satisfies(t *testing.T) {
	c := cursorkit.NewChecker()
	assert.True(t, c.Satisfies(chainCursor, capability.ForwardCursor))
	assert.False(t, c.Satisfies(chainCursor, capability.BidirectionalCursor))
	// Unknown capabilities are simply not satisfied.
	assert.False(t, c.Satisfies(chainCursor, "NoSuchCapability"))
}

func TestChecker_ViolationHandler(t *testing.T) {
	type call struct {
		typeName    string
		id          capability.ID
		requirement string
	}
	var calls []call

	c := cursorkit.NewChecker(
		cursorkit.WithViolationHandler(func(typeName string, id capability.ID, requirement string) {
			calls = append(calls, call{typeName, id, requirement})
		}),
	)

	require.Error(t, c.Check(chainCursor, capability.BidirectionalCursor))
	require.Len(t, calls, 1)
	assert.Equal(t, "cursors.ChainCursor[int]", calls[0].typeName)
	assert.Equal(t, capability.BidirectionalCursor, calls[0].id)
	assert.Equal(t, "pre-decrement not available", calls[0].requirement)

	// Satisfied checks never invoke the handler.
	calls = nil
	require.NoError(t, c.Check(chainCursor, capability.ForwardCursor))
	assert.Empty(t, calls)
}

func TestChecker_ExhaustiveHandlerSeesEveryViolation(t *testing.T) {
	var count int
	c := cursorkit.NewChecker(
		cursorkit.WithExhaustive(true),
		cursorkit.WithViolationHandler(func(string, capability.ID, string) {
			count++
		}),
	)

	opaque := reflect.TypeFor[cursors.Opaque]()
	require.Error(t, c.Check(opaque, capability.ForwardCursor))
	assert.Greater(t, count, 1)
}

func TestChecker_MustSatisfy(t *testing.T) {
	c := cursorkit.NewChecker()

	assert.NotPanics(t, func() {
		c.MustSatisfy(sliceCursor, capability.RandomAccessCursor)
	})
	assert.Panics(t, func() {
		c.MustSatisfy(listCursor, capability.RandomAccessCursor)
	})
}

func TestChecker_GapReport(t *testing.T) {
	c := cursorkit.NewChecker()
	rep, err := c.GapReport(listCursor, report.WithFilter("*Cursor"))
	require.NoError(t, err)
	assert.Len(t, rep.Entries, 5)
	assert.Contains(t, rep.Satisfied(), capability.BidirectionalCursor)
}

func TestChecker_CustomCapabilityVisibleAfterRegistration(t *testing.T) {
	c := cursorkit.NewChecker()

	require.NoError(t, c.Registry().Register(capability.Capability{
		ID:      "OrderedCursor",
		Extends: []capability.ID{capability.InputCursor},
		Requires: []capability.Requirement{
			capability.Method("Less", capability.ParamSelf, capability.ResultBool,
				"ordering comparison does not yield a boolean"),
		},
	}))

	assert.NoError(t, c.Check(sliceCursor, "OrderedCursor"))

	err := c.Check(listCursor, "OrderedCursor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering comparison does not yield a boolean")
}

func TestChecker_SharedRegistry(t *testing.T) {
	reg := registry.NewRegistry()
	c := cursorkit.NewChecker(cursorkit.WithRegistry(reg))
	assert.Same(t, reg, c.Registry())
}

func TestRunManifest(t *testing.T) {
	c := cursorkit.NewChecker()
	subjects := cursors.Subjects()

	m, err := parser.NewYamlManifestParser().Parse([]byte(`
catalogueVersion: ">= 1.0.0"
checks:
  - type: SliceCursor
    capability: RandomAccessCursor
    want: satisfied
  - type: ListCursor
    capability: BidirectionalCursor
    want: satisfied
  - type: ListCursor
    capability: RandomAccessCursor
    want: unsatisfied
  - type: Opaque
    capability: "*"
    want: unsatisfied
`))
	require.NoError(t, err)

	mismatches, err := c.RunManifest(m, subjects)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestRunManifest_ReportsMismatches(t *testing.T) {
	c := cursorkit.NewChecker()

	m, err := parser.NewYamlManifestParser().Parse([]byte(`
checks:
  - type: ChainCursor
    capability: BidirectionalCursor
    want: satisfied
`))
	require.NoError(t, err)

	mismatches, err := c.RunManifest(m, cursors.Subjects())
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "ChainCursor", mismatches[0].Type)
	assert.Equal(t, capability.BidirectionalCursor, mismatches[0].Capability)
	assert.Equal(t, "pre-decrement not available", mismatches[0].Reason)
	assert.Contains(t, mismatches[0].String(), "pre-decrement")
}

func TestRunManifest_VersionGate(t *testing.T) {
	c := cursorkit.NewChecker()
	m := &parser.Manifest{
		CatalogueVersion: ">= 9.0.0",
		Checks:           []parser.Check{{Type: "SliceCursor", Capability: "Cursor", Want: parser.WantSatisfied}},
	}
	_, err := c.RunManifest(m, cursors.Subjects())
	assert.Error(t, err)
}

func TestRunManifest_UnmatchedTypePattern(t *testing.T) {
	c := cursorkit.NewChecker()
	m := &parser.Manifest{
		Checks: []parser.Check{{Type: "NoSuchSubject", Capability: "Cursor", Want: parser.WantSatisfied}},
	}
	_, err := c.RunManifest(m, cursors.Subjects())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subject matches")
}
