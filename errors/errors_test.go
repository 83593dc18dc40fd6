package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(ErrLookup, "property %s.%s", "yfiles.graph.IGraph", "nodes")
	err = Wrap(err, "pass fix-property-nullability")

	assert.True(t, Is(err, ErrLookup))
	assert.False(t, Is(err, ErrSchemaViolation))
	assert.Contains(t, err.Error(), "pass fix-property-nullability")
	assert.Contains(t, err.Error(), "yfiles.graph.IGraph.nodes")
	assert.Contains(t, err.Error(), "lookup failed")
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"lookup", NewLookupError("T.m", "method %s not found", "m"), IsLookupError},
		{"invariant", NewInvariantViolation("T.p", "already nullable"), IsInvariantViolation},
		{"schema", NewSchemaViolation("T.p", "unknown type %q", "Foo"), IsSchemaViolation},
		{"heuristic", NewUnresolvedHeuristic("T.p", "cannot classify %s", "p"), IsUnresolvedHeuristic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(Wrap(tt.err, "outer")))
			assert.False(t, tt.check(New("unrelated")))
			assert.False(t, tt.check(nil))
		})
	}
}

func TestLocatorDetail(t *testing.T) {
	err := NewInvariantViolation("yfiles.layout.Layout.nodeCount", "flag %s already set", "canbenull")
	err = Wrap(err, "outer")

	assert.Equal(t, "yfiles.layout.Layout.nodeCount", Locator(err))
	assert.Equal(t, "", Locator(New("plain")))
}

func TestTableHints(t *testing.T) {
	err := NewLookupError("T.x", "missing")
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "correction tables")

	assert.Empty(t, GetAllHints(NewSchemaViolation("T.x", "bad")))
}

func TestWithHintf(t *testing.T) {
	err := WithHintf(New("error"), "raise workers to %d", 8)

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "raise workers to 8", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleNewLookupError() {
	err := NewLookupError("yfiles.graph.IGraph.nodes", "property %s not found", "nodes")
	fmt.Println(err)
	// Output: property nodes not found: lookup failed
}

func ExampleWrap() {
	err := Wrap(ErrSchemaViolation, "feed version 1.0.0")
	fmt.Println(err)
	// Output: feed version 1.0.0: schema violation
}
