package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func TestRefineNumbers(t *testing.T) {
	layout := class("yfiles.layout.BalloonLayout", func(t *graph.Type) {
		t.Properties = []*graph.Property{
			prop("nodeCount", "number"),
			prop("aspectRatio", "number"),
			prop("minimumNodeDistance", "number"),
			prop("preferredChildWedge", "string"),
		}
		t.Methods = []*graph.Method{
			method("getEdgeCost", "number", param("edgeIndex", "number"), param("scale", "number")),
			method("countComponents", "number"),
		}
	})
	g := newGraph(t, layout)

	require.NoError(t, refineNumbers(testContext(g)))

	assert.Equal(t, "Int", layout.Properties[0].Type)
	assert.Equal(t, "Double", layout.Properties[1].Type)
	assert.Equal(t, "Int", layout.Properties[2].Type)
	assert.Equal(t, "string", layout.Properties[3].Type)

	cost := layout.Methods[0]
	assert.Equal(t, "Double", cost.Returns.Type)
	assert.Equal(t, "Int", cost.Parameters[0].Type)
	assert.Equal(t, "Double", cost.Parameters[1].Type)
	assert.Equal(t, "Int", layout.Methods[1].Returns.Type)
}

func TestRefineNumbers_UnresolvedPropertyIsFatal(t *testing.T) {
	shape := class("yfiles.styles.ShapeNodeStyle", func(t *graph.Type) {
		t.Properties = []*graph.Property{prop("wobble", "number")}
	})

	err := refineNumbers(testContext(newGraph(t, shape)))
	require.Error(t, err)
	assert.True(t, errors.IsUnresolvedHeuristic(err))
	assert.Equal(t, "yfiles.styles.ShapeNodeStyle.wobble", errors.Locator(err))
}

func TestRefineNumbers_UnresolvedReturnIsFatal(t *testing.T) {
	shape := class("yfiles.styles.ShapeNodeStyle", func(t *graph.Type) {
		t.Methods = []*graph.Method{method("wobble", "number")}
	})
	assert.True(t, errors.IsUnresolvedHeuristic(refineNumbers(testContext(newGraph(t, shape)))))
}

func TestRefineNumbers_UnresolvedParameter(t *testing.T) {
	build := func() *graph.Type {
		return class("yfiles.view.CanvasComponent", func(t *graph.Type) {
			t.Methods = []*graph.Method{method("zoomTo", "", param("wobble", "number"))}
		})
	}

	lenient := build()
	require.NoError(t, refineNumbers(testContext(newGraph(t, lenient))))
	assert.Equal(t, "Double", lenient.Methods[0].Parameters[0].Type)

	strict := build()
	ctx := testContext(newGraph(t, strict))
	ctx.StrictNumbers = true
	err := refineNumbers(ctx)
	assert.True(t, errors.IsUnresolvedHeuristic(err))
	assert.Equal(t, "yfiles.view.CanvasComponent.zoomTo.wobble", errors.Locator(err))
}

func TestPropertyNumberType(t *testing.T) {
	line := &graph.Type{ID: "yfiles.algorithms.AffineLine", Name: "AffineLine"}
	other := &graph.Type{ID: "yfiles.algorithms.Other", Name: "Other"}

	tests := []struct {
		owner *graph.Type
		name  string
		want  string
	}{
		{line, "a", "Double"},
		{line, "bendCount", "Int"},
		{other, "edgeCost", "Double"},
		{other, "minimumNodeDistance", "Double"},
		{other, "layerCount", "Int"},
		{other, "zoom", "Double"},
		{other, "priority", "Int"},
	}
	for _, tt := range tests {
		got, err := propertyNumberType(tt.owner, tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := propertyNumberType(other, "a")
	assert.True(t, errors.IsUnresolvedHeuristic(err))
}

func TestReturnNumberType_VectorAndSegment(t *testing.T) {
	vector := &graph.Type{ID: "yfiles.algorithms.YVector", Name: "YVector"}
	segment := &graph.Type{ID: "yfiles.algorithms.LineSegment", Name: "LineSegment"}

	got, err := returnNumberType(vector, "anything")
	require.NoError(t, err)
	assert.Equal(t, "Double", got)

	got, err = returnNumberType(segment, "length")
	require.NoError(t, err)
	assert.Equal(t, "Double", got)

	got, err = returnNumberType(segment, "indexOf")
	require.NoError(t, err)
	assert.Equal(t, "Int", got)
}
