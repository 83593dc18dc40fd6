package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func TestApplyReplacement(t *testing.T) {
	export := class("yfiles.view.SvgExport", func(t *graph.Type) {
		t.Methods = []*graph.Method{
			method("exportSvg", "Element", param("component", "yfiles.view.CanvasComponent")),
		}
		t.StaticMethods = []*graph.Method{
			method("exportSvgString", "string", param("svg", "Element")),
		}
	})
	g := newGraph(t, export)

	require.NoError(t, applyReplacement(g, TypeReplacement{
		Type: "SvgExport", Kind: KindReturn, Member: "exportSvg", From: "Element", To: "SVGSVGElement",
	}))
	assert.Equal(t, "SVGSVGElement", export.Methods[0].Returns.Type)

	require.NoError(t, applyReplacement(g, TypeReplacement{
		Type: "SvgExport", Kind: KindParameter, Member: "exportSvgString", Parameter: "svg", From: "Element", To: "SVGElement",
	}))
	assert.Equal(t, "SVGElement", export.StaticMethods[0].Parameters[0].Type)

	// the pre-state no longer holds
	err := applyReplacement(g, TypeReplacement{
		Type: "SvgExport", Kind: KindReturn, Member: "exportSvg", From: "Element", To: "SVGSVGElement",
	})
	assert.True(t, errors.IsInvariantViolation(err))
	assert.Equal(t, "yfiles.view.SvgExport.exportSvg", errors.Locator(err))

	err = applyReplacement(g, TypeReplacement{Type: "SvgExport", Kind: KindProperty, Member: "missing", To: "any"})
	assert.True(t, errors.IsLookupError(err))
}

func TestFixMethodParameterOptionality(t *testing.T) {
	hover := class("yfiles.input.MouseHoverInputMode", func(t *graph.Type) {
		t.Methods = []*graph.Method{
			method("onShow", "", param("content", "Object", graph.ModOptional)),
			method("show", "", param("location", "yfiles.geometry.Point"), param("content", "Object", graph.ModOptional)),
		}
	})
	placer := class("yfiles.layout.GridNodePlacer", func(t *graph.Type) {
		t.Constructors = []*graph.Constructor{
			{},
			{Parameters: []*graph.Parameter{param("spacing", "number")}},
			{Parameters: []*graph.Parameter{param("spacing", "number"), param("alignment", "number")}},
		}
	})
	candidate := class("yfiles.layout.PortCandidate", func(t *graph.Type) {
		t.StaticMethods = []*graph.Method{
			method("createCandidate", "yfiles.layout.PortCandidate", param("directionMask", "yfiles.layout.PortDirections")),
			method("createCandidate", "yfiles.layout.PortCandidate", param("side", "yfiles.layout.PortSide")),
			method("createCandidate", "yfiles.layout.PortCandidate", param("direction", "yfiles.layout.PortDirections"), param("cost", "number")),
		}
	})
	g := newGraph(t, hover, placer, candidate)

	require.NoError(t, fixMethodParameterOptionality(testContext(g)))

	assert.False(t, hover.Methods[0].Parameters[0].Optional())
	assert.False(t, hover.Methods[1].Parameters[1].Optional())

	require.Len(t, placer.Constructors, 1)
	for _, p := range placer.Constructors[0].Parameters {
		assert.True(t, p.Optional(), p.Name)
	}

	require.Len(t, candidate.StaticMethods, 2)
	assert.True(t, candidate.StaticMethods[1].Parameters[1].Optional())
}

func TestFixMethodParameterOptionality_ProgressiveSkipsLayoutFixes(t *testing.T) {
	hover := class("yfiles.input.MouseHoverInputMode", func(t *graph.Type) {
		t.Methods = []*graph.Method{
			method("onShow", "", param("content", "Object", graph.ModOptional)),
			method("show", "", param("content", "Object", graph.ModOptional)),
		}
	})
	ctx := testContext(newGraph(t, hover))
	ctx.Mode = ModeProgressive

	require.NoError(t, fixMethodParameterOptionality(ctx))
}

func TestFixMethodGenericBounds(t *testing.T) {
	view := iface("yfiles.graph.IFoldingView", func(t *graph.Type) {
		m1 := method("getMasterItem", "T", param("item", "T"))
		m1.TypeParameters = []*graph.TypeParameter{{Name: "T"}}
		m2 := method("getViewItem", "T", param("item", "T"))
		m2.TypeParameters = []*graph.TypeParameter{{Name: "T"}}
		t.Methods = []*graph.Method{m1, m2}
	})
	g := newGraph(t, view)

	require.NoError(t, fixMethodGenericBounds(testContext(g)))
	for _, m := range view.Methods {
		assert.Equal(t, []string{"yfiles.graph.IModelItem"}, m.TypeParameters[0].Bounds)
	}

	view.Methods[1].TypeParameters = nil
	assert.True(t, errors.IsInvariantViolation(fixMethodGenericBounds(testContext(g))))
}

func TestAddMissedMethod(t *testing.T) {
	m := missedMethod(MissedMethod{
		MethodLocator: MethodLocator{"VoidPathGeometry", "getTangent"},
		Parameters:    []MissedParameter{{Name: "ratio", TypeName: "number"}},
		Result:        &MissedResult{TypeName: "yfiles.geometry.Tangent", Modifiers: []string{"canbenull"}},
	})

	assert.Equal(t, "getTangent", m.Name)
	assert.True(t, m.Modifiers.Has(graph.ModPublic))
	assert.True(t, m.Modifiers.Has(graph.ModCanBeNull))
	require.Len(t, m.Parameters, 1)
	assert.Equal(t, "yfiles.geometry.Tangent", m.ReturnType())

	geometry := class("yfiles.styles.VoidPathGeometry", func(t *graph.Type) { t.Methods = []*graph.Method{m} })
	err := geometry.AddMethod(missedMethod(MissedMethod{
		MethodLocator: MethodLocator{"VoidPathGeometry", "getTangent"},
		Parameters:    []MissedParameter{{Name: "r", TypeName: "number"}},
	}))
	assert.True(t, errors.IsInvariantViolation(err))
}
