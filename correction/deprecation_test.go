package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func deprecationTypes() map[string]*graph.Type {
	return map[string]*graph.Type{
		"HierarchicLayout": class("yfiles.hierarchic.HierarchicLayout", func(t *graph.Type) {
			t.Methods = []*graph.Method{
				method("createLayerConstraintFactory", "yfiles.hierarchic.ILayerConstraintFactory", param("graph", "yfiles.graph.IGraph")),
				method("createLayerConstraintFactory", "yfiles.hierarchic.ILayerConstraintFactory", param("graph", "yfiles.layout.LayoutGraph")),
				method("applyLayout", "", param("graph", "yfiles.graph.IGraph")),
			}
			t.StaticMethods = []*graph.Method{
				method("createSequenceConstraintFactory", "yfiles.hierarchic.ISequenceConstraintFactory", param("graph", "yfiles.graph.IGraph")),
			}
		}),
		"HierarchicLayoutData": class("yfiles.hierarchic.HierarchicLayoutData", func(t *graph.Type) {
			t.Properties = []*graph.Property{
				prop("layerConstraintFactory", "yfiles.hierarchic.ILayerConstraintFactory"),
				prop("sequenceConstraintFactory", "yfiles.hierarchic.ISequenceConstraintFactory"),
				prop("nodeHalos", "yfiles.layout.ItemMapping<yfiles.graph.INode,yfiles.layout.NodeHalo>"),
			}
		}),
		"EdgeRouter": class("yfiles.router.EdgeRouter", func(t *graph.Type) {
			t.Properties = []*graph.Property{
				prop("maximumPolylineSegmentRatio", "number"),
				prop("polylineRouting", "boolean"),
				prop("preferredPolylineSegmentLength", "number"),
				prop("rerouting", "boolean"),
			}
		}),
	}
}

func deprecationGraph(t *testing.T, types map[string]*graph.Type) *graph.Graph {
	return newGraph(t, types["HierarchicLayout"], types["HierarchicLayoutData"], types["EdgeRouter"])
}

func TestMarkDeprecated(t *testing.T) {
	types := deprecationTypes()
	g := deprecationGraph(t, types)

	require.NoError(t, markDeprecated(testContext(g)))

	deprecated := func(mods graph.Modifiers) bool { return mods.Has(graph.ModDeprecated) }

	layout := types["HierarchicLayout"]
	assert.True(t, deprecated(layout.Methods[0].Modifiers), "IGraph factory")
	assert.False(t, deprecated(layout.Methods[1].Modifiers), "LayoutGraph factory")
	assert.False(t, deprecated(layout.Methods[2].Modifiers))
	assert.True(t, deprecated(layout.StaticMethods[0].Modifiers))

	for _, typ := range []*graph.Type{types["HierarchicLayoutData"], types["EdgeRouter"]} {
		for _, p := range typ.Properties {
			want := p.Name != "nodeHalos" && p.Name != "rerouting"
			assert.Equal(t, want, deprecated(p.Modifiers), p.Name)
		}
	}

	// the flag is a set, so a second run keeps one copy
	require.NoError(t, markDeprecated(testContext(g)))
	assert.Equal(t, graph.Modifiers{graph.ModPublic, graph.ModDeprecated}, layout.Methods[0].Modifiers)
}

func TestMarkDeprecated_MissingTargets(t *testing.T) {
	tests := []struct {
		name        string
		breakGraph  func(types map[string]*graph.Type)
		wantLocator string
	}{
		{
			name: "layout type renamed",
			breakGraph: func(types map[string]*graph.Type) {
				types["HierarchicLayout"].Name = "HierarchicLayouter"
			},
			wantLocator: "HierarchicLayout",
		},
		{
			name: "deprecated property gone",
			breakGraph: func(types map[string]*graph.Type) {
				types["EdgeRouter"].Properties = types["EdgeRouter"].Properties[1:]
			},
			wantLocator: "yfiles.router.EdgeRouter.maximumPolylineSegmentRatio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types := deprecationTypes()
			tt.breakGraph(types)
			g := deprecationGraph(t, types)

			err := markDeprecated(testContext(g))
			require.Error(t, err)
			assert.True(t, errors.IsLookupError(err), err.Error())
			assert.Equal(t, tt.wantLocator, errors.Locator(err))
		})
	}
}
