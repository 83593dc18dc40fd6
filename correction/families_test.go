package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func TestFixTemplates(t *testing.T) {
	stringStyle := class("yfiles.styles.StringTemplateNodeStyle", func(t *graph.Type) {
		t.StaticProperties = []*graph.Property{prop("CONVERTERS", "Object", graph.ModStatic), prop("trusted", "boolean", graph.ModStatic)}
		t.StaticMethods = []*graph.Method{method("makeObservable", "", param("o", "Object"))}
		t.Properties = []*graph.Property{prop("svgContent", "string")}
	})
	portStyle := class("yfiles.styles.TemplatePortStyle", func(t *graph.Type) {
		t.StaticProperties = []*graph.Property{prop("CONVERTERS", "Object", graph.ModStatic)}
	})
	unrelated := class("yfiles.styles.ShapeNodeStyle", func(t *graph.Type) {
		t.Properties = []*graph.Property{prop("trusted", "boolean")}
	})
	g := newGraph(t, stringStyle, portStyle, unrelated)

	require.NoError(t, fixTemplates(testContext(g)))

	templates, err := g.Type("yfiles.styles.Templates")
	require.NoError(t, err)
	assert.Equal(t, "StringTemplateNodeStyle", templates.JSName())
	assert.Len(t, templates.StaticProperties, 2)
	assert.Len(t, templates.StaticMethods, 1)

	assert.Empty(t, stringStyle.StaticProperties)
	assert.Empty(t, stringStyle.StaticMethods)
	assert.Len(t, stringStyle.Properties, 1)
	assert.Empty(t, portStyle.StaticProperties)
	assert.Len(t, unrelated.Properties, 1)
}

func TestFixEdgeDirectedness(t *testing.T) {
	data := class("yfiles.hierarchic.HierarchicLayoutData", func(t *graph.Type) {
		t.Properties = []*graph.Property{prop("edgeDirectedness", "yfiles.layout.ItemMapping<yfiles.graph.IEdge,number>")}
	})
	layout := class("yfiles.hierarchic.HierarchicLayout", func(t *graph.Type) {
		t.Constants = []*graph.Constant{{Name: "EDGE_DIRECTEDNESS_DP_KEY", Type: "yfiles.algorithms.EdgeDpKey<number>"}}
	})
	g := newGraph(t, data, layout, class("yfiles.algorithms.Graph", nil))

	f := family{Name: "fix-edge-directedness", Types: edgeDirectednessTypes, Apply: fixEdgeDirectedness}
	require.NoError(t, f.pass().Apply(testContext(g)))

	assert.Equal(t, "yfiles.layout.ItemMapping<yfiles.graph.IEdge,yfiles.algorithms.EdgeDirectedness>", data.Properties[0].Type)
	assert.Equal(t, "yfiles.algorithms.EdgeDpKey<yfiles.algorithms.EdgeDirectedness>", layout.Constants[0].Type)

	marker, err := g.Type("yfiles.algorithms.EdgeDirectedness")
	require.NoError(t, err)
	assert.Equal(t, "Number", marker.JSName())

	// the marker type now exists, so re-running the family is rejected
	assert.True(t, errors.IsInvariantViolation(f.pass().Apply(testContext(g))))
}

func TestSelfTypedFamily_Cloneable(t *testing.T) {
	cloneable := iface("yfiles.lang.ICloneable", func(t *graph.Type) {
		t.Methods = []*graph.Method{method("clone", "Object")}
	})
	matrix := class("yfiles.geometry.Matrix", func(t *graph.Type) {
		t.Implements = []string{"yfiles.lang.ICloneable"}
		t.Methods = []*graph.Method{method("clone", "Object")}
	})
	special := class("yfiles.geometry.SpecialMatrix", func(t *graph.Type) {
		t.Extends = "yfiles.geometry.Matrix"
		t.Methods = []*graph.Method{method("clone", "Object")}
	})
	list := class("yfiles.collections.List", func(t *graph.Type) {
		t.TypeParameters = []*graph.TypeParameter{{Name: "T"}}
		t.Implements = []string{"yfiles.lang.ICloneable"}
	})
	g := newGraph(t, cloneable, matrix, special, list)

	family := families()[2]
	require.Equal(t, "fix-cloneable", family.Name)
	require.NoError(t, family.pass().Apply(testContext(g)))

	require.Len(t, cloneable.TypeParameters, 1)
	assert.Equal(t, []string{"yfiles.lang.ICloneable<T>"}, cloneable.TypeParameters[0].Bounds)
	assert.Equal(t, "T", cloneable.Methods[0].Returns.Type)

	assert.Equal(t, []string{"yfiles.lang.ICloneable<yfiles.geometry.Matrix>"}, matrix.Implements)
	assert.Equal(t, "yfiles.geometry.Matrix", matrix.Methods[0].Returns.Type)
	assert.Equal(t, "yfiles.geometry.Matrix", special.Methods[0].Returns.Type)
	assert.Equal(t, []string{"yfiles.lang.ICloneable<yfiles.collections.List<T>>"}, list.Implements)

	assert.True(t, errors.IsInvariantViolation(family.pass().Apply(testContext(g))))
}

func TestFamilyRewriteChecksPreState(t *testing.T) {
	owner := iface("yfiles.graph.ITagOwner", func(t *graph.Type) {
		t.Properties = []*graph.Property{prop("tag", "any")}
	})
	g := newGraph(t, owner)

	f := family{Name: "fix-tag", Rewrites: []TypeReplacement{
		{Type: "yfiles.graph.ITagOwner", Kind: KindProperty, Member: "tag", From: "Object", To: "any"},
	}}
	err := f.pass().Apply(testContext(g))
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
	assert.Equal(t, "yfiles.graph.ITagOwner.tag", errors.Locator(err))
}

func TestFamiliesHaveUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range families() {
		assert.False(t, seen[f.Name], f.Name)
		seen[f.Name] = true
	}
	assert.Len(t, seen, 24)
}

func TestFixConverters(t *testing.T) {
	converters := func() *graph.Property { return prop("CONVERTERS", "Object", graph.ModStatic) }

	tests := []struct {
		name        string
		build       func(t *graph.Type)
		constant    bool
		wantErr     func(error) bool
		wantLocator string
	}{
		{
			name:  "static property",
			build: func(t *graph.Type) { t.StaticProperties = []*graph.Property{converters()} },
		},
		{
			name:     "static field normalized into a constant",
			build:    func(t *graph.Type) { t.Fields = []*graph.Property{converters()} },
			constant: true,
		},
		{
			name: "both shapes",
			build: func(t *graph.Type) {
				t.StaticProperties = []*graph.Property{converters()}
				t.Fields = []*graph.Property{converters()}
			},
			wantErr:     errors.IsInvariantViolation,
			wantLocator: "yfiles.styles.Templates.CONVERTERS",
		},
		{
			name:        "missing",
			build:       func(t *graph.Type) { t.StaticProperties = []*graph.Property{prop("trusted", "boolean", graph.ModStatic)} },
			wantErr:     errors.IsLookupError,
			wantLocator: "yfiles.styles.Templates.CONVERTERS",
		},
		{
			name:        "already retyped",
			build:       func(t *graph.Type) { t.StaticProperties = []*graph.Property{prop("CONVERTERS", "any", graph.ModStatic)} },
			wantErr:     errors.IsInvariantViolation,
			wantLocator: "yfiles.styles.Templates.CONVERTERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGraph(t, class("yfiles.styles.StringTemplateNodeStyle", tt.build))
			ctx := testContext(g)
			require.NoError(t, normalizeFields(ctx))
			require.NoError(t, fixTemplates(ctx))

			err := fixConverters(ctx)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())
				assert.Equal(t, tt.wantLocator, errors.Locator(err))
				return
			}
			require.NoError(t, err)

			templates, err := g.Type("yfiles.styles.Templates")
			require.NoError(t, err)
			if tt.constant {
				assert.Empty(t, templates.StaticProperties)
				require.Len(t, templates.Constants, 1)
				assert.Equal(t, "any", templates.Constants[0].Type)
			} else {
				assert.Empty(t, templates.Constants)
				require.Len(t, templates.StaticProperties, 1)
				assert.Equal(t, "any", templates.StaticProperties[0].Type)
			}
		})
	}
}

func incrementalHintTypes() map[string]*graph.Type {
	return map[string]*graph.Type{
		"IIncrementalHintsFactory": iface("yfiles.hierarchic.IIncrementalHintsFactory", func(t *graph.Type) {
			t.Methods = []*graph.Method{
				method("createLayerIncrementallyHint", "Object", param("forItemId", "Object")),
				method("createSequenceIncrementallyHint", "Object", param("forItemId", "Object")),
			}
		}),
		"IncrementalHintItemMapping": class("yfiles.hierarchic.IncrementalHintItemMapping", func(t *graph.Type) {
			t.Extends = "yfiles.layout.ContextItemMapping<yfiles.graph.IModelItem,any,yfiles.hierarchic.IIncrementalHintsFactory>"
			t.Methods = []*graph.Method{
				method("provideMapperForContext", "yfiles.collections.IMapper<yfiles.graph.IModelItem,any>",
					param("context", "yfiles.layout.LayoutGraphAdapter")),
			}
		}),
		"HierarchicLayout": class("yfiles.hierarchic.HierarchicLayout", func(t *graph.Type) {
			t.Constants = []*graph.Constant{{Name: "INCREMENTAL_HINTS_DP_KEY", Type: "yfiles.algorithms.NodeDpKey<any>"}}
		}),
		"HierarchicLayoutCore": class("yfiles.hierarchic.HierarchicLayoutCore", func(t *graph.Type) {
			t.Constants = []*graph.Constant{{Name: "INCREMENTAL_HINTS_DP_KEY", Type: "yfiles.algorithms.NodeDpKey<any>"}}
		}),
		"INodeData": iface("yfiles.hierarchic.INodeData", func(t *graph.Type) {
			t.Properties = []*graph.Property{prop("incrementalHint", "Object"), prop("groupId", "Object")}
		}),
	}
}

func incrementalHintFamily(t *testing.T) family {
	for _, f := range families() {
		if f.Name == "fix-incremental-hint" {
			return f
		}
	}
	t.Fatal("fix-incremental-hint family not found")
	return family{}
}

func TestFixIncrementalHint(t *testing.T) {
	types := incrementalHintTypes()
	g := graphOf(t, types)
	f := incrementalHintFamily(t)

	require.NoError(t, f.pass().Apply(testContext(g)))

	hint := "yfiles.hierarchic.IncrementalHint"
	marker, err := g.Type(hint)
	require.NoError(t, err)
	assert.Equal(t, graph.KindInterface, marker.Group)

	for _, m := range types["IIncrementalHintsFactory"].Methods {
		assert.Equal(t, hint, m.Returns.Type, m.Name)
		assert.Equal(t, "Object", m.Parameters[0].Type)
	}
	mapping := types["IncrementalHintItemMapping"]
	assert.Equal(t, "yfiles.layout.ContextItemMapping<yfiles.graph.IModelItem,yfiles.hierarchic.IncrementalHint,yfiles.hierarchic.IIncrementalHintsFactory>", mapping.Extends)
	assert.Equal(t, "yfiles.collections.IMapper<yfiles.graph.IModelItem,yfiles.hierarchic.IncrementalHint>", mapping.Methods[0].Returns.Type)
	assert.Equal(t, "yfiles.algorithms.NodeDpKey<yfiles.hierarchic.IncrementalHint>", types["HierarchicLayout"].Constants[0].Type)
	assert.Equal(t, "yfiles.algorithms.NodeDpKey<yfiles.hierarchic.IncrementalHint>", types["HierarchicLayoutCore"].Constants[0].Type)
	assert.Equal(t, hint, types["INodeData"].Properties[0].Type)
	assert.Equal(t, "Object", types["INodeData"].Properties[1].Type)

	// the marker now exists, so a second run is rejected
	assert.True(t, errors.IsInvariantViolation(f.pass().Apply(testContext(g))))
}

func TestFixIncrementalHint_Failures(t *testing.T) {
	tests := []struct {
		name        string
		breakGraph  func(types map[string]*graph.Type)
		wantErr     func(error) bool
		wantLocator string
	}{
		{
			name: "factory method returns nothing",
			breakGraph: func(types map[string]*graph.Type) {
				types["IIncrementalHintsFactory"].Methods[1].Returns = nil
			},
			wantErr:     errors.IsInvariantViolation,
			wantLocator: "yfiles.hierarchic.IIncrementalHintsFactory.createSequenceIncrementallyHint",
		},
		{
			name: "mapping already typed",
			breakGraph: func(types map[string]*graph.Type) {
				types["IncrementalHintItemMapping"].Extends = "yfiles.layout.ContextItemMapping<yfiles.graph.IModelItem,yfiles.hierarchic.IncrementalHint,yfiles.hierarchic.IIncrementalHintsFactory>"
			},
			wantErr:     errors.IsInvariantViolation,
			wantLocator: "yfiles.hierarchic.IncrementalHintItemMapping.extends",
		},
		{
			name: "data key missing on the core layout",
			breakGraph: func(types map[string]*graph.Type) {
				types["HierarchicLayoutCore"].Constants = nil
			},
			wantErr:     errors.IsLookupError,
			wantLocator: "yfiles.hierarchic.HierarchicLayoutCore.INCREMENTAL_HINTS_DP_KEY",
		},
		{
			name: "node data without hint",
			breakGraph: func(types map[string]*graph.Type) {
				types["INodeData"].Properties = types["INodeData"].Properties[1:]
			},
			wantErr:     errors.IsLookupError,
			wantLocator: "yfiles.hierarchic.INodeData.incrementalHint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types := incrementalHintTypes()
			tt.breakGraph(types)
			g := graphOf(t, types)

			err := incrementalHintFamily(t).pass().Apply(testContext(g))
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), err.Error())
			assert.Equal(t, tt.wantLocator, errors.Locator(err))
		})
	}
}
