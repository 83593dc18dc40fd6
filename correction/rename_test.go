package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func TestFixConstructorParameterNames(t *testing.T) {
	millis := ParameterLocator{Type: "yfiles.lang.TimeSpan", Parameter: "millis"}

	tests := []struct {
		name         string
		constructors []*graph.Constructor
		entry        ParameterRename
		mode         Mode
		want         []string
		wantErr      func(error) bool
	}{
		{
			name:         "renamed",
			constructors: []*graph.Constructor{{Parameters: []*graph.Parameter{param("millis", "number")}}},
			entry:        ParameterRename{millis, "milliseconds", ""},
			mode:         ModeNormal,
			want:         []string{"milliseconds"},
		},
		{
			name:         "entry of other mode skipped",
			constructors: []*graph.Constructor{{Parameters: []*graph.Parameter{param("millis", "number")}}},
			entry:        ParameterRename{millis, "milliseconds", ModeNormal},
			mode:         ModeProgressive,
			want:         []string{"millis"},
		},
		{
			name: "several matches",
			constructors: []*graph.Constructor{
				{Parameters: []*graph.Parameter{param("millis", "number")}},
				{Parameters: []*graph.Parameter{param("seconds", "number"), param("millis", "number")}},
			},
			entry:   ParameterRename{millis, "milliseconds", ""},
			mode:    ModeNormal,
			wantErr: errors.IsLookupError,
		},
		{
			name:         "already renamed",
			constructors: []*graph.Constructor{{Parameters: []*graph.Parameter{param("milliseconds", "number")}}},
			entry:        ParameterRename{millis, "milliseconds", ""},
			mode:         ModeNormal,
			wantErr:      errors.IsLookupError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := class("yfiles.lang.TimeSpan", func(t *graph.Type) { t.Constructors = tt.constructors })
			g := newGraph(t, span)
			withTable(t, &constructorRenames, tt.entry)

			ctx := testContext(g)
			ctx.Mode = tt.mode
			err := fixConstructorParameterNames(ctx)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())
				assert.Equal(t, "yfiles.lang.TimeSpan.constructor.millis", errors.Locator(err))
				return
			}
			require.NoError(t, err)
			var names []string
			for _, p := range span.ConstructorParameters() {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func comparerGraph(t *testing.T) (*graph.Graph, *graph.Type) {
	comparer := class("yfiles.tree.NodeOrderComparer", func(t *graph.Type) {
		t.Methods = []*graph.Method{
			method("compare", "number", param("edge1", "Object"), param("edge2", "Object")),
			method("compare", "number", param("edge1", "yfiles.algorithms.Edge"), param("edge2", "yfiles.algorithms.Edge")),
		}
	})
	return newGraph(t, comparer), comparer
}

func TestFixMethodParameterNames(t *testing.T) {
	first := ParameterRename{ParameterLocator{"yfiles.tree.NodeOrderComparer", "compare", "edge1", false}, "x", ""}
	last := ParameterRename{ParameterLocator{"yfiles.tree.NodeOrderComparer", "compare", "edge2", true}, "y", ""}

	tests := []struct {
		name    string
		entries []ParameterRename
		want    [][]string
	}{
		{"first overload", []ParameterRename{first}, [][]string{{"x", "edge2"}, {"edge1", "edge2"}}},
		{"last overload", []ParameterRename{last}, [][]string{{"edge1", "edge2"}, {"edge1", "y"}}},
		{"repeated entry walks the overloads", []ParameterRename{first, first}, [][]string{{"x", "edge2"}, {"x", "edge2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, comparer := comparerGraph(t)
			withTable(t, &parameterRenames, tt.entries...)

			require.NoError(t, fixMethodParameterNames(testContext(g)))
			for i, m := range comparer.Methods {
				names := make([]string, len(m.Parameters))
				for j, p := range m.Parameters {
					names[j] = p.Name
				}
				assert.Equal(t, tt.want[i], names, "overload %d", i)
			}
		})
	}
}

func TestFixMethodParameterNames_StaleEntryIsLookupError(t *testing.T) {
	g, comparer := comparerGraph(t)
	for _, m := range comparer.Methods {
		m.Parameters[0].Name = "x"
	}
	withTable(t, &parameterRenames,
		ParameterRename{ParameterLocator{"yfiles.tree.NodeOrderComparer", "compare", "edge1", false}, "x", ""},
	)

	err := fixMethodParameterNames(testContext(g))
	require.Error(t, err)
	assert.True(t, errors.IsLookupError(err))
	assert.Equal(t, "yfiles.tree.NodeOrderComparer.compare.edge1", errors.Locator(err))
}

func TestFixMethodParameterNames_RankAssignmentRoot(t *testing.T) {
	var entry *ParameterRename
	for i, e := range parameterRenames {
		if e.Type == "yfiles.hierarchic.RankAssignmentAlgorithm" && e.Method == "simplex" {
			entry = &parameterRenames[i]
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, ModeNormal, entry.Mode)

	for _, mode := range []Mode{ModeNormal, ModeProgressive} {
		t.Run(string(mode), func(t *testing.T) {
			ranks := class("yfiles.hierarchic.RankAssignmentAlgorithm", func(t *graph.Type) {
				t.StaticMethods = []*graph.Method{
					method("simplex", "number",
						param("graph", "yfiles.algorithms.Graph"),
						param("layer", "yfiles.algorithms.INodeMap"),
						param("_root", "yfiles.algorithms.Node")),
				}
			})
			g := newGraph(t, ranks)
			withTable(t, &parameterRenames, *entry)

			ctx := testContext(g)
			ctx.Mode = mode
			require.NoError(t, fixMethodParameterNames(ctx))

			want := "root"
			if mode == ModeProgressive {
				want = "_root"
			}
			assert.Equal(t, want, ranks.StaticMethods[0].Parameters[2].Name)
		})
	}
}
