package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/config"
	"github.com/teranos/declgen/correction"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
	declgentest "github.com/teranos/declgen/internal/testing"
)

const testFeed = `var api = {
  "version": "2.2.0",
  "namespaces": [{
    "id": "yfiles", "name": "yfiles",
    "namespaces": [
      {"id": "yfiles.system", "name": "system", "types": [
        {"id": "yfiles.system.Class", "name": "Class", "group": "class", "constructors": [{}]}
      ]},
      {"id": "yfiles.graph", "name": "graph", "types": [
        {"id": "yfiles.graph.IGraph", "name": "IGraph", "group": "interface",
         "properties": [{"name": "nodeCount", "type": "Int", "modifiers": ["public", "abstract", "ro"]}],
         "methods": [{"name": "lookup", "modifiers": ["public"],
                      "parameters": [{"name": "key", "type": "yfiles.system.Class"}],
                      "returns": {"type": "Object"}}]}
      ]}
    ]
  }],
  "functionSignatures": {
    "yfiles.system.Action": {"parameters": [{"name": "item", "type": "yfiles.graph.IGraph"}]}
  }
};`

func testConfig(t *testing.T, feed string) *config.Config {
	return declgentest.FeedConfig(t, feed)
}

// noPasses runs the pipeline without the yFiles correction tables, which
// need the full feed.
var noPasses = Options{Passes: []correction.Pass{}}

func readOut(t *testing.T, cfg *config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestRunWritesDeclarations(t *testing.T) {
	cfg := testConfig(t, testFeed)

	report, err := Run(context.Background(), cfg, noPasses)
	require.NoError(t, err)

	assert.Equal(t, "2.2.0", report.FeedVersion)
	assert.Equal(t, 2, report.Types)
	assert.Equal(t, 1, report.Signatures)
	assert.Equal(t, 5, report.Files)
	assert.Equal(t, cfg.Output.Dir, report.OutputDir)
	stages := make([]string, len(report.Stages))
	for i, st := range report.Stages {
		stages[i] = st.Name
	}
	assert.Equal(t, []string{StageLoad, StageCorrect, StageIR, StageEmit, StageCleanup, StageWrite}, stages)

	graphFile := readOut(t, cfg, "yfiles/graph/IGraph.kt")
	assert.Contains(t, graphFile, "external interface IGraph {\n    val nodeCount: Int\n}")

	companion := readOut(t, cfg, "yfiles/graph/IGraphCompanion.kt")
	assert.Contains(t, companion, "import yfiles.lang.Class\n")
	assert.Contains(t, companion, "inline fun IGraph.lookup(key: Class): Any =\n    asDynamic().lookup(key)")
	assert.Contains(t, companion, "val IGRAPH_CLASS = IGraphStatic.yclass")

	aliases := readOut(t, cfg, "yfiles/lang/Aliases.kt")
	assert.Contains(t, aliases, "import yfiles.graph.IGraph\n")
	assert.Contains(t, aliases, "typealias Action = (item: IGraph) -> Unit")
}

func TestRunRawKeepsQualifiedNames(t *testing.T) {
	cfg := testConfig(t, testFeed)
	cfg.Output.Raw = true

	report, err := Run(context.Background(), cfg, noPasses)
	require.NoError(t, err)
	assert.Len(t, report.Stages, 5)

	companion := readOut(t, cfg, "yfiles/graph/IGraphCompanion.kt")
	assert.Contains(t, companion, "inline fun IGraph.lookup(key: yfiles.lang.Class): Any =")
	assert.NotContains(t, companion, "import ")
}

func TestRunFailsBeforeWriting(t *testing.T) {
	failing := Options{Passes: []correction.Pass{{
		Name: "always-fails",
		Apply: func(ctx *correction.Context) error {
			_, err := ctx.Graph.Type("yfiles.graph.Missing")
			return err
		},
	}}}

	cfg := testConfig(t, testFeed)
	report, err := Run(context.Background(), cfg, failing)
	require.Error(t, err)
	assert.True(t, errors.IsLookupError(err))
	assert.Contains(t, err.Error(), "pass always-fails")
	assert.Contains(t, err.Error(), "stage correct")
	require.NotNil(t, report)

	_, statErr := os.Stat(cfg.Output.Dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunRejectsFeedVersion(t *testing.T) {
	cfg := testConfig(t, testFeed)
	cfg.Feed.SchemaConstraint = ">= 3.0.0"

	_, err := Run(context.Background(), cfg, noPasses)
	require.Error(t, err)
	assert.True(t, errors.IsSchemaViolation(err))
}

func TestRunRejectsUnknownTypes(t *testing.T) {
	feed := `{"version": "2.2.0", "namespaces": [{"id": "yfiles.graph", "name": "graph", "types": [
		{"id": "yfiles.graph.A", "name": "A", "group": "class",
		 "properties": [{"name": "b", "type": "yfiles.graph.Missing"}]}]}]}`
	cfg := testConfig(t, feed)

	_, err := Run(context.Background(), cfg, noPasses)
	require.Error(t, err)
	assert.True(t, errors.IsSchemaViolation(err))
	assert.Equal(t, "yfiles.graph.A.b", errors.Locator(err))
}

func TestCheck(t *testing.T) {
	cfg := testConfig(t, testFeed)
	_, err := Run(context.Background(), cfg, noPasses)
	require.NoError(t, err)

	result, _, err := Check(context.Background(), cfg, noPasses)
	require.NoError(t, err)
	assert.True(t, result.UpToDate)

	path := filepath.Join(cfg.Output.Dir, "yfiles", "graph", "IGraph.kt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Output.Dir, "Extra.kt"), []byte("x"), 0644))

	result, _, err = Check(context.Background(), cfg, noPasses)
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"yfiles/graph/IGraph.kt"}, result.Different)
	assert.Equal(t, []string{"Extra.kt"}, result.Extra)
	assert.Contains(t, result.Diffs["yfiles/graph/IGraph.kt"], "-stale")
}

func TestGenerateKeepsPassOrder(t *testing.T) {
	var order []string
	record := func(name string) correction.Pass {
		return correction.Pass{Name: name, Apply: func(*correction.Context) error {
			order = append(order, name)
			return nil
		}}
	}
	cfg := testConfig(t, testFeed)

	files, report, err := Generate(cfg, Options{Passes: []correction.Pass{record("first"), record("second")}})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, report.AppliedPasses())
	assert.Len(t, files, 5)
}

func TestAliases(t *testing.T) {
	out := aliases([]config.NamespaceAlias{{From: "system", To: "yfiles.lang"}})
	assert.Equal(t, []graph.Alias{{From: "system", To: "yfiles.lang"}}, out)
}
