package typegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestCompareDirectories_UpToDate(t *testing.T) {
	generated, existing := t.TempDir(), t.TempDir()
	files := map[string]string{
		"yfiles/graph/IGraph.kt": "external interface IGraph\n",
		"yfiles/lang/Aliases.kt": "package yfiles.lang\n",
	}
	writeTree(t, generated, files)
	writeTree(t, existing, files)

	result, err := CompareDirectories(generated, existing)
	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	assert.Empty(t, result.Files())
}

func TestCompareDirectories_ReportsChanges(t *testing.T) {
	generated, existing := t.TempDir(), t.TempDir()
	writeTree(t, generated, map[string]string{
		"yfiles/graph/IGraph.kt": "external interface IGraph {\n    val nodes: Int\n}\n",
		"yfiles/graph/INode.kt":  "external interface INode\n",
	})
	writeTree(t, existing, map[string]string{
		"yfiles/graph/IGraph.kt": "external interface IGraph {\n    val nodes: Double\n}\n",
		"yfiles/graph/Old.kt":    "external class Old\n",
	})

	result, err := CompareDirectories(generated, existing)
	require.NoError(t, err)

	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"yfiles/graph/INode.kt"}, result.Missing)
	assert.Equal(t, []string{"yfiles/graph/Old.kt"}, result.Extra)
	assert.Equal(t, []string{"yfiles/graph/IGraph.kt"}, result.Different)

	diff := result.Diffs["yfiles/graph/IGraph.kt"]
	assert.Contains(t, diff, "--- a/yfiles/graph/IGraph.kt")
	assert.Contains(t, diff, "-    val nodes: Double")
	assert.Contains(t, diff, "+    val nodes: Int")
	assert.Len(t, result.Files(), 3)
}

func TestCompareDirectories_MissingExisting(t *testing.T) {
	generated := t.TempDir()
	writeTree(t, generated, map[string]string{"yfiles/A.kt": "a"})

	result, err := CompareDirectories(generated, filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Equal(t, []string{"yfiles/A.kt"}, result.Missing)
	assert.False(t, result.UpToDate)
}
