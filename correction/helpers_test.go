package correction

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teranos/declgen/graph"
	"go.uber.org/zap"
)

// newGraph indexes types into one flat namespace per package. The yfiles.lang
// namespace always exists so synthesized types have a home.
func newGraph(t *testing.T, types ...*graph.Type) *graph.Graph {
	t.Helper()
	byPackage := map[string][]*graph.Type{"yfiles.lang": nil}
	for _, typ := range types {
		byPackage[typ.Package()] = append(byPackage[typ.Package()], typ)
	}
	ids := make([]string, 0, len(byPackage))
	for id := range byPackage {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	feed := &graph.Feed{Version: "2.2.0"}
	for _, id := range ids {
		feed.Namespaces = append(feed.Namespaces, &graph.Namespace{ID: id, Name: graph.ShortName(id), Types: byPackage[id]})
	}
	g, err := graph.New(feed)
	require.NoError(t, err)
	return g
}

func testContext(g *graph.Graph) *Context {
	return &Context{Graph: g, Mode: ModeNormal, Log: zap.NewNop().Sugar()}
}

func class(id string, build func(*graph.Type)) *graph.Type {
	t := &graph.Type{ID: id, Name: graph.ShortName(id), Group: graph.KindClass}
	if build != nil {
		build(t)
	}
	return t
}

func iface(id string, build func(*graph.Type)) *graph.Type {
	t := class(id, build)
	t.Group = graph.KindInterface
	return t
}

func prop(name, typ string, mods ...string) *graph.Property {
	return &graph.Property{Name: name, Type: typ, Modifiers: graph.Modifiers(mods)}
}

func param(name, typ string, mods ...string) *graph.Parameter {
	return &graph.Parameter{Name: name, Type: typ, Modifiers: graph.Modifiers(mods)}
}

func method(name, returns string, params ...*graph.Parameter) *graph.Method {
	m := &graph.Method{Name: name, Modifiers: graph.Modifiers{graph.ModPublic}, Parameters: params}
	if returns != "" {
		m.Returns = &graph.Returns{Type: returns}
	}
	return m
}

// withTable replaces a correction table for the duration of the test.
func withTable[T any](t *testing.T, table *[]T, entries ...T) {
	t.Helper()
	saved := *table
	*table = entries
	t.Cleanup(func() { *table = saved })
}

// defaultPasses picks passes from DefaultPasses by name, in the given order.
func defaultPasses(t *testing.T, names ...string) []Pass {
	t.Helper()
	byName := make(map[string]Pass)
	for _, p := range DefaultPasses() {
		byName[p.Name] = p
	}
	out := make([]Pass, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		require.True(t, ok, name)
		out = append(out, p)
	}
	return out
}

func graphOf(t *testing.T, types map[string]*graph.Type) *graph.Graph {
	t.Helper()
	all := make([]*graph.Type, 0, len(types))
	for _, typ := range types {
		all = append(all, typ)
	}
	return newGraph(t, all...)
}
