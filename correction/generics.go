package correction

import (
	"strings"

	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func fixConstantGenerics(ctx *Context) error {
	t, err := ctx.Graph.Type("IListEnumerable")
	if err != nil {
		return err
	}
	c, err := t.Constant("EMPTY")
	if err != nil {
		return err
	}
	return graph.ReplaceInType(c, graph.Locator(t.ID, c.Name), "<T>", "<*>")
}

func fixFunctionGenerics(ctx *Context) error {
	list, err := ctx.Graph.Type("yfiles.collections.List")
	if err != nil {
		return err
	}
	fromArray, err := list.AnyMethod("fromArray")
	if err != nil {
		return err
	}
	fromArray.SetSingleTypeParameter("T")

	from, err := list.AnyMethod("from")
	if err != nil {
		return err
	}
	if err := from.AddTypeParameter(list.ID, "T"); err != nil {
		return err
	}

	link, err := ctx.Graph.Type("IContextLookupChainLink")
	if err != nil {
		return err
	}
	adding, err := link.AnyMethod("addingLookupChainLink")
	if err != nil {
		return err
	}
	adding.SetSingleTypeParameter("TResult")
	first, err := adding.FirstParameter()
	if err != nil {
		return err
	}
	graph.AddGeneric(first, "TResult")
	return nil
}

var cursorImplementations = []struct {
	Type    string
	Element string
}{
	{"IEdgeCursor", yEdge},
	{"ILineSegmentCursor", "yfiles.algorithms.LineSegment"},
	{"INodeCursor", yNode},
	{"IPointCursor", yYPoint},
}

// fixCursorGenerics makes the cursor family parametric over its element.
func fixCursorGenerics(ctx *Context) error {
	g := ctx.Graph

	cursor, err := g.Type(yCursor)
	if err != nil {
		return err
	}
	cursor.SetSingleTypeParameter("out T", jsAny)
	current, err := cursor.Property("current")
	if err != nil {
		return err
	}
	current.Type = "T"

	for _, impl := range cursorImplementations {
		t, err := g.Type(impl.Type)
		if err != nil {
			return err
		}
		if err := t.ReplaceImplements(0, func(s string) string { return generic(s, impl.Element) }); err != nil {
			return err
		}
	}

	if err := fixCursorUtilities(g); err != nil {
		return err
	}

	nodeParams := map[string]bool{"subNodes": true, "nodeSubset": true}
	graphTypes, err := g.TypesNamed("yfiles.algorithms.Graph", "LayoutGraph", "DefaultLayoutGraph")
	if err != nil {
		return err
	}
	for _, t := range graphTypes {
		for _, p := range t.ConstructorParameters() {
			if !nodeParams[p.Name] {
				continue
			}
			if err := retypeCursor(p, graph.Locator(t.ID, "constructor", p.Name), yNode); err != nil {
				return err
			}
		}
	}

	hiders, err := g.TypesNamed("GraphPartitionManager", "LayoutGraphHider")
	if err != nil {
		return err
	}
	for _, t := range hiders {
		m, err := t.Method("hideItemCursor")
		if err != nil {
			return err
		}
		p, err := m.FirstParameter()
		if err != nil {
			return err
		}
		if err := retypeCursor(p, graph.Locator(t.ID, m.Name, p.Name), yGraphObject); err != nil {
			return err
		}
	}

	returns := []struct {
		Type, Method, Element string
	}{
		{"YPointPath", "cursor", yYPoint},
		{"PathAlgorithm", "findAllPathsCursor", yEdgeList},
		{"ShortestPathAlgorithm", "kShortestPathsCursor", yEdgeList},
	}
	for _, r := range returns {
		t, err := g.Type(r.Type)
		if err != nil {
			return err
		}
		m, err := t.AnyMethod(r.Method)
		if err != nil {
			return err
		}
		loc := graph.Locator(t.ID, m.Name)
		if m.Returns == nil {
			return errors.NewInvariantViolation(loc, "%s returns nothing", loc)
		}
		if err := retypeCursor(m.Returns, loc, r.Element); err != nil {
			return err
		}
	}
	return nil
}

func fixCursorUtilities(g *graph.Graph) error {
	cursors, err := g.Type("yfiles.algorithms.Cursors")
	if err != nil {
		return err
	}
	for _, m := range cursors.StaticMethods {
		bound := jsAny
		switch m.Name {
		case "createNodeCursor":
			bound = yNode
		case "createEdgeCursor":
			bound = yEdge
		}
		m.SetSingleTypeParameter("T", bound)

		holders := make([]graph.TypeHolder, 0, len(m.Parameters)+1)
		for _, p := range m.Parameters {
			holders = append(holders, p)
		}
		if m.Returns != nil {
			holders = append(holders, m.Returns)
		}
		for _, h := range holders {
			if h.TypeString() == yCursor {
				h.SetTypeString(generic(yCursor, "T"))
			}
		}
	}

	toArray, err := cursors.StaticMethod("toArray")
	if err != nil {
		return err
	}
	second, err := toArray.SecondParameter()
	if err != nil {
		return err
	}
	elementTypes := strings.NewReplacer("<"+jsAny+">", "<T>", "<"+jsObject+">", "<T>")
	second.Type = elementTypes.Replace(second.Type)
	if toArray.Returns != nil {
		toArray.Returns.Type = elementTypes.Replace(toArray.Returns.Type)
	}
	return second.ChangeOptionality(cursors.ID, true)
}

func retypeCursor(h graph.TypeHolder, locator, element string) error {
	if err := graph.ExpectType(h, locator, yCursor); err != nil {
		return err
	}
	h.SetTypeString(generic(yCursor, element))
	return nil
}

var mapInterfaces = []string{
	"yfiles.algorithms.IEdgeMap",
	"yfiles.algorithms.INodeMap",
}

// fixMapGenerics gives the node and edge maps a value parameter and
// star-projects every raw reference to them.
func fixMapGenerics(ctx *Context) error {
	g := ctx.Graph
	for _, id := range mapInterfaces {
		t, err := g.Type(id)
		if err != nil {
			return err
		}
		t.SetSingleTypeParameter("V", jsObject)
	}

	for _, h := range g.TypeHolders() {
		for _, id := range mapInterfaces {
			if h.TypeString() == id {
				h.SetTypeString(id + "<*>")
			}
		}
	}

	algorithmsGraph, err := g.Type("yfiles.algorithms.Graph")
	if err != nil {
		return err
	}
	for _, p := range algorithmsGraph.AllProperties() {
		for _, id := range mapInterfaces {
			p.Type = starProject(p.Type, id)
		}
	}
	return nil
}

// starProject appends <*> to every raw occurrence of id in typ.
func starProject(typ, id string) string {
	var b strings.Builder
	rest := typ
	for {
		i := strings.Index(rest, id)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := i + len(id)
		b.WriteString(rest[:end])
		if end == len(rest) || !isIdentByte(rest[end]) && rest[end] != '<' {
			b.WriteString("<*>")
		}
		rest = rest[end:]
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '.' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

const (
	dpKeyBase            = "DpKeyBase"
	dpKeyBaseKey         = "TKey"
	dpKeyBaseDeclaration = "yfiles.algorithms.DpKeyBase<"
)

var dpKeyGenerics = []struct {
	Type string
	Key  string
}{
	{"GraphDpKey", "yfiles.algorithms.Graph"},
	{"NodeDpKey", yNode},
	{"EdgeDpKey", yEdge},
	{"GraphObjectDpKey", yGraphObject},
	{"ILabelLayoutDpKey", "yfiles.layout.ILabelLayout"},
	{"IEdgeLabelLayoutDpKey", "yfiles.layout.IEdgeLabelLayout"},
	{"INodeLabelLayoutDpKey", "yfiles.layout.INodeLabelLayout"},
}

// fixDpKeyGenerics threads the key type through the data provider key family.
func fixDpKeyGenerics(ctx *Context) error {
	g := ctx.Graph
	base, err := g.Type(dpKeyBase)
	if err != nil {
		return err
	}
	if err := base.AddFirstTypeParameter(dpKeyBaseKey, jsObject); err != nil {
		return err
	}
	others, err := base.MethodParameters("equalsCore", "other")
	if err != nil {
		return err
	}
	if len(others) != 1 {
		loc := graph.Locator(base.ID, "equalsCore", "other")
		return errors.NewLookupError(loc, "%s matches %d parameters", loc, len(others))
	}
	if err := updateDpKeyGeneric(others[0], graph.Locator(base.ID, "equalsCore", "other"), dpKeyBaseKey); err != nil {
		return err
	}

	for _, k := range dpKeyGenerics {
		t, err := g.Type(k.Type)
		if err != nil {
			return err
		}
		if err := updateDpKeyGeneric(extendsHolder{t}, graph.Locator(t.ID, "extends"), k.Key); err != nil {
			return err
		}
	}

	items, err := g.Type("DpKeyItemCollection")
	if err != nil {
		return err
	}
	dpKey, err := items.Property("dpKey")
	if err != nil {
		return err
	}
	return updateDpKeyGeneric(dpKey, graph.Locator(items.ID, dpKey.Name), "*")
}

func updateDpKeyGeneric(h graph.TypeHolder, locator, key string) error {
	typ := h.TypeString()
	if !strings.HasPrefix(typ, dpKeyBaseDeclaration) {
		return errors.NewInvariantViolation(locator, "expected %s to start with %s, found %q", locator, dpKeyBaseDeclaration, typ)
	}
	h.SetTypeString(dpKeyBaseDeclaration + key + "," + typ[len(dpKeyBaseDeclaration):])
	return nil
}

// extendsHolder exposes a type's extends reference as a rewritable type.
type extendsHolder struct{ t *graph.Type }

func (e extendsHolder) TypeString() string     { return e.t.Extends }
func (e extendsHolder) SetTypeString(s string) { e.t.Extends = s }
