package correction

import (
	"strings"

	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

// family is one feature-scoped correction: optional synthesized types, a
// table of exact-pre-state rewrites and an optional imperative step.
type family struct {
	Name     string
	Types    func() []*graph.Type
	Rewrites []TypeReplacement
	Apply    func(*Context) error
	Mode     Mode
}

func (f family) pass() Pass {
	return Pass{
		Name:     f.Name,
		Requires: []Shape{ShapeFieldsNormalized, ShapeGenericsRepaired},
		OnlyIn:   f.Mode,
		Apply: func(ctx *Context) error {
			if f.Types != nil {
				for _, t := range f.Types() {
					if err := ctx.Graph.AddType(t); err != nil {
						return err
					}
				}
			}
			for _, r := range f.Rewrites {
				if !ctx.Mode.Allows(r.Mode) {
					continue
				}
				if err := applyReplacement(ctx.Graph, r); err != nil {
					return err
				}
			}
			if f.Apply != nil {
				return f.Apply(ctx)
			}
			return nil
		},
	}
}

const (
	yID          = "yfiles.lang.Id"
	yICloneable  = "yfiles.lang.ICloneable"
	yIComparable = "yfiles.lang.IComparable"
	yIComparer   = "yfiles.collections.IComparer"
	yTemplates   = "yfiles.styles.Templates"

	templatesAlias = "StringTemplateNodeStyle"
)

func families() []family {
	return []family{
		{
			Name:  "fix-id",
			Types: markerInterface(yID),
			Rewrites: []TypeReplacement{
				{Type: "yfiles.graphml.QueryItemIdEventArgs", Kind: KindProperty, Member: "id", From: jsString, To: yID},
				{Type: "yfiles.graphml.QueryItemIdEventArgs", Kind: KindProperty, Member: "item", From: jsAny, To: yIModelItem},
			},
		},
		{
			Name: "fix-binding",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.binding.GraphBuilder", Kind: KindReturn, Member: "getBusinessObject", From: jsAny, To: jsObject},
				{Type: "yfiles.binding.TreeBuilder", Kind: KindReturn, Member: "getBusinessObject", From: jsAny, To: jsObject},
			},
		},
		{
			Name: "fix-cloneable",
			Apply: func(ctx *Context) error {
				return selfTypedFamily(ctx.Graph, yICloneable, "clone", func(m *graph.Method, self string) {
					if len(m.Parameters) == 0 && m.Returns != nil && m.Returns.Type == jsObject {
						m.Returns.Type = self
					}
				})
			},
		},
		{
			Name: "fix-comparable",
			Apply: func(ctx *Context) error {
				return selfTypedFamily(ctx.Graph, yIComparable, "compareTo", func(m *graph.Method, self string) {
					if len(m.Parameters) == 1 && m.Parameters[0].Type == jsObject {
						m.Parameters[0].Type = self
					}
				})
			},
		},
		{
			Name: "fix-comparer",
			Apply: func(ctx *Context) error {
				raw := generic(yIComparer, jsObject)
				for _, h := range ctx.Graph.TypeHolders() {
					if h.TypeString() == raw {
						h.SetTypeString(generic(yIComparer, "*"))
					}
				}
				return nil
			},
		},
		{
			Name: "fix-collection",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.collections.ICollection", Kind: KindParameter, Member: "add", Parameter: "item", From: jsObject, To: "T"},
				{Type: "yfiles.collections.IList", Kind: KindParameter, Member: "insert", Parameter: "item", From: jsObject, To: "T"},
			},
		},
		{
			Name: "fix-list",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.algorithms.YList", Kind: KindReturn, Member: "cursor", From: yCursor, To: generic(yCursor, "*")},
			},
		},
		{
			Name: "fix-event",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.lang.EventArgs", Kind: KindStaticProperty, Member: "EMPTY", From: jsObject, To: "yfiles.lang.EventArgs"},
			},
		},
		{
			Name: "fix-label-model-parameter",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.graph.ILabelModelParameter", Kind: KindProperty, Member: "model", From: jsObject, To: "yfiles.graph.ILabelModel"},
				{Type: "yfiles.graph.IPortLocationModelParameter", Kind: KindProperty, Member: "model", From: jsObject, To: "yfiles.graph.IPortLocationModel"},
			},
		},
		{
			Name: "fix-memento",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.graph.IMementoSupport", Kind: KindParameter, Member: "applyState", Parameter: "state", From: jsAny, To: jsObject},
			},
		},
		{
			Name: "fix-clipboard",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.graph.IClipboardHelper", Kind: KindParameter, Member: "paste", Parameter: "userData", From: jsObject, To: jsAny},
			},
		},
		{
			Name: "fix-drag-drop",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.view.IDragData", Kind: KindReturn, Member: "getData", From: jsObject, To: jsAny},
			},
		},
		{
			Name: "fix-snap-line",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.input.ISnapLineProvider", Kind: KindParameter, Member: "addSnapLines", Parameter: "item", From: jsObject, To: yIModelItem},
			},
		},
		{
			Name: "fix-tooltip",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.input.QueryItemToolTipEventArgs", Kind: KindProperty, Member: "toolTip", From: jsObject, To: jsAny},
				{Type: "yfiles.input.ToolTipQueryEventArgs", Kind: KindProperty, Member: "toolTip", From: jsObject, To: jsAny},
			},
		},
		{
			Name: "fix-tag",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.graph.ITagOwner", Kind: KindProperty, Member: "tag", From: jsObject, To: jsAny},
			},
		},
		{
			Name: "fix-style-tag",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.styles.TemplateNodeStyleBase", Kind: KindProperty, Member: "styleTag", From: jsObject, To: jsAny},
			},
		},
		{
			Name: "fix-resource",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.lang.ResourceKey", Kind: KindProperty, Member: "name", From: jsObject, To: jsString},
			},
		},
		{
			Name:  "fix-templates",
			Apply: fixTemplates,
		},
		{
			Name:  "fix-converters",
			Apply: fixConverters,
		},
		{
			Name: "fix-event-dispatcher",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.lang.Delegate", Kind: KindParameter, Member: "dynamicInvoke", Parameter: "args", From: jsObject, To: "Array<any>"},
			},
		},
		{
			Name: "fix-serialization",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.graphml.HandleSerializationEventArgs", Kind: KindProperty, Member: "item", From: jsObject, To: jsAny},
				{Type: "yfiles.graphml.HandleDeserializationEventArgs", Kind: KindProperty, Member: "result", From: jsObject, To: jsAny},
			},
		},
		{
			Name: "fix-element-id",
			Rewrites: []TypeReplacement{
				{Type: "yfiles.view.CanvasComponent", Kind: KindProperty, Member: "div", From: jsElement, To: "HTMLDivElement"},
			},
		},
		{
			Name:  "fix-edge-directedness",
			Types: edgeDirectednessTypes,
			Apply: fixEdgeDirectedness,
		},
		{
			Name:  "fix-incremental-hint",
			Types: markerInterface(yIncrementalHint),
			Apply: fixIncrementalHint,
		},
	}
}

func markerInterface(id string) func() []*graph.Type {
	return func() []*graph.Type {
		return []*graph.Type{{
			ID:    id,
			Name:  graph.ShortName(id),
			Group: graph.KindInterface,
		}}
	}
}

// selfReference renders t applied to its own type parameters.
func selfReference(t *graph.Type) string {
	if len(t.TypeParameters) == 0 {
		return t.ID
	}
	names := make([]string, len(t.TypeParameters))
	for i, tp := range t.TypeParameters {
		names[i] = strings.TrimPrefix(strings.TrimPrefix(tp.Name, "out "), "in ")
	}
	return generic(t.ID, names...)
}

// selfTypedFamily makes iface generic over its implementor, binds every
// direct implementor to itself and lets fix retype the named member on the
// implementor and every class extending it.
func selfTypedFamily(g *graph.Graph, iface, member string, fix func(m *graph.Method, self string)) error {
	base, err := g.Type(iface)
	if err != nil {
		return err
	}
	if len(base.TypeParameters) > 0 {
		return errors.NewInvariantViolation(base.ID, "%s is already generic", base.ID)
	}
	base.SetSingleTypeParameter("T", generic(iface, "T"))
	for _, m := range base.Methods {
		if m.Name == member {
			fix(m, "T")
		}
	}

	// root maps each type to the self reference its interface binds to.
	root := make(map[string]string)
	for _, t := range g.Types() {
		for i, impl := range t.Implements {
			if impl == iface {
				t.Implements[i] = generic(iface, selfReference(t))
				root[t.ID] = selfReference(t)
			}
		}
	}

	var resolve func(t *graph.Type, depth int) string
	resolve = func(t *graph.Type, depth int) string {
		if self, ok := root[t.ID]; ok || depth > 32 {
			return self
		}
		if t.Extends == "" {
			return ""
		}
		parentID := t.Extends
		if i := strings.IndexByte(parentID, '<'); i >= 0 {
			parentID = parentID[:i]
		}
		if !g.Has(parentID) {
			return ""
		}
		parent, err := g.Type(parentID)
		if err != nil {
			return ""
		}
		return resolve(parent, depth+1)
	}

	for _, t := range g.Types() {
		self := resolve(t, 0)
		if self == "" {
			continue
		}
		for _, m := range t.Methods {
			if m.Name == member {
				fix(m, self)
			}
		}
	}
	return nil
}

var templateMembers = map[string]bool{
	"CONVERTERS":     true,
	"trusted":        true,
	"makeObservable": true,
}

// fixTemplates moves the members shared by every template style onto a
// synthesized Templates class exported under the string template style's
// name.
func fixTemplates(ctx *Context) error {
	g := ctx.Graph
	source, err := g.Type(templatesAlias)
	if err != nil {
		return err
	}

	templates := &graph.Type{
		ID:      yTemplates,
		Name:    graph.ShortName(yTemplates),
		ES6Name: templatesAlias,
		Group:   graph.KindClass,
	}
	for _, c := range source.Constants {
		if templateMembers[c.Name] {
			templates.Constants = append(templates.Constants, c)
		}
	}
	templates.Properties = pickProperties(source.Properties)
	templates.StaticProperties = pickProperties(source.StaticProperties)
	templates.Methods = pickMethods(source.Methods)
	templates.StaticMethods = pickMethods(source.StaticMethods)

	if err := g.AddType(templates); err != nil {
		return err
	}

	for _, t := range g.Types() {
		if t == templates || !strings.HasPrefix(t.ID, "yfiles.styles.") ||
			!strings.Contains(t.Name, "Template") || !strings.HasSuffix(t.Name, "Style") {
			continue
		}
		t.Constants = dropNamed(t.Constants, func(c *graph.Constant) string { return c.Name })
		t.Properties = dropNamed(t.Properties, func(p *graph.Property) string { return p.Name })
		t.StaticProperties = dropNamed(t.StaticProperties, func(p *graph.Property) string { return p.Name })
		t.Methods = dropNamed(t.Methods, func(m *graph.Method) string { return m.Name })
		t.StaticMethods = dropNamed(t.StaticMethods, func(m *graph.Method) string { return m.Name })
	}
	return nil
}

// fixConverters retypes the converter registry on Templates. The feed
// declares it as a static property, and a static field is normalized into a
// constant, so either shape is accepted but not both.
func fixConverters(ctx *Context) error {
	t, err := ctx.Graph.Type(yTemplates)
	if err != nil {
		return err
	}
	loc := graph.Locator(t.ID, "CONVERTERS")

	var holders []graph.TypeHolder
	if c, err := t.Constant("CONVERTERS"); err == nil {
		holders = append(holders, c)
	}
	if p, err := t.StaticProperty("CONVERTERS"); err == nil {
		holders = append(holders, p)
	}
	switch len(holders) {
	case 0:
		return errors.NewLookupError(loc, "%s not found", loc)
	case 1:
		return graph.ReplaceInType(holders[0], loc, jsObject, jsAny)
	default:
		return errors.NewInvariantViolation(loc, "%s is both a constant and a static property", loc)
	}
}

func pickProperties(props []*graph.Property) []*graph.Property {
	var out []*graph.Property
	for _, p := range props {
		if templateMembers[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func pickMethods(methods []*graph.Method) []*graph.Method {
	var out []*graph.Method
	for _, m := range methods {
		if templateMembers[m.Name] {
			out = append(out, m)
		}
	}
	return out
}

func dropNamed[T any](items []T, name func(T) string) []T {
	var out []T
	for _, item := range items {
		if !templateMembers[name(item)] {
			out = append(out, item)
		}
	}
	return out
}

func edgeDirectednessTypes() []*graph.Type {
	return []*graph.Type{{
		ID:        yEdgeDirectedness,
		Name:      graph.ShortName(yEdgeDirectedness),
		ES6Name:   "Number",
		Group:     graph.KindClass,
		Modifiers: graph.Modifiers{graph.ModPublic, graph.ModFinal},
	}}
}

// fixEdgeDirectedness types the directedness data keys and mappings with
// the EdgeDirectedness value type instead of a bare number.
func fixEdgeDirectedness(ctx *Context) error {
	for _, t := range ctx.Graph.Types() {
		for _, p := range t.AllProperties() {
			if p.Name == "edgeDirectedness" {
				loc := graph.Locator(t.ID, p.Name)
				if err := graph.ReplaceInType(p, loc, ","+jsNumber+">", ","+yEdgeDirectedness+">"); err != nil {
					return err
				}
			}
		}
		for _, c := range t.Constants {
			if c.Name == "EDGE_DIRECTEDNESS_DP_KEY" {
				loc := graph.Locator(t.ID, c.Name)
				if err := graph.ReplaceInType(c, loc, "<"+jsNumber+">", "<"+yEdgeDirectedness+">"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// fixIncrementalHint replaces untyped hints with the IncrementalHint marker.
func fixIncrementalHint(ctx *Context) error {
	g := ctx.Graph

	factory, err := g.Type("IIncrementalHintsFactory")
	if err != nil {
		return err
	}
	for _, m := range factory.Methods {
		if m.Returns == nil {
			return errors.NewInvariantViolation(graph.Locator(factory.ID, m.Name), "%s.%s returns nothing", factory.ID, m.Name)
		}
		m.Returns.Type = yIncrementalHint
	}

	mapping, err := g.Type("IncrementalHintItemMapping")
	if err != nil {
		return err
	}
	if err := graph.ReplaceInType(extendsHolder{mapping}, graph.Locator(mapping.ID, "extends"), ","+jsAny+",", ","+yIncrementalHint+","); err != nil {
		return err
	}
	provide, err := mapping.Method("provideMapperForContext")
	if err != nil {
		return err
	}
	loc := graph.Locator(mapping.ID, provide.Name)
	if provide.Returns == nil {
		return errors.NewInvariantViolation(loc, "%s returns nothing", loc)
	}
	if err := graph.ReplaceInType(provide.Returns, loc, ","+jsAny+">", ","+yIncrementalHint+">"); err != nil {
		return err
	}

	layouts, err := g.TypesNamed("HierarchicLayout", "HierarchicLayoutCore")
	if err != nil {
		return err
	}
	for _, t := range layouts {
		c, err := t.Constant("INCREMENTAL_HINTS_DP_KEY")
		if err != nil {
			return err
		}
		if err := graph.ReplaceInType(c, graph.Locator(t.ID, c.Name), "<"+jsAny+">", "<"+yIncrementalHint+">"); err != nil {
			return err
		}
	}

	data, err := g.Type("INodeData")
	if err != nil {
		return err
	}
	hint, err := data.Property("incrementalHint")
	if err != nil {
		return err
	}
	hint.Type = yIncrementalHint
	return nil
}
