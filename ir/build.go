package ir

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/logger"
)

// DefaultBuiltins are the names every type expression may use without a
// declaration in the feed.
var DefaultBuiltins = []string{
	"any", "Object", "number", "boolean", "string", "void",
	"Int", "Double", "Array", "Promise", "Comparator", "Function",
	"Date", "RegExp", "Error", "Window", "Document", "DocumentFragment",
	"Node", "Element", "HTMLElement", "HTMLDivElement", "HTMLInputElement",
	"HTMLCanvasElement", "HTMLImageElement",
	"SVGElement", "SVGSVGElement", "SVGGElement", "SVGDefsElement", "SVGImageElement",
	"Event", "MouseEvent", "KeyboardEvent", "TouchEvent", "WheelEvent",
	"DragEvent", "PointerEvent", "FocusEvent",
	"CanvasRenderingContext2D", "WebGLRenderingContext", "ImageData", "Blob",
}

const defaultCacheSize = 4096

// Options control IR construction.
type Options struct {
	PrimitiveTypes []string
	MarkerTypes    []string
	// Builtins replaces DefaultBuiltins when non-empty.
	Builtins []string
	// CacheSize bounds the parsed type expression cache.
	CacheSize int
}

// Build converts the corrected graph into the IR. Every type expression
// must resolve to a builtin, a type in the graph, a function signature or a
// type parameter in scope; anything else is a schema violation.
func Build(g *graph.Graph, opts Options) (*Model, error) {
	log := logger.ComponentLogger("ir")

	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, *TypeRef](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create type expression cache")
	}

	builtins := opts.Builtins
	if len(builtins) == 0 {
		builtins = DefaultBuiltins
	}

	b := &builder{
		registry:  newRegistry(),
		known:     make(map[string]bool),
		cache:     cache,
		primitive: toSet(opts.PrimitiveTypes),
		marker:    toSet(opts.MarkerTypes),
	}
	for _, name := range builtins {
		b.known[name] = true
	}
	for _, t := range g.Types() {
		b.known[t.ID] = true
		b.registry.register(t.ID, Kind(t.Group), len(t.TypeParameters))
	}
	for _, sig := range g.FunctionSignatures() {
		b.known[sig.ID] = true
		b.registry.register(sig.ID, KindSignature, len(sig.TypeParameters))
	}

	model := &Model{Registry: b.registry}
	for _, t := range g.Types() {
		typ, err := b.buildType(t)
		if err != nil {
			return nil, err
		}
		model.Types = append(model.Types, typ)
	}
	sort.Slice(model.Types, func(i, j int) bool { return model.Types[i].ID < model.Types[j].ID })

	for _, sig := range g.FunctionSignatures() {
		fs, err := b.buildSignature(sig)
		if err != nil {
			return nil, err
		}
		model.FunctionSignatures = append(model.FunctionSignatures, fs)
	}

	log.Debugw("IR built",
		logger.FieldTypes, len(model.Types),
		logger.FieldCount, len(model.FunctionSignatures))
	return model, nil
}

type builder struct {
	registry  *Registry
	known     map[string]bool
	cache     *lru.Cache[string, *TypeRef]
	primitive map[string]bool
	marker    map[string]bool
}

// scope is the set of type parameter names visible at a member.
type scope map[string]bool

func (s scope) with(params []*TypeParameter) scope {
	if len(params) == 0 {
		return s
	}
	out := make(scope, len(s)+len(params))
	for k := range s {
		out[k] = true
	}
	for _, p := range params {
		out[p.Name] = true
	}
	return out
}

// resolve parses expr and checks every identifier. An empty or void
// expression resolves to nil.
func (b *builder) resolve(expr string, sc scope, locator string) (*TypeRef, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == "void" {
		return nil, nil
	}

	ref, ok := b.cache.Get(expr)
	if !ok {
		parsed, err := ParseTypeRef(expr)
		if err != nil {
			return nil, errors.NewSchemaViolation(locator, "malformed type %q on %s: %v", expr, locator, err)
		}
		b.cache.Add(expr, parsed)
		ref = parsed
	}

	for _, name := range ref.Names() {
		if !sc[name] && !b.known[name] {
			return nil, errors.NewSchemaViolation(locator, "unknown type %s in %q on %s", name, expr, locator)
		}
	}
	return ref, nil
}

func (b *builder) resolveNullable(expr string, nullable bool, sc scope, locator string) (*TypeRef, error) {
	ref, err := b.resolve(expr, sc, locator)
	if err != nil || ref == nil || !nullable {
		return ref, err
	}
	return ref.WithNullable(true), nil
}

func (b *builder) typeParameters(params []*graph.TypeParameter, sc scope, locator string) ([]*TypeParameter, scope, error) {
	out := make([]*TypeParameter, 0, len(params))
	for _, p := range params {
		tp := &TypeParameter{Name: p.Name}
		for _, v := range []string{"out ", "in "} {
			if strings.HasPrefix(tp.Name, v) {
				tp.Variance = strings.TrimSpace(v)
				tp.Name = strings.TrimSpace(tp.Name[len(v):])
			}
		}
		out = append(out, tp)
	}
	inner := sc.with(out)

	for i, p := range params {
		for _, bound := range p.Bounds {
			ref, err := b.resolve(bound, inner, graph.Locator(locator, out[i].Name))
			if err != nil {
				return nil, nil, err
			}
			if ref != nil {
				out[i].Bounds = append(out[i].Bounds, ref)
			}
		}
	}
	return out, inner, nil
}

func (b *builder) buildType(t *graph.Type) (*Type, error) {
	typ := &Type{
		ID:        t.ID,
		Name:      t.Name,
		JSName:    t.JSName(),
		Package:   t.Package(),
		Kind:      Kind(t.Group),
		Modifiers: t.Modifiers,
		Primitive: b.primitive[t.ID],
		Marker:    b.marker[t.ID],
	}

	tps, sc, err := b.typeParameters(t.TypeParameters, scope{}, t.ID)
	if err != nil {
		return nil, err
	}
	typ.TypeParameters = tps

	if t.Extends != "" {
		if typ.Extends, err = b.resolve(t.Extends, sc, graph.Locator(t.ID, "extends")); err != nil {
			return nil, err
		}
	}
	for _, impl := range t.Implements {
		ref, err := b.resolve(impl, sc, graph.Locator(t.ID, "implements"))
		if err != nil {
			return nil, err
		}
		typ.Implements = append(typ.Implements, ref)
	}

	for _, c := range t.Constructors {
		params, err := b.parameters(c.Parameters, sc, graph.Locator(t.ID, "constructor"))
		if err != nil {
			return nil, err
		}
		typ.Constructors = append(typ.Constructors, &Constructor{
			Parameters: params,
			Protected:  c.Modifiers.Has(graph.ModProtected),
		})
	}

	if typ.Properties, err = b.properties(t.Properties, false, sc, t.ID); err != nil {
		return nil, err
	}
	if typ.StaticProperties, err = b.properties(t.StaticProperties, true, sc, t.ID); err != nil {
		return nil, err
	}
	if typ.Methods, err = b.methods(t.Methods, false, sc, t.ID); err != nil {
		return nil, err
	}
	if typ.StaticMethods, err = b.methods(t.StaticMethods, true, sc, t.ID); err != nil {
		return nil, err
	}

	for _, c := range t.Constants {
		ref, err := b.resolve(c.Type, sc, graph.Locator(t.ID, c.Name))
		if err != nil {
			return nil, err
		}
		typ.Constants = append(typ.Constants, &Constant{
			Name:       c.Name,
			Type:       ref,
			Deprecated: c.Modifiers.Has(graph.ModDeprecated),
		})
	}

	for _, e := range t.Events {
		ref, err := b.resolve(e.Type, sc, graph.Locator(t.ID, e.Name))
		if err != nil {
			return nil, err
		}
		typ.Events = append(typ.Events, &Event{Name: e.Name, Listener: ref})
	}
	sort.SliceStable(typ.Events, func(i, j int) bool { return typ.Events[i].Name < typ.Events[j].Name })

	return typ, nil
}

func (b *builder) properties(props []*graph.Property, static bool, sc scope, owner string) ([]*Property, error) {
	out := make([]*Property, 0, len(props))
	for _, p := range props {
		loc := graph.Locator(owner, p.Name)
		ref, err := b.resolveNullable(p.Type, p.Nullable(), sc, loc)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, errors.NewSchemaViolation(loc, "property %s has no type", loc)
		}
		out = append(out, &Property{
			Name:       p.Name,
			Type:       ref,
			Static:     static || p.Static(),
			Abstract:   p.Abstract(),
			Final:      p.Modifiers.Has(graph.ModFinal),
			ReadOnly:   p.Modifiers.Has(graph.ModRO),
			Protected:  p.Modifiers.Has(graph.ModProtected),
			Deprecated: p.Modifiers.Has(graph.ModDeprecated),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (b *builder) methods(methods []*graph.Method, static bool, sc scope, owner string) ([]*Method, error) {
	out := make([]*Method, 0, len(methods))
	for _, m := range methods {
		loc := graph.Locator(owner, m.Name)
		tps, inner, err := b.typeParameters(m.TypeParameters, sc, loc)
		if err != nil {
			return nil, err
		}
		params, err := b.parameters(m.Parameters, inner, loc)
		if err != nil {
			return nil, err
		}
		returns, err := b.resolveNullable(m.ReturnType(), m.Modifiers.Has(graph.ModCanBeNull), inner, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, &Method{
			Name:           m.Name,
			TypeParameters: tps,
			Parameters:     params,
			Returns:        returns,
			Static:         static || m.Modifiers.Has(graph.ModStatic),
			Abstract:       m.Abstract(),
			Final:          m.Modifiers.Has(graph.ModFinal),
			Protected:      m.Modifiers.Has(graph.ModProtected),
			Deprecated:     m.Modifiers.Has(graph.ModDeprecated),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (b *builder) parameters(params []*graph.Parameter, sc scope, owner string) ([]*Parameter, error) {
	out := make([]*Parameter, 0, len(params))
	for _, p := range params {
		expr := p.Type
		if p.Signature != "" {
			expr = p.Signature
		}
		loc := graph.Locator(owner, p.Name)
		ref, err := b.resolveNullable(expr, p.Nullable(), sc, loc)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, errors.NewSchemaViolation(loc, "parameter %s has no type", loc)
		}
		out = append(out, &Parameter{Name: p.Name, Type: ref, Optional: p.Optional()})
	}
	return out, nil
}

func (b *builder) buildSignature(sig *graph.FunctionSignature) (*FunctionSignature, error) {
	tps, sc, err := b.typeParameters(sig.TypeParameters, scope{}, sig.ID)
	if err != nil {
		return nil, err
	}
	params, err := b.parameters(sig.Parameters, sc, sig.ID)
	if err != nil {
		return nil, err
	}
	var returns *TypeRef
	if sig.Returns != nil {
		if returns, err = b.resolve(sig.Returns.Type, sc, graph.Locator(sig.ID, "returns")); err != nil {
			return nil, err
		}
	}
	return &FunctionSignature{
		ID:             sig.ID,
		Name:           graph.ShortName(sig.ID),
		Package:        graph.PackageOf(sig.ID),
		TypeParameters: tps,
		Parameters:     params,
		Returns:        returns,
	}, nil
}

func toSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, s := range items {
		out[s] = true
	}
	return out
}
