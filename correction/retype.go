package correction

import (
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

// replacementHolders resolves the records a replacement rewrites. Every
// resolution failure is a lookup error.
func replacementHolders(g *graph.Graph, r TypeReplacement) ([]graph.TypeHolder, string, error) {
	t, err := g.Type(r.Type)
	if err != nil {
		return nil, "", err
	}
	loc := graph.Locator(t.ID, r.Member, r.Parameter)

	switch r.Kind {
	case KindProperty:
		p, err := t.Property(r.Member)
		if err != nil {
			return nil, loc, err
		}
		return []graph.TypeHolder{p}, loc, nil
	case KindStaticProperty:
		p, err := t.StaticProperty(r.Member)
		if err != nil {
			return nil, loc, err
		}
		return []graph.TypeHolder{p}, loc, nil
	case KindConstant:
		c, err := t.Constant(r.Member)
		if err != nil {
			return nil, loc, err
		}
		return []graph.TypeHolder{c}, loc, nil
	case KindReturn:
		overloads, err := t.Overloads(r.Member)
		if err != nil {
			return nil, loc, err
		}
		var out []graph.TypeHolder
		for _, m := range overloads {
			if m.Returns != nil {
				out = append(out, m.Returns)
			}
		}
		if len(out) == 0 {
			return nil, loc, errors.NewLookupError(loc, "no overload of %s returns a value", loc)
		}
		return out, loc, nil
	case KindParameter:
		params, err := t.MethodParameters(r.Member, r.Parameter)
		if err != nil {
			return nil, loc, err
		}
		out := make([]graph.TypeHolder, len(params))
		for i, p := range params {
			out[i] = p
		}
		return out, loc, nil
	}
	return nil, loc, errors.AssertionFailedf("unknown member kind %d for %s", r.Kind, loc)
}

// applyReplacement rewrites every resolved record from r.From to r.To.
func applyReplacement(g *graph.Graph, r TypeReplacement) error {
	holders, loc, err := replacementHolders(g, r)
	if err != nil {
		return err
	}
	for _, h := range holders {
		if r.From != "" {
			if err := graph.ExpectType(h, loc, r.From); err != nil {
				return err
			}
		}
		h.SetTypeString(r.To)
	}
	return nil
}

func applyReplacements(ctx *Context, kind func(MemberKind) bool) error {
	for _, r := range typeReplacements {
		if !kind(r.Kind) || !ctx.Mode.Allows(r.Mode) {
			continue
		}
		if err := applyReplacement(ctx.Graph, r); err != nil {
			return err
		}
	}
	return nil
}

func fixReturnTypes(ctx *Context) error {
	return applyReplacements(ctx, func(k MemberKind) bool { return k == KindReturn })
}

func fixPropertyTypes(ctx *Context) error {
	return applyReplacements(ctx, func(k MemberKind) bool {
		return k == KindProperty || k == KindStaticProperty || k == KindConstant
	})
}

// fixMethodParameterTypes applies the parameter table, then retypes untyped
// local roots of the aspect ratio tree layout.
func fixMethodParameterTypes(ctx *Context) error {
	if err := applyReplacements(ctx, func(k MemberKind) bool { return k == KindParameter }); err != nil {
		return err
	}

	t, err := ctx.Graph.Type("AspectRatioTreeLayout")
	if err != nil {
		return err
	}
	for _, p := range t.AllMethodParameters() {
		if p.Name == "localRoot" && p.Type == jsObject {
			p.Type = yNode
		}
	}
	return nil
}
