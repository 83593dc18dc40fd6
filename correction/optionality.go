package correction

import (
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func fixMethodParameterOptionality(ctx *Context) error {
	g := ctx.Graph
	hover, err := g.Type("MouseHoverInputMode")
	if err != nil {
		return err
	}
	for _, name := range []string{"onShow", "show"} {
		params, err := hover.MethodParameters(name, "content")
		if err != nil {
			return err
		}
		for _, p := range params {
			if err := p.ChangeOptionality(graph.Locator(hover.ID, name), false); err != nil {
				return err
			}
		}
	}

	if ctx.Mode != ModeNormal {
		return nil
	}

	placer, err := g.Type("GridNodePlacer")
	if err != nil {
		return err
	}
	var widest *graph.Constructor
	for _, c := range placer.Constructors {
		if len(c.Parameters) > 0 && (widest == nil || len(c.Parameters) > len(widest.Parameters)) {
			widest = c
		}
	}
	if widest == nil {
		loc := graph.Locator(placer.ID, "constructor")
		return errors.NewLookupError(loc, "%s has no constructor with parameters", placer.ID)
	}
	for _, p := range widest.Parameters {
		if err := p.ChangeOptionality(graph.Locator(placer.ID, "constructor"), true); err != nil {
			return err
		}
	}
	placer.Constructors = []*graph.Constructor{widest}

	candidate, err := g.Type("PortCandidate")
	if err != nil {
		return err
	}
	overloads, err := candidate.Overloads("createCandidate")
	if err != nil {
		return err
	}
	for _, m := range overloads {
		if len(m.Parameters) == 1 && m.Parameters[0].Name == "directionMask" {
			if err := candidate.RemoveMethod(m); err != nil {
				return err
			}
		}
	}
	m, err := candidate.AnyMethod("createCandidate", graph.WithParameterCount(2))
	if err != nil {
		return err
	}
	second, err := m.SecondParameter()
	if err != nil {
		return err
	}
	return second.ChangeOptionality(graph.Locator(candidate.ID, m.Name), true)
}

// fixMethodGenericBounds bounds the folding view lookups to model items.
func fixMethodGenericBounds(ctx *Context) error {
	view, err := ctx.Graph.Type("IFoldingView")
	if err != nil {
		return err
	}
	for _, name := range []string{"getMasterItem", "getViewItem"} {
		overloads, err := view.Overloads(name)
		if err != nil {
			return err
		}
		for _, m := range overloads {
			if len(m.TypeParameters) != 1 {
				loc := graph.Locator(view.ID, name)
				return errors.NewInvariantViolation(loc, "%s declares %d type parameters, expected one", loc, len(m.TypeParameters))
			}
			m.TypeParameters[0].Bounds = []string{yIModelItem}
		}
	}
	return nil
}
