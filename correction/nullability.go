package correction

import (
	"github.com/teranos/declgen/graph"
)

func fixPropertyNullability(ctx *Context) error {
	for _, e := range propertyNullability {
		if !ctx.Mode.Allows(e.Mode) {
			continue
		}
		t, err := ctx.Graph.Type(e.Type)
		if err != nil {
			return err
		}
		p, err := t.Property(e.Property)
		if err != nil {
			return err
		}
		if err := p.ChangeNullability(t.ID, e.Nullable); err != nil {
			return err
		}
	}
	return nil
}

func fixMethodNullability(ctx *Context) error {
	for _, e := range methodNullability {
		if !ctx.Mode.Allows(e.Mode) {
			continue
		}
		t, err := ctx.Graph.Type(e.Type)
		if err != nil {
			return err
		}
		overloads, err := t.Overloads(e.Method)
		if err != nil {
			return err
		}
		for _, m := range overloads {
			if err := m.ChangeNullability(t.ID, e.Nullable); err != nil {
				return err
			}
		}
	}
	return nil
}

// fixMethodParameterNullability applies the parameter table, then the
// name-driven sweeps over layout, data holder and model manager parameters.
func fixMethodParameterNullability(ctx *Context) error {
	g := ctx.Graph
	for _, e := range parameterNullability {
		t, err := g.Type(e.Type)
		if err != nil {
			return err
		}
		params, err := t.MethodParameters(e.Method, e.Parameter)
		if err != nil {
			return err
		}
		p := params[0]
		if e.Last {
			p = params[len(params)-1]
		}
		if err := p.ChangeNullability(graph.Locator(t.ID, e.Method), e.Nullable); err != nil {
			return err
		}
	}

	for _, t := range g.Types() {
		for _, m := range t.Methods {
			if !brokenNullabilityMethods[m.Name] || len(m.Parameters) != 1 {
				continue
			}
			p := m.Parameters[0]
			loc := graph.Locator(t.ID, m.Name, p.Name)
			if err := graph.ExpectType(p, loc, yLayoutGraph); err != nil {
				return err
			}
			if err := p.ChangeNullability(graph.Locator(t.ID, m.Name), false); err != nil {
				return err
			}
		}

		for _, m := range t.AllMethods() {
			for _, p := range m.Parameters {
				if p.Name != "dataHolder" {
					continue
				}
				if err := p.ChangeNullability(graph.Locator(t.ID, m.Name), false); err != nil {
					return err
				}
			}
		}
	}

	managers, err := g.TypesNamed(modelManagerTypes...)
	if err != nil {
		return err
	}
	for _, t := range managers {
		for _, m := range t.Methods {
			if !modelManagerItemMethods[m.Name] {
				continue
			}
			p, err := m.FirstParameter()
			if err != nil {
				return err
			}
			if err := p.ChangeNullability(graph.Locator(t.ID, m.Name), false); err != nil {
				return err
			}
		}
	}
	return nil
}
