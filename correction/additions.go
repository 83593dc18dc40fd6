package correction

import (
	"github.com/teranos/declgen/graph"
)

func addMissedProperties(ctx *Context) error {
	for _, e := range missedProperties {
		t, err := ctx.Graph.Type(e.Type)
		if err != nil {
			return err
		}
		p := &graph.Property{
			Name:      e.Property,
			Type:      e.TypeName,
			Modifiers: graph.Modifiers{graph.ModPublic, graph.ModFinal, graph.ModRO},
		}
		if err := t.AddProperty(p); err != nil {
			return err
		}
	}
	return nil
}

func addMissedMethods(ctx *Context) error {
	for _, e := range missedMethods {
		t, err := ctx.Graph.Type(e.Type)
		if err != nil {
			return err
		}
		if err := t.AddMethod(missedMethod(e)); err != nil {
			return err
		}
	}
	return nil
}

func missedMethod(e MissedMethod) *graph.Method {
	m := &graph.Method{
		Name:      e.Method,
		Modifiers: graph.Modifiers{graph.ModPublic},
	}
	for _, p := range e.Parameters {
		m.Parameters = append(m.Parameters, &graph.Parameter{
			Name:      p.Name,
			Type:      p.TypeName,
			Modifiers: append(graph.Modifiers(nil), p.Modifiers...),
		})
	}
	if e.Result != nil {
		m.Modifiers = append(m.Modifiers, e.Result.Modifiers...)
		m.Returns = &graph.Returns{Type: e.Result.TypeName}
	}
	return m
}
