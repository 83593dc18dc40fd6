package correction

import (
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

func fixConstructorParameterNames(ctx *Context) error {
	for _, e := range constructorRenames {
		if !ctx.Mode.Allows(e.Mode) {
			continue
		}
		t, err := ctx.Graph.Type(e.Type)
		if err != nil {
			return err
		}
		params, err := t.ConstructorParametersNamed(e.Parameter)
		if err != nil {
			return err
		}
		if len(params) != 1 {
			loc := graph.Locator(t.ID, "constructor", e.Parameter)
			return errors.NewLookupError(loc, "%s matches %d parameters", loc, len(params))
		}
		params[0].Name = e.Name
	}
	return nil
}

// fixMethodParameterNames renames the first (or last) parameter currently
// carrying the old name. A parameter that already has the fixed name does
// not match, so a stale entry surfaces as a lookup error.
func fixMethodParameterNames(ctx *Context) error {
	for _, e := range parameterRenames {
		if !ctx.Mode.Allows(e.Mode) {
			continue
		}
		t, err := ctx.Graph.Type(e.Type)
		if err != nil {
			return err
		}
		fixed := e.Name
		params, err := t.MethodParameters(e.Method, e.Parameter, func(p *graph.Parameter) bool {
			return p.Name != fixed
		})
		if err != nil {
			return err
		}
		p := params[0]
		if e.Last {
			p = params[len(params)-1]
		}
		p.Name = fixed
	}
	return nil
}
