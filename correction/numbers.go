package correction

import (
	"strings"

	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/logger"
)

// refineNumbers turns every "number" property, method return and method
// parameter into Int or Double.
func refineNumbers(ctx *Context) error {
	refined := 0
	for _, t := range ctx.Graph.Types() {
		for _, p := range t.AllProperties() {
			if p.Type != jsNumber {
				continue
			}
			typ, err := propertyNumberType(t, p.Name)
			if err != nil {
				return err
			}
			p.Type = typ
			refined++
		}

		for _, m := range t.AllMethods() {
			if m.Returns != nil && m.Returns.Type == jsNumber {
				typ, err := returnNumberType(t, m.Name)
				if err != nil {
					return err
				}
				m.Returns.Type = typ
				refined++
			}

			for _, p := range m.Parameters {
				if p.Type != jsNumber {
					continue
				}
				typ, ok := parameterNumberType(p.Name)
				if !ok {
					loc := graph.Locator(t.ID, m.Name, p.Name)
					if ctx.StrictNumbers {
						return errors.NewUnresolvedHeuristic(loc, "cannot classify numeric parameter %s", loc)
					}
					ctx.Log.Warnw("Numeric parameter not classified, using Double",
						logger.FieldLocator, loc)
				}
				p.Type = typ
				refined++
			}
		}
	}
	ctx.Log.Debugw("Numbers refined", logger.FieldCount, refined)
	return nil
}

func propertyNumberType(t *graph.Type, name string) (string, error) {
	switch {
	case strings.HasSuffix(name, "Count"):
		return typeInt, nil
	case strings.HasSuffix(name, "Cost"), strings.HasSuffix(name, "Ratio"):
		return typeDouble, nil
	case t.Name == "BalloonLayout" && name == "minimumNodeDistance":
		return typeInt, nil
	case strings.HasSuffix(name, "Distance"):
		return typeDouble, nil
	case t.Name == "AffineLine" && (name == "a" || name == "b"):
		return typeDouble, nil
	case intProperties[name]:
		return typeInt, nil
	case doubleProperties[name]:
		return typeDouble, nil
	}
	loc := graph.Locator(t.ID, name)
	return "", errors.NewUnresolvedHeuristic(loc, "cannot classify numeric property %s", loc)
}

func returnNumberType(t *graph.Type, name string) (string, error) {
	switch {
	case strings.HasSuffix(name, "Count"), strings.HasSuffix(name, "Components"):
		return typeInt, nil
	case strings.HasSuffix(name, "Cost"), strings.HasSuffix(name, "Costs"),
		strings.HasSuffix(name, "Ratio"), strings.HasSuffix(name, "Distance"):
		return typeDouble, nil
	case t.Name == "YVector", t.Name == "LineSegment" && name == "length":
		return typeDouble, nil
	case intMethods[name]:
		return typeInt, nil
	case doubleMethods[name]:
		return typeDouble, nil
	}
	loc := graph.Locator(t.ID, name)
	return "", errors.NewUnresolvedHeuristic(loc, "cannot classify numeric return of %s", loc)
}

// parameterNumberType reports false when only the Double fallback applies.
func parameterNumberType(name string) (string, bool) {
	switch {
	case strings.HasSuffix(name, "Ratio"), strings.HasSuffix(name, "Duration"):
		return typeDouble, true
	case strings.HasSuffix(name, "Index"), strings.HasSuffix(name, "Count"):
		return typeInt, true
	case intMethodParameters[name], intProperties[name]:
		return typeInt, true
	case doubleMethodParameters[name], doubleProperties[name]:
		return typeDouble, true
	}
	return typeDouble, false
}
