package correction

import (
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
)

// normalizeFields dissolves every type's raw field list into properties and
// constants.
func normalizeFields(ctx *Context) error {
	for _, t := range ctx.Graph.Types() {
		if len(t.Fields) == 0 {
			t.Fields = nil
			continue
		}

		if t.Group == graph.KindEnum {
			if len(t.Constants) > 0 {
				return errors.NewInvariantViolation(t.ID, "enum %s declares both fields and constants", t.ID)
			}
			for _, f := range t.Fields {
				t.Constants = append(t.Constants, fieldConstant(f))
			}
			t.Fields = nil
			continue
		}

		noneIsProperty := ctx.Mode == ModeProgressive && t.Name == "IArrow"
		var constants []*graph.Constant
		for _, f := range t.Fields {
			if !f.Static() || (noneIsProperty && f.Name == "NONE") {
				if f.Modifiers.Has(graph.ModFinal) {
					f.Modifiers.Add(graph.ModRO)
				} else {
					f.Modifiers.Add(graph.ModFinal)
				}
				t.Properties = append(t.Properties, f)
				continue
			}
			constants = append(constants, fieldConstant(f))
		}

		if len(constants) > 0 {
			if len(t.Constants) > 0 {
				return errors.NewInvariantViolation(t.ID, "%s declares both static fields and constants", t.ID)
			}
			t.Constants = constants
		}
		t.Fields = nil
	}
	return nil
}

func fieldConstant(f *graph.Property) *graph.Constant {
	return &graph.Constant{
		Name:      f.Name,
		Type:      f.Type,
		Modifiers: f.Modifiers,
		Value:     f.Value,
	}
}

// cleanBaseObject turns the root object type into a method-less interface.
func cleanBaseObject(ctx *Context) error {
	t, err := ctx.Graph.Type("YObject")
	if err != nil {
		return err
	}
	t.Group = graph.KindInterface
	return t.ClearMethods()
}
