package correction

import (
	"github.com/teranos/declgen/graph"
)

var deprecatedProperties = []PropertyLocator{
	{"HierarchicLayoutData", "layerConstraintFactory"},
	{"HierarchicLayoutData", "sequenceConstraintFactory"},
	{"EdgeRouter", "maximumPolylineSegmentRatio"},
	{"EdgeRouter", "polylineRouting"},
	{"EdgeRouter", "preferredPolylineSegmentLength"},
}

// markDeprecated flags superseded factory methods and routing properties.
func markDeprecated(ctx *Context) error {
	layout, err := ctx.Graph.Type("HierarchicLayout")
	if err != nil {
		return err
	}
	for _, m := range layout.AllMethods() {
		if m.Name != "createLayerConstraintFactory" && m.Name != "createSequenceConstraintFactory" {
			continue
		}
		if len(m.Parameters) > 0 && m.Parameters[0].Type == "yfiles.graph.IGraph" {
			m.Modifiers.Add(graph.ModDeprecated)
		}
	}

	for _, loc := range deprecatedProperties {
		t, err := ctx.Graph.Type(loc.Type)
		if err != nil {
			return err
		}
		p, err := t.Property(loc.Property)
		if err != nil {
			return err
		}
		p.Modifiers.Add(graph.ModDeprecated)
	}
	return nil
}
