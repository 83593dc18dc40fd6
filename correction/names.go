package correction

// Built-in type names as they appear in the feed.
const (
	jsAny     = "any"
	jsObject  = "Object"
	jsNumber  = "number"
	jsBoolean = "boolean"
	jsString  = "string"

	jsElement       = "Element"
	jsSVGElement    = "SVGElement"
	jsSVGSVGElement = "SVGSVGElement"

	typeInt    = "Int"
	typeDouble = "Double"
)

// Qualified names the correction passes refer to.
const (
	yClass       = "yfiles.lang.Class"
	yIEnumerable = "yfiles.collections.IEnumerable"
	yComparator  = "Comparator"

	yINode      = "yfiles.graph.INode"
	yIEdge      = "yfiles.graph.IEdge"
	yIModelItem = "yfiles.graph.IModelItem"

	yNode        = "yfiles.algorithms.Node"
	yEdge        = "yfiles.algorithms.Edge"
	yGraphObject = "yfiles.algorithms.GraphObject"
	yYPoint      = "yfiles.algorithms.YPoint"
	yEdgeList    = "yfiles.algorithms.EdgeList"
	yCursor      = "yfiles.algorithms.ICursor"
	yLayoutGraph = "yfiles.layout.LayoutGraph"

	yEdgeDirectedness = "yfiles.algorithms.EdgeDirectedness"
	yIncrementalHint  = "yfiles.hierarchic.IncrementalHint"
)

func generic(base string, args ...string) string {
	out := base + "<"
	for i, a := range args {
		if i > 0 {
			out += ","
		}
		out += a
	}
	return out + ">"
}
