package correction

// Override tables consulted after the suffix heuristics. Member names are
// matched without their owning type.
var (
	intProperties = set(
		"bendCount", "columnIndex", "componentIndex", "degree", "depth",
		"edgeCount", "firstIndex", "gridSpacing", "hitTestRadius", "index",
		"inDegree", "labelCount", "layer", "layerCount", "length", "level",
		"maximumDuration", "maximumIterations", "maximumLayers", "nodeCount",
		"outDegree", "portCount", "priority", "randomSeed", "rank", "rowIndex",
		"segmentCount", "size", "stepCount", "weight", "zOrder",
	)

	doubleProperties = set(
		"angle", "bottom", "centerX", "centerY", "compactionFactor",
		"defaultBendCost", "gridSpacingX", "gridSpacingY", "height",
		"horizontalSpacing", "left", "maximumX", "maximumY", "minimumX",
		"minimumY", "minimumNodeSize", "offset", "opacity", "preferredDistance",
		"radius", "right", "scale", "spacing", "strokeThickness", "thickness",
		"top", "verticalSpacing", "width", "x", "y", "zoom",
	)

	intMethods = set(
		"compare", "compareTo", "degree", "getColumnIndex", "getDegree",
		"getIndex", "getLayer", "getLayerIndex", "getPortCount", "getRowIndex",
		"hashCode", "inDegree", "indexOf", "lastIndexOf", "outDegree", "size",
	)

	doubleMethods = set(
		"area", "crossProduct", "distanceTo", "getAngle", "getHeight",
		"getLength", "getWidth", "getX", "getY", "length", "manhattanDistance",
		"scalarProduct", "squaredDistanceTo", "squaredLength",
	)

	intMethodParameters = set(
		"column", "count", "degree", "depth", "from", "i", "id", "layer",
		"level", "n", "priority", "row", "seed", "size", "to",
	)

	doubleMethodParameters = set(
		"alpha", "angle", "dx", "dy", "epsilon", "factor", "height", "max",
		"min", "ratio", "scale", "t", "value", "width", "x", "x1", "x2", "y",
		"y1", "y2", "zoom",
	)
)

func set(names ...string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}
