package correction

// Locators address table entries. Type may be a qualified ID or a short name.
type (
	PropertyLocator struct {
		Type     string
		Property string
	}

	MethodLocator struct {
		Type   string
		Method string
	}

	ParameterLocator struct {
		Type      string
		Method    string
		Parameter string
		// Last selects the last matching parameter across overloads instead
		// of the first.
		Last bool
	}
)

// PropertyNullability flips one property's nullability.
type PropertyNullability struct {
	PropertyLocator
	Nullable bool
	Mode     Mode
}

// MethodNullability flips the return nullability of every overload.
type MethodNullability struct {
	MethodLocator
	Nullable bool
	Mode     Mode
}

// ParameterNullability flips one parameter's nullability.
type ParameterNullability struct {
	ParameterLocator
	Nullable bool
}

// ParameterRename renames a parameter matched by its current name.
type ParameterRename struct {
	ParameterLocator
	Name string
	Mode Mode
}

// MissedProperty is synthesized as a public final read-only property.
type MissedProperty struct {
	PropertyLocator
	TypeName string
}

// MissedParameter is one parameter of a synthesized method.
type MissedParameter struct {
	Name      string
	TypeName  string
	Modifiers []string
}

// MissedResult is the return of a synthesized method.
type MissedResult struct {
	TypeName  string
	Modifiers []string
}

// MissedMethod is synthesized as a public instance method.
type MissedMethod struct {
	MethodLocator
	Parameters []MissedParameter
	Result     *MissedResult
}

// TypeReplacement rewrites a member's declared type from an exact pre-state.
// Methods are matched across static and instance overloads. An empty From
// skips the pre-state check.
type TypeReplacement struct {
	Type      string
	Kind      MemberKind
	Member    string
	Parameter string
	From      string
	To        string
	Mode      Mode
}

// MemberKind selects the record a TypeReplacement rewrites.
type MemberKind int

const (
	KindProperty MemberKind = iota
	KindStaticProperty
	KindConstant
	KindReturn
	KindParameter
)

// systemFunctions maps object-protocol method names to the arity they are
// removed at.
var systemFunctions = map[string]int{
	"equals":   1,
	"hashCode": 0,
	"toString": 0,
}

// thisTypes declare implicit receiver parameters on their callbacks.
var thisTypes = []string{
	"yfiles.collections.IEnumerable",
	"yfiles.collections.List",
}

var unusedFunctionSignatures = []string{
	"yfiles.lang.Action2",
	"yfiles.lang.Action3",
	"yfiles.lang.Action4",
	"yfiles.lang.Func4",
	"yfiles.lang.Func5",
}

var duplicatedProperties = []PropertyLocator{
	{"yfiles.view.SvgExport", "background"},
	{"yfiles.view.CanvasComponent", "inputModes"},
}

var duplicatedMethods = []MethodLocator{
	{"yfiles.algorithms.YList", "elementAt"},
	{"yfiles.geometry.Matrix", "multiply"},
}

var propertyNullability = []PropertyNullability{
	{PropertyLocator{"yfiles.view.CanvasComponent", "inputMode"}, true, ""},
	{PropertyLocator{"yfiles.view.CanvasComponent", "currentItem"}, true, ""},
	{PropertyLocator{"yfiles.graph.ILabel", "owner"}, false, ""},
	{PropertyLocator{"yfiles.graph.IPort", "owner"}, false, ""},
	{PropertyLocator{"yfiles.view.GraphComponent", "graph"}, false, ModeNormal},
	{PropertyLocator{"yfiles.input.GraphEditorInputMode", "snapContext"}, true, ModeNormal},
}

var methodNullability = []MethodNullability{
	{MethodLocator{"yfiles.graph.IGraph", "getParent"}, true, ""},
	{MethodLocator{"yfiles.view.ICanvasObject", "lookup"}, true, ""},
	{MethodLocator{"yfiles.graph.IFoldingView", "getMasterItem"}, true, ModeNormal},
	{MethodLocator{"yfiles.graph.IFoldingView", "getViewItem"}, true, ModeNormal},
}

var parameterNullability = []ParameterNullability{
	{ParameterLocator{"yfiles.graph.IGraph", "setParent", "parent", false}, true},
	{ParameterLocator{"yfiles.graph.IGraph", "groupNodes", "parent", false}, true},
	{ParameterLocator{"yfiles.view.CanvasComponent", "fitContent", "callback", true}, true},
	{ParameterLocator{"yfiles.input.IInputModeContext", "lookup", "type", false}, false},
}

// brokenNullabilityMethods take a single LayoutGraph that is reported nullable.
var brokenNullabilityMethods = map[string]bool{
	"applyLayout":     true,
	"applyLayoutCore": true,
	"canLayout":       true,
	"canLayoutCore":   true,
}

var modelManagerTypes = []string{
	"ModelManager",
	"FocusIndicatorManager",
	"HighlightIndicatorManager",
	"SelectionIndicatorManager",
}

var modelManagerItemMethods = map[string]bool{
	"add":          true,
	"remove":       true,
	"install":      true,
	"getInstaller": true,
}

var parameterRenames = []ParameterRename{
	{ParameterLocator{"yfiles.lang.IComparable", "compareTo", "obj", false}, "o", ""},
	{ParameterLocator{"yfiles.lang.TimeSpan", "compareTo", "obj", false}, "o", ""},
	{ParameterLocator{"yfiles.collections.IEnumerable", "includes", "value", false}, "item", ""},

	{ParameterLocator{"yfiles.algorithms.YList", "elementAt", "i", false}, "index", ""},
	{ParameterLocator{"yfiles.algorithms.YList", "includes", "o", false}, "item", ""},
	{ParameterLocator{"yfiles.algorithms.YList", "indexOf", "obj", false}, "item", ""},
	{ParameterLocator{"yfiles.algorithms.YList", "insert", "element", false}, "item", ""},
	{ParameterLocator{"yfiles.algorithms.YList", "remove", "o", false}, "item", ""},

	{ParameterLocator{"yfiles.layout.CopiedLayoutGraph", "getLabelLayout", "copiedNode", false}, "node", ""},
	{ParameterLocator{"yfiles.layout.CopiedLayoutGraph", "getLabelLayout", "copiedEdge", false}, "edge", ""},
	{ParameterLocator{"yfiles.layout.CopiedLayoutGraph", "getLayout", "copiedNode", false}, "node", ""},
	{ParameterLocator{"yfiles.layout.CopiedLayoutGraph", "getLayout", "copiedEdge", false}, "edge", ""},

	{ParameterLocator{"yfiles.layout.DiscreteEdgeLabelLayoutModel", "createModelParameter", "sourceNode", false}, "sourceLayout", ""},
	{ParameterLocator{"yfiles.layout.DiscreteEdgeLabelLayoutModel", "createModelParameter", "targetNode", false}, "targetLayout", ""},
	{ParameterLocator{"yfiles.layout.DiscreteEdgeLabelLayoutModel", "getLabelPlacement", "param", false}, "parameter", ""},
	{ParameterLocator{"yfiles.layout.FreeEdgeLabelLayoutModel", "getLabelPlacement", "param", false}, "parameter", ""},
	{ParameterLocator{"yfiles.layout.SliderEdgeLabelLayoutModel", "getLabelPlacement", "para", false}, "parameter", ""},
	{ParameterLocator{"yfiles.layout.INodeLabelLayoutModel", "getLabelPlacement", "param", false}, "parameter", ""},
	{ParameterLocator{"yfiles.layout.FreeNodeLabelLayoutModel", "getLabelPlacement", "param", false}, "parameter", ""},

	{ParameterLocator{"yfiles.tree.NodeOrderComparer", "compare", "edge1", false}, "x", ""},
	{ParameterLocator{"yfiles.tree.NodeOrderComparer", "compare", "edge2", false}, "y", ""},
	{ParameterLocator{"yfiles.tree.NodeWeightComparer", "compare", "o1", false}, "x", ""},
	{ParameterLocator{"yfiles.tree.NodeWeightComparer", "compare", "o2", false}, "y", ""},

	{ParameterLocator{"yfiles.layout.LayoutData", "apply", "layoutGraphAdapter", false}, "adapter", ""},
	{ParameterLocator{"yfiles.layout.MultiStageLayout", "applyLayout", "layoutGraph", false}, "graph", ""},
	{ParameterLocator{"yfiles.hierarchic.RankAssignmentAlgorithm", "simplex", "_root", false}, "root", ModeNormal},
	{ParameterLocator{"yfiles.hierarchic.IncrementalHintItemMapping", "provideMapperForContext", "hintsFactory", false}, "context", ModeNormal},
	{ParameterLocator{"yfiles.input.ReparentStripeHandler", "reparent", "stripe", false}, "movedStripe", ModeNormal},
	{ParameterLocator{"yfiles.view.StripeSelection", "isSelected", "stripe", false}, "item", ""},
}

var constructorRenames = []ParameterRename{
	{ParameterLocator{Type: "yfiles.lang.TimeSpan", Parameter: "millis"}, "milliseconds", ""},
}

var typeReplacements = []TypeReplacement{
	// returns
	{Type: "yfiles.layout.DiscreteEdgeLabelLayoutModel", Kind: KindReturn, Member: "getPosition", From: jsNumber, To: "yfiles.layout.DiscreteEdgeLabelPositions"},
	{Type: "yfiles.view.SvgExport", Kind: KindReturn, Member: "exportSvg", From: jsElement, To: jsSVGSVGElement},
	{Type: "yfiles.algorithms.EdgeList", Kind: KindReturn, Member: "getEnumerator", From: "yfiles.collections.IEnumerator<T>", To: generic("yfiles.collections.IEnumerator", jsObject)},
	{Type: "yfiles.algorithms.NodeList", Kind: KindReturn, Member: "getEnumerator", From: "yfiles.collections.IEnumerator<T>", To: generic("yfiles.collections.IEnumerator", jsObject)},

	// properties
	{Type: "yfiles.layout.PortCandidateSet", Kind: KindProperty, Member: "entries", From: generic(yIEnumerable, jsAny), To: generic(yIEnumerable, "yfiles.layout.IPortCandidateSetEntry")},
	{Type: "yfiles.seriesparallel.SeriesParallelLayoutData", Kind: KindProperty, Member: "outEdgeComparers", From: generic("yfiles.layout.ItemMapping", yINode, jsObject), To: generic("yfiles.layout.ItemMapping", yINode, generic(yComparator, yIEdge))},
	{Type: "yfiles.tree.TreeLayoutData", Kind: KindProperty, Member: "outEdgeComparers", From: generic("yfiles.layout.ItemMapping", yINode, jsObject), To: generic("yfiles.layout.ItemMapping", yINode, generic(yComparator, yIEdge))},
	{Type: "yfiles.view.SvgVisualGroup", Kind: KindProperty, Member: "children", From: "yfiles.collections.IList<yfiles.view.SvgVisual>", To: "yfiles.collections.IList<yfiles.view.SvgVisual?>"},

	// parameters
	{Type: "yfiles.collections.IEnumerable", Kind: KindParameter, Member: "concat", Parameter: "elements", From: jsObject, To: generic(yIEnumerable, "T")},
	{Type: "IContextLookupChainLink", Kind: KindParameter, Member: "addingLookupChainLink", Parameter: "instance", To: "TResult"},
	{Type: "yfiles.layout.DiscreteEdgeLabelLayoutModel", Kind: KindParameter, Member: "createPositionParameter", Parameter: "position", From: jsNumber, To: "yfiles.layout.DiscreteEdgeLabelPositions"},
	{Type: "yfiles.view.SvgExport", Kind: KindParameter, Member: "exportSvgString", Parameter: "svg", From: jsElement, To: jsSVGElement},
}

var missedProperties = []MissedProperty{
	{PropertyLocator{"yfiles.algorithms.YList", "isReadOnly"}, jsBoolean},
}

var missedMethods = []MissedMethod{
	{MethodLocator: MethodLocator{"yfiles.geometry.Matrix", "clone"}, Result: &MissedResult{TypeName: jsObject}},
	{MethodLocator: MethodLocator{"yfiles.geometry.MutablePoint", "clone"}, Result: &MissedResult{TypeName: jsObject}},
	{MethodLocator: MethodLocator{"yfiles.geometry.MutableSize", "clone"}, Result: &MissedResult{TypeName: jsObject}},
	{
		MethodLocator: MethodLocator{"yfiles.algorithms.YList", "add"},
		Parameters:    []MissedParameter{{Name: "item", TypeName: jsObject}},
	},
	{
		MethodLocator: MethodLocator{"yfiles.graph.CompositeUndoUnit", "tryMergeUnit"},
		Parameters:    []MissedParameter{{Name: "unit", TypeName: "yfiles.graph.IUndoUnit"}},
		Result:        &MissedResult{TypeName: jsBoolean},
	},
	{
		MethodLocator: MethodLocator{"yfiles.graph.CompositeUndoUnit", "tryReplaceUnit"},
		Parameters:    []MissedParameter{{Name: "unit", TypeName: "yfiles.graph.IUndoUnit"}},
		Result:        &MissedResult{TypeName: jsBoolean},
	},
	{
		MethodLocator: MethodLocator{"yfiles.graph.FreeLabelModel", "findBestParameter"},
		Parameters: []MissedParameter{
			{Name: "label", TypeName: "yfiles.graph.ILabel"},
			{Name: "model", TypeName: "yfiles.graph.ILabelModel"},
			{Name: "layout", TypeName: "yfiles.geometry.IOrientedRectangle"},
		},
		Result: &MissedResult{TypeName: "yfiles.graph.ILabelModelParameter"},
	},
	{
		MethodLocator: MethodLocator{"yfiles.styles.VoidPathGeometry", "getPath"},
		Result:        &MissedResult{TypeName: "yfiles.geometry.GeneralPath"},
	},
	{
		MethodLocator: MethodLocator{"yfiles.styles.VoidPathGeometry", "getSegmentCount"},
		Result:        &MissedResult{TypeName: jsNumber},
	},
	{
		MethodLocator: MethodLocator{"yfiles.styles.VoidPathGeometry", "getTangent"},
		Parameters:    []MissedParameter{{Name: "ratio", TypeName: jsNumber}},
		Result:        &MissedResult{TypeName: "yfiles.geometry.Tangent", Modifiers: []string{"canbenull"}},
	},
}
