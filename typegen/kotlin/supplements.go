package kotlin

import "github.com/teranos/declgen/ir"

// supplement renders the body of a hand-shaped declaration file. Supplement
// files carry no JsModule header and no companion: their types have no
// runtime class in the module.
type supplement func(t *ir.Type) string

var supplements = map[string]supplement{
	"yfiles.lang.Id":                     markerInterface,
	"yfiles.hierarchic.IncrementalHint":  markerInterface,
	"yfiles.algorithms.EdgeDirectedness": numberValueType,
}

func markerInterface(t *ir.Type) string {
	return "external interface " + t.Name
}

// edgeDirectednessValues are the well-known directedness weights.
var edgeDirectednessValues = []struct {
	name  string
	value string
}{
	{"SOURCE_TO_TARGET", "1.0"},
	{"TARGET_TO_SOURCE", "-1.0"},
	{"UNDIRECTED", "0.0"},
}

// numberValueType renders a type that is a JS number at runtime: an opaque
// external class named after Number, a factory and the named values.
func numberValueType(t *ir.Type) string {
	code := `@JsName("` + t.JSName + `")` + "\n" +
		"external class " + t.Name + "\n" +
		"private constructor()\n\n" +
		"inline fun " + t.Name + "(value: Double): " + t.Name + " =\n" +
		indentUnit + "value.unsafeCast<" + t.Name + ">()\n\n" +
		"object " + t.Name + "s {"
	for _, v := range edgeDirectednessValues {
		code += "\n" + indentUnit + "inline val " + v.name + ": " + t.Name + "\n" +
			indentUnit + indentUnit + "get() = " + t.Name + "(" + v.value + ")"
	}
	return code + "\n}"
}
