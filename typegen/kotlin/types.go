package kotlin

import (
	"strings"

	"github.com/teranos/declgen/ir"
)

// builtinTypes maps feed primitives and DOM names to their Kotlin/JS types.
var builtinTypes = map[string]string{
	"any":     "Any",
	"Object":  "Any",
	"number":  "Double",
	"boolean": "Boolean",
	"string":  "String",
	"void":    "Unit",

	"Int":        "Int",
	"Double":     "Double",
	"Array":      "Array",
	"Promise":    "kotlin.js.Promise",
	"Comparator": "Comparator",
	"Function":   "Function",
	"Date":       "kotlin.js.Date",
	"RegExp":     "kotlin.js.RegExp",
	"Error":      "Throwable",

	"Window":            "org.w3c.dom.Window",
	"Document":          "org.w3c.dom.Document",
	"DocumentFragment":  "org.w3c.dom.DocumentFragment",
	"Node":              "org.w3c.dom.Node",
	"Element":           "org.w3c.dom.Element",
	"HTMLElement":       "org.w3c.dom.HTMLElement",
	"HTMLDivElement":    "org.w3c.dom.HTMLDivElement",
	"HTMLInputElement":  "org.w3c.dom.HTMLInputElement",
	"HTMLCanvasElement": "org.w3c.dom.HTMLCanvasElement",
	"HTMLImageElement":  "org.w3c.dom.HTMLImageElement",

	"SVGElement":      "org.w3c.dom.svg.SVGElement",
	"SVGSVGElement":   "org.w3c.dom.svg.SVGSVGElement",
	"SVGGElement":     "org.w3c.dom.svg.SVGGElement",
	"SVGDefsElement":  "org.w3c.dom.svg.SVGDefsElement",
	"SVGImageElement": "org.w3c.dom.svg.SVGImageElement",

	"Event":         "org.w3c.dom.events.Event",
	"MouseEvent":    "org.w3c.dom.events.MouseEvent",
	"KeyboardEvent": "org.w3c.dom.events.KeyboardEvent",
	"WheelEvent":    "org.w3c.dom.events.WheelEvent",
	"FocusEvent":    "org.w3c.dom.events.FocusEvent",
	"TouchEvent":    "org.w3c.dom.TouchEvent",
	"DragEvent":     "org.w3c.dom.DragEvent",
	"PointerEvent":  "org.w3c.dom.pointerevents.PointerEvent",

	"CanvasRenderingContext2D": "org.w3c.dom.CanvasRenderingContext2D",
	"WebGLRenderingContext":    "org.khronos.webgl.WebGLRenderingContext",
	"ImageData":                "org.w3c.dom.ImageData",
	"Blob":                     "org.w3c.files.Blob",
}

// builtinArity lists the generic builtins that need star projections when
// referenced raw.
var builtinArity = map[string]int{
	"Array":      1,
	"Promise":    1,
	"Comparator": 1,
	"Function":   1,
}

// keywords are Kotlin hard keywords; identifiers using them are backquoted.
var keywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

func escape(name string) string {
	if keywords[name] {
		return "`" + name + "`"
	}
	return name
}

// typeString renders a resolved reference; nil is Unit.
func (r *renderer) typeString(ref *ir.TypeRef) string {
	if ref == nil {
		return "Unit"
	}
	var b strings.Builder
	r.writeType(&b, ref)
	return b.String()
}

func (r *renderer) writeType(b *strings.Builder, ref *ir.TypeRef) {
	if ref.Name == ir.Star {
		b.WriteString(ir.Star)
		return
	}

	name := ref.Name
	if mapped, ok := builtinTypes[name]; ok {
		name = mapped
	}
	b.WriteString(name)

	args := ref.Args
	if len(args) == 0 {
		args = r.defaultArguments(ref.Name)
	}
	if len(args) > 0 {
		b.WriteByte('<')
		for i, a := range args {
			if i > 0 {
				b.WriteString(", ")
			}
			r.writeType(b, a)
		}
		b.WriteByte('>')
	}

	if ref.Nullable && name != "Unit" {
		b.WriteByte('?')
	}
}

func (r *renderer) defaultArguments(name string) []*ir.TypeRef {
	if n := builtinArity[name]; n > 0 {
		out := make([]*ir.TypeRef, n)
		for i := range out {
			out[i] = &ir.TypeRef{Name: ir.Star}
		}
		return out
	}
	if r.registry == nil {
		return nil
	}
	return r.registry.DefaultArguments(name)
}

// typeParameters renders a generic declaration ("<out T : Bound, K>") and a
// trailing where clause for parameters with more than one bound.
func (r *renderer) typeParameters(params []*ir.TypeParameter) (decl, where string) {
	if len(params) == 0 {
		return "", ""
	}
	items := make([]string, len(params))
	var constraints []string
	for i, p := range params {
		item := p.Name
		if p.Variance != "" {
			item = p.Variance + " " + item
		}
		switch len(p.Bounds) {
		case 0:
		case 1:
			item += " : " + r.typeString(p.Bounds[0])
		default:
			for _, bound := range p.Bounds {
				constraints = append(constraints, p.Name+" : "+r.typeString(bound))
			}
		}
		items[i] = item
	}
	decl = "<" + strings.Join(items, ", ") + ">"
	if len(constraints) > 0 {
		where = " where " + strings.Join(constraints, ", ")
	}
	return decl, where
}

// typeParameterNames renders the use-site form ("<T, K>").
func typeParameterNames(params []*ir.TypeParameter) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return "<" + strings.Join(names, ", ") + ">"
}

// functionTypeParameters drops variance, which is illegal on function
// type parameters.
func functionTypeParameters(params []*ir.TypeParameter) []*ir.TypeParameter {
	out := make([]*ir.TypeParameter, len(params))
	for i, p := range params {
		c := *p
		c.Variance = ""
		out[i] = &c
	}
	return out
}
