package kotlin

import (
	"strings"

	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/ir"
	"github.com/teranos/declgen/typegen/util"
)

// declarationPrefix renders the KDoc and annotations placed above a type.
func (r *renderer) declarationPrefix(t *ir.Type) string {
	return r.doc(t.ID) +
		annotations(t.Modifiers.Has(graph.ModDeprecated)) +
		r.externalAnnotation(t) + "\n"
}

func (r *renderer) externalAnnotation(t *ir.Type) string {
	return `@JsName("` + t.JSName + `")`
}

func (r *renderer) parents(t *ir.Type) string {
	var parents []string
	if t.Extends != nil {
		parents = append(parents, r.typeString(t.Extends))
	}
	for _, impl := range t.Implements {
		parents = append(parents, r.typeString(impl))
	}
	if len(parents) == 0 {
		return ""
	}
	return " : " + strings.Join(parents, ", ")
}

// staticDeclarations renders constants, static properties and static
// methods in that order.
func (r *renderer) staticDeclarations(t *ir.Type) []string {
	var out []string
	for _, c := range t.SortedConstants() {
		out = append(out, r.constant(t.ID, c))
	}
	for _, p := range t.StaticProperties {
		out = append(out, r.property(t.ID, p, noModifier))
	}
	for _, m := range t.StaticMethods {
		out = append(out, r.method(t.ID, m, noModifier))
	}
	return out
}

func (r *renderer) memberDeclarations(t *ir.Type, props []*ir.Property, methods []*ir.Method, mod memberModifier) []string {
	var out []string
	for _, p := range props {
		out = append(out, r.property(t.ID, p, mod))
	}
	for _, m := range methods {
		out = append(out, r.method(t.ID, m, mod))
	}
	for _, e := range t.Events {
		out = append(out, r.event(e))
	}
	return out
}

func body(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return indent(strings.Join(items, "\n\n"))
}

func companionObject(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "companion object {\n" + indent(strings.Join(items, "\n\n")) + "\n}"
}

func (r *renderer) classContent(t *ir.Type) string {
	if t.IsObject() {
		return r.objectContent(t)
	}
	if t.Primitive {
		return r.staticContent(t, r.staticDeclarations(t))
	}

	keyword := "class"
	if mod := t.ClassModifier(); mod != "" {
		keyword = mod + " class"
	}
	decl, where := r.typeParameters(t.TypeParameters)

	var primary string
	var secondary []string
	if n := len(t.Constructors); n > 0 {
		primary = r.primaryConstructor(t.Constructors[n-1])
		seen := make(map[string]bool)
		for _, c := range t.Constructors[:n-1] {
			code := r.constructor(c)
			if !seen[code] {
				seen[code] = true
				secondary = append(secondary, code)
			}
		}
	}

	members := r.memberDeclarations(t, t.Properties, t.Methods, classMemberModifier(t))
	content := block(
		body(secondary),
		body(members),
		indent(companionObject(r.staticDeclarations(t))),
	)

	declaration := r.declarationPrefix(t) +
		"external " + keyword + " " + t.Name + decl + primary + r.parents(t) + where
	if content != "" {
		declaration += " {\n" + content + "\n}"
	}
	return block(declaration, r.staticContent(t, nil))
}

func (r *renderer) objectContent(t *ir.Type) string {
	declaration := r.declarationPrefix(t) + "external object " + t.Name
	if items := r.staticDeclarations(t); len(items) > 0 {
		declaration += " {\n" + body(items) + "\n}"
	}
	return declaration
}

// staticContent renders the static container object for items, when any,
// followed by the internal type-token object.
func (r *renderer) staticContent(t *ir.Type, items []string) string {
	var container string
	if len(items) > 0 {
		container = r.externalAnnotation(t) + "\n" +
			"external object " + t.Name + "s {\n" + body(items) + "\n}"
	}
	token := r.externalAnnotation(t) + "\n" +
		"internal external object " + t.Name + "Static {\n" +
		indentUnit + "@JsName(\"\\$class\")\n" +
		indentUnit + "val yclass: " + r.opts.ClassToken + "\n" +
		"}"
	return block(container, token)
}

func abstractProperties(props []*ir.Property, abstract bool) []*ir.Property {
	var out []*ir.Property
	for _, p := range props {
		if p.Abstract == abstract {
			out = append(out, p)
		}
	}
	return out
}

func abstractMethods(methods []*ir.Method, abstract bool) []*ir.Method {
	var out []*ir.Method
	for _, m := range methods {
		if m.Abstract == abstract {
			out = append(out, m)
		}
	}
	return out
}

func (r *renderer) interfaceContent(t *ir.Type) string {
	decl, where := r.typeParameters(t.TypeParameters)
	members := r.memberDeclarations(t,
		abstractProperties(t.Properties, true),
		abstractMethods(t.Methods, true),
		noModifier)

	declaration := r.declarationPrefix(t) +
		"external interface " + t.Name + decl + r.parents(t) + where
	if len(members) > 0 {
		declaration += " {\n" + body(members) + "\n}"
	}

	delegate := r.externalAnnotation(t) + "\n" +
		"internal external class " + t.Name + "Delegate" + decl +
		"(source: " + t.Name + typeParameterNames(t.TypeParameters) + ")" + where

	return block(declaration, r.staticContent(t, r.staticDeclarations(t)), delegate)
}

func (r *renderer) enumContent(t *ir.Type) string {
	var values string
	if len(t.Constants) > 0 {
		names := make([]string, len(t.Constants))
		for i, c := range t.Constants {
			names[i] = annotations(c.Deprecated) + escape(c.Name)
		}
		values = indent(strings.Join(names, ",\n") + ";")
	}

	var statics []string
	for _, p := range t.StaticProperties {
		statics = append(statics, r.property(t.ID, p, noModifier))
	}
	for _, m := range t.StaticMethods {
		statics = append(statics, r.method(t.ID, m, noModifier))
	}
	if values == "" && len(statics) > 0 {
		values = indent(";")
	}

	declaration := r.declarationPrefix(t) + "external enum class " + t.Name
	if content := block(values, indent(companionObject(statics))); content != "" {
		declaration += " {\n" + content + "\n}"
	}
	return declaration
}

// companionContent renders the helper file for instantiable types: the type
// token constant and the is/as/to cast helpers. Objects and enums have none.
func (r *renderer) companionContent(t *ir.Type) string {
	if t.Kind == ir.KindEnum || t.IsObject() {
		return ""
	}

	name := t.Name
	yclass := name + "Static.yclass"
	result := "package " + t.Package + "\n\n" +
		"val " + util.ConstName(name) + "_CLASS = " + yclass
	if t.Primitive {
		return result
	}

	decl, where := r.typeParameters(functionTypeParameters(t.TypeParameters))
	generics := ""
	if decl != "" {
		generics = decl + " "
	}
	declaration := name + typeParameterNames(t.TypeParameters)

	result = block(result,
		"fun Any?.is"+name+"() = "+yclass+".isInstance(this)",
		"fun "+generics+"Any?.as"+name+"(): "+declaration+"?"+where+" =\n"+
			indentUnit+"if (this.is"+name+"()) {\n"+
			indentUnit+indentUnit+"this.unsafeCast<"+declaration+">()\n"+
			indentUnit+"} else {\n"+
			indentUnit+indentUnit+"null\n"+
			indentUnit+"}",
		"fun "+generics+"Any?.to"+name+"(): "+declaration+where+" =\n"+
			indentUnit+"requireNotNull(this.as"+name+"())",
	)

	switch t.Kind {
	case ir.KindClass:
		if t.JSName != name {
			names := typeParameterNames(t.TypeParameters)
			result = block(result, "typealias "+t.JSName+names+" = "+name+names)
		}
	case ir.KindInterface:
		result = block(result,
			"fun "+generics+declaration+".delegate"+name+"(): "+declaration+where+" =\n"+
				indentUnit+name+"Delegate(this).unsafeCast<"+declaration+">()",
		)
		var extensions []string
		for _, p := range abstractProperties(t.Properties, false) {
			extensions = append(extensions, r.propertyExtension(t, p))
		}
		for _, m := range abstractMethods(t.Methods, false) {
			extensions = append(extensions, r.methodExtension(t, m))
		}
		result = block(result, strings.Join(extensions, "\n\n"))
	}
	return result
}
