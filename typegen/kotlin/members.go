package kotlin

import (
	"strings"

	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/ir"
	"github.com/teranos/declgen/typegen/util"
)

const (
	indentUnit           = "    "
	deprecatedAnnotation = `@Deprecated("Deprecated upstream")`
	definedExternally    = " = definedExternally"
)

// memberModifier selects the inheritance modifier of an instance member.
type memberModifier func(abstract, final bool) string

func classMemberModifier(t *ir.Type) memberModifier {
	open := t.ClassModifier() != ""
	return func(abstract, final bool) string {
		switch {
		case abstract:
			return "abstract "
		case open && !final:
			return "open "
		default:
			return ""
		}
	}
}

func noModifier(bool, bool) string { return "" }

// doc renders the KDoc for locator, or "" when there is no description.
func (r *renderer) doc(locator string) string {
	text, ok := r.opts.Descriptions.Description(locator)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString(strings.TrimRight(" * "+line, " "))
		b.WriteByte('\n')
	}
	b.WriteString(" */\n")
	return b.String()
}

func annotations(deprecated bool) string {
	if deprecated {
		return deprecatedAnnotation + "\n"
	}
	return ""
}

func visibility(protected bool) string {
	if protected {
		return "protected "
	}
	return ""
}

func (r *renderer) property(owner string, p *ir.Property, mod memberModifier) string {
	keyword := "var "
	if p.ReadOnly {
		keyword = "val "
	}
	return r.doc(graph.Locator(owner, p.Name)) +
		annotations(p.Deprecated) +
		visibility(p.Protected) +
		mod(p.Abstract, p.Final) +
		keyword + escape(p.Name) + ": " + r.typeString(p.Type)
}

func (r *renderer) parameters(params []*ir.Parameter, defaults bool) string {
	items := make([]string, len(params))
	for i, p := range params {
		items[i] = escape(p.Name) + ": " + r.typeString(p.Type)
		if defaults && p.Optional {
			items[i] += definedExternally
		}
	}
	return strings.Join(items, ", ")
}

func (r *renderer) method(owner string, m *ir.Method, mod memberModifier) string {
	decl, where := r.typeParameters(functionTypeParameters(m.TypeParameters))
	if decl != "" {
		decl += " "
	}
	code := r.doc(graph.Locator(owner, m.Name)) +
		annotations(m.Deprecated) +
		visibility(m.Protected) +
		mod(m.Abstract, m.Final) +
		"fun " + decl + escape(m.Name) + "(" + r.parameters(m.Parameters, true) + ")"
	if m.Returns != nil {
		code += ": " + r.typeString(m.Returns)
	}
	return code + where
}

func (r *renderer) constructor(c *ir.Constructor) string {
	return visibility(c.Protected) + "constructor(" + r.parameters(c.Parameters, true) + ")"
}

// primaryConstructor renders the constructor as part of the class header.
func (r *renderer) primaryConstructor(c *ir.Constructor) string {
	if c.Protected {
		return " protected constructor(" + r.parameters(c.Parameters, true) + ")"
	}
	return "(" + r.parameters(c.Parameters, true) + ")"
}

func (r *renderer) constant(owner string, c *ir.Constant) string {
	typ := "Any"
	if c.Type != nil {
		typ = r.typeString(c.Type)
	}
	return r.doc(graph.Locator(owner, c.Name)) +
		annotations(c.Deprecated) +
		"val " + escape(c.Name) + ": " + typ
}

func (r *renderer) event(e *ir.Event) string {
	listener := "() -> Unit"
	if e.Listener != nil {
		listener = r.typeString(e.Listener)
	}
	name := util.Capitalize(e.Name)
	return "fun add" + name + "Listener(listener: " + listener + ")\n" +
		"fun remove" + name + "Listener(listener: " + listener + ")"
}

// propertyExtension renders a default interface property as an extension
// forwarding to the dynamic object.
func (r *renderer) propertyExtension(owner *ir.Type, p *ir.Property) string {
	decl, where := r.typeParameters(functionTypeParameters(owner.TypeParameters))
	if decl != "" {
		decl += " "
	}
	keyword := "var "
	if p.ReadOnly {
		keyword = "val "
	}
	receiver := owner.Name + typeParameterNames(owner.TypeParameters)
	code := annotations(p.Deprecated) +
		"inline " + keyword + decl + receiver + "." + escape(p.Name) + ": " + r.typeString(p.Type) + where + "\n" +
		indentUnit + "get() = asDynamic()." + p.Name
	if !p.ReadOnly {
		code += "\n" + indentUnit + "set(value) {\n" +
			indentUnit + indentUnit + "asDynamic()." + p.Name + " = value\n" +
			indentUnit + "}"
	}
	return code
}

// methodExtension renders a default interface method as an extension
// forwarding to the dynamic object.
func (r *renderer) methodExtension(owner *ir.Type, m *ir.Method) string {
	params := append(functionTypeParameters(owner.TypeParameters), m.TypeParameters...)
	decl, where := r.typeParameters(params)
	if decl != "" {
		decl += " "
	}

	items := make([]string, len(m.Parameters))
	names := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		typ := r.typeString(p.Type)
		items[i] = escape(p.Name) + ": " + typ
		if p.Optional {
			items[i] += " = undefined.unsafeCast<" + typ + ">()"
		}
		names[i] = escape(p.Name)
	}

	receiver := owner.Name + typeParameterNames(owner.TypeParameters)
	signature := annotations(m.Deprecated) +
		"inline fun " + decl + receiver + "." + escape(m.Name) + "(" + strings.Join(items, ", ") + ")"
	call := "asDynamic()." + m.Name + "(" + strings.Join(names, ", ") + ")"

	if m.Returns == nil {
		return signature + where + " {\n" + indentUnit + call + "\n}"
	}
	return signature + ": " + r.typeString(m.Returns) + where + " =\n" + indentUnit + call
}

// indent prefixes every non-empty line with one indentation unit.
func indent(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indentUnit + line
		}
	}
	return strings.Join(lines, "\n")
}

// block joins non-empty sections with a blank line.
func block(sections ...string) string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n\n")
}
