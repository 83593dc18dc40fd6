package graph

// AllMethods returns static methods followed by instance methods.
func (t *Type) AllMethods() []*Method {
	out := make([]*Method, 0, len(t.StaticMethods)+len(t.Methods))
	out = append(out, t.StaticMethods...)
	return append(out, t.Methods...)
}

// AllProperties returns static properties followed by instance properties.
func (t *Type) AllProperties() []*Property {
	out := make([]*Property, 0, len(t.StaticProperties)+len(t.Properties))
	out = append(out, t.StaticProperties...)
	return append(out, t.Properties...)
}

// AllMethodParameters flattens the parameters of every static and instance method.
func (t *Type) AllMethodParameters() []*Parameter {
	var out []*Parameter
	for _, m := range t.AllMethods() {
		out = append(out, m.Parameters...)
	}
	return out
}

// ConstructorParameters flattens the parameters of every constructor.
func (t *Type) ConstructorParameters() []*Parameter {
	var out []*Parameter
	for _, c := range t.Constructors {
		out = append(out, c.Parameters...)
	}
	return out
}

// TypeHolders returns every method parameter, method return and property of
// the type, static and instance.
func (t *Type) TypeHolders() []TypeHolder {
	var out []TypeHolder
	for _, m := range t.AllMethods() {
		for _, p := range m.Parameters {
			out = append(out, p)
		}
		if m.Returns != nil {
			out = append(out, m.Returns)
		}
	}
	for _, p := range t.AllProperties() {
		out = append(out, p)
	}
	return out
}

// AllMethods flattens the methods of every type.
func (g *Graph) AllMethods() []*Method {
	var out []*Method
	for _, t := range g.types {
		out = append(out, t.AllMethods()...)
	}
	return out
}

// AllProperties flattens the properties of every type.
func (g *Graph) AllProperties() []*Property {
	var out []*Property
	for _, t := range g.types {
		out = append(out, t.AllProperties()...)
	}
	return out
}

// AllConstants flattens the constants of every type.
func (g *Graph) AllConstants() []*Constant {
	var out []*Constant
	for _, t := range g.types {
		out = append(out, t.Constants...)
	}
	return out
}

// TypeHolders flattens the type holders of every type.
func (g *Graph) TypeHolders() []TypeHolder {
	var out []TypeHolder
	for _, t := range g.types {
		out = append(out, t.TypeHolders()...)
	}
	return out
}
