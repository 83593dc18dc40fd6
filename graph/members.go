package graph

import (
	"strconv"

	"github.com/teranos/declgen/errors"
)

// MethodFilter narrows an overload set.
type MethodFilter func(*Method) bool

// ParameterFilter narrows a parameter set.
type ParameterFilter func(*Parameter) bool

// ConstructorFilter narrows a constructor set.
type ConstructorFilter func(*Constructor) bool

// WithParameterCount matches methods with exactly n parameters.
func WithParameterCount(n int) MethodFilter {
	return func(m *Method) bool { return len(m.Parameters) == n }
}

// WithFirstParameterType matches methods whose first parameter has the given type.
func WithFirstParameterType(typ string) MethodFilter {
	return func(m *Method) bool { return len(m.Parameters) > 0 && m.Parameters[0].Type == typ }
}

// Locator formats a dotted locator from its non-empty parts.
func Locator(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "."
		}
		out += p
	}
	return out
}

// Property returns the instance property with the given name.
func (t *Type) Property(name string) (*Property, error) {
	return findProperty(t.Properties, t.ID, name)
}

// StaticProperty returns the static property with the given name.
func (t *Type) StaticProperty(name string) (*Property, error) {
	return findProperty(t.StaticProperties, t.ID, name)
}

func findProperty(props []*Property, owner, name string) (*Property, error) {
	var found *Property
	for _, p := range props {
		if p.Name != name {
			continue
		}
		if found != nil {
			return nil, errors.NewLookupError(Locator(owner, name), "property %s.%s is declared more than once", owner, name)
		}
		found = p
	}
	if found == nil {
		return nil, errors.NewLookupError(Locator(owner, name), "property %s.%s not found", owner, name)
	}
	return found, nil
}

// Constant returns the constant with the given name.
func (t *Type) Constant(name string) (*Constant, error) {
	for _, c := range t.Constants {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errors.NewLookupError(Locator(t.ID, name), "constant %s.%s not found", t.ID, name)
}

// Method returns the single instance method named name that passes every filter.
func (t *Type) Method(name string, filters ...MethodFilter) (*Method, error) {
	return findMethod(t.Methods, t.ID, name, filters)
}

// StaticMethod returns the single static method named name that passes every filter.
func (t *Type) StaticMethod(name string, filters ...MethodFilter) (*Method, error) {
	return findMethod(t.StaticMethods, t.ID, name, filters)
}

func findMethod(methods []*Method, owner, name string, filters []MethodFilter) (*Method, error) {
	matches := filterMethods(methods, name, filters)
	loc := Locator(owner, name)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errors.NewLookupError(loc, "method %s not found", loc)
	default:
		return nil, errors.NewLookupError(loc, "method %s matches %d overloads", loc, len(matches))
	}
}

func filterMethods(methods []*Method, name string, filters []MethodFilter) []*Method {
	var out []*Method
next:
	for _, m := range methods {
		if m.Name != name {
			continue
		}
		for _, f := range filters {
			if !f(m) {
				continue next
			}
		}
		out = append(out, m)
	}
	return out
}

// MethodsNamed returns every instance overload named name; none is a lookup error.
func (t *Type) MethodsNamed(name string, filters ...MethodFilter) ([]*Method, error) {
	out := filterMethods(t.Methods, name, filters)
	if len(out) == 0 {
		loc := Locator(t.ID, name)
		return nil, errors.NewLookupError(loc, "method %s not found", loc)
	}
	return out, nil
}

// Constructor returns the single constructor passing every filter.
func (t *Type) Constructor(filters ...ConstructorFilter) (*Constructor, error) {
	var out []*Constructor
next:
	for _, c := range t.Constructors {
		for _, f := range filters {
			if !f(c) {
				continue next
			}
		}
		out = append(out, c)
	}
	loc := Locator(t.ID, "constructor")
	switch len(out) {
	case 1:
		return out[0], nil
	case 0:
		return nil, errors.NewLookupError(loc, "no constructor of %s matches", t.ID)
	default:
		return nil, errors.NewLookupError(loc, "%d constructors of %s match", len(out), t.ID)
	}
}

// AnyMethod returns the single static or instance method named name that
// passes every filter.
func (t *Type) AnyMethod(name string, filters ...MethodFilter) (*Method, error) {
	return findMethod(t.AllMethods(), t.ID, name, filters)
}

// Overloads returns every static and instance method named name; none is a
// lookup error.
func (t *Type) Overloads(name string, filters ...MethodFilter) ([]*Method, error) {
	out := filterMethods(t.AllMethods(), name, filters)
	if len(out) == 0 {
		loc := Locator(t.ID, name)
		return nil, errors.NewLookupError(loc, "method %s not found", loc)
	}
	return out, nil
}

// ConstructorParametersNamed collects the constructor parameters named name.
// An empty result is a lookup error.
func (t *Type) ConstructorParametersNamed(name string) ([]*Parameter, error) {
	var out []*Parameter
	for _, p := range t.ConstructorParameters() {
		if p.Name == name {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		loc := Locator(t.ID, "constructor", name)
		return nil, errors.NewLookupError(loc, "no constructor parameter %s on %s", name, t.ID)
	}
	return out, nil
}

// MethodParameters collects the parameters named parameter across every
// static and instance overload named method, after filtering. An empty
// result is a lookup error.
func (t *Type) MethodParameters(method, parameter string, filters ...ParameterFilter) ([]*Parameter, error) {
	var out []*Parameter
	for _, m := range t.AllMethods() {
		if m.Name != method {
			continue
		}
	next:
		for _, p := range m.Parameters {
			if p.Name != parameter {
				continue
			}
			for _, f := range filters {
				if !f(p) {
					continue next
				}
			}
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		loc := Locator(t.ID, method, parameter)
		return nil, errors.NewLookupError(loc, "no parameters found for %s", loc)
	}
	return out, nil
}

// Parameter returns the parameter named name.
func (m *Method) Parameter(name string) (*Parameter, error) {
	for _, p := range m.Parameters {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, errors.NewLookupError(Locator(m.Name, name), "parameter %s of %s not found", name, m.Name)
}

// ParameterAt returns the parameter at index i.
func (m *Method) ParameterAt(i int) (*Parameter, error) {
	if i < 0 || i >= len(m.Parameters) {
		return nil, errors.NewLookupError(Locator(m.Name, "#"+strconv.Itoa(i)), "%s has %d parameters, wanted index %d", m.Name, len(m.Parameters), i)
	}
	return m.Parameters[i], nil
}

// FirstParameter returns the first parameter.
func (m *Method) FirstParameter() (*Parameter, error) { return m.ParameterAt(0) }

// SecondParameter returns the second parameter.
func (m *Method) SecondParameter() (*Parameter, error) { return m.ParameterAt(1) }

// LastParameter returns the last parameter.
func (m *Method) LastParameter() (*Parameter, error) { return m.ParameterAt(len(m.Parameters) - 1) }
