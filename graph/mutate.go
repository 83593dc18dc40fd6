package graph

import (
	"strings"

	"github.com/teranos/declgen/errors"
)

// SetFlag moves flag into the requested state. The flag must currently be in
// the opposite state: a table entry asking for a change that is already in
// effect has drifted from the feed and is reported as an invariant violation.
func (m *Modifiers) SetFlag(flag string, present bool, locator string) error {
	if m.Has(flag) == present {
		state := "already set"
		if !present {
			state = "not set"
		}
		return errors.NewInvariantViolation(locator, "modifier %s is %s on %s", flag, state, locator)
	}
	if present {
		m.Add(flag)
	} else {
		m.Remove(flag)
	}
	return nil
}

// ChangeNullability flips the property's nullability.
func (p *Property) ChangeNullability(owner string, nullable bool) error {
	return p.Modifiers.SetFlag(ModCanBeNull, nullable, Locator(owner, p.Name))
}

// ChangeNullability flips the method's return nullability.
func (m *Method) ChangeNullability(owner string, nullable bool) error {
	return m.Modifiers.SetFlag(ModCanBeNull, nullable, Locator(owner, m.Name))
}

// ChangeNullability flips the parameter's nullability.
func (p *Parameter) ChangeNullability(owner string, nullable bool) error {
	return p.Modifiers.SetFlag(ModCanBeNull, nullable, Locator(owner, p.Name))
}

// ChangeOptionality flips the parameter's optional flag.
func (p *Parameter) ChangeOptionality(owner string, optional bool) error {
	return p.Modifiers.SetFlag(ModOptional, optional, Locator(owner, p.Name))
}

// TypeHolder is any record carrying a rewritable type string.
type TypeHolder interface {
	TypeString() string
	SetTypeString(string)
}

func (p *Property) TypeString() string     { return p.Type }
func (p *Property) SetTypeString(s string) { p.Type = s }

func (p *Parameter) TypeString() string     { return p.Type }
func (p *Parameter) SetTypeString(s string) { p.Type = s }

func (r *Returns) TypeString() string     { return r.Type }
func (r *Returns) SetTypeString(s string) { r.Type = s }

func (c *Constant) TypeString() string     { return c.Type }
func (c *Constant) SetTypeString(s string) { c.Type = s }

// ReplaceInType substitutes from with to in the holder's type. The from text
// must be present.
func ReplaceInType(h TypeHolder, locator, from, to string) error {
	typ := h.TypeString()
	if !strings.Contains(typ, from) {
		return errors.NewInvariantViolation(locator, "type %q of %s does not contain %q", typ, locator, from)
	}
	h.SetTypeString(strings.ReplaceAll(typ, from, to))
	return nil
}

// ExpectType checks the holder's current type before a rewrite.
func ExpectType(h TypeHolder, locator, want string) error {
	if got := h.TypeString(); got != want {
		return errors.NewInvariantViolation(locator, "expected type %q on %s, found %q", want, locator, got)
	}
	return nil
}

// RemoveProperty strictly removes the single instance property named name.
func (t *Type) RemoveProperty(name string) error {
	p, err := t.Property(name)
	if err != nil {
		return err
	}
	t.Properties = removeItem(t.Properties, p)
	return nil
}

// RemoveMethod removes one specific instance or static method record.
func (t *Type) RemoveMethod(m *Method) error {
	for i, candidate := range t.Methods {
		if candidate == m {
			t.Methods = append(t.Methods[:i], t.Methods[i+1:]...)
			return nil
		}
	}
	for i, candidate := range t.StaticMethods {
		if candidate == m {
			t.StaticMethods = append(t.StaticMethods[:i], t.StaticMethods[i+1:]...)
			return nil
		}
	}
	loc := Locator(t.ID, m.Name)
	return errors.NewLookupError(loc, "method %s is not declared on %s", m.Name, t.ID)
}

// RemoveMethods strictly removes every instance overload named name.
func (t *Type) RemoveMethods(name string) error {
	if _, err := t.MethodsNamed(name); err != nil {
		return err
	}
	out := t.Methods[:0]
	for _, m := range t.Methods {
		if m.Name != name {
			out = append(out, m)
		}
	}
	t.Methods = out
	return nil
}

// ClearMethods strictly removes every instance method; a type without any is
// an invariant violation.
func (t *Type) ClearMethods() error {
	if len(t.Methods) == 0 {
		return errors.NewInvariantViolation(t.ID, "%s has no methods to remove", t.ID)
	}
	t.Methods = nil
	return nil
}

// RemoveParameter strictly removes the parameter named name.
func (m *Method) RemoveParameter(owner, name string) error {
	p, err := m.Parameter(name)
	if err != nil {
		return errors.NewLookupError(Locator(owner, m.Name, name), "parameter %s.%s(%s) not found", owner, m.Name, name)
	}
	m.Parameters = removeItem(m.Parameters, p)
	return nil
}

// AddProperty appends a synthesized instance property. A property with the
// same name must not exist yet.
func (t *Type) AddProperty(p *Property) error {
	if _, err := t.Property(p.Name); err == nil {
		return errors.NewInvariantViolation(Locator(t.ID, p.Name), "property %s.%s already exists", t.ID, p.Name)
	}
	t.Properties = append(t.Properties, p)
	return nil
}

// AddMethod appends a synthesized instance method. An overload with the same
// name and arity must not exist yet.
func (t *Type) AddMethod(m *Method) error {
	if existing := filterMethods(t.Methods, m.Name, []MethodFilter{WithParameterCount(len(m.Parameters))}); len(existing) > 0 {
		return errors.NewInvariantViolation(Locator(t.ID, m.Name), "method %s.%s with %d parameters already exists", t.ID, m.Name, len(m.Parameters))
	}
	t.Methods = append(t.Methods, m)
	return nil
}

// ReplaceImplements rewrites the implemented-type reference at index.
func (t *Type) ReplaceImplements(index int, fn func(string) string) error {
	if index < 0 || index >= len(t.Implements) {
		return errors.NewLookupError(Locator(t.ID, "implements"), "%s implements %d types, wanted index %d", t.ID, len(t.Implements), index)
	}
	t.Implements[index] = fn(t.Implements[index])
	return nil
}

// SetSingleTypeParameter replaces the type parameters with one declaration.
func (t *Type) SetSingleTypeParameter(name string, bounds ...string) {
	t.TypeParameters = []*TypeParameter{{Name: name, Bounds: bounds}}
}

// AddFirstTypeParameter prepends a type parameter.
func (t *Type) AddFirstTypeParameter(name string, bounds ...string) error {
	for _, tp := range t.TypeParameters {
		if tp.Name == name {
			return errors.NewInvariantViolation(Locator(t.ID, name), "%s already declares type parameter %s", t.ID, name)
		}
	}
	t.TypeParameters = append([]*TypeParameter{{Name: name, Bounds: bounds}}, t.TypeParameters...)
	return nil
}

// SetSingleTypeParameter replaces the method's type parameters with one declaration.
func (m *Method) SetSingleTypeParameter(name string, bounds ...string) {
	m.TypeParameters = []*TypeParameter{{Name: name, Bounds: bounds}}
}

// AddTypeParameter appends a method type parameter.
func (m *Method) AddTypeParameter(owner, name string, bounds ...string) error {
	for _, tp := range m.TypeParameters {
		if tp.Name == name {
			return errors.NewInvariantViolation(Locator(owner, m.Name, name), "%s.%s already declares type parameter %s", owner, m.Name, name)
		}
	}
	m.TypeParameters = append(m.TypeParameters, &TypeParameter{Name: name, Bounds: bounds})
	return nil
}

// AddGeneric appends a type argument to the holder's type: "Foo" -> "Foo<T>".
func AddGeneric(h TypeHolder, generic string) {
	h.SetTypeString(h.TypeString() + "<" + generic + ">")
}

func removeItem[T comparable](items []T, item T) []T {
	for i, candidate := range items {
		if candidate == item {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
