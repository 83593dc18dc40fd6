// Package ir is the language-neutral representation the emitters consume:
// resolved type expressions, alphabetically ordered members and the
// classification flags the emission rules branch on.
package ir

import (
	"sort"

	"github.com/teranos/declgen/graph"
)

// Kind of a declaration
type Kind string

const (
	KindClass     Kind = graph.KindClass
	KindInterface Kind = graph.KindInterface
	KindEnum      Kind = graph.KindEnum
	// KindSignature marks function signature IDs in the registry.
	KindSignature Kind = "signature"
)

// Model is the complete IR for one feed.
type Model struct {
	Types              []*Type
	FunctionSignatures []*FunctionSignature
	Registry           *Registry
}

// Type is one declaration to emit.
type Type struct {
	ID             string
	Name           string
	JSName         string
	Package        string
	Kind           Kind
	Modifiers      graph.Modifiers
	Extends        *TypeRef
	Implements     []*TypeRef
	TypeParameters []*TypeParameter

	Constructors     []*Constructor
	Properties       []*Property
	StaticProperties []*Property
	Methods          []*Method
	StaticMethods    []*Method
	Constants        []*Constant
	Events           []*Event

	// Primitive types only emit their static and type-token surface.
	Primitive bool
	// Marker types are never treated as namespace-like objects.
	Marker bool
}

// TypeParameter is a generic declaration with its variance and bounds.
type TypeParameter struct {
	Name     string
	Variance string
	Bounds   []*TypeRef
}

// Property is an instance or static property.
type Property struct {
	Name       string
	Type       *TypeRef
	Static     bool
	Abstract   bool
	Final      bool
	ReadOnly   bool
	Protected  bool
	Deprecated bool
}

// Constant is a static value or an enum entry.
type Constant struct {
	Name       string
	Type       *TypeRef
	Deprecated bool
}

// Parameter of a method, constructor or function signature.
type Parameter struct {
	Name     string
	Type     *TypeRef
	Optional bool
}

// Method is an instance or static method. Returns is nil for void methods.
type Method struct {
	Name           string
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	Returns        *TypeRef
	Static         bool
	Abstract       bool
	Final          bool
	Protected      bool
	Deprecated     bool
}

// Constructor overload
type Constructor struct {
	Parameters []*Parameter
	Protected  bool
}

// Event is a listener registration pair.
type Event struct {
	Name     string
	Listener *TypeRef
}

// FunctionSignature is a free-standing callable type.
type FunctionSignature struct {
	ID             string
	Name           string
	Package        string
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	Returns        *TypeRef
}

// IsObject reports whether the class is namespace-like: no constructors, no
// instance members and not a marker.
func (t *Type) IsObject() bool {
	return t.Kind == KindClass &&
		len(t.Constructors) == 0 &&
		len(t.Properties) == 0 &&
		len(t.Methods) == 0 &&
		len(t.Events) == 0 &&
		!t.Marker
}

// Abstract reports whether any instance member is abstract.
func (t *Type) Abstract() bool {
	for _, p := range t.Properties {
		if p.Abstract {
			return true
		}
	}
	for _, m := range t.Methods {
		if m.Abstract {
			return true
		}
	}
	return false
}

// ClassModifier returns the inheritance modifier of a class declaration:
// "abstract", "open" or "" for final classes.
func (t *Type) ClassModifier() string {
	switch {
	case t.Abstract(), t.Modifiers.Has(graph.ModAbstract):
		return "abstract"
	case t.Modifiers.Has(graph.ModFinal):
		return ""
	default:
		return "open"
	}
}

// Generic reports whether the type declares type parameters.
func (t *Type) Generic() bool {
	return len(t.TypeParameters) > 0
}

// SortedConstants returns the constants ordered by name. Enum bodies use
// Constants directly because their order is significant.
func (t *Type) SortedConstants() []*Constant {
	out := append([]*Constant(nil), t.Constants...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// StaticMembers reports whether the type has constants, static properties or
// static methods.
func (t *Type) StaticMembers() bool {
	return len(t.Constants) > 0 || len(t.StaticProperties) > 0 || len(t.StaticMethods) > 0
}
