// Package graph is the typed view of the metadata feed: namespaces, type
// records and their members, plus the lookups, mutations and traversals the
// correction passes are written against.
//
// Every lookup that misses returns an errors.ErrLookup carrying the locator.
// Mutations happen in place; there is no rollback.
package graph

// Kinds of type records
const (
	KindClass     = "class"
	KindInterface = "interface"
	KindEnum      = "enum"
)

// Modifier flags used in the feed
const (
	ModPublic     = "public"
	ModProtected  = "protected"
	ModStatic     = "static"
	ModFinal      = "final"
	ModRO         = "ro"
	ModAbstract   = "abstract"
	ModCanBeNull  = "canbenull"
	ModOptional   = "optional"
	ModArtificial = "artificial"
	ModDeprecated = "deprecated"
	ModConst      = "const"
)

// Feed is the decoded root document.
type Feed struct {
	Version            string                        `json:"version,omitempty"`
	Namespaces         []*Namespace                  `json:"namespaces"`
	FunctionSignatures map[string]*FunctionSignature `json:"functionSignatures,omitempty"`
}

// Namespace holds child namespaces and type records.
type Namespace struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Namespaces []*Namespace `json:"namespaces,omitempty"`
	Types      []*Type      `json:"types,omitempty"`
}

// Type is one class, interface or enum record.
type Type struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ES6Name          string           `json:"es6name,omitempty"`
	Group            string           `json:"group"`
	Modifiers        Modifiers        `json:"modifiers,omitempty"`
	Implements       []string         `json:"implements,omitempty"`
	Extends          string           `json:"extends,omitempty"`
	TypeParameters   []*TypeParameter `json:"typeparameters,omitempty"`
	Constructors     []*Constructor   `json:"constructors,omitempty"`
	Methods          []*Method        `json:"methods,omitempty"`
	StaticMethods    []*Method        `json:"staticMethods,omitempty"`
	Properties       []*Property      `json:"properties,omitempty"`
	StaticProperties []*Property      `json:"staticProperties,omitempty"`
	Constants        []*Constant      `json:"constants,omitempty"`
	Events           []*Event         `json:"events,omitempty"`
	Fields           []*Property      `json:"fields,omitempty"`
}

// TypeParameter is a generic parameter declaration such as "T" or "out T".
type TypeParameter struct {
	Name   string   `json:"name"`
	Bounds []string `json:"bounds,omitempty"`
}

// Property is an instance or static property. Fields share this shape until
// they are normalized.
type Property struct {
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Modifiers Modifiers   `json:"modifiers,omitempty"`
	Value     interface{} `json:"value,omitempty"`
}

// Constant is a static value-bearing member or an enum constant.
type Constant struct {
	Name      string      `json:"name"`
	Type      string      `json:"type,omitempty"`
	Modifiers Modifiers   `json:"modifiers,omitempty"`
	Value     interface{} `json:"value,omitempty"`
}

// Method is an instance or static method. A method's canbenull modifier
// describes its return value.
type Method struct {
	Name           string           `json:"name"`
	Modifiers      Modifiers        `json:"modifiers,omitempty"`
	TypeParameters []*TypeParameter `json:"typeparameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Returns        *Returns         `json:"returns,omitempty"`
}

// Constructor is one constructor overload.
type Constructor struct {
	Modifiers  Modifiers    `json:"modifiers,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

// Parameter belongs to a method, constructor or function signature.
// Signature holds the callback type for function-typed parameters.
type Parameter struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Modifiers Modifiers `json:"modifiers,omitempty"`
	Signature string    `json:"signature,omitempty"`
}

// Returns describes a method's return type.
type Returns struct {
	Type string `json:"type"`
}

// Event is a listener pair on a type.
type Event struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Modifiers Modifiers `json:"modifiers,omitempty"`
}

// FunctionSignature is a free-standing callable type.
type FunctionSignature struct {
	ID             string           `json:"id,omitempty"`
	TypeParameters []*TypeParameter `json:"typeparameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Returns        *Returns         `json:"returns,omitempty"`
}

// Modifiers is an ordered list of modifier flags.
type Modifiers []string

// Has reports whether flag is present.
func (m Modifiers) Has(flag string) bool {
	for _, f := range m {
		if f == flag {
			return true
		}
	}
	return false
}

// Add appends flag when absent.
func (m *Modifiers) Add(flag string) {
	if !m.Has(flag) {
		*m = append(*m, flag)
	}
}

// Remove drops every occurrence of flag and reports whether one was present.
func (m *Modifiers) Remove(flag string) bool {
	out := (*m)[:0]
	removed := false
	for _, f := range *m {
		if f == flag {
			removed = true
			continue
		}
		out = append(out, f)
	}
	*m = out
	return removed
}

// Static reports the static flag.
func (p *Property) Static() bool { return p.Modifiers.Has(ModStatic) }

// Nullable reports the canbenull flag.
func (p *Property) Nullable() bool { return p.Modifiers.Has(ModCanBeNull) }

// Abstract reports the abstract flag.
func (p *Property) Abstract() bool { return p.Modifiers.Has(ModAbstract) }

// Abstract reports the abstract flag.
func (m *Method) Abstract() bool { return m.Modifiers.Has(ModAbstract) }

// Optional reports the optional flag.
func (p *Parameter) Optional() bool { return p.Modifiers.Has(ModOptional) }

// Nullable reports the canbenull flag.
func (p *Parameter) Nullable() bool { return p.Modifiers.Has(ModCanBeNull) }

// ReturnType returns the declared return type, or "" for void methods.
func (m *Method) ReturnType() string {
	if m.Returns == nil {
		return ""
	}
	return m.Returns.Type
}

// JSName returns the external name: the ES6 name when present, otherwise Name.
func (t *Type) JSName() string {
	if t.ES6Name != "" {
		return t.ES6Name
	}
	return t.Name
}

// Package returns the namespace part of the type's ID.
func (t *Type) Package() string {
	return PackageOf(t.ID)
}

// PackageOf returns everything before the last dot of a qualified name.
func PackageOf(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '.' {
			return id[:i]
		}
	}
	return ""
}

// ShortName returns everything after the last dot of a qualified name.
func ShortName(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '.' {
			return id[i+1:]
		}
	}
	return id
}
