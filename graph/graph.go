package graph

import (
	"sort"
	"strings"

	"github.com/teranos/declgen/errors"
)

// Graph owns the decoded feed and indexes its type records.
type Graph struct {
	feed   *Feed
	types  []*Type
	byID   map[string]*Type
	byName map[string][]*Type
}

// New indexes a decoded feed and validates its structure: every type has an
// ID, a name and a known kind, and IDs are unique.
func New(feed *Feed) (*Graph, error) {
	if feed.FunctionSignatures == nil {
		feed.FunctionSignatures = make(map[string]*FunctionSignature)
	}
	for id, sig := range feed.FunctionSignatures {
		if sig == nil {
			return nil, errors.NewSchemaViolation(id, "function signature is null")
		}
		sig.ID = id
	}

	g := &Graph{
		feed:   feed,
		byID:   make(map[string]*Type),
		byName: make(map[string][]*Type),
	}

	var walk func(ns []*Namespace) error
	walk = func(ns []*Namespace) error {
		for _, n := range ns {
			for _, t := range n.Types {
				if err := g.index(t); err != nil {
					return err
				}
			}
			if err := walk(n.Namespaces); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(feed.Namespaces); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) index(t *Type) error {
	if t == nil || t.ID == "" {
		return errors.NewSchemaViolation("<type>", "type record without id")
	}
	if t.Name == "" {
		t.Name = ShortName(t.ID)
	}
	switch t.Group {
	case KindClass, KindInterface, KindEnum:
	default:
		return errors.NewSchemaViolation(t.ID, "unknown kind %q", t.Group)
	}
	if _, dup := g.byID[t.ID]; dup {
		return errors.NewSchemaViolation(t.ID, "duplicate type id")
	}

	g.types = append(g.types, t)
	g.byID[t.ID] = t
	g.byName[t.Name] = append(g.byName[t.Name], t)
	if t.ES6Name != "" && t.ES6Name != t.Name {
		g.byName[t.ES6Name] = append(g.byName[t.ES6Name], t)
	}
	return nil
}

// Version returns the feed's schema version.
func (g *Graph) Version() string { return g.feed.Version }

// Feed returns the underlying document.
func (g *Graph) Feed() *Feed { return g.feed }

// Types returns every type record in namespace order.
func (g *Graph) Types() []*Type {
	return g.types
}

// Has reports whether id is a known type ID.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Type resolves a type by qualified ID, short name or external name.
// A name that matches nothing, or matches several records, is a lookup error.
func (g *Graph) Type(name string) (*Type, error) {
	if t, ok := g.byID[name]; ok {
		return t, nil
	}
	matches := g.byName[name]
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errors.NewLookupError(name, "type %s not found", name)
	default:
		ids := make([]string, len(matches))
		for i, t := range matches {
			ids[i] = t.ID
		}
		sort.Strings(ids)
		return nil, errors.NewLookupError(name, "type name %s is ambiguous: %s", name, strings.Join(ids, ", "))
	}
}

// TypesNamed resolves several names, failing on the first miss.
func (g *Graph) TypesNamed(names ...string) ([]*Type, error) {
	out := make([]*Type, 0, len(names))
	for _, n := range names {
		t, err := g.Type(n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Namespace finds a namespace by ID anywhere in the tree.
func (g *Graph) Namespace(id string) (*Namespace, error) {
	var find func(ns []*Namespace) *Namespace
	find = func(ns []*Namespace) *Namespace {
		for _, n := range ns {
			if n.ID == id {
				return n
			}
			if found := find(n.Namespaces); found != nil {
				return found
			}
		}
		return nil
	}
	if n := find(g.feed.Namespaces); n != nil {
		return n, nil
	}
	return nil, errors.NewLookupError(id, "namespace %s not found", id)
}

// AddType inserts a synthesized type record into the namespace named by its
// package. Adding an ID that already exists is an invariant violation.
func (g *Graph) AddType(t *Type) error {
	if g.Has(t.ID) {
		return errors.NewInvariantViolation(t.ID, "type %s already exists", t.ID)
	}
	ns, err := g.Namespace(t.Package())
	if err != nil {
		return err
	}
	if err := g.index(t); err != nil {
		return err
	}
	ns.Types = append(ns.Types, t)
	return nil
}

// FunctionSignatures returns the signatures sorted by ID.
func (g *Graph) FunctionSignatures() []*FunctionSignature {
	out := make([]*FunctionSignature, 0, len(g.feed.FunctionSignatures))
	for _, sig := range g.feed.FunctionSignatures {
		out = append(out, sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FunctionSignature returns the signature with the given ID.
func (g *Graph) FunctionSignature(id string) (*FunctionSignature, error) {
	if sig, ok := g.feed.FunctionSignatures[id]; ok {
		return sig, nil
	}
	return nil, errors.NewLookupError(id, "function signature %s not found", id)
}

// HasFunctionSignature reports whether id names a function signature.
func (g *Graph) HasFunctionSignature(id string) bool {
	_, ok := g.feed.FunctionSignatures[id]
	return ok
}

// RemoveFunctionSignature deletes a signature; a missing one is a lookup error.
func (g *Graph) RemoveFunctionSignature(id string) error {
	if _, ok := g.feed.FunctionSignatures[id]; !ok {
		return errors.NewLookupError(id, "function signature %s not found", id)
	}
	delete(g.feed.FunctionSignatures, id)
	return nil
}
