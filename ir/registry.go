package ir

// Registry answers questions about referenced declarations: their kind and
// generic arity.
type Registry struct {
	kinds map[string]Kind
	arity map[string]int
}

func newRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Kind),
		arity: make(map[string]int),
	}
}

func (r *Registry) register(id string, kind Kind, arity int) {
	r.kinds[id] = kind
	r.arity[id] = arity
}

// KindOf returns the kind registered for id.
func (r *Registry) KindOf(id string) (Kind, bool) {
	k, ok := r.kinds[id]
	return k, ok
}

// Arity returns the number of type parameters id declares; unknown IDs have none.
func (r *Registry) Arity(id string) int {
	return r.arity[id]
}

// DefaultArguments returns the star projections used when a generic
// declaration is referenced without arguments.
func (r *Registry) DefaultArguments(id string) []*TypeRef {
	n := r.arity[id]
	if n == 0 {
		return nil
	}
	out := make([]*TypeRef, n)
	for i := range out {
		out[i] = &TypeRef{Name: Star}
	}
	return out
}
