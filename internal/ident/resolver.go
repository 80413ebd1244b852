package ident

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Resolver assigns unique names to the keys of one run.
// The zero value is not usable; call NewResolver.
type Resolver struct {
	assigned *orderedmap.OrderedMap[string, string]
}

// NewResolver returns an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{assigned: orderedmap.New[string, string]()}
}

// Assign normalizes raw and returns a name no earlier call has returned.
// When the normalized name is taken, the first free numeric suffix
// (1, 2, ...) is appended to it.
func (r *Resolver) Assign(raw string) string {
	base := Normalize(raw)

	name := base
	for i := 1; r.taken(name); i++ {
		name = base + strconv.Itoa(i)
	}

	r.assigned.Set(name, raw)
	return name
}

// Lookup returns the key that was assigned name.
func (r *Resolver) Lookup(name string) (string, bool) {
	return r.assigned.Get(name)
}

// Len returns the number of names assigned so far.
func (r *Resolver) Len() int {
	return r.assigned.Len()
}

// Each calls fn for every assigned name and its key, in assignment order.
func (r *Resolver) Each(fn func(name, raw string)) {
	for p := r.assigned.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

func (r *Resolver) taken(name string) bool {
	_, ok := r.assigned.Get(name)
	return ok
}
