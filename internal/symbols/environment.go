package symbols

import (
	"maps"
	"sort"
)

// Environment maps identifiers (function and variable names) to a payload,
// the type of each binding when checking. It has value semantics through
// Clone: a clone is a full snapshot, and later definitions on either side
// are invisible to the other. Scope isolation is built on this.
//
// There is no delete; bindings only accumulate during a scope's lifetime.
// The zero value is an empty environment.
type Environment[T any] struct {
	store map[string]T
}

func NewEnvironment[T any]() *Environment[T] {
	return &Environment[T]{store: make(map[string]T)}
}

// Find looks a name up. The boolean is false when the name is undeclared.
func (e *Environment[T]) Find(name string) (T, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Define inserts a binding, overwriting any previous one for name.
func (e *Environment[T]) Define(name string, v T) {
	if e.store == nil {
		e.store = make(map[string]T)
	}
	e.store[name] = v
}

func (e *Environment[T]) IsDefined(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Clone returns an independent snapshot of the environment.
func (e *Environment[T]) Clone() *Environment[T] {
	return &Environment[T]{store: maps.Clone(e.store)}
}

func (e *Environment[T]) Len() int {
	return len(e.store)
}

// Names returns all bound names in sorted order.
func (e *Environment[T]) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
