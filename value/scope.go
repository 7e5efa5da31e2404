package value

import "fmt"

// Scope is a lexical environment: a mapping from names to Values plus an
// optional parent link. A Scope is shared by reference — a Lambda captures
// a handle to the Scope it was created in, so later mutations of that
// scope (forward-referencing top-level definitions) are visible to it.
type Scope struct {
	parent *Scope
	vars   map[string]Value
}

// NewScope creates an empty root scope with no parent.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Value)}
}

// NewChildScope creates an empty scope whose parent is s.
func NewChildScope(s *Scope) *Scope {
	return &Scope{parent: s, vars: make(map[string]Value)}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Insert binds name to v in the current frame, regardless of whether an
// ancestor frame already owns that name (shadowing it).
func (s *Scope) Insert(name string, v Value) {
	if old, ok := s.vars[name]; ok {
		Release(old)
	}
	Retain(v)
	s.vars[name] = v
}

// Replace walks the parent chain looking for the nearest frame that already
// owns name and updates the binding there. It fails if no ancestor owns
// the name.
func (s *Scope) Replace(name string, v Value) error {
	for frame := s; frame != nil; frame = frame.parent {
		if old, ok := frame.vars[name]; ok {
			Release(old)
			Retain(v)
			frame.vars[name] = v
			return nil
		}
	}
	return fmt.Errorf("cannot set undefined variable '%s'", name)
}

// Remove deletes name from this frame only (not ancestors). It is a no-op
// if this frame does not own name.
func (s *Scope) Remove(name string) {
	if old, ok := s.vars[name]; ok {
		Release(old)
		delete(s.vars, name)
	}
}

// Lookup walks the parent chain, returning the first binding found.
func (s *Scope) Lookup(name string) (Value, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupShallow considers only the current frame.
func (s *Scope) LookupShallow(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// RLookup returns both the bound value and the exact frame that owns name,
// walking the parent chain.
func (s *Scope) RLookup(name string) (Value, *Scope, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, frame, true
		}
	}
	return nil, nil, false
}
