/*
File    : go-lyra/scope/scope.go
Author  : Lyra Maintainers
*/
package scope

import "github.com/lyra-lang/go-lyra/objects"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical
// scoping and closures. Each scope maintains its own variable bindings
// and links to its enclosing scope. This structure supports:
// - Variable shadowing: inner scopes can redefine names from outer scopes
// - Closures: functions capture their defining scope by reference
// - Block scoping: each block and call frame gets its own scope
//
// The chain is traversed upward (child to parent) during dynamic lookup.
// Resolver-directed access (GetAt/AssignAt) instead hops a precomputed
// number of parent links and reads the name exactly there, which is what
// makes shadowing decisions static. The parent link is never mutated
// after construction, so the chain is acyclic.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.Object

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the given parent.
// parent == nil creates a global (root) scope; otherwise the new scope
// can reach every binding of its ancestors through the lookup chain.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Parent:    parent,
	}
}

// Bind creates or replaces a variable binding in the current scope only.
// Used for declarations; it never touches parent scopes, which is what
// allows an inner scope to shadow an outer name.
func (s *Scope) Bind(varName string, obj objects.Object) {
	s.Variables[varName] = obj
}

// Has reports whether the name is bound in this scope itself,
// ignoring parents.
func (s *Scope) Has(varName string) bool {
	_, ok := s.Variables[varName]
	return ok
}

// LookUp searches for a variable by name in this scope and all parents.
//
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches it
// 3. Continues up the chain until found or the root is reached
//
// This traversal order ensures inner bindings shadow outer ones.
func (s *Scope) LookUp(varName string) (objects.Object, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Assign updates an existing variable in the scope where it was
// originally defined. Unlike Bind it walks the chain, so closures and
// inner blocks mutate the original binding instead of creating a new
// one. Returns false when the name is bound nowhere in the chain.
func (s *Scope) Assign(varName string, obj objects.Object) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// Ancestor returns the scope reached by following the parent link
// distance times. Distance 0 is the scope itself. The resolver
// guarantees the hop count lands on a live scope, so the nil check only
// guards against internal inconsistencies.
func (s *Scope) Ancestor(distance int) *Scope {
	scp := s
	for i := 0; i < distance; i++ {
		if scp.Parent == nil {
			return scp
		}
		scp = scp.Parent
	}
	return scp
}

// GetAt reads a name from the scope exactly distance hops up the chain.
// Resolver-directed variable reads come through here.
func (s *Scope) GetAt(distance int, varName string) (objects.Object, bool) {
	obj, ok := s.Ancestor(distance).Variables[varName]
	return obj, ok
}

// AssignAt writes a name in the scope exactly distance hops up the chain.
// Resolver-directed assignments come through here.
func (s *Scope) AssignAt(distance int, varName string, obj objects.Object) {
	s.Ancestor(distance).Variables[varName] = obj
}
