// Package frame implements the lexically nested variable scopes the
// evaluator runs function bodies against. A Frame is created on entry to
// a Block, an If/else branch, a While body, a match arm, or a function
// call, and is dropped on exit; lookups and assignments walk the parent
// chain outward.
package frame

import (
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
)

// Frame is one lexical scope's variable bindings plus a link to the
// enclosing scope (nil at the root of a function call).
type Frame struct {
	vars   map[string]*types.Variable
	parent *Frame
}

// New creates a Frame nested inside parent. Pass nil for a function's
// root frame.
func New(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]*types.Variable), parent: parent}
}

// Declare binds name to v in this frame only: it never walks to an
// enclosing frame, and it rejects a second declaration of the same name
// within this frame (an inner declaration is free to shadow an outer
// one, just not one in the same scope).
func (f *Frame) Declare(pos token.Position, name string, v *types.Variable) error {
	if _, exists := f.vars[name]; exists {
		return errors.VariableRedeclaration(pos, name)
	}
	f.vars[name] = v
	return nil
}

// Lookup walks from f outward through enclosing frames and returns the
// first binding found for name.
func (f *Frame) Lookup(name string) (*types.Variable, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the chain to the frame that already owns name and
// returns its Variable, which the caller mutates in place; it writes
// nothing itself. It does not create a new binding;
// assigning to an undeclared name is the caller's job to reject as an
// unbound-name error.
func (f *Frame) Assign(name string) (*types.Variable, bool) {
	return f.Lookup(name)
}
