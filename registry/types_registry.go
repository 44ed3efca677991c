// Package registry holds the construction-time tables the rest of the
// interpreter consults: declared types, declared functions, and the
// operator/cast dispatch tables (the "is" test is TypesRegistry.IsTest,
// which needs no table). Every struct/enum is registered
// both in its own specialized table and a shared one, so redeclaration
// checks see both kinds.
package registry

import (
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
)

// TypesRegistry holds every declared struct and enum, keyed by qualified
// TypeName. A single shared map backs redeclaration checks across both
// kinds, plus two specialized maps for typed lookups.
type TypesRegistry struct {
	all     map[string]types.TypeImplementation
	structs map[string]*types.StructImplementation
	enums   map[string]*types.EnumImplementation
}

func NewTypesRegistry() *TypesRegistry {
	return &TypesRegistry{
		all:     make(map[string]types.TypeImplementation),
		structs: make(map[string]*types.StructImplementation),
		enums:   make(map[string]*types.EnumImplementation),
	}
}

// RegisterStruct adds a struct type under its qualified name. Returns a
// redeclaration error if the name is already registered as either a
// struct or an enum (or one of its enum's variants).
func (r *TypesRegistry) RegisterStruct(pos token.Position, impl *types.StructImplementation) error {
	key := impl.Name.Key()
	if _, exists := r.all[key]; exists {
		return errors.TypeRedeclaration(pos, impl.Name.String())
	}
	r.all[key] = impl
	r.structs[key] = impl
	return nil
}

// RegisterEnum adds an enum type under its qualified name, and
// additionally registers every variant transitively nested inside it
// (directly, or through further nested enums) under its own qualified
// name, so "Elem::Button::Disabled" resolves both as a variant of
// Elem::Button and as its own struct-shaped type.
func (r *TypesRegistry) RegisterEnum(pos token.Position, impl *types.EnumImplementation) error {
	tree := make(map[string]types.TypeImplementation)
	if dup := collectTypeTree(impl, tree); dup != nil {
		return errors.TypeRedeclaration(redeclarationPos(dup, pos), dup.TypeName().String())
	}
	for key, node := range tree {
		if _, exists := r.all[key]; exists {
			return errors.TypeRedeclaration(redeclarationPos(node, pos), node.TypeName().String())
		}
	}

	for key, node := range tree {
		r.all[key] = node
		switch n := node.(type) {
		case *types.StructImplementation:
			r.structs[key] = n
		case *types.EnumImplementation:
			r.enums[key] = n
		}
	}
	return nil
}

// redeclarationPos picks the position a type collision is reported at:
// the colliding declaration itself, falling back to the registration
// call's position for implementations built without one.
func redeclarationPos(impl types.TypeImplementation, fallback token.Position) token.Position {
	if p := impl.DeclaredAt(); p.IsValid() {
		return p
	}
	return fallback
}

// collectTypeTree gathers impl and every type nested beneath it into out,
// keyed by qualified name. Returns the first node whose key is already
// taken by another node in the same tree (a redeclaration within a
// single enum literal), or nil when the tree is collision-free.
func collectTypeTree(impl types.TypeImplementation, out map[string]types.TypeImplementation) types.TypeImplementation {
	key := impl.TypeName().Key()
	if _, exists := out[key]; exists {
		return impl
	}
	out[key] = impl

	enum, ok := impl.(*types.EnumImplementation)
	if !ok {
		return nil
	}
	var dup types.TypeImplementation
	enum.Variants.Range(func(_ string, variant types.TypeImplementation) bool {
		if d := collectTypeTree(variant, out); d != nil {
			dup = d
			return false
		}
		return true
	})
	return dup
}

// Get returns the type registered under name, regardless of kind.
func (r *TypesRegistry) Get(name types.TypeName) (types.TypeImplementation, bool) {
	impl, ok := r.all[name.Key()]
	return impl, ok
}

// GetStruct returns the struct registered under name.
func (r *TypesRegistry) GetStruct(name types.TypeName) (*types.StructImplementation, bool) {
	s, ok := r.structs[name.Key()]
	return s, ok
}

// GetEnum returns the enum registered under name.
func (r *TypesRegistry) GetEnum(name types.TypeName) (*types.EnumImplementation, bool) {
	e, ok := r.enums[name.Key()]
	return e, ok
}

// IsKnown reports whether name resolves to a declared or primitive type.
func (r *TypesRegistry) IsKnown(name types.TypeName) bool {
	if types.IsPrimitive(name) {
		return true
	}
	_, ok := r.all[name.Key()]
	return ok
}
