// Package collector walks a parsed *ast.Module and populates the type and
// function registries the evaluator runs against. Type collection is
// two-pass (every declared type is registered under its qualified path
// first, then field types are resolved), so a struct field may name a
// type declared later in the same module, or an enum that (directly or
// through further nesting) contains a struct referencing the enum
// itself.
package collector

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/registry"
	"github.com/cwbudde/enumlang/types"
)

// ResolveTypeExpr flattens a type-at-use-site (ast.NamedType or
// ast.QualifiedType chain) into a types.TypeName and checks it against
// reg, failing with an unknown-type error at t's position if it names
// neither a primitive nor a registered declaration.
func ResolveTypeExpr(reg *registry.TypesRegistry, t ast.TypeExpr) (types.TypeName, error) {
	name := types.New(ast.TypeExprPath(t)...)
	if !reg.IsKnown(name) {
		return types.TypeName{}, errors.UnknownType(t.Location().Begin, name.String())
	}
	return name, nil
}

// pendingFields is a struct type queued during the registration pass,
// awaiting its field types to be resolved once every type in the module
// has a registered stub.
type pendingFields struct {
	name   types.TypeName
	fields []*ast.FieldDeclaration
}

// TypesCollector performs a module-wide DFS: register every struct/enum
// (including deeply nested enum variants) under its fully qualified
// path, then resolve each field's textual type to a TypeName.
type TypesCollector struct {
	registry *registry.TypesRegistry
	pending  []pendingFields
}

func NewTypesCollector(reg *registry.TypesRegistry) *TypesCollector {
	return &TypesCollector{registry: reg}
}

// Collect registers every declared type in mod and resolves their field
// types. It is idempotent over distinct fresh registries: collecting the
// same module twice into two fresh TypesCollectors over fresh registries
// yields the same keys.
func (c *TypesCollector) Collect(mod *ast.Module) error {
	root := types.New()
	for _, s := range mod.Structs {
		impl, err := c.buildStruct(root, s)
		if err != nil {
			return err
		}
		if err := c.registry.RegisterStruct(s.Name.Tok.Pos, impl); err != nil {
			return err
		}
	}
	for _, e := range mod.Enums {
		impl, err := c.buildEnum(root, e)
		if err != nil {
			return err
		}
		if err := c.registry.RegisterEnum(e.Name.Tok.Pos, impl); err != nil {
			return err
		}
	}
	return c.resolveFields()
}

// buildStruct constructs the (unresolved-fields) implementation for decl
// under prefix, queuing its fields for the second pass.
func (c *TypesCollector) buildStruct(prefix types.TypeName, decl *ast.StructDeclaration) (*types.StructImplementation, error) {
	name := prefix.Extend(decl.Name.Name)
	impl := &types.StructImplementation{
		Name:         name,
		Fields:       types.NewOrderedMap[types.TypeName](),
		DeclaringPos: decl.Name.Tok.Pos,
	}
	c.pending = append(c.pending, pendingFields{name: name, fields: decl.Fields})
	return impl, nil
}

// buildEnum recursively constructs decl's implementation tree, including
// every nested struct/enum variant, under prefix. Two variants of the
// same enum sharing a name is a redeclaration, reported at the second
// variant's own declaration.
func (c *TypesCollector) buildEnum(prefix types.TypeName, decl *ast.EnumDeclaration) (*types.EnumImplementation, error) {
	name := prefix.Extend(decl.Name.Name)
	impl := &types.EnumImplementation{
		Name:         name,
		Variants:     types.NewOrderedMap[types.TypeImplementation](),
		DeclaringPos: decl.Name.Tok.Pos,
	}
	for _, v := range decl.Variants {
		var vimpl types.TypeImplementation
		var vname *ast.Identifier
		var err error
		switch variant := v.(type) {
		case *ast.StructDeclaration:
			vname = variant.Name
			vimpl, err = c.buildStruct(name, variant)
		case *ast.EnumDeclaration:
			vname = variant.Name
			vimpl, err = c.buildEnum(name, variant)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		if impl.Variants.Has(vname.Name) {
			return nil, errors.TypeRedeclaration(vname.Tok.Pos, name.Extend(vname.Name).String())
		}
		impl.Variants.Set(vname.Name, vimpl)
	}
	return impl, nil
}

// resolveFields fills in every queued struct's Fields, now that every
// type declared anywhere in the module is registered and IsKnown.
func (c *TypesCollector) resolveFields() error {
	for _, p := range c.pending {
		impl, ok := c.registry.GetStruct(p.name)
		if !ok {
			continue
		}
		for _, f := range p.fields {
			ft, err := ResolveTypeExpr(c.registry, f.DeclaredType)
			if err != nil {
				return err
			}
			impl.Fields.Set(f.Name.Name, ft)
		}
	}
	return nil
}
