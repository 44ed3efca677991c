package validate

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/collector"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/registry"
	"github.com/cwbudde/enumlang/types"
)

// NewStructValidator checks every NewStruct literal in the module:
// its Variant must name a registered struct, every assignment's field
// must be declared exactly once, and every field omitted from the
// literal must have a primitive (zero-valued) type. Omitting an
// aggregate-typed field is a static error; there is no recursive
// default construction.
type NewStructValidator struct {
	types *registry.TypesRegistry
}

func NewNewStructValidator(t *registry.TypesRegistry) *NewStructValidator {
	return &NewStructValidator{types: t}
}

func (v *NewStructValidator) Validate(mod *ast.Module) error {
	return walkModule(mod, nil, func(e ast.Expression) error {
		ns, ok := e.(*ast.NewStruct)
		if !ok {
			return nil
		}
		return v.validateOne(ns)
	})
}

func (v *NewStructValidator) validateOne(ns *ast.NewStruct) error {
	variantName, err := collector.ResolveTypeExpr(v.types, ns.Variant)
	if err != nil {
		return err
	}
	structImpl, ok := v.types.GetStruct(variantName)
	if !ok {
		return errors.NotAStruct(ns.Variant.Location().Begin, variantName.String())
	}

	seen := make(map[string]bool, len(ns.Assignments))
	for _, asg := range ns.Assignments {
		fieldName := asg.Name.Name
		if !structImpl.Fields.Has(fieldName) {
			return errors.UnknownField(asg.Loc.Begin, variantName.String(), fieldName)
		}
		if seen[fieldName] {
			return errors.RedundantField(asg.Loc.Begin, variantName.String(), fieldName)
		}
		seen[fieldName] = true
	}

	for _, fieldName := range structImpl.Fields.Keys() {
		if seen[fieldName] {
			continue
		}
		fieldType, _ := structImpl.Fields.Get(fieldName)
		if !types.IsPrimitive(fieldType) {
			return errors.MissingField(ns.Loc.Begin, variantName.String(), fieldName)
		}
	}
	return nil
}
