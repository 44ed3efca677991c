package validate

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/registry"
	"github.com/cwbudde/enumlang/types"
)

// FnCallValidator checks that every FnCall in the module names a
// registered function and is applied to the right number of arguments.
// Argument *types* are checked structurally at evaluation time; only
// arity is a static error.
type FnCallValidator struct {
	functions *registry.FunctionsRegistry
}

func NewFnCallValidator(functions *registry.FunctionsRegistry) *FnCallValidator {
	return &FnCallValidator{functions: functions}
}

func (v *FnCallValidator) Validate(mod *ast.Module) error {
	return walkModule(mod, nil, func(e ast.Expression) error {
		call, ok := e.(*ast.FnCall)
		if !ok {
			return nil
		}
		fn, ok := v.functions.Get(types.New(call.Name.Name))
		if !ok {
			return errors.UnknownFunction(call.Name.Location().Begin, call.Name.Name)
		}
		if fn.Parameters.Len() != len(call.Arguments) {
			return errors.ArityMismatch(call.Loc.Begin, call.Name.Name, fn.Parameters.Len(), len(call.Arguments))
		}
		return nil
	})
}
