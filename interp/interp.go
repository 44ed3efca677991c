// Package interp implements the tree-walking evaluator: it drives a
// Module's collectors and validators, then executes a named entry
// function against a fresh root Frame, producing a types.Value or a
// typed error. Dispatch is an exhaustive Go type switch per AST node
// kind, and results are threaded as ordinary (types.Value, error)
// return values rather than through shared "current value"/"current
// name" slots.
package interp

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/collector"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/frame"
	"github.com/cwbudde/enumlang/registry"
	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
	"github.com/cwbudde/enumlang/validate"
)

// Interpreter owns the three registries populated by Load and shared,
// read-only, by every subsequent Run. Registries never shrink.
type Interpreter struct {
	Types     *registry.TypesRegistry
	Functions *registry.FunctionsRegistry
	Ops       *registry.OperationRegistry
}

// New creates an Interpreter with a fresh, empty set of registries and
// the prelude operations installed (arithmetic, comparison, boolean,
// cast, and the universal wildcard fallbacks).
func New() *Interpreter {
	ops := registry.NewOperationRegistry()
	registry.RegisterPrelude(ops)
	return &Interpreter{
		Types:     registry.NewTypesRegistry(),
		Functions: registry.NewFunctionsRegistry(),
		Ops:       ops,
	}
}

// Load runs the collection and validation pipeline over mod: types,
// then functions, then the three independent validators. It must be
// called exactly once per Interpreter before Run.
func (it *Interpreter) Load(mod *ast.Module) error {
	if err := collector.NewTypesCollector(it.Types).Collect(mod); err != nil {
		return err
	}
	if err := collector.NewFunctionsCollector(it.Types, it.Functions).Collect(mod); err != nil {
		return err
	}
	if err := validate.NewFnCallValidator(it.Functions).Validate(mod); err != nil {
		return err
	}
	if err := validate.NewNewStructValidator(it.Types).Validate(mod); err != nil {
		return err
	}
	if err := validate.NewReturnValidator(it.Types).Validate(mod); err != nil {
		return err
	}
	return nil
}

// Run locates the function named name, binds args to its parameters by
// position, executes its body on a fresh root frame, and returns either
// the value carried by the return statement that exited it, or
// types.UnitValue{} if control fell off the end of a void function.
func (it *Interpreter) Run(name string, args ...types.Value) (types.Value, error) {
	return it.call(token.Position{Line: 1, Column: 1}, name, args)
}

func (it *Interpreter) call(pos token.Position, name string, args []types.Value) (types.Value, error) {
	fn, ok := it.Functions.Get(types.New(name))
	if !ok {
		return nil, errors.UnknownFunction(pos, name)
	}
	if fn.Parameters.Len() != len(args) {
		return nil, errors.ArityMismatch(pos, name, fn.Parameters.Len(), len(args))
	}

	root := frame.New(nil)
	i := 0
	var bindErr error
	fn.Parameters.Range(func(pname string, p types.Param) bool {
		arg := args[i]
		i++
		// An enum-typed parameter accepts any of its variants, the same
		// containment rule the `is` operator dispatches on.
		if !it.Types.IsTest(arg.Type(), p.Type) {
			bindErr = errors.TypeMismatch(pos, p.Type.String(), arg.Type().String())
			return false
		}
		bindErr = root.Declare(pos, pname, &types.Variable{
			Mutable:      p.Mutable,
			DeclaredType: p.Type,
			Value:        types.Copy(arg),
		})
		return bindErr == nil
	})
	if bindErr != nil {
		return nil, bindErr
	}

	body, _ := fn.Body.(*ast.Block)
	e := &evaluator{it: it}
	signal, err := e.execBlock(root, body)
	if err != nil {
		return nil, err
	}
	if signal.returned && signal.value != nil {
		return signal.value, nil
	}
	return &types.UnitValue{}, nil
}

// evaluator holds the shared, read-only state a single Run's tree walk
// needs. It carries no mutable "current value"/"current name" slots:
// every visit method returns its result directly.
type evaluator struct {
	it *Interpreter
}

// controlSignal reports whether a Return was hit while executing a
// block, and if so, its value (nil for a bare `return;`). A Return
// aborts block evaluation and propagates outward to the enclosing
// function call.
type controlSignal struct {
	returned bool
	value    types.Value
}

var noSignal = controlSignal{}
