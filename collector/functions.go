package collector

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/registry"
	"github.com/cwbudde/enumlang/types"
)

// FunctionsCollector visits each top-level FunctionDeclaration, resolves
// its parameter and return types against an already-populated
// TypesRegistry, and registers the result. It must run after
// TypesCollector.Collect.
type FunctionsCollector struct {
	types     *registry.TypesRegistry
	functions *registry.FunctionsRegistry
}

func NewFunctionsCollector(types *registry.TypesRegistry, functions *registry.FunctionsRegistry) *FunctionsCollector {
	return &FunctionsCollector{types: types, functions: functions}
}

func (c *FunctionsCollector) Collect(mod *ast.Module) error {
	for _, fn := range mod.Functions {
		impl, err := c.buildFunction(fn)
		if err != nil {
			return err
		}
		if err := c.functions.Register(fn.Name.Tok.Pos, impl); err != nil {
			return err
		}
	}
	return nil
}

func (c *FunctionsCollector) buildFunction(fn *ast.FunctionDeclaration) (*types.FunctionImplementation, error) {
	params := types.NewOrderedMap[types.Param]()
	for _, p := range fn.Parameters {
		pt, err := ResolveTypeExpr(c.types, p.DeclaredType)
		if err != nil {
			return nil, err
		}
		params.Set(p.Name.Name, types.Param{Mutable: p.Mutable, Type: pt})
	}

	var returnType *types.TypeName
	if fn.Returns != nil {
		rt, err := ResolveTypeExpr(c.types, fn.Returns)
		if err != nil {
			return nil, err
		}
		returnType = &rt
	}

	return &types.FunctionImplementation{
		Name:         types.New(fn.Name.Name),
		Parameters:   params,
		ReturnType:   returnType,
		Body:         fn.Body,
		DeclaringPos: fn.Name.Tok.Pos,
	}, nil
}
