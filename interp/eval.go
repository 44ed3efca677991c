package interp

import (
	"strconv"

	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/collector"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/frame"
	"github.com/cwbudde/enumlang/types"
)

// evalExpr dispatches on expr's concrete AST kind, the evaluator's
// exhaustive type switch over the expression union.
func (e *evaluator) evalExpr(f *frame.Frame, expr ast.Expression) (types.Value, error) {
	switch ex := expr.(type) {
	case *ast.Constant:
		return evalConstant(ex)
	case *ast.Name:
		return e.evalName(f, ex)
	case *ast.Access:
		return e.evalAccess(f, ex)
	case *ast.UnaryOperation:
		return e.evalUnary(f, ex)
	case *ast.BinaryOperation:
		return e.evalBinary(f, ex)
	case *ast.BoolOperation:
		return e.evalBool(f, ex)
	case *ast.Compare:
		return e.evalCompare(f, ex)
	case *ast.Cast:
		return e.evalCast(f, ex)
	case *ast.IsCompare:
		return e.evalIsCompare(f, ex)
	case *ast.FnCall:
		return e.evalFnCall(f, ex)
	case *ast.NewStruct:
		return e.evalNewStruct(f, ex)
	default:
		return nil, errors.ExpectedExpression(expr.Location().Begin, "unrecognized expression")
	}
}

func evalConstant(c *ast.Constant) (types.Value, error) {
	switch c.TypeName {
	case "i32":
		n, err := strconv.ParseInt(c.Raw, 10, 64)
		if err != nil {
			return nil, errors.TypeMismatch(c.Loc.Begin, "i32", c.Raw)
		}
		return &types.IntValue{Value: n}, nil
	case "f32":
		n, err := strconv.ParseFloat(c.Raw, 64)
		if err != nil {
			return nil, errors.TypeMismatch(c.Loc.Begin, "f32", c.Raw)
		}
		return &types.FloatValue{Value: n}, nil
	case "bool":
		return &types.BoolValue{Value: c.Bool}, nil
	case "str":
		return &types.StringValue{Value: c.Raw}, nil
	default:
		return nil, errors.TypeMismatch(c.Loc.Begin, "primitive", c.TypeName)
	}
}

func (e *evaluator) evalName(f *frame.Frame, n *ast.Name) (types.Value, error) {
	v, ok := f.Lookup(n.Identifier.Name)
	if !ok {
		return nil, errors.UnboundName(n.Loc.Begin, n.Identifier.Name)
	}
	return v.Value, nil
}

func (e *evaluator) evalAccess(f *frame.Frame, a *ast.Access) (types.Value, error) {
	parent, err := e.evalExpr(f, a.Parent)
	if err != nil {
		return nil, err
	}
	sv, ok := parent.(*types.StructValue)
	if !ok {
		return nil, errors.FieldNotFound(a.Loc.Begin, a.Name.Name)
	}
	v, ok := sv.Fields.Get(a.Name.Name)
	if !ok {
		return nil, errors.FieldNotFound(a.Loc.Begin, a.Name.Name)
	}
	return v, nil
}

func (e *evaluator) evalUnary(f *frame.Frame, u *ast.UnaryOperation) (types.Value, error) {
	operand, err := e.evalExpr(f, u.Operand)
	if err != nil {
		return nil, err
	}
	handler, err := e.it.Ops.LookupUnary(u.Loc.Begin, string(u.Op), operand.Type())
	if err != nil {
		return nil, err
	}
	return handler(operand)
}

func (e *evaluator) evalBinary(f *frame.Frame, b *ast.BinaryOperation) (types.Value, error) {
	left, err := e.evalExpr(f, b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(f, b.Right)
	if err != nil {
		return nil, err
	}
	if b.Op == ast.Div && isZero(right) {
		return nil, errors.DivisionByZero(b.Loc.Begin)
	}
	handler, err := e.it.Ops.LookupBinary(b.Loc.Begin, string(b.Op), left.Type(), right.Type())
	if err != nil {
		return nil, err
	}
	return handler(left, right)
}

func isZero(v types.Value) bool {
	switch n := v.(type) {
	case *types.IntValue:
		return n.Value == 0
	case *types.FloatValue:
		return n.Value == 0
	default:
		return false
	}
}

// evalBool evaluates both operands unconditionally before dispatch:
// && and || do not short-circuit.
func (e *evaluator) evalBool(f *frame.Frame, b *ast.BoolOperation) (types.Value, error) {
	left, err := e.evalExpr(f, b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(f, b.Right)
	if err != nil {
		return nil, err
	}
	handler, err := e.it.Ops.LookupBool(b.Loc.Begin, string(b.Op), left.Type(), right.Type())
	if err != nil {
		return nil, err
	}
	return handler(left, right)
}

func (e *evaluator) evalCompare(f *frame.Frame, c *ast.Compare) (types.Value, error) {
	left, err := e.evalExpr(f, c.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(f, c.Right)
	if err != nil {
		return nil, err
	}
	handler, err := e.it.Ops.LookupCompare(c.Loc.Begin, string(c.Mode), left.Type(), right.Type())
	if err != nil {
		return nil, err
	}
	return handler(left, right)
}

func (e *evaluator) evalCast(f *frame.Frame, c *ast.Cast) (types.Value, error) {
	value, err := e.evalExpr(f, c.Value)
	if err != nil {
		return nil, err
	}
	toType, err := collector.ResolveTypeExpr(e.it.Types, c.ToType)
	if err != nil {
		return nil, err
	}
	if value.Type().Equal(toType) {
		return value, nil
	}
	handler, err := e.it.Ops.LookupCast(c.Loc.Begin, value.Type(), toType)
	if err != nil {
		return nil, err
	}
	return handler(value)
}

func (e *evaluator) evalIsCompare(f *frame.Frame, i *ast.IsCompare) (types.Value, error) {
	value, err := e.evalExpr(f, i.Value)
	if err != nil {
		return nil, err
	}
	isType, err := collector.ResolveTypeExpr(e.it.Types, i.IsType)
	if err != nil {
		return nil, err
	}
	return &types.BoolValue{Value: e.it.Types.IsTest(value.Type(), isType)}, nil
}

func (e *evaluator) evalFnCall(f *frame.Frame, call *ast.FnCall) (types.Value, error) {
	args := make([]types.Value, len(call.Arguments))
	for i, a := range call.Arguments {
		v, err := e.evalExpr(f, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.it.call(call.Loc.Begin, call.Name.Name, args)
}

func (e *evaluator) evalNewStruct(f *frame.Frame, ns *ast.NewStruct) (types.Value, error) {
	variantName, err := collector.ResolveTypeExpr(e.it.Types, ns.Variant)
	if err != nil {
		return nil, err
	}
	structImpl, ok := e.it.Types.GetStruct(variantName)
	if !ok {
		return nil, errors.NotAStruct(ns.Variant.Location().Begin, variantName.String())
	}

	assigned := make(map[string]ast.Expression, len(ns.Assignments))
	for _, a := range ns.Assignments {
		assigned[a.Name.Name] = a.Value
	}

	fields := types.NewOrderedMap[types.Value]()
	for _, fieldName := range structImpl.Fields.Keys() {
		declaredType, _ := structImpl.Fields.Get(fieldName)
		if valueExpr, ok := assigned[fieldName]; ok {
			v, err := e.evalExpr(f, valueExpr)
			if err != nil {
				return nil, err
			}
			if !v.Type().Equal(declaredType) {
				return nil, errors.TypeMismatch(ns.Loc.Begin, declaredType.String(), v.Type().String())
			}
			fields.Set(fieldName, types.Copy(v))
			continue
		}
		zv, ok := types.ZeroValue(declaredType)
		if !ok {
			return nil, errors.NoDefaultForAggregate(ns.Loc.Begin, declaredType.String())
		}
		fields.Set(fieldName, zv)
	}

	return &types.StructValue{TypeNameValue: variantName, Fields: fields}, nil
}
