package interp

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/collector"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/frame"
	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
)

// execBlock pushes a fresh Frame nested inside parent, runs body's
// statements in order, and pops it on every exit path. Since Go's
// garbage collector reclaims the Frame once it is unreachable,
// "popping" here means simply not threading it any further; there is
// nothing else to release.
func (e *evaluator) execBlock(parent *frame.Frame, b *ast.Block) (controlSignal, error) {
	f := frame.New(parent)
	for _, stmt := range b.Body {
		signal, err := e.execStmt(f, stmt)
		if err != nil || signal.returned {
			return signal, err
		}
	}
	return noSignal, nil
}

func (e *evaluator) execStmt(f *frame.Frame, stmt ast.Statement) (controlSignal, error) {
	switch st := stmt.(type) {
	case *ast.Block:
		return e.execBlock(f, st)
	case *ast.VariableDeclaration:
		return noSignal, e.execVariableDeclaration(f, st)
	case *ast.Assignment:
		return noSignal, e.execAssignment(f, st)
	case *ast.Return:
		return e.execReturn(f, st)
	case *ast.If:
		return e.execIf(f, st)
	case *ast.While:
		return e.execWhile(f, st)
	case *ast.Match:
		return e.execMatch(f, st)
	case *ast.ExpressionStatement:
		_, err := e.evalExpr(f, st.Expr)
		return noSignal, err
	default:
		return noSignal, nil
	}
}

func (e *evaluator) execVariableDeclaration(f *frame.Frame, st *ast.VariableDeclaration) error {
	var declaredType types.TypeName
	hasDeclared := st.DeclaredType != nil
	if hasDeclared {
		dt, err := collector.ResolveTypeExpr(e.it.Types, st.DeclaredType)
		if err != nil {
			return err
		}
		declaredType = dt
	}

	var value types.Value
	switch {
	case st.Value != nil:
		v, err := e.evalExpr(f, st.Value)
		if err != nil {
			return err
		}
		value = v
	case hasDeclared:
		zv, ok := types.ZeroValue(declaredType)
		if !ok {
			return errors.NoDefaultForAggregate(st.Loc.Begin, declaredType.String())
		}
		value = zv
	default:
		return errors.MissingTypeOrInitializer(st.Loc.Begin, st.Name.Name)
	}

	if hasDeclared && !value.Type().Equal(declaredType) {
		return errors.TypeMismatch(st.Loc.Begin, declaredType.String(), value.Type().String())
	}
	if !hasDeclared {
		declaredType = value.Type()
	}

	return f.Declare(st.Loc.Begin, st.Name.Name, &types.Variable{
		Mutable:      st.Mutable,
		DeclaredType: declaredType,
		Value:        types.Copy(value),
	})
}

func (e *evaluator) execAssignment(f *frame.Frame, st *ast.Assignment) error {
	value, err := e.evalExpr(f, st.Value)
	if err != nil {
		return err
	}

	switch target := st.Target.(type) {
	case *ast.Name:
		v, ok := f.Assign(target.Identifier.Name)
		if !ok {
			return errors.UnboundName(target.Loc.Begin, target.Identifier.Name)
		}
		if !v.Mutable {
			return errors.ImmutableAssignment(target.Loc.Begin, target.Identifier.Name)
		}
		if !v.DeclaredType.Equal(value.Type()) {
			return errors.TypeMismatch(target.Loc.Begin, v.DeclaredType.String(), value.Type().String())
		}
		v.Value = types.Copy(value)
		return nil
	case *ast.Access:
		return e.assignAccess(f, target, value)
	default:
		return errors.ExpectedExpression(target.Location().Begin, "assignable name or field access")
	}
}

// assignAccess writes value into the field named by target, mutating
// the live struct in place: the StructValue reached by evaluating
// target.Parent is the same *types.StructValue a Variable holds (reading
// a name or a field returns the stored value without calling
// types.Copy), so setting its field here is visible
// through every other reference to that variable.
func (e *evaluator) assignAccess(f *frame.Frame, target *ast.Access, value types.Value) error {
	parentVal, err := e.evalExpr(f, target.Parent)
	if err != nil {
		return err
	}
	sv, ok := parentVal.(*types.StructValue)
	if !ok {
		return errors.FieldNotFound(target.Loc.Begin, target.Name.Name)
	}
	current, ok := sv.Fields.Get(target.Name.Name)
	if !ok {
		return errors.FieldNotFound(target.Loc.Begin, target.Name.Name)
	}
	if !current.Type().Equal(value.Type()) {
		return errors.TypeMismatch(target.Loc.Begin, current.Type().String(), value.Type().String())
	}
	sv.Fields.Set(target.Name.Name, types.Copy(value))
	return nil
}

func (e *evaluator) execReturn(f *frame.Frame, st *ast.Return) (controlSignal, error) {
	if st.Value == nil {
		return controlSignal{returned: true}, nil
	}
	v, err := e.evalExpr(f, st.Value)
	if err != nil {
		return noSignal, err
	}
	return controlSignal{returned: true, value: v}, nil
}

func (e *evaluator) execIf(f *frame.Frame, st *ast.If) (controlSignal, error) {
	cond, err := e.evalExpr(f, st.Condition)
	if err != nil {
		return noSignal, err
	}
	truthy, err := asBool(st.Condition.Location().Begin, cond)
	if err != nil {
		return noSignal, err
	}
	if truthy {
		return e.execBlock(f, st.Then)
	}
	if st.Else != nil {
		return e.execBlock(f, st.Else)
	}
	return noSignal, nil
}

func (e *evaluator) execWhile(f *frame.Frame, st *ast.While) (controlSignal, error) {
	for {
		cond, err := e.evalExpr(f, st.Condition)
		if err != nil {
			return noSignal, err
		}
		truthy, err := asBool(st.Condition.Location().Begin, cond)
		if err != nil {
			return noSignal, err
		}
		if !truthy {
			return noSignal, nil
		}
		signal, err := e.execBlock(f, st.Body)
		if err != nil || signal.returned {
			return signal, err
		}
	}
}

func (e *evaluator) execMatch(f *frame.Frame, st *ast.Match) (controlSignal, error) {
	subject, err := e.evalExpr(f, st.Subject)
	if err != nil {
		return noSignal, err
	}
	for _, arm := range st.Matchers {
		armType, err := collector.ResolveTypeExpr(e.it.Types, arm.DeclaredType)
		if err != nil {
			return noSignal, err
		}
		if !subject.Type().Equal(armType) {
			continue
		}
		matchFrame := frame.New(f)
		if err := matchFrame.Declare(arm.Loc.Begin, arm.BindingName.Name, &types.Variable{
			Mutable:      false,
			DeclaredType: armType,
			Value:        types.Copy(subject),
		}); err != nil {
			return noSignal, err
		}
		return e.execBlock(matchFrame, arm.Body)
	}
	return noSignal, errors.NonExhaustiveMatch(st.Subject.Location().Begin, subject.Type().String())
}

func asBool(pos token.Position, v types.Value) (bool, error) {
	b, ok := v.(*types.BoolValue)
	if !ok {
		return false, errors.TypeMismatch(pos, types.Bool.String(), v.Type().String())
	}
	return b.Value, nil
}
