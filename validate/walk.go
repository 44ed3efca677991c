// Package validate implements the three independent semantic validators
// run after collection and before evaluation: FnCallValidator,
// NewStructValidator, and ReturnValidator. Each is a tree walk over
// every function body in a module that fails on its first violation: a
// dedicated walk per concern rather than one monolithic visitor, so
// each validator's failure mode stays easy to name and test in
// isolation.
package validate

import "github.com/cwbudde/enumlang/ast"

// walkModule visits every statement and expression reachable from every
// top-level function body, in source order, calling onStmt/onExpr for
// each. Either callback may be nil. The first non-nil error returned by
// a callback stops the walk and is propagated to the caller.
func walkModule(mod *ast.Module, onStmt func(ast.Statement) error, onExpr func(ast.Expression) error) error {
	for _, fn := range mod.Functions {
		if err := walkBlock(fn.Body, onStmt, onExpr); err != nil {
			return err
		}
	}
	return nil
}

func walkBlock(b *ast.Block, onStmt func(ast.Statement) error, onExpr func(ast.Expression) error) error {
	for _, s := range b.Body {
		if err := walkStmt(s, onStmt, onExpr); err != nil {
			return err
		}
	}
	return nil
}

func walkStmt(s ast.Statement, onStmt func(ast.Statement) error, onExpr func(ast.Expression) error) error {
	if onStmt != nil {
		if err := onStmt(s); err != nil {
			return err
		}
	}
	switch st := s.(type) {
	case *ast.Block:
		return walkBlock(st, onStmt, onExpr)
	case *ast.VariableDeclaration:
		if st.Value != nil {
			return walkExpr(st.Value, onExpr)
		}
	case *ast.Assignment:
		if err := walkExpr(st.Target, onExpr); err != nil {
			return err
		}
		return walkExpr(st.Value, onExpr)
	case *ast.Return:
		if st.Value != nil {
			return walkExpr(st.Value, onExpr)
		}
	case *ast.If:
		if err := walkExpr(st.Condition, onExpr); err != nil {
			return err
		}
		if err := walkBlock(st.Then, onStmt, onExpr); err != nil {
			return err
		}
		if st.Else != nil {
			return walkBlock(st.Else, onStmt, onExpr)
		}
	case *ast.While:
		if err := walkExpr(st.Condition, onExpr); err != nil {
			return err
		}
		return walkBlock(st.Body, onStmt, onExpr)
	case *ast.Match:
		if err := walkExpr(st.Subject, onExpr); err != nil {
			return err
		}
		for _, arm := range st.Matchers {
			if err := walkBlock(arm.Body, onStmt, onExpr); err != nil {
				return err
			}
		}
	case *ast.ExpressionStatement:
		return walkExpr(st.Expr, onExpr)
	}
	return nil
}

func walkExpr(e ast.Expression, onExpr func(ast.Expression) error) error {
	if onExpr != nil {
		if err := onExpr(e); err != nil {
			return err
		}
	}
	switch ex := e.(type) {
	case *ast.Access:
		return walkExpr(ex.Parent, onExpr)
	case *ast.UnaryOperation:
		return walkExpr(ex.Operand, onExpr)
	case *ast.BinaryOperation:
		if err := walkExpr(ex.Left, onExpr); err != nil {
			return err
		}
		return walkExpr(ex.Right, onExpr)
	case *ast.BoolOperation:
		if err := walkExpr(ex.Left, onExpr); err != nil {
			return err
		}
		return walkExpr(ex.Right, onExpr)
	case *ast.Compare:
		if err := walkExpr(ex.Left, onExpr); err != nil {
			return err
		}
		return walkExpr(ex.Right, onExpr)
	case *ast.Cast:
		return walkExpr(ex.Value, onExpr)
	case *ast.IsCompare:
		return walkExpr(ex.Value, onExpr)
	case *ast.FnCall:
		for _, a := range ex.Arguments {
			if err := walkExpr(a, onExpr); err != nil {
				return err
			}
		}
	case *ast.NewStruct:
		for _, a := range ex.Assignments {
			if err := walkExpr(a.Value, onExpr); err != nil {
				return err
			}
		}
	}
	return nil
}
