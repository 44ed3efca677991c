package parser

import (
	"testing"

	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/lexer"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := New(lexer.New(src)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return mod
}

func TestParseStructDeclaration(t *testing.T) {
	mod := parseModule(t, `struct Point { x: i32; y: i32; }`)
	if len(mod.Structs) != 1 {
		t.Fatalf("got %d structs, want 1", len(mod.Structs))
	}
	s := mod.Structs[0]
	if s.Name.Name != "Point" || len(s.Fields) != 2 {
		t.Fatalf("got %+v", s)
	}
	if s.Fields[0].Name.Name != "x" || s.Fields[1].Name.Name != "y" {
		t.Fatalf("field order not preserved: %+v", s.Fields)
	}
}

func TestParseNestedEnumDeclaration(t *testing.T) {
	mod := parseModule(t, `
enum Shape {
	struct Circle { radius: f32; };
	struct Square { side: f32; };
}`)
	if len(mod.Enums) != 1 {
		t.Fatalf("got %d enums, want 1", len(mod.Enums))
	}
	e := mod.Enums[0]
	if e.Name.Name != "Shape" || len(e.Variants) != 2 {
		t.Fatalf("got %+v", e)
	}
	circle, ok := e.Variants[0].(*ast.StructDeclaration)
	if !ok || circle.Name.Name != "Circle" {
		t.Fatalf("got %+v", e.Variants[0])
	}
}

func TestParseFunctionWithReturnAndParameters(t *testing.T) {
	mod := parseModule(t, `
fn add(mut a: i32, b: i32) -> i32 {
	return a + b;
}`)
	if len(mod.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(mod.Functions))
	}
	fn := mod.Functions[0]
	if fn.Name.Name != "add" || len(fn.Parameters) != 2 {
		t.Fatalf("got %+v", fn)
	}
	if !fn.Parameters[0].Mutable {
		t.Error("first parameter should be mutable")
	}
	if fn.Parameters[1].Mutable {
		t.Error("second parameter should not be mutable")
	}
	if fn.Returns == nil || fn.Returns.String() != "i32" {
		t.Fatalf("got return type %v", fn.Returns)
	}
}

func TestParseIfWhileMatchAndNewStruct(t *testing.T) {
	mod := parseModule(t, `
fn classify(s: Shape) -> i32 {
	mut let count: i32 = 0;
	while (count < 3) {
		count = count + 1;
	}
	if (count == 3) {
		return 1;
	} else {
		return 0;
	}
	match (s) {
		Shape::Circle c => { return 1; };
		Shape::Square sq => { return 0; };
	}
}`)
	fn := mod.Functions[0]
	if len(fn.Body.Body) != 4 {
		t.Fatalf("got %d top-level statements, want 4: %v", len(fn.Body.Body), fn.Body.String())
	}
	match, ok := fn.Body.Body[3].(*ast.Match)
	if !ok {
		t.Fatalf("expected a Match statement, got %T", fn.Body.Body[3])
	}
	if len(match.Matchers) != 2 {
		t.Fatalf("got %d match arms, want 2", len(match.Matchers))
	}
	if match.Matchers[0].DeclaredType.String() != "Shape::Circle" {
		t.Errorf("got %s", match.Matchers[0].DeclaredType.String())
	}
}

func TestParseNewStructLiteralAndCastAndIs(t *testing.T) {
	mod := parseModule(t, `
fn make() -> i32 {
	let c = Shape::Circle { radius: 2.0 };
	let isCircle: bool = c is Shape::Circle;
	let asFloat: f32 = 1 as f32;
	return 0;
}`)
	fn := mod.Functions[0]
	decl := fn.Body.Body[0].(*ast.VariableDeclaration)
	ns, ok := decl.Value.(*ast.NewStruct)
	if !ok {
		t.Fatalf("expected NewStruct, got %T", decl.Value)
	}
	if ns.Variant.String() != "Shape::Circle" || len(ns.Assignments) != 1 {
		t.Fatalf("got %+v", ns)
	}

	isDecl := fn.Body.Body[1].(*ast.VariableDeclaration)
	if _, ok := isDecl.Value.(*ast.IsCompare); !ok {
		t.Fatalf("expected IsCompare, got %T", isDecl.Value)
	}

	castDecl := fn.Body.Body[2].(*ast.VariableDeclaration)
	if _, ok := castDecl.Value.(*ast.Cast); !ok {
		t.Fatalf("expected Cast, got %T", castDecl.Value)
	}
}

func TestParsePrecedenceShapes(t *testing.T) {
	mod := parseModule(t, `fn f() -> i32 { return 1 + 2 * 3; }`)
	ret := mod.Functions[0].Body.Body[0].(*ast.Return)
	add, ok := ret.Value.(*ast.BinaryOperation)
	if !ok || add.Op != ast.Add {
		t.Fatalf("expected Add at the root, got %T: %v", ret.Value, ret.Value)
	}
	if inner, ok := add.Right.(*ast.BinaryOperation); !ok || inner.Op != ast.Mul {
		t.Fatalf("multiplication should bind tighter than addition: %v", ret.Value)
	}

	mod = parseModule(t, `fn g() -> bool { return 7 || 9 && 5; }`)
	ret = mod.Functions[0].Body.Body[0].(*ast.Return)
	or, ok := ret.Value.(*ast.BoolOperation)
	if !ok || or.Op != ast.Or {
		t.Fatalf("expected Or at the root, got %T", ret.Value)
	}
	if and, ok := or.Right.(*ast.BoolOperation); !ok || and.Op != ast.And {
		t.Fatalf("&& should bind tighter than ||: %v", ret.Value)
	}
}

func TestParseStringConstantLocationSpansSource(t *testing.T) {
	mod := parseModule(t, `fn f() -> str { return "a\nb"; }`)
	ret := mod.Functions[0].Body.Body[0].(*ast.Return)
	c, ok := ret.Value.(*ast.Constant)
	if !ok {
		t.Fatalf("expected Constant, got %T", ret.Value)
	}
	loc := c.Location()
	// The raw literal `"a\nb"` occupies columns 24-29; its decoded value
	// is only three runes, but the location covers the source text.
	if loc.Begin.Column != 24 || loc.End.Column != 30 {
		t.Errorf("got %s, want 1:24-1:30", loc)
	}
}

func TestParseRejectsChainedComparison(t *testing.T) {
	_, err := New(lexer.New(`fn f() -> bool { return 1 < 2 < 3; }`)).ParseModule()
	if err == nil {
		t.Fatal("expected an error for a chained comparison")
	}
}

func TestParseRejectsTrailingCommaInCallArgs(t *testing.T) {
	_, err := New(lexer.New(`fn f() { g(1, 2,); }`)).ParseModule()
	if err == nil {
		t.Fatal("expected an error for a trailing comma in a call's argument list")
	}
}

func TestParseRejectsTrailingCommaInNewStruct(t *testing.T) {
	_, err := New(lexer.New(`fn f() { Point { x: 1, y: 2, }; }`)).ParseModule()
	if err == nil {
		t.Fatal("expected an error for a trailing comma in a struct literal")
	}
}

func TestParseFnCallAndFieldAccessStatements(t *testing.T) {
	mod := parseModule(t, `
fn f(p: Point) {
	g(p.x, p.y);
	p.x = 4;
}`)
	fn := mod.Functions[0]
	if len(fn.Body.Body) != 2 {
		t.Fatalf("got %d statements", len(fn.Body.Body))
	}
	exprStmt, ok := fn.Body.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", fn.Body.Body[0])
	}
	call, ok := exprStmt.Expr.(*ast.FnCall)
	if !ok || call.Name.Name != "g" || len(call.Arguments) != 2 {
		t.Fatalf("got %+v", exprStmt.Expr)
	}
	assign, ok := fn.Body.Body[1].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", fn.Body.Body[1])
	}
	if _, ok := assign.Target.(*ast.Access); !ok {
		t.Fatalf("expected Access target, got %T", assign.Target)
	}
}

func TestParseUnknownTopLevelTokenIsAnError(t *testing.T) {
	_, err := New(lexer.New(`let x = 1;`)).ParseModule()
	if err == nil {
		t.Fatal("expected an error: a top-level statement is not struct/enum/fn")
	}
}
