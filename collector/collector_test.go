package collector

import (
	"testing"

	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/lexer"
	"github.com/cwbudde/enumlang/parser"
	"github.com/cwbudde/enumlang/registry"
	"github.com/cwbudde/enumlang/types"
)

func TestTypesCollectorRegistersNestedEnumAndResolvesFields(t *testing.T) {
	mod, err := parser.New(lexer.New(`
struct Point { x: i32; y: i32; }
enum Shape {
	struct Circle { center: Point; radius: f32; };
	struct Square { side: f32; };
}`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	reg := registry.NewTypesRegistry()
	if err := NewTypesCollector(reg).Collect(mod); err != nil {
		t.Fatalf("unexpected collect error: %v", err)
	}

	if !reg.IsKnown(types.New("Point")) {
		t.Error("Point should be registered")
	}
	circle, ok := reg.GetStruct(types.New("Shape", "Circle"))
	if !ok {
		t.Fatal("Shape::Circle should be registered as a struct")
	}
	centerType, ok := circle.Fields.Get("center")
	if !ok || !centerType.Equal(types.New("Point")) {
		t.Errorf("got center field type %v", centerType)
	}
}

func TestTypesCollectorSupportsForwardReference(t *testing.T) {
	mod, err := parser.New(lexer.New(`
struct Node { value: i32; next: Link; }
struct Link { child: Node; }
`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	reg := registry.NewTypesRegistry()
	if err := NewTypesCollector(reg).Collect(mod); err != nil {
		t.Fatalf("forward-referenced type should resolve: %v", err)
	}
}

func TestTypesCollectorRejectsUnknownFieldType(t *testing.T) {
	mod, err := parser.New(lexer.New(`struct Bad { x: Nope; }`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	reg := registry.NewTypesRegistry()
	if err := NewTypesCollector(reg).Collect(mod); err == nil {
		t.Fatal("expected an unknown-type error")
	}
}

func collectErr(t *testing.T, src string) *errors.Error {
	t.Helper()
	mod, err := parser.New(lexer.New(src)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	err = NewTypesCollector(registry.NewTypesRegistry()).Collect(mod)
	if err == nil {
		t.Fatal("expected a type redeclaration error")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	return e
}

func TestCollectTopLevelRedeclarationPointsAtSecondDeclaration(t *testing.T) {
	e := collectErr(t, "struct X {}\nstruct X {}\n")
	if e.Pos.Line != 2 || e.Pos.Column != 8 {
		t.Errorf("error at %s, want 2:8 (the second X)", e.Pos)
	}
}

func TestCollectDuplicateVariantPointsAtSecondVariant(t *testing.T) {
	e := collectErr(t, "enum E {\n\tstruct X {};\n\tstruct X {};\n}\n")
	if e.Pos.Line != 3 || e.Pos.Column != 9 {
		t.Errorf("error at %s, want 3:9 (the second variant's X)", e.Pos)
	}
}

func TestCollectEnumRedeclarationPointsIntoSecondEnum(t *testing.T) {
	e := collectErr(t, "enum Shape {\n\tstruct Circle {};\n}\nenum Shape {\n\tstruct Circle {};\n}\n")
	if e.Pos.Line < 4 {
		t.Errorf("error at %s, want a position inside the second enum declaration", e.Pos)
	}
}

func TestFunctionsCollectorResolvesParamsAndReturnType(t *testing.T) {
	mod, err := parser.New(lexer.New(`
struct Point { x: i32; y: i32; }
fn dist(mut a: Point, b: Point) -> f32 { return 0.0; }
`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	typesReg := registry.NewTypesRegistry()
	if err := NewTypesCollector(typesReg).Collect(mod); err != nil {
		t.Fatalf("unexpected collect error: %v", err)
	}
	fnsReg := registry.NewFunctionsRegistry()
	if err := NewFunctionsCollector(typesReg, fnsReg).Collect(mod); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn, ok := fnsReg.Get(types.New("dist"))
	if !ok {
		t.Fatal("dist should be registered")
	}
	if fn.Parameters.Len() != 2 {
		t.Fatalf("got %d parameters", fn.Parameters.Len())
	}
	a, _ := fn.Parameters.Get("a")
	if !a.Mutable || !a.Type.Equal(types.New("Point")) {
		t.Errorf("got %+v", a)
	}
	if fn.ReturnType == nil || !fn.ReturnType.Equal(types.F32) {
		t.Errorf("got return type %v", fn.ReturnType)
	}
}

func TestFunctionsCollectorRejectsRedeclaration(t *testing.T) {
	mod, err := parser.New(lexer.New(`
fn f() {}
fn f() {}
`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	typesReg := registry.NewTypesRegistry()
	NewTypesCollector(typesReg).Collect(mod)
	fnsReg := registry.NewFunctionsRegistry()
	if err := NewFunctionsCollector(typesReg, fnsReg).Collect(mod); err == nil {
		t.Fatal("expected a function redeclaration error")
	}
}
