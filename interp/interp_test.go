package interp

import (
	"testing"

	"github.com/cwbudde/enumlang/lexer"
	"github.com/cwbudde/enumlang/parser"
	"github.com/cwbudde/enumlang/types"
)

func loadRun(t *testing.T, src, entry string) types.Value {
	t.Helper()
	mod, err := parser.New(lexer.New(src)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	it := New()
	if err := it.Load(mod); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	result, err := it.Run(entry)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	return result
}

func TestRunArithmeticAndPrecedence(t *testing.T) {
	got := loadRun(t, `fn main() -> i32 { return 2 + 3 * 4; }`, "main")
	if got.(*types.IntValue).Value != 14 {
		t.Errorf("got %v, want 14", got)
	}
}

func TestRunFunctionCallAndParameterBinding(t *testing.T) {
	got := loadRun(t, `
fn add(a: i32, b: i32) -> i32 { return a + b; }
fn main() -> i32 { return add(10, 32); }
`, "main")
	if got.(*types.IntValue).Value != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestRunWhileLoopAccumulates(t *testing.T) {
	got := loadRun(t, `
fn main() -> i32 {
	mut let total: i32 = 0;
	mut let i: i32 = 0;
	while (i < 5) {
		total = total + i;
		i = i + 1;
	}
	return total;
}
`, "main")
	if got.(*types.IntValue).Value != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestRunIfElseBranches(t *testing.T) {
	src := `
fn classify(n: i32) -> bool {
	if (n < 0) {
		return false;
	} else {
		return true;
	}
}
fn main() -> bool { return classify(-1); }
`
	got := loadRun(t, src, "main")
	if got.(*types.BoolValue).Value != false {
		t.Errorf("got %v, want false", got)
	}
}

func TestRunMatchDispatchesOnExactVariantType(t *testing.T) {
	src := `
enum Shape {
	struct Circle { radius: f32; };
	struct Square { side: f32; };
}
fn area(s: Shape) -> f32 {
	match (s) {
		Shape::Circle c => { return c.radius * c.radius; };
		Shape::Square sq => { return sq.side * sq.side; };
	}
}
fn main() -> f32 {
	return area(Shape::Circle { radius: 3.0 });
}
`
	got := loadRun(t, src, "main")
	if got.(*types.FloatValue).Value != 9 {
		t.Errorf("got %v, want 9", got)
	}
}

func TestRunMatchNonExhaustiveIsRuntimeError(t *testing.T) {
	src := `
enum Shape {
	struct Circle { radius: f32; };
	struct Square { side: f32; };
}
fn area(s: Shape) -> f32 {
	match (s) {
		Shape::Circle c => { return c.radius; };
	}
}
fn main() -> f32 {
	return area(Shape::Square { side: 1.0 });
}
`
	mod, err := parser.New(lexer.New(src)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	it := New()
	if err := it.Load(mod); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if _, err := it.Run("main"); err == nil {
		t.Fatal("expected a non-exhaustive-match runtime error")
	}
}

func TestRunIsOperatorMatchesContainingEnum(t *testing.T) {
	src := `
enum Shape {
	struct Circle { radius: f32; };
}
fn main() -> bool {
	return Shape::Circle { radius: 1.0 } is Shape;
}
`
	got := loadRun(t, src, "main")
	if got.(*types.BoolValue).Value != true {
		t.Error("a variant should satisfy `is` against its containing enum")
	}
}

func TestRunFieldAssignmentMutatesInPlace(t *testing.T) {
	src := `
struct Counter { value: i32; }
fn bump(mut c: Counter) -> i32 {
	c.value = c.value + 1;
	return c.value;
}
fn main() -> i32 {
	mut let c = Counter { value: 41 };
	return bump(c);
}
`
	got := loadRun(t, src, "main")
	if got.(*types.IntValue).Value != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestRunStructuralEqualityAndTruthinessFallbacks(t *testing.T) {
	src := `
struct Point { x: i32; y: i32; }
fn main() -> bool {
	let a = Point { x: 1, y: 2 };
	let b = Point { x: 1, y: 2 };
	return a == b && 7;
}
`
	got := loadRun(t, src, "main")
	if got.(*types.BoolValue).Value != true {
		t.Error("equal struct instances && a nonzero int should be true")
	}
}

func TestRunCastBetweenPrimitives(t *testing.T) {
	got := loadRun(t, `fn main() -> f32 { return 3 as f32; }`, "main")
	if got.(*types.FloatValue).Value != 3 {
		t.Errorf("got %v, want 3.0", got)
	}
}

func TestRunDivisionByZeroIsRuntimeError(t *testing.T) {
	mod, err := parser.New(lexer.New(`fn main() -> i32 { return 1 / 0; }`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	it := New()
	if err := it.Load(mod); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if _, err := it.Run("main"); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestRunUnknownFunctionFailsDuringLoad(t *testing.T) {
	mod, err := parser.New(lexer.New(`fn main() -> i32 { return missing(); }`)).ParseModule()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	it := New()
	if err := it.Load(mod); err == nil {
		t.Fatal("expected Load to reject a call to an unknown function")
	}
}

func TestRunVoidFunctionReturnsUnitValue(t *testing.T) {
	src := `
fn noop() {}
fn main() -> i32 {
	noop();
	return 0;
}
`
	got := loadRun(t, src, "main")
	if got.(*types.IntValue).Value != 0 {
		t.Errorf("got %v", got)
	}
	if unit := loadRun(t, src, "noop"); unit == nil {
		t.Error("noop returned nil, want the unit value")
	} else if _, ok := unit.(*types.UnitValue); !ok {
		t.Errorf("noop returned %v, want the unit value", unit)
	}
}
