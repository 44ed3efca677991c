package frame

import (
	"testing"

	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
)

var origin = token.Position{Line: 1, Column: 1}

func TestDeclareAndLookupInSameFrame(t *testing.T) {
	f := New(nil)
	v := &types.Variable{Mutable: false, DeclaredType: types.I32, Value: &types.IntValue{Value: 5}}
	if err := f.Declare(origin, "x", v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := f.Lookup("x")
	if !ok || got != v {
		t.Fatalf("got %v, %v", got, ok)
	}
}

func TestDeclareRejectsRedeclarationInSameFrame(t *testing.T) {
	f := New(nil)
	v := &types.Variable{DeclaredType: types.I32, Value: &types.IntValue{Value: 1}}
	if err := f.Declare(origin, "x", v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Declare(origin, "x", v); err == nil {
		t.Fatal("expected a redeclaration error")
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	v := &types.Variable{DeclaredType: types.I32, Value: &types.IntValue{Value: 7}}
	parent.Declare(origin, "x", v)

	child := New(parent)
	got, ok := child.Lookup("x")
	if !ok || got != v {
		t.Fatalf("got %v, %v, want to find x through the parent chain", got, ok)
	}
}

func TestDeclareInChildShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := New(nil)
	parentVar := &types.Variable{DeclaredType: types.I32, Value: &types.IntValue{Value: 1}}
	parent.Declare(origin, "x", parentVar)

	child := New(parent)
	childVar := &types.Variable{DeclaredType: types.I32, Value: &types.IntValue{Value: 2}}
	if err := child.Declare(origin, "x", childVar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := child.Lookup("x")
	if got != childVar {
		t.Fatal("child's own binding should shadow the parent's")
	}
	parentGot, _ := parent.Lookup("x")
	if parentGot != parentVar {
		t.Fatal("declaring in a child frame must not affect the parent's binding")
	}
}

func TestAssignFindsOwningFrameForMutation(t *testing.T) {
	parent := New(nil)
	v := &types.Variable{Mutable: true, DeclaredType: types.I32, Value: &types.IntValue{Value: 1}}
	parent.Declare(origin, "x", v)

	child := New(parent)
	got, ok := child.Assign("x")
	if !ok || got != v {
		t.Fatalf("Assign should locate the binding through the parent chain")
	}
	got.Value = &types.IntValue{Value: 99}

	parentGot, _ := parent.Lookup("x")
	if parentGot.Value.(*types.IntValue).Value != 99 {
		t.Fatal("mutating the Variable returned by Assign should be visible in the owning frame")
	}
}

func TestLookupMissingNameReturnsFalse(t *testing.T) {
	f := New(nil)
	if _, ok := f.Lookup("nope"); ok {
		t.Fatal("expected ok=false for an unbound name")
	}
}
