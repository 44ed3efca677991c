package types

import "testing"

func TestTypeNameEqualIsStructural(t *testing.T) {
	a := New("Shape", "Circle")
	b := New("Shape", "Circle")
	c := New("Shape", "Square")
	if !a.Equal(b) {
		t.Error("equal segment tuples should compare equal")
	}
	if a.Equal(c) {
		t.Error("differing segment tuples should not compare equal")
	}
	if New("Shape").Equal(New("Shape", "Circle")) {
		t.Error("differing lengths should not compare equal")
	}
}

func TestTypeNameExtendDoesNotMutateReceiver(t *testing.T) {
	base := New("Shape")
	extended := base.Extend("Circle")
	if base.String() != "Shape" {
		t.Errorf("Extend mutated receiver: base is now %q", base.String())
	}
	if extended.String() != "Shape::Circle" {
		t.Errorf("got %q, want Shape::Circle", extended.String())
	}
}

func TestTypeNameStringAndKey(t *testing.T) {
	tn := New("A", "B", "C")
	if tn.String() != "A::B::C" {
		t.Errorf("got %q", tn.String())
	}
	if tn.Key() != tn.String() {
		t.Error("Key should match String for use as a map key")
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, p := range []TypeName{I32, F32, Bool, Str} {
		if !IsPrimitive(p) {
			t.Errorf("%s should be primitive", p)
		}
	}
	if IsPrimitive(New("Shape", "Circle")) {
		t.Error("a qualified struct name should not be primitive")
	}
}

func TestCopyDeepCopiesStructValueOnly(t *testing.T) {
	inner := NewOrderedMap[Value]()
	inner.Set("radius", &FloatValue{Value: 2})
	sv := &StructValue{TypeNameValue: New("Shape", "Circle"), Fields: inner}

	cp := Copy(sv).(*StructValue)
	cp.Fields.Set("radius", &FloatValue{Value: 99})

	orig, _ := sv.Fields.Get("radius")
	if orig.(*FloatValue).Value != 2 {
		t.Error("mutating the copy's field mutated the original")
	}

	prim := &IntValue{Value: 5}
	if Copy(prim) != Value(prim) {
		t.Error("Copy of a primitive should return the same value (primitives are immutable)")
	}
}

func TestZeroValue(t *testing.T) {
	tests := []struct {
		name string
		t    TypeName
		ok   bool
	}{
		{"i32", I32, true},
		{"f32", F32, true},
		{"bool", Bool, true},
		{"str", Str, true},
		{"aggregate", New("Shape", "Circle"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ZeroValue(tt.t)
			if ok != tt.ok {
				t.Fatalf("got ok=%v, want %v", ok, tt.ok)
			}
			if ok && !v.Type().Equal(tt.t) {
				t.Errorf("zero value has type %s, want %s", v.Type(), tt.t)
			}
		})
	}
}
