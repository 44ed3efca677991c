package types

import "strconv"

// Value is a runtime value: a registered type name plus a primitive or
// struct-instance payload. One concrete kind per payload shape rather than
// a single struct with an interface{} payload, so the compiler enforces
// exhaustive handling at each call site via a type switch.
type Value interface {
	// Type returns the value's registered TypeName.
	Type() TypeName
	// String renders the value for printing/debugging.
	String() string
}

// IntValue is an i32 value.
type IntValue struct{ Value int64 }

func (v *IntValue) Type() TypeName { return I32 }
func (v *IntValue) String() string { return strconv.FormatInt(v.Value, 10) }

// FloatValue is an f32 value.
type FloatValue struct{ Value float64 }

func (v *FloatValue) Type() TypeName { return F32 }
func (v *FloatValue) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// BoolValue is a bool value.
type BoolValue struct{ Value bool }

func (v *BoolValue) Type() TypeName { return Bool }
func (v *BoolValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// StringValue is a str value.
type StringValue struct{ Value string }

func (v *StringValue) Type() TypeName { return Str }
func (v *StringValue) String() string { return v.Value }

// Unit is the result type of a function declared without a return type.
var Unit = New("unit")

// UnitValue is the sole inhabitant of Unit, returned by Run when a
// function's body completes without hitting a return statement.
type UnitValue struct{}

func (v *UnitValue) Type() TypeName { return Unit }
func (v *UnitValue) String() string { return "()" }

// StructValue is an instance of a registered struct type: its field set,
// in declaration order, exactly matching the struct's declared fields.
type StructValue struct {
	TypeNameValue TypeName
	Fields        *OrderedMap[Value]
}

func (v *StructValue) Type() TypeName { return v.TypeNameValue }
func (v *StructValue) String() string {
	s := v.TypeNameValue.String() + " { "
	v.Fields.Range(func(k string, val Value) bool {
		s += k + ": " + val.String() + " "
		return true
	})
	return s + "}"
}

// Copy returns a deep-enough copy of v: struct instances get their own
// OrderedMap (fields are themselves copied recursively), primitives are
// already immutable. Values are pass-by-copy; a copy shares no mutable
// substructure with its source.
func Copy(v Value) Value {
	sv, ok := v.(*StructValue)
	if !ok {
		return v
	}
	out := NewOrderedMap[Value]()
	sv.Fields.Range(func(k string, fv Value) bool {
		out.Set(k, Copy(fv))
		return true
	})
	return &StructValue{TypeNameValue: sv.TypeNameValue, Fields: out}
}

// ZeroValue synthesizes the default-zero Value for a primitive type name,
// used for omitted NewStruct fields and initializer-less VariableDeclarations.
// Returns false for any non-primitive TypeName; aggregate types have no
// default form.
func ZeroValue(t TypeName) (Value, bool) {
	switch {
	case t.Equal(I32):
		return &IntValue{Value: 0}, true
	case t.Equal(F32):
		return &FloatValue{Value: 0}, true
	case t.Equal(Bool):
		return &BoolValue{Value: false}, true
	case t.Equal(Str):
		return &StringValue{Value: ""}, true
	default:
		return nil, false
	}
}
