package registry

import (
	"github.com/cwbudde/enumlang/types"
)

// RegisterPrelude installs the operations every program gets for free:
// arithmetic and comparison over i32/f32, boolean combinators over bool,
// string concatenation and equality, the primitive casts, and universal
// wildcard fallbacks for equality and truthiness-combining `&&`/`||`.
func RegisterPrelude(ops *OperationRegistry) {
	registerArithmetic(ops, "+", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	registerArithmetic(ops, "-", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	registerArithmetic(ops, "*", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })

	// Division by zero is checked by the evaluator before it ever calls
	// these handlers (it needs the call-site Location for the error), so
	// the handlers themselves assume a nonzero divisor.
	ops.RegisterBinary("/", types.I32, types.I32, func(l, r types.Value) (types.Value, error) {
		return &types.IntValue{Value: l.(*types.IntValue).Value / r.(*types.IntValue).Value}, nil
	})
	ops.RegisterBinary("/", types.F32, types.F32, func(l, r types.Value) (types.Value, error) {
		return &types.FloatValue{Value: l.(*types.FloatValue).Value / r.(*types.FloatValue).Value}, nil
	})

	// str concatenation: `+` is overloaded for str, str only. No wildcard;
	// string-to-anything coercion is not part of this language.
	ops.RegisterBinary("+", types.Str, types.Str, func(l, r types.Value) (types.Value, error) {
		return &types.StringValue{Value: l.(*types.StringValue).Value + r.(*types.StringValue).Value}, nil
	})

	registerCompare(ops, "==", func(a, b int64) bool { return a == b }, func(a, b float64) bool { return a == b })
	registerCompare(ops, "!=", func(a, b int64) bool { return a != b }, func(a, b float64) bool { return a != b })
	registerCompare(ops, "<", func(a, b int64) bool { return a < b }, func(a, b float64) bool { return a < b })
	registerCompare(ops, ">", func(a, b int64) bool { return a > b }, func(a, b float64) bool { return a > b })

	ops.RegisterCompare("==", types.Bool, types.Bool, boolCompare(func(a, b bool) bool { return a == b }))
	ops.RegisterCompare("!=", types.Bool, types.Bool, boolCompare(func(a, b bool) bool { return a != b }))
	ops.RegisterCompare("==", types.Str, types.Str, strCompare(func(a, b string) bool { return a == b }))
	ops.RegisterCompare("!=", types.Str, types.Str, strCompare(func(a, b string) bool { return a != b }))

	// Universal structural equality over any operand pair: the wildcard
	// fallback the exact entries above shadow for the primitive pairs,
	// reached when either side is a struct instance or the types differ.
	ops.RegisterCompareWildcardBoth("==", func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: valuesEqual(l, r)}, nil
	})
	ops.RegisterCompareWildcardBoth("!=", func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: !valuesEqual(l, r)}, nil
	})

	ops.RegisterBool("&&", types.Bool, types.Bool, func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: l.(*types.BoolValue).Value && r.(*types.BoolValue).Value}, nil
	})
	ops.RegisterBool("||", types.Bool, types.Bool, func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: l.(*types.BoolValue).Value || r.(*types.BoolValue).Value}, nil
	})

	// Universal conjunction/disjunction over any operand pair, combining
	// the operands' truthiness. Both operands are already evaluated by
	// the time these run: there is no short-circuiting anywhere.
	ops.RegisterBoolWildcardBoth("&&", func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: truthy(l) && truthy(r)}, nil
	})
	ops.RegisterBoolWildcardBoth("||", func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: truthy(l) || truthy(r)}, nil
	})

	ops.RegisterUnary("-", types.I32, func(v types.Value) (types.Value, error) {
		return &types.IntValue{Value: -v.(*types.IntValue).Value}, nil
	})
	ops.RegisterUnary("-", types.F32, func(v types.Value) (types.Value, error) {
		return &types.FloatValue{Value: -v.(*types.FloatValue).Value}, nil
	})
	ops.RegisterUnary("!", types.Bool, func(v types.Value) (types.Value, error) {
		return &types.BoolValue{Value: !v.(*types.BoolValue).Value}, nil
	})

	ops.RegisterCast(types.I32, types.F32, func(v types.Value) (types.Value, error) {
		return &types.FloatValue{Value: float64(v.(*types.IntValue).Value)}, nil
	})
	ops.RegisterCast(types.F32, types.I32, func(v types.Value) (types.Value, error) {
		return &types.IntValue{Value: int64(v.(*types.FloatValue).Value)}, nil
	})
	ops.RegisterCast(types.I32, types.Str, func(v types.Value) (types.Value, error) {
		return &types.StringValue{Value: v.String()}, nil
	})
	ops.RegisterCast(types.F32, types.Str, func(v types.Value) (types.Value, error) {
		return &types.StringValue{Value: v.String()}, nil
	})
	ops.RegisterCast(types.Bool, types.Str, func(v types.Value) (types.Value, error) {
		return &types.StringValue{Value: v.String()}, nil
	})
}

func registerArithmetic(ops *OperationRegistry, op string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) {
	ops.RegisterBinary(op, types.I32, types.I32, func(l, r types.Value) (types.Value, error) {
		return &types.IntValue{Value: intOp(l.(*types.IntValue).Value, r.(*types.IntValue).Value)}, nil
	})
	ops.RegisterBinary(op, types.F32, types.F32, func(l, r types.Value) (types.Value, error) {
		return &types.FloatValue{Value: floatOp(l.(*types.FloatValue).Value, r.(*types.FloatValue).Value)}, nil
	})
}

func registerCompare(ops *OperationRegistry, op string, intOp func(a, b int64) bool, floatOp func(a, b float64) bool) {
	ops.RegisterCompare(op, types.I32, types.I32, func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: intOp(l.(*types.IntValue).Value, r.(*types.IntValue).Value)}, nil
	})
	ops.RegisterCompare(op, types.F32, types.F32, func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: floatOp(l.(*types.FloatValue).Value, r.(*types.FloatValue).Value)}, nil
	})
}

// valuesEqual is deep structural equality: equal type names and equal
// payloads, recursing through struct-instance fields in order.
func valuesEqual(l, r types.Value) bool {
	if !l.Type().Equal(r.Type()) {
		return false
	}
	switch lv := l.(type) {
	case *types.IntValue:
		return lv.Value == r.(*types.IntValue).Value
	case *types.FloatValue:
		return lv.Value == r.(*types.FloatValue).Value
	case *types.BoolValue:
		return lv.Value == r.(*types.BoolValue).Value
	case *types.StringValue:
		return lv.Value == r.(*types.StringValue).Value
	case *types.StructValue:
		rv := r.(*types.StructValue)
		if lv.Fields.Len() != rv.Fields.Len() {
			return false
		}
		equal := true
		lv.Fields.Range(func(name string, fv types.Value) bool {
			other, ok := rv.Fields.Get(name)
			if !ok || !valuesEqual(fv, other) {
				equal = false
				return false
			}
			return true
		})
		return equal
	default:
		return false
	}
}

// truthy maps a value onto the boolean the universal `&&`/`||` fallback
// combines: a bool is itself, numbers are nonzero, a str is nonempty,
// and a struct instance is always true.
func truthy(v types.Value) bool {
	switch n := v.(type) {
	case *types.BoolValue:
		return n.Value
	case *types.IntValue:
		return n.Value != 0
	case *types.FloatValue:
		return n.Value != 0
	case *types.StringValue:
		return n.Value != ""
	default:
		return true
	}
}

func boolCompare(op func(a, b bool) bool) BinaryHandler {
	return func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: op(l.(*types.BoolValue).Value, r.(*types.BoolValue).Value)}, nil
	}
}

func strCompare(op func(a, b string) bool) BinaryHandler {
	return func(l, r types.Value) (types.Value, error) {
		return &types.BoolValue{Value: op(l.(*types.StringValue).Value, r.(*types.StringValue).Value)}, nil
	}
}
