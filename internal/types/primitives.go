package types

import (
	"sync"

	"github.com/solidkit/simplex/internal/errors"
)

var registerOnce sync.Once

// RegisterPrimitiveOps populates the built-in arithmetic and comparison
// methods on the primitive singleton types (truthiness is Value.Truthy,
// not a table method). It is
// idempotent: repeated calls (e.g. once per test's model bind)
// register the operation tables only once.
func RegisterPrimitiveOps() {
	registerOnce.Do(func() {
		registerIntOps()
		registerFloatOps()
		registerBoolOps()
		registerStringOps()
		registerAnyOps()
	})
}

func registerIntOps() {
	t := IntType.Ops()
	bin := func(name string, fn func(a, b int64) int64) {
		t.Register(&MethodSignature{Name: name, ParamTypes: []Type{IntType}, ReturnType: IntType,
			Fn: func(self Value, args []Value) (Value, error) {
				a := self.(IntValue).Val
				b := args[0].(IntValue).Val
				return IntValue{Val: fn(a, b)}, nil
			}})
	}
	bin("plus", func(a, b int64) int64 { return a + b })
	bin("minus", func(a, b int64) int64 { return a - b })
	bin("times", func(a, b int64) int64 { return a * b })
	bin("mod", func(a, b int64) int64 { return a % b })
	t.Register(&MethodSignature{Name: "div", ParamTypes: []Type{IntType}, ReturnType: IntType,
		Fn: func(self Value, args []Value) (Value, error) {
			a := self.(IntValue).Val
			b := args[0].(IntValue).Val
			if b == 0 {
				return nil, errors.New(errors.Evaluation, "division by zero")
			}
			return IntValue{Val: a / b}, nil
		}})
	t.Register(&MethodSignature{Name: "pow", ParamTypes: []Type{IntType}, ReturnType: IntType,
		Fn: func(self Value, args []Value) (Value, error) {
			a := self.(IntValue).Val
			b := args[0].(IntValue).Val
			result := int64(1)
			for i := int64(0); i < b; i++ {
				result *= a
			}
			return IntValue{Val: result}, nil
		}})
	t.Register(&MethodSignature{Name: "neg", ParamTypes: nil, ReturnType: IntType,
		Fn: func(self Value, args []Value) (Value, error) {
			return IntValue{Val: -self.(IntValue).Val}, nil
		}})
	t.Register(&MethodSignature{Name: "eq", ParamTypes: []Type{IntType}, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			return BoolValue{Val: self.(IntValue).Val == args[0].(IntValue).Val}, nil
		}})
	t.Register(&MethodSignature{Name: "compare", ParamTypes: []Type{IntType}, ReturnType: IntType,
		Fn: func(self Value, args []Value) (Value, error) {
			a, b := self.(IntValue).Val, args[0].(IntValue).Val
			switch {
			case a < b:
				return IntValue{Val: -1}, nil
			case a > b:
				return IntValue{Val: 1}, nil
			default:
				return IntValue{Val: 0}, nil
			}
		}})
}

func registerFloatOps() {
	t := FloatType.Ops()
	bin := func(name string, fn func(a, b float64) float64) {
		t.Register(&MethodSignature{Name: name, ParamTypes: []Type{FloatType}, ReturnType: FloatType,
			Fn: func(self Value, args []Value) (Value, error) {
				a := self.(FloatValue).Val
				b := args[0].(FloatValue).Val
				return FloatValue{Val: fn(a, b)}, nil
			}})
	}
	bin("plus", func(a, b float64) float64 { return a + b })
	bin("minus", func(a, b float64) float64 { return a - b })
	bin("times", func(a, b float64) float64 { return a * b })
	t.Register(&MethodSignature{Name: "div", ParamTypes: []Type{FloatType}, ReturnType: FloatType,
		Fn: func(self Value, args []Value) (Value, error) {
			a := self.(FloatValue).Val
			b := args[0].(FloatValue).Val
			if b == 0 {
				return nil, errors.New(errors.Evaluation, "division by zero")
			}
			return FloatValue{Val: a / b}, nil
		}})
	t.Register(&MethodSignature{Name: "pow", ParamTypes: []Type{FloatType}, ReturnType: FloatType,
		Fn: func(self Value, args []Value) (Value, error) {
			a := self.(FloatValue).Val
			b := args[0].(FloatValue).Val
			return FloatValue{Val: floatPow(a, b)}, nil
		}})
	t.Register(&MethodSignature{Name: "neg", ParamTypes: nil, ReturnType: FloatType,
		Fn: func(self Value, args []Value) (Value, error) {
			return FloatValue{Val: -self.(FloatValue).Val}, nil
		}})
	t.Register(&MethodSignature{Name: "eq", ParamTypes: []Type{FloatType}, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			return BoolValue{Val: self.(FloatValue).Val == args[0].(FloatValue).Val}, nil
		}})
	t.Register(&MethodSignature{Name: "compare", ParamTypes: []Type{FloatType}, ReturnType: IntType,
		Fn: func(self Value, args []Value) (Value, error) {
			a, b := self.(FloatValue).Val, args[0].(FloatValue).Val
			switch {
			case a < b:
				return IntValue{Val: -1}, nil
			case a > b:
				return IntValue{Val: 1}, nil
			default:
				return IntValue{Val: 0}, nil
			}
		}})
}

func floatPow(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	neg := b < 0
	if neg {
		b = -b
	}
	result := 1.0
	for i := 0; i < int(b); i++ {
		result *= a
	}
	if neg {
		return 1 / result
	}
	return result
}

func registerBoolOps() {
	t := BoolType.Ops()
	t.Register(&MethodSignature{Name: "eq", ParamTypes: []Type{BoolType}, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			return BoolValue{Val: self.(BoolValue).Val == args[0].(BoolValue).Val}, nil
		}})
	t.Register(&MethodSignature{Name: "not", ParamTypes: nil, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			return BoolValue{Val: !self.(BoolValue).Val}, nil
		}})
}

func registerStringOps() {
	t := StringType.Ops()
	t.Register(&MethodSignature{Name: "plus", ParamTypes: []Type{StringType}, ReturnType: StringType,
		Fn: func(self Value, args []Value) (Value, error) {
			return StringValue{Val: self.(StringValue).Val + args[0].(StringValue).Val}, nil
		}})
	t.Register(&MethodSignature{Name: "eq", ParamTypes: []Type{StringType}, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			return BoolValue{Val: self.(StringValue).Val == args[0].(StringValue).Val}, nil
		}})
	// compare is collation-aware; wired to golang.org/x/text in
	// internal/builtins (the domain-stack component that owns
	// locale-sensitive string comparison), overriding this ordinal
	// fallback once the standard library is installed.
	t.Register(&MethodSignature{Name: "compare", ParamTypes: []Type{StringType}, ReturnType: IntType,
		Fn: func(self Value, args []Value) (Value, error) {
			a, b := self.(StringValue).Val, args[0].(StringValue).Val
			switch {
			case a < b:
				return IntValue{Val: -1}, nil
			case a > b:
				return IntValue{Val: 1}, nil
			default:
				return IntValue{Val: 0}, nil
			}
		}})
	t.Register(&MethodSignature{Name: "sub", ParamTypes: []Type{IntType}, ReturnType: StringType,
		Fn: func(self Value, args []Value) (Value, error) {
			s := []rune(self.(StringValue).Val)
			i := args[0].(IntValue).Val
			if i < 0 || int(i) >= len(s) {
				return nil, errors.New(errors.Evaluation, "string index out of range")
			}
			return StringValue{Val: string(s[i])}, nil
		}})
}

func registerAnyOps() {
	t := AnyType.Ops()
	t.Register(&MethodSignature{Name: "eq", ParamTypes: []Type{AnyType}, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			return BoolValue{Val: self.String() == args[0].String()}, nil
		}})
}

// registerVectorOps installs `sub` (indexing) and `eq` on a concrete
// Vector<T> instance; called once per VectorType construction since
// each instantiation is parametrized over its element type.
func registerVectorOps(t *VectorType) {
	t.table.Register(&MethodSignature{Name: "sub", ParamTypes: []Type{IntType}, ReturnType: t.Elem,
		Fn: func(self Value, args []Value) (Value, error) {
			v := self.(*VectorValue)
			i := args[0].(IntValue).Val
			if i < 0 || int(i) >= len(v.Elems) {
				return nil, errors.New(errors.Evaluation, "vector index out of range")
			}
			return v.Elems[i], nil
		}})
	t.table.Register(&MethodSignature{Name: "eq", ParamTypes: []Type{t}, ReturnType: BoolType,
		Fn: func(self Value, args []Value) (Value, error) {
			a := self.(*VectorValue)
			b := args[0].(*VectorValue)
			if len(a.Elems) != len(b.Elems) {
				return BoolValue{Val: false}, nil
			}
			return BoolValue{Val: a.String() == b.String()}, nil
		}})
}

// NewRegistry builds a fresh type registry preloaded with primitive
// and geometry-handle types.
func NewRegistry() *Registry {
	RegisterPrimitiveOps()
	r := &Registry{byName: make(map[string]Type)}
	for _, t := range []Type{IntType, FloatType, BoolType, StringType, AnyType, SolidType, PolygonType, PointType} {
		r.Define(t)
	}
	return r
}
