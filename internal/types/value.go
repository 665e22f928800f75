package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solidkit/simplex/internal/geom"
)

// Value is a discriminated union of every runtime datum: integers,
// doubles, booleans, strings, vectors, data records, closures,
// built-in callables, and opaque geometry handles.
type Value interface {
	Type() Type
	String() string
	Truthy() bool
}

var (
	IntType     = NewSimpleType("Int")
	FloatType   = NewSimpleType("Float")
	BoolType    = NewSimpleType("Boolean")
	StringType  = NewSimpleType("String")
	AnyType     = NewSimpleType("Any")
	SolidType   = NewSimpleType("Solid")
	PolygonType = NewSimpleType("Polygon")
	PointType   = NewSimpleType("Point")
)

// IntValue is an Int value.
type IntValue struct{ Val int64 }

func (v IntValue) Type() Type     { return IntType }
func (v IntValue) String() string { return strconv.FormatInt(v.Val, 10) }
func (v IntValue) Truthy() bool   { return v.Val != 0 }

// FloatValue is a Float value.
type FloatValue struct{ Val float64 }

func (v FloatValue) Type() Type     { return FloatType }
func (v FloatValue) String() string { return strconv.FormatFloat(v.Val, 'g', -1, 64) }
func (v FloatValue) Truthy() bool   { return v.Val != 0 }

// BoolValue is a Boolean value.
type BoolValue struct{ Val bool }

func (v BoolValue) Type() Type     { return BoolType }
func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }
func (v BoolValue) Truthy() bool   { return v.Val }

// StringValue is a String value.
type StringValue struct{ Val string }

func (v StringValue) Type() Type     { return StringType }
func (v StringValue) String() string { return v.Val }
func (v StringValue) Truthy() bool   { return v.Val != "" }

// VectorValue is a homogeneous ordered sequence.
type VectorValue struct {
	Elems    []Value
	ElemType Type
}

func (v *VectorValue) Type() Type { return NewVectorType(v.ElemType) }
func (v *VectorValue) String() string {
	parts := make([]string, len(v.Elems))
	for i, e := range v.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (v *VectorValue) Truthy() bool { return len(v.Elems) > 0 }

// RecordValue is an instance of a user `data` definition: fields are
// stored by index in declaration order and updated in place.
type RecordValue struct {
	TypeRef *SimpleType
	Slots   []Value
}

func (v *RecordValue) Type() Type { return v.TypeRef }
func (v *RecordValue) String() string {
	parts := make([]string, len(v.Slots))
	for i, s := range v.Slots {
		parts[i] = s.String()
	}
	return v.TypeRef.TypeName + "(" + strings.Join(parts, ", ") + ")"
}
func (v *RecordValue) Truthy() bool { return true }

// Get returns the named field's value.
func (v *RecordValue) Get(name string) (Value, bool) {
	_, idx, ok := v.TypeRef.FieldByName(name)
	if !ok {
		return nil, false
	}
	return v.Slots[idx], true
}

// Set mutates the named field in place.
func (v *RecordValue) Set(name string, val Value) bool {
	_, idx, ok := v.TypeRef.FieldByName(name)
	if !ok {
		return false
	}
	v.Slots[idx] = val
	return true
}

// ClosureValue is a first-class function value: its declared type and
// a call trampoline supplied by the evaluator (which owns the
// captured environment and AST body; types stays independent of
// both, avoiding an import cycle).
type ClosureValue struct {
	Sig  *FunctionType
	Name string
	Call func(args []Value) (Value, error)
}

func (v *ClosureValue) Type() Type     { return v.Sig }
func (v *ClosureValue) String() string { return "<function " + v.Name + ">" }
func (v *ClosureValue) Truthy() bool   { return true }

// BuiltinValue is a primitive callable registered by the standard
// library (e.g. `uuid`, `cuboid`), distinct from ClosureValue only in
// that it never captures a Simplex-level environment.
type BuiltinValue struct {
	Sig  *FunctionType
	Name string
	Call func(args []Value) (Value, error)
}

func (v *BuiltinValue) Type() Type     { return v.Sig }
func (v *BuiltinValue) String() string { return "<builtin " + v.Name + ">" }
func (v *BuiltinValue) Truthy() bool   { return true }

// SolidValue is an opaque handle to a 3D geometry kernel solid.
type SolidValue struct{ Solid *geom.Solid }

func (v *SolidValue) Type() Type     { return SolidType }
func (v *SolidValue) String() string { return fmt.Sprintf("<solid %d facets>", len(v.Solid.Triangles)) }
func (v *SolidValue) Truthy() bool   { return true }

// PolygonValue is an opaque handle to a 2D geometry kernel polygon.
type PolygonValue struct{ Polygon *geom.Polygon }

func (v *PolygonValue) Type() Type { return PolygonType }
func (v *PolygonValue) String() string {
	return fmt.Sprintf("<polygon %d points>", len(v.Polygon.Points))
}
func (v *PolygonValue) Truthy() bool { return true }

// PointValue is a 3D coordinate, distinct from a user data record so
// it can be produced directly by geometry bounds queries.
type PointValue struct{ X, Y, Z float64 }

func (v PointValue) Type() Type { return PointType }
func (v PointValue) String() string {
	return fmt.Sprintf("(%s, %s, %s)",
		strconv.FormatFloat(v.X, 'g', -1, 64),
		strconv.FormatFloat(v.Y, 'g', -1, 64),
		strconv.FormatFloat(v.Z, 'g', -1, 64))
}
func (v PointValue) Truthy() bool { return true }
