// Package types is the core's type system and value model together:
// the Type discriminated union, the matched-by assignability relation,
// per-type operation tables, and the Value discriminated union that
// every expression evaluates to. Types and Values are deliberately
// co-located in one package (rather than split, as a values package
// would otherwise need to import types for Value.Type() and types
// would need to reference Value in method signatures, an import
// cycle) so operation-table method bodies can be typed directly in
// terms of Value without an indirection layer.
package types

import "strings"

// Kind discriminates the Type union.
type Kind int

const (
	KindSimple Kind = iota
	KindVector
	KindFunction
	KindMethod
)

// Type is a type descriptor: a name, structural equality, the
// matched-by assignability relation, and a per-type operation table
// shared by built-in operators and user-defined methods.
type Type interface {
	Kind() Kind
	Name() string
	String() string
	EqualsStructurally(other Type) bool
	MatchedBy(other Type) bool
	Ops() *OperationTable
}

// SimpleType is a named nominal type: a primitive or a user data type.
type SimpleType struct {
	TypeName string
	table    *OperationTable
	// Fields is non-nil for user `data` definitions, nil for primitives.
	Fields []FieldDescriptor
}

// FieldDescriptor is one field slot of a data type, in declaration order.
type FieldDescriptor struct {
	Name string
	Type Type
}

func NewSimpleType(name string) *SimpleType {
	return &SimpleType{TypeName: name, table: NewOperationTable()}
}

func (t *SimpleType) Kind() Kind         { return KindSimple }
func (t *SimpleType) Name() string       { return t.TypeName }
func (t *SimpleType) String() string     { return t.TypeName }
func (t *SimpleType) Ops() *OperationTable { return t.table }

func (t *SimpleType) EqualsStructurally(other Type) bool {
	o, ok := other.(*SimpleType)
	return ok && o.TypeName == t.TypeName
}

// MatchedBy implements `target matched-by actual`: Any matches
// anything; otherwise simple types must name-match.
func (t *SimpleType) MatchedBy(other Type) bool {
	if t.TypeName == "Any" {
		return true
	}
	if other == nil {
		return false
	}
	o, ok := other.(*SimpleType)
	return ok && o.TypeName == t.TypeName
}

// FieldByName returns the field descriptor and its index, if present.
func (t *SimpleType) FieldByName(name string) (FieldDescriptor, int, bool) {
	for i, f := range t.Fields {
		if f.Name == name {
			return f, i, true
		}
	}
	return FieldDescriptor{}, -1, false
}

// VectorType is a homogeneous ordered sequence `[Elem]`.
type VectorType struct {
	Elem  Type
	table *OperationTable
}

func NewVectorType(elem Type) *VectorType {
	t := &VectorType{Elem: elem, table: NewOperationTable()}
	registerVectorOps(t)
	return t
}

func (t *VectorType) Kind() Kind           { return KindVector }
func (t *VectorType) Name() string         { return t.String() }
func (t *VectorType) String() string       { return "[" + t.Elem.String() + "]" }
func (t *VectorType) Ops() *OperationTable { return t.table }

func (t *VectorType) EqualsStructurally(other Type) bool {
	o, ok := other.(*VectorType)
	return ok && t.Elem.EqualsStructurally(o.Elem)
}

// MatchedBy: Vector<T> matched-by Vector<U> iff T matched-by U.
func (t *VectorType) MatchedBy(other Type) bool {
	o, ok := other.(*VectorType)
	if !ok {
		return false
	}
	return t.Elem.MatchedBy(o.Elem)
}

// FunctionType is a first-class callable; ArgLists enumerates
// overloaded arities/signatures (minimum one).
type FunctionType struct {
	ArgLists [][]Type
	Return   Type
	table    *OperationTable
}

func NewFunctionType(argLists [][]Type, ret Type) *FunctionType {
	return &FunctionType{ArgLists: argLists, Return: ret, table: NewOperationTable()}
}

func (t *FunctionType) Kind() Kind           { return KindFunction }
func (t *FunctionType) Name() string         { return t.String() }
func (t *FunctionType) Ops() *OperationTable { return t.table }

func (t *FunctionType) String() string {
	var sb strings.Builder
	for i, args := range t.ArgLists {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString("(")
		for j, a := range args {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(") -> ")
		sb.WriteString(t.Return.String())
	}
	return sb.String()
}

func (t *FunctionType) EqualsStructurally(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || !t.Return.EqualsStructurally(o.Return) || len(t.ArgLists) != len(o.ArgLists) {
		return false
	}
	for i := range t.ArgLists {
		if len(t.ArgLists[i]) != len(o.ArgLists[i]) {
			return false
		}
		for j := range t.ArgLists[i] {
			if !t.ArgLists[i][j].EqualsStructurally(o.ArgLists[i][j]) {
				return false
			}
		}
	}
	return true
}

// MatchedBy: function types match iff return types match and some
// arg-list pair matches pairwise.
func (t *FunctionType) MatchedBy(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || !t.Return.MatchedBy(o.Return) {
		return false
	}
	for _, want := range t.ArgLists {
		for _, got := range o.ArgLists {
			if argListMatches(want, got) {
				return true
			}
		}
	}
	return false
}

func argListMatches(want, got []Type) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !want[i].MatchedBy(got[i]) {
			return false
		}
	}
	return true
}

// MethodType is a Function attached to an explicit target type.
type MethodType struct {
	Target Type
	FunctionType
}

func NewMethodType(target Type, argLists [][]Type, ret Type) *MethodType {
	return &MethodType{Target: target, FunctionType: FunctionType{ArgLists: argLists, Return: ret, table: NewOperationTable()}}
}

func (t *MethodType) Kind() Kind { return KindMethod }
