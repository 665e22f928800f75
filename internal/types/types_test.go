package types

import "testing"

func TestMatchedByAnyMatchesAnything(t *testing.T) {
	if !AnyType.MatchedBy(IntType) {
		t.Fatal("Any should be matched-by any type")
	}
	if IntType.MatchedBy(AnyType) {
		t.Fatal("Int should not be matched-by Any")
	}
}

func TestMatchedByReflexiveAndTransitive(t *testing.T) {
	vecInt := NewVectorType(IntType)
	vecAny := NewVectorType(AnyType)
	if !vecInt.MatchedBy(vecInt) {
		t.Fatal("vector type should be matched-by itself")
	}
	if !vecAny.MatchedBy(vecInt) {
		t.Fatal("[Any] should be matched-by [Int]")
	}
	if !AnyType.MatchedBy(vecAny) || !AnyType.MatchedBy(vecInt) {
		t.Fatal("Any matched-by [Any] and [Any] matched-by [Int] should give Any matched-by [Int]")
	}
}

func TestFunctionTypeMatchedBy(t *testing.T) {
	want := NewFunctionType([][]Type{{IntType, IntType}}, IntType)
	got := NewFunctionType([][]Type{{IntType, IntType}}, IntType)
	if !want.MatchedBy(got) {
		t.Fatal("identical function signatures should match")
	}
	bad := NewFunctionType([][]Type{{IntType}}, IntType)
	if want.MatchedBy(bad) {
		t.Fatal("mismatched arity should not match")
	}
}

func TestIntArithmetic(t *testing.T) {
	RegisterPrimitiveOps()
	sig, ok := IntType.Ops().Resolve("plus", []Type{IntType})
	if !ok {
		t.Fatal("expected Int.plus(Int)")
	}
	v, err := sig.Fn(IntValue{Val: 3}, []Value{IntValue{Val: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if v.(IntValue).Val != 7 {
		t.Fatalf("got %v", v)
	}
}

func TestIntDivisionByZero(t *testing.T) {
	RegisterPrimitiveOps()
	sig, _ := IntType.Ops().Resolve("div", []Type{IntType})
	_, err := sig.Fn(IntValue{Val: 1}, []Value{IntValue{Val: 0}})
	if err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestVectorIndexing(t *testing.T) {
	vt := NewVectorType(IntType)
	vec := &VectorValue{Elems: []Value{IntValue{Val: 10}, IntValue{Val: 20}}, ElemType: IntType}
	sig, ok := vt.Ops().Resolve("sub", []Type{IntType})
	if !ok {
		t.Fatal("expected vector sub")
	}
	v, err := sig.Fn(vec, []Value{IntValue{Val: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if v.(IntValue).Val != 20 {
		t.Fatalf("got %v", v)
	}
}

func TestRecordFieldGetSet(t *testing.T) {
	pt := NewSimpleType("Pt")
	pt.Fields = []FieldDescriptor{{Name: "x", Type: FloatType}, {Name: "y", Type: FloatType}}
	rec := &RecordValue{TypeRef: pt, Slots: []Value{FloatValue{Val: 1}, FloatValue{Val: 2}}}
	if v, ok := rec.Get("y"); !ok || v.(FloatValue).Val != 2 {
		t.Fatalf("got %v %v", v, ok)
	}
	if !rec.Set("x", FloatValue{Val: 5}) {
		t.Fatal("expected Set to succeed")
	}
	v, _ := rec.Get("x")
	if v.(FloatValue).Val != 5 {
		t.Fatalf("got %v", v)
	}
}
