package evaluator

import (
	"testing"

	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/parser"
	"github.com/solidkit/simplex/internal/semantic"
	"github.com/solidkit/simplex/internal/types"
)

// bind runs the full install/validate/bind pipeline over a source
// program and returns its root environment, ready to evaluate product
// bodies or look up bound top-level values.
func bind(t *testing.T, src string) *env.Environment {
	t.Helper()
	p := parser.New(src)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, e := range p.Errors() {
			t.Error(e)
		}
		t.FailNow()
	}
	rootEnv := env.NewRoot(types.NewRegistry())
	if l := semantic.InstallDataDefs(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallDataDefs: %v", l.Errs)
	}
	if l := InstallMethods(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallMethods: %v", l.Errs)
	}
	if l := semantic.InstallStaticDefs(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallStaticDefs: %v", l.Errs)
	}
	if l := semantic.Validate(prog, rootEnv); !l.Empty() {
		t.Fatalf("Validate: %v", l.Errs)
	}
	if l := InstallValues(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallValues: %v", l.Errs)
	}
	return rootEnv
}

func callFun(t *testing.T, rootEnv *env.Environment, name string, args ...types.Value) types.Value {
	t.Helper()
	v, ok := rootEnv.LookupValue(name)
	if !ok {
		t.Fatalf("no bound value for %s", name)
	}
	closure, ok := v.(*types.ClosureValue)
	if !ok {
		t.Fatalf("%s is not a function, got %T", name, v)
	}
	result, err := closure.Call(args)
	if err != nil {
		t.Fatalf("calling %s: %v", name, err)
	}
	return result
}

func TestArithmetic(t *testing.T) {
	rootEnv := bind(t, `let x:Int = 3; let y:Int = 4; fun main():Int { x * x + y * y }`)
	result := callFun(t, rootEnv, "main")
	iv, ok := result.(types.IntValue)
	if !ok || iv.Val != 25 {
		t.Fatalf("expected 25, got %v", result)
	}
}

func TestFactorialRecursion(t *testing.T) {
	rootEnv := bind(t, `fun fact(n:Int):Int { if (n <= 1) then 1 else n * fact(n - 1) }`)
	result := callFun(t, rootEnv, "fact", types.IntValue{Val: 5})
	iv, ok := result.(types.IntValue)
	if !ok || iv.Val != 120 {
		t.Fatalf("expected 120, got %v", result)
	}
}

func TestDataRecordFieldAccess(t *testing.T) {
	rootEnv := bind(t, `data Pt(x:Float, y:Float); let p = Pt(1.0, 2.0); fun f():Float { p.x + p.y }`)
	result := callFun(t, rootEnv, "f")
	fv, ok := result.(types.FloatValue)
	if !ok || fv.Val != 3.0 {
		t.Fatalf("expected 3.0, got %v", result)
	}
}

func TestFieldUpdateMutatesAndReturnsRecord(t *testing.T) {
	rootEnv := bind(t, `data Pt(x:Float, y:Float); let p = Pt(1.0, 2.0); fun f():Pt { p.x := 5.0 }`)
	result := callFun(t, rootEnv, "f")
	rec, ok := result.(*types.RecordValue)
	if !ok {
		t.Fatalf("expected a record, got %T", result)
	}
	xv, _ := rec.Get("x")
	if xv.(types.FloatValue).Val != 5.0 {
		t.Fatalf("expected x = 5.0, got %v", xv)
	}
	pv, _ := rootEnv.LookupValue("p")
	pxv, _ := pv.(*types.RecordValue).Get("x")
	if pxv.(types.FloatValue).Val != 5.0 {
		t.Fatal("expected the update to mutate the original record in place")
	}
}

func TestMethodDispatch(t *testing.T) {
	rootEnv := bind(t, `data Pt(x:Float, y:Float); method Pt.normSq():Float { self.x * self.x + self.y * self.y }`)
	rt, _ := rootEnv.Registry.Lookup("Pt")
	st := rt.(*types.SimpleType)
	sig, ok := st.Ops().Resolve("normSq", nil)
	if !ok {
		t.Fatal("expected normSq to be registered on Pt's operation table")
	}
	self := &types.RecordValue{TypeRef: st, Slots: []types.Value{types.FloatValue{Val: 3.0}, types.FloatValue{Val: 4.0}}}
	result, err := sig.Fn(self, nil)
	if err != nil {
		t.Fatalf("normSq: %v", err)
	}
	if result.(types.FloatValue).Val != 25.0 {
		t.Fatalf("expected 25.0, got %v", result)
	}
}

func TestVectorAndForEach(t *testing.T) {
	rootEnv := bind(t, `let v:[Int] = [1,2,3]; fun f():[Int] { for i in v { i * i } }`)
	result := callFun(t, rootEnv, "f")
	vec, ok := result.(*types.VectorValue)
	if !ok || len(vec.Elems) != 3 {
		t.Fatalf("expected a 3-element vector, got %v", result)
	}
	want := []int64{1, 4, 9}
	for i, w := range want {
		if vec.Elems[i].(types.IntValue).Val != w {
			t.Fatalf("elem %d: expected %d, got %v", i, w, vec.Elems[i])
		}
	}
}

func TestWhileLoop(t *testing.T) {
	rootEnv := bind(t, `let n:Int = 0; fun f():Int { while (n < 5) { n := n + 1 } }`)
	result := callFun(t, rootEnv, "f")
	if result.(types.IntValue).Val != 5 {
		t.Fatalf("expected 5, got %v", result)
	}
}

func TestDivisionByZeroRaisesEvaluationError(t *testing.T) {
	rootEnv := bind(t, `fun f(n:Int):Int { 10 / n }`)
	v, ok := rootEnv.LookupValue("f")
	if !ok {
		t.Fatal("f not bound")
	}
	_, err := v.(*types.ClosureValue).Call([]types.Value{types.IntValue{Val: 0}})
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestLambdaValue(t *testing.T) {
	rootEnv := bind(t, `let f = lambda(x:Int):Int => x * 2;`)
	v, ok := rootEnv.LookupValue("f")
	if !ok {
		t.Fatal("f not bound")
	}
	closure := v.(*types.ClosureValue)
	result, err := closure.Call([]types.Value{types.IntValue{Val: 21}})
	if err != nil {
		t.Fatalf("calling lambda: %v", err)
	}
	if result.(types.IntValue).Val != 42 {
		t.Fatalf("expected 42, got %v", result)
	}
}
