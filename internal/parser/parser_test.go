package parser

import (
	"testing"

	"github.com/solidkit/simplex/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, e := range p.Errors() {
			t.Error(e)
		}
		t.FailNow()
	}
	return prog
}

func TestParseArithmeticAndLet(t *testing.T) {
	prog := parseOK(t, `let x:Int = 3; let y:Int = 4; fun main():Int { x * x + y * y }`)
	if len(prog.Definitions) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(prog.Definitions))
	}
	fd, ok := prog.Definitions[2].(*ast.FunDef)
	if !ok {
		t.Fatalf("expected FunDef, got %T", prog.Definitions[2])
	}
	block := fd.Body.(*ast.Block)
	if len(block.Exprs) != 1 {
		t.Fatalf("expected 1 body expr, got %d", len(block.Exprs))
	}
}

func TestParseConditional(t *testing.T) {
	prog := parseOK(t, `fun f():Int { if (1 < 2) then 3 else 4 }`)
	fd := prog.Definitions[0].(*ast.FunDef)
	body := fd.Body.(*ast.Block).Exprs[0]
	cond, ok := body.(*ast.Conditional)
	if !ok {
		t.Fatalf("expected Conditional, got %T", body)
	}
	if len(cond.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(cond.Clauses))
	}
}

func TestParseDataRecordRoundTrip(t *testing.T) {
	prog := parseOK(t, `data Pt(x:Float, y:Float); let p = Pt(1.0, 2.0); fun f():Float { p.x + p.y }`)
	dd := prog.Definitions[0].(*ast.DataDef)
	if dd.Name != "Pt" || len(dd.Fields) != 2 {
		t.Fatalf("unexpected data def: %+v", dd)
	}
	vd := prog.Definitions[1].(*ast.VarDef)
	ctor, ok := vd.Init.(*ast.DataConstructor)
	if !ok || ctor.TypeName != "Pt" || len(ctor.Args) != 2 {
		t.Fatalf("expected DataConstructor Pt(1.0, 2.0), got %+v", vd.Init)
	}
}

func TestParseFieldUpdate(t *testing.T) {
	prog := parseOK(t, `fun f():Float { p.x := 5.0 }`)
	body := prog.Definitions[0].(*ast.FunDef).Body.(*ast.Block).Exprs[0]
	upd, ok := body.(*ast.FieldUpdate)
	if !ok || upd.Field != "x" {
		t.Fatalf("expected FieldUpdate on x, got %+v", body)
	}
}

func TestParseVectorAndForEach(t *testing.T) {
	prog := parseOK(t, `let v:[Int] = [1,2,3]; fun f():[Int] { for i in v { i * i } }`)
	vd := prog.Definitions[0].(*ast.VarDef)
	vt, ok := vd.Annotation.(*ast.VectorTypeExpr)
	if !ok || vt.String() != "[Int]" {
		t.Fatalf("expected [Int] annotation, got %+v", vd.Annotation)
	}
	lit, ok := vd.Init.(*ast.VectorLiteral)
	if !ok || len(lit.Elements) != 3 {
		t.Fatalf("expected 3-element vector literal, got %+v", vd.Init)
	}
	fd := prog.Definitions[1].(*ast.FunDef)
	fe, ok := fd.Body.(*ast.Block).Exprs[0].(*ast.ForEach)
	if !ok || fe.Var != "i" {
		t.Fatalf("expected ForEach over i, got %+v", fd.Body)
	}
}

func TestParseMethodDispatchAndRecursion(t *testing.T) {
	prog := parseOK(t, `fun fact(n:Int):Int { if (n <= 1) then 1 else n * fact(n - 1) }`)
	fd := prog.Definitions[0].(*ast.FunDef)
	if fd.Name != "fact" || len(fd.Params) != 1 {
		t.Fatalf("unexpected fun def: %+v", fd)
	}
}

func TestParseProductEmitsASolid(t *testing.T) {
	prog := parseOK(t, `product "box" { cuboid(1.0,1.0,1.0)->move(0.0,0.0,0.0) }`)
	if len(prog.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(prog.Products))
	}
	prod := prog.Products[0]
	if prod.Name != "box" || len(prod.Body) != 1 {
		t.Fatalf("unexpected product: %+v", prod)
	}
	mc, ok := prod.Body[0].(*ast.MethodCall)
	if !ok || mc.Method != "move" {
		t.Fatalf("expected MethodCall move, got %+v", prod.Body[0])
	}
	if _, ok := mc.Target.(*ast.Call); !ok {
		t.Fatalf("expected cuboid(...) call as target, got %+v", mc.Target)
	}
}

func TestParseMethodDef(t *testing.T) {
	prog := parseOK(t, `method Pt.norm():Float { x * x }`)
	md := prog.Definitions[0].(*ast.MethodDef)
	if md.Name != "norm" || md.Target.String() != "Pt" {
		t.Fatalf("unexpected method def: %+v", md)
	}
}

func TestParseLambda(t *testing.T) {
	prog := parseOK(t, `let f = lambda(x:Int):Int => x * 2;`)
	vd := prog.Definitions[0].(*ast.VarDef)
	lam, ok := vd.Init.(*ast.Lambda)
	if !ok || len(lam.Params) != 1 {
		t.Fatalf("expected lambda with 1 param, got %+v", vd.Init)
	}
}

func TestParseWhileLoop(t *testing.T) {
	prog := parseOK(t, `fun f():Int { while (true) { 1 } }`)
	fd := prog.Definitions[0].(*ast.FunDef)
	if _, ok := fd.Body.(*ast.Block).Exprs[0].(*ast.While); !ok {
		t.Fatalf("expected While, got %+v", fd.Body)
	}
}
