package ast

import (
	"testing"

	"github.com/solidkit/simplex/internal/lexer"
)

func TestConditionalString(t *testing.T) {
	cond := &Conditional{
		Token: lexer.Token{Type: lexer.IF, Literal: "if"},
		Clauses: []CondClause{
			{Guard: &BoolLiteral{Token: lexer.Token{Literal: "true"}, Value: true}, Then: &IntLiteral{Token: lexer.Token{Literal: "1"}, Value: 1}},
			{Guard: &BoolLiteral{Token: lexer.Token{Literal: "false"}, Value: false}, Then: &IntLiteral{Token: lexer.Token{Literal: "2"}, Value: 2}},
		},
		Else: &IntLiteral{Token: lexer.Token{Literal: "3"}, Value: 3},
	}
	got := cond.String()
	want := "if (true) then 1 elif (false) then 2 else 3"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProgramString(t *testing.T) {
	p := &Program{
		Definitions: []Definition{
			&DataDef{Token: lexer.Token{Literal: "data"}, Name: "Pt", Fields: []FieldDef{
				{Name: "x", Type: &SimpleTypeExpr{Name: "Float"}},
				{Name: "y", Type: &SimpleTypeExpr{Name: "Float"}},
			}},
		},
		Products: []*ProductDef{
			{Token: lexer.Token{Literal: "product"}, Name: "box"},
		},
	}
	s := p.String()
	if s == "" {
		t.Fatal("expected non-empty program string")
	}
}

func TestVectorTypeExprString(t *testing.T) {
	vt := &VectorTypeExpr{Elem: &SimpleTypeExpr{Name: "Int"}}
	if vt.String() != "[Int]" {
		t.Fatalf("got %q", vt.String())
	}
}

func TestFunctionTypeExprString(t *testing.T) {
	ft := &FunctionTypeExpr{
		Params: []TypeExpr{&SimpleTypeExpr{Name: "Int"}, &SimpleTypeExpr{Name: "Int"}},
		Return: &SimpleTypeExpr{Name: "Int"},
	}
	if ft.String() != "(Int, Int) -> Int" {
		t.Fatalf("got %q", ft.String())
	}
}
