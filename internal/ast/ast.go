// Package ast defines the immutable abstract syntax tree produced by the
// Simplex parser. Every node carries a source location; expression and
// definition variants map one-to-one with the surface grammar.
package ast

import "github.com/solidkit/simplex/internal/lexer"

// Node is the base interface every AST node satisfies.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Expression is any node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Definition is a top-level declaration.
type Definition interface {
	Node
	definitionNode()
}

// TypeExpr is the surface syntax for a type: `Name`, `[T]`, or
// `(T1, T2) -> R`. It is resolved to a types.Type by the analyzer; it
// is not itself a resolved type.
type TypeExpr interface {
	Node
	typeExprNode()
}

// SimpleTypeExpr names a nominal type: a primitive or a user data type.
type SimpleTypeExpr struct {
	Token lexer.Token
	Name  string
}

func (t *SimpleTypeExpr) typeExprNode()      {}
func (t *SimpleTypeExpr) Pos() lexer.Position { return t.Token.Pos }
func (t *SimpleTypeExpr) String() string      { return t.Name }

// VectorTypeExpr is `[Elem]`.
type VectorTypeExpr struct {
	Token lexer.Token // the '[' token
	Elem  TypeExpr
}

func (t *VectorTypeExpr) typeExprNode()      {}
func (t *VectorTypeExpr) Pos() lexer.Position { return t.Token.Pos }
func (t *VectorTypeExpr) String() string      { return "[" + t.Elem.String() + "]" }

// FunctionTypeExpr is `(T1, T2) -> R`.
type FunctionTypeExpr struct {
	Token  lexer.Token // the '(' token
	Params []TypeExpr
	Return TypeExpr
}

func (t *FunctionTypeExpr) typeExprNode()      {}
func (t *FunctionTypeExpr) Pos() lexer.Position { return t.Token.Pos }
func (t *FunctionTypeExpr) String() string {
	s := "("
	for i, p := range t.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ") -> " + t.Return.String()
	return s
}

// Program is the root of a parsed Simplex source file: a list of
// top-level definitions (variables, functions, methods, data types) and
// a list of product declarations.
type Program struct {
	Definitions []Definition
	Products    []*ProductDef
}

func (p *Program) Pos() lexer.Position {
	if len(p.Definitions) > 0 {
		return p.Definitions[0].Pos()
	}
	if len(p.Products) > 0 {
		return p.Products[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	s := ""
	for _, d := range p.Definitions {
		s += d.String() + "\n"
	}
	for _, pr := range p.Products {
		s += pr.String() + "\n"
	}
	return s
}

// Param is a function/method/lambda parameter: a name and its declared
// type.
type Param struct {
	Name string
	Type TypeExpr
}

// FieldDef is one field of a `data` definition: a name and its declared
// type, in declaration order. A record stores its fields by index.
type FieldDef struct {
	Name string
	Type TypeExpr
}
