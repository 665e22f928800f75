package ast

import (
	"strings"

	"github.com/solidkit/simplex/internal/lexer"
)

// VarDef is a top-level `let` definition.
type VarDef struct {
	Token      lexer.Token
	Name       string
	Annotation TypeExpr
	Init       Expression
}

func (d *VarDef) definitionNode()     {}
func (d *VarDef) Pos() lexer.Position { return d.Token.Pos }
func (d *VarDef) String() string {
	if d.Annotation != nil {
		return "let " + d.Name + ":" + d.Annotation.String() + " = " + d.Init.String() + ";"
	}
	return "let " + d.Name + " = " + d.Init.String() + ";"
}

// FunDef is a `fun` definition: a named first-class function with one
// parameter-type signature and a body expression. Local bindings
// inside the body are plain `let` expressions in its block, not
// separate nested definitions.
type FunDef struct {
	Token      lexer.Token
	Name       string
	Params     []Param
	ReturnType TypeExpr
	Body       Expression
}

func (d *FunDef) definitionNode()     {}
func (d *FunDef) Pos() lexer.Position { return d.Token.Pos }
func (d *FunDef) String() string {
	var parts []string
	for _, p := range d.Params {
		parts = append(parts, p.Name+":"+p.Type.String())
	}
	return "fun " + d.Name + "(" + strings.Join(parts, ", ") + "):" + d.ReturnType.String() + " " + d.Body.String()
}

// MethodDef attaches an operation to an explicit target type, dispatched
// through that type's operation table.
type MethodDef struct {
	Token      lexer.Token
	Target     TypeExpr
	Name       string
	Params     []Param
	ReturnType TypeExpr
	Body       Expression
}

func (d *MethodDef) definitionNode()     {}
func (d *MethodDef) Pos() lexer.Position { return d.Token.Pos }
func (d *MethodDef) String() string {
	var parts []string
	for _, p := range d.Params {
		parts = append(parts, p.Name+":"+p.Type.String())
	}
	return "method " + d.Target.String() + "." + d.Name + "(" + strings.Join(parts, ", ") + "):" + d.ReturnType.String() + " " + d.Body.String()
}

// DataDef declares a named record type with typed, ordered fields.
type DataDef struct {
	Token  lexer.Token
	Name   string
	Fields []FieldDef
}

func (d *DataDef) definitionNode()     {}
func (d *DataDef) Pos() lexer.Position { return d.Token.Pos }
func (d *DataDef) String() string {
	var parts []string
	for _, f := range d.Fields {
		parts = append(parts, f.Name+":"+f.Type.String())
	}
	return "data " + d.Name + "(" + strings.Join(parts, ", ") + ");"
}

// ProductDef is a top-level `product "name" { body }` declaration. Its
// body is a list of expressions whose results are collected, grouped by
// kind, and written to files.
type ProductDef struct {
	Token lexer.Token
	Name  string
	Body  []Expression
}

func (d *ProductDef) definitionNode()     {}
func (d *ProductDef) Pos() lexer.Position { return d.Token.Pos }
func (d *ProductDef) String() string {
	var parts []string
	for _, x := range d.Body {
		parts = append(parts, x.String())
	}
	return `product "` + d.Name + `" { ` + strings.Join(parts, "; ") + " }"
}
