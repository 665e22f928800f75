package ast

import (
	"strings"

	"github.com/solidkit/simplex/internal/lexer"
)

// IntLiteral is an integer literal.
type IntLiteral struct {
	Token lexer.Token
	Value int64
}

func (e *IntLiteral) expressionNode()      {}
func (e *IntLiteral) Pos() lexer.Position { return e.Token.Pos }
func (e *IntLiteral) String() string      { return e.Token.Literal }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (e *FloatLiteral) expressionNode()      {}
func (e *FloatLiteral) Pos() lexer.Position { return e.Token.Pos }
func (e *FloatLiteral) String() string      { return e.Token.Literal }

// StringLiteral is a string literal.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) Pos() lexer.Position { return e.Token.Pos }
func (e *StringLiteral) String() string      { return `"` + e.Value + `"` }

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (e *BoolLiteral) expressionNode()      {}
func (e *BoolLiteral) Pos() lexer.Position { return e.Token.Pos }
func (e *BoolLiteral) String() string      { return e.Token.Literal }

// Identifier is a variable or function reference.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) Pos() lexer.Position { return e.Token.Pos }
func (e *Identifier) String() string      { return e.Name }

// Assignment is `name := value`, reassigning an already-declared name.
type Assignment struct {
	Token lexer.Token
	Name  string
	Value Expression
}

func (e *Assignment) expressionNode()      {}
func (e *Assignment) Pos() lexer.Position { return e.Token.Pos }
func (e *Assignment) String() string      { return e.Name + " := " + e.Value.String() }

// Block is `{ e1; e2; ... }`; its value is the value of the last
// expression, evaluated in a fresh child scope.
type Block struct {
	Token lexer.Token // the '{' token
	Exprs []Expression
}

func (e *Block) expressionNode()      {}
func (e *Block) Pos() lexer.Position { return e.Token.Pos }
func (e *Block) String() string {
	var parts []string
	for _, x := range e.Exprs {
		parts = append(parts, x.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Let is `let name [:Type] = init`, evaluated as an expression whose
// value is the bound value.
type Let struct {
	Token      lexer.Token
	Name       string
	Annotation TypeExpr // nil if not given
	Init       Expression
}

func (e *Let) expressionNode()      {}
func (e *Let) Pos() lexer.Position { return e.Token.Pos }
func (e *Let) String() string {
	if e.Annotation != nil {
		return "let " + e.Name + ":" + e.Annotation.String() + " = " + e.Init.String()
	}
	return "let " + e.Name + " = " + e.Init.String()
}

// CondClause is one `(guard) then value` arm of a Conditional.
type CondClause struct {
	Guard Expression
	Then  Expression
}

// Conditional is `if (g1) then v1 elif (g2) then v2 ... else vElse`; the
// else clause is mandatory.
type Conditional struct {
	Token   lexer.Token // the 'if' token
	Clauses []CondClause
	Else    Expression
}

func (e *Conditional) expressionNode()      {}
func (e *Conditional) Pos() lexer.Position { return e.Token.Pos }
func (e *Conditional) String() string {
	s := ""
	for i, c := range e.Clauses {
		if i == 0 {
			s += "if (" + c.Guard.String() + ") then " + c.Then.String()
		} else {
			s += " elif (" + c.Guard.String() + ") then " + c.Then.String()
		}
	}
	s += " else " + e.Else.String()
	return s
}

// While is `while (cond) { body }`.
type While struct {
	Token lexer.Token
	Cond  Expression
	Body  Expression
}

func (e *While) expressionNode()      {}
func (e *While) Pos() lexer.Position { return e.Token.Pos }
func (e *While) String() string {
	return "while (" + e.Cond.String() + ") " + e.Body.String()
}

// ForEach is `for name in collection { body }`.
type ForEach struct {
	Token      lexer.Token
	Var        string
	Collection Expression
	Body       Expression
}

func (e *ForEach) expressionNode()      {}
func (e *ForEach) Pos() lexer.Position { return e.Token.Pos }
func (e *ForEach) String() string {
	return "for " + e.Var + " in " + e.Collection.String() + " " + e.Body.String()
}

// VectorLiteral is `[e1, e2, ...]`.
type VectorLiteral struct {
	Token    lexer.Token // the '[' token
	Elements []Expression
}

func (e *VectorLiteral) expressionNode()      {}
func (e *VectorLiteral) Pos() lexer.Position { return e.Token.Pos }
func (e *VectorLiteral) String() string {
	var parts []string
	for _, x := range e.Elements {
		parts = append(parts, x.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DataConstructor is `TypeName(arg1, arg2, ...)`, constructing a record
// of the named data type.
type DataConstructor struct {
	Token    lexer.Token
	TypeName string
	Args     []Expression
}

func (e *DataConstructor) expressionNode()      {}
func (e *DataConstructor) Pos() lexer.Position { return e.Token.Pos }
func (e *DataConstructor) String() string {
	var parts []string
	for _, a := range e.Args {
		parts = append(parts, a.String())
	}
	return e.TypeName + "(" + strings.Join(parts, ", ") + ")"
}

// FieldAccess is `target.field`.
type FieldAccess struct {
	Token  lexer.Token // the '.' token
	Target Expression
	Field  string
}

func (e *FieldAccess) expressionNode()      {}
func (e *FieldAccess) Pos() lexer.Position { return e.Token.Pos }
func (e *FieldAccess) String() string      { return e.Target.String() + "." + e.Field }

// FieldUpdate is `target.field := value`, which mutates the record in
// place and evaluates to the record.
type FieldUpdate struct {
	Token  lexer.Token
	Target Expression
	Field  string
	Value  Expression
}

func (e *FieldUpdate) expressionNode()      {}
func (e *FieldUpdate) Pos() lexer.Position { return e.Token.Pos }
func (e *FieldUpdate) String() string {
	return e.Target.String() + "." + e.Field + " := " + e.Value.String()
}

// BinaryOp is any two-operand operator expression; it is resolved to a
// method call on the left operand's type.
type BinaryOp struct {
	Token lexer.Token
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryOp) expressionNode()      {}
func (e *BinaryOp) Pos() lexer.Position { return e.Token.Pos }
func (e *BinaryOp) String() string {
	return "(" + e.Left.String() + " " + e.Op + " " + e.Right.String() + ")"
}

// UnaryOp is a one-operand prefix operator: `-x`, `!b`.
type UnaryOp struct {
	Token lexer.Token
	Op    string
	Right Expression
}

func (e *UnaryOp) expressionNode()      {}
func (e *UnaryOp) Pos() lexer.Position { return e.Token.Pos }
func (e *UnaryOp) String() string      { return "(" + e.Op + e.Right.String() + ")" }

// LogicalOp is `and`/`or`, which short-circuit and are not dispatched
// through a type's operation table.
type LogicalOp struct {
	Token lexer.Token
	Op    string // "and" or "or"
	Left  Expression
	Right Expression
}

func (e *LogicalOp) expressionNode()      {}
func (e *LogicalOp) Pos() lexer.Position { return e.Token.Pos }
func (e *LogicalOp) String() string {
	return "(" + e.Left.String() + " " + e.Op + " " + e.Right.String() + ")"
}

// IndexOp is `target[index]`, the `sub` operator.
type IndexOp struct {
	Token  lexer.Token // the '[' token
	Target Expression
	Index  Expression
}

func (e *IndexOp) expressionNode()      {}
func (e *IndexOp) Pos() lexer.Position { return e.Token.Pos }
func (e *IndexOp) String() string      { return e.Target.String() + "[" + e.Index.String() + "]" }

// Call is a function call `callee(args...)`.
type Call struct {
	Token  lexer.Token // the '(' token
	Callee Expression
	Args   []Expression
}

func (e *Call) expressionNode()      {}
func (e *Call) Pos() lexer.Position { return e.Token.Pos }
func (e *Call) String() string {
	var parts []string
	for _, a := range e.Args {
		parts = append(parts, a.String())
	}
	return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// MethodCall is `target->method(args...)`.
type MethodCall struct {
	Token  lexer.Token // the '->' token
	Target Expression
	Method string
	Args   []Expression
}

func (e *MethodCall) expressionNode()      {}
func (e *MethodCall) Pos() lexer.Position { return e.Token.Pos }
func (e *MethodCall) String() string {
	var parts []string
	for _, a := range e.Args {
		parts = append(parts, a.String())
	}
	return e.Target.String() + "->" + e.Method + "(" + strings.Join(parts, ", ") + ")"
}

// Lambda is `lambda(params):ReturnType => body`, a first-class callable
// value literal.
type Lambda struct {
	Token      lexer.Token
	Params     []Param
	ReturnType TypeExpr
	Body       Expression
}

func (e *Lambda) expressionNode()      {}
func (e *Lambda) Pos() lexer.Position { return e.Token.Pos }
func (e *Lambda) String() string {
	var parts []string
	for _, p := range e.Params {
		parts = append(parts, p.Name+":"+p.Type.String())
	}
	return "lambda(" + strings.Join(parts, ", ") + ") => " + e.Body.String()
}
