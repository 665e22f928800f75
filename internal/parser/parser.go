// Package parser implements a Pratt (precedence-climbing) parser
// turning a token stream from internal/lexer into the internal/ast
// tree. Prefix and infix handlers are registered per token type; a
// plain curToken/peekToken cursor is enough for this grammar, with no
// backtracking or block-context tracking needed.
package parser

import (
	"fmt"

	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/lexer"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGN      // :=
	OR          // or
	AND         // and
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	POW         // ^
	PREFIX      // -x  !x
	POSTFIX     // f(x)  v[i]  r.f  s->m(x)
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:   ASSIGN,
	lexer.OR:       OR,
	lexer.AND:      AND,
	lexer.EQ:       EQUALS,
	lexer.NOTEQ:    EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.LTE:      LESSGREATER,
	lexer.GTE:      LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.CARET:    POW,
	lexer.LPAREN:   POSTFIX,
	lexer.LBRACK:   POSTFIX,
	lexer.DOT:      POSTFIX,
	lexer.ARROW:    POSTFIX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser consumes a token stream and builds an ast.Program.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errs errors.List

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a parser over the given source.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source)}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifierOrConstructor)
	p.registerPrefix(lexer.INT, p.parseIntLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.MINUS, p.parseUnary)
	p.registerPrefix(lexer.BANG, p.parseUnary)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.LBRACK, p.parseVectorLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseBlockExpression)
	p.registerPrefix(lexer.LET, p.parseLetExpression)
	p.registerPrefix(lexer.IF, p.parseConditional)
	p.registerPrefix(lexer.WHILE, p.parseWhile)
	p.registerPrefix(lexer.FOR, p.parseForEach)
	p.registerPrefix(lexer.LAMBDA, p.parseLambda)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	for _, tt := range []lexer.TokenType{lexer.PLUS, lexer.MINUS, lexer.ASTERISK, lexer.SLASH,
		lexer.PERCENT, lexer.CARET, lexer.EQ, lexer.NOTEQ, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE} {
		p.registerInfix(tt, p.parseBinaryOp)
	}
	p.registerInfix(lexer.AND, p.parseLogicalOp)
	p.registerInfix(lexer.OR, p.parseLogicalOp)
	p.registerInfix(lexer.ASSIGN, p.parseAssignOrFieldUpdate)
	p.registerInfix(lexer.LPAREN, p.parseCall)
	p.registerInfix(lexer.LBRACK, p.parseIndex)
	p.registerInfix(lexer.DOT, p.parseFieldAccess)
	p.registerInfix(lexer.ARROW, p.parseMethodCall)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn)   { p.infixParseFns[tt] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) addError(msg string) {
	p.errs.Add(errors.At(errors.Parser, msg, p.curToken.Pos))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curIs(tt lexer.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool { return p.peekToken.Type == tt }

// expectPeek advances past the current token only if the next token
// has the expected type; otherwise it records a Parser error.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekIs(tt) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf("expected next token to be %s, got %s instead", tt, p.peekToken.Type))
	return false
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []*errors.SimplexError { return p.errs.Errs }

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		switch p.curToken.Type {
		case lexer.LET:
			if d := p.parseVarDef(); d != nil {
				prog.Definitions = append(prog.Definitions, d)
			}
		case lexer.DATA:
			if d := p.parseDataDef(); d != nil {
				prog.Definitions = append(prog.Definitions, d)
			}
		case lexer.FUN:
			if d := p.parseFunDef(); d != nil {
				prog.Definitions = append(prog.Definitions, d)
			}
		case lexer.METHOD:
			if d := p.parseMethodDef(); d != nil {
				prog.Definitions = append(prog.Definitions, d)
			}
		case lexer.PRODUCT:
			if d := p.parseProductDef(); d != nil {
				prog.Products = append(prog.Products, d)
			}
		default:
			p.addError(fmt.Sprintf("unexpected token %s at top level", p.curToken.Type))
			p.nextToken()
			continue
		}
		p.nextToken()
	}
	return prog
}
