package parser

import (
	"strconv"

	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/lexer"
)

// parseExpression is the Pratt engine: a prefix handler produces the
// left operand, then infix handlers consume operators whose
// precedence exceeds the caller's threshold.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("no prefix parse function for " + p.curToken.Type.String())
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifierOrConstructor() ast.Expression {
	tok := p.curToken
	name := tok.Literal
	if p.peekIs(lexer.LPAREN) && isUpperStart(name) {
		p.nextToken() // consume IDENT, cur is '('
		args := p.parseArgList(lexer.RPAREN)
		return &ast.DataConstructor{Token: tok, TypeName: name, Args: args}
	}
	return &ast.Identifier{Token: tok, Name: name}
}

func isUpperStart(s string) bool {
	if s == "" {
		return false
	}
	r := s[0]
	return r >= 'A' && r <= 'Z'
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError("invalid integer literal: " + tok.Literal)
		return nil
	}
	return &ast.IntLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError("invalid float literal: " + tok.Literal)
		return nil
	}
	return &ast.FloatLiteral{Token: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curToken, Value: p.curToken.Type == lexer.TRUE}
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.UnaryOp{Token: tok, Op: op, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseVectorLiteral() ast.Expression {
	tok := p.curToken
	elems := p.parseArgList(lexer.RBRACK)
	return &ast.VectorLiteral{Token: tok, Elements: elems}
}

// parseArgList parses a comma-separated expression list up to (and
// consuming) the closing token; PRE: curToken is the opening token.
func (p *Parser) parseArgList(closing lexer.TokenType) []ast.Expression {
	var args []ast.Expression
	if p.peekIs(closing) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(closing) {
		return nil
	}
	return args
}

// parseBlockExpression parses `{ e1; e2; ... }`; PRE: curToken is '{'.
func (p *Parser) parseBlockExpression() ast.Expression {
	tok := p.curToken
	exprs := p.parseBlockBody()
	return &ast.Block{Token: tok, Exprs: exprs}
}

// parseBlockBody parses the semicolon-separated body of a `{ ... }`
// construct and consumes the closing brace; PRE: curToken is '{'.
func (p *Parser) parseBlockBody() []ast.Expression {
	var exprs []ast.Expression
	p.nextToken()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		e := p.parseExpression(LOWEST)
		if e != nil {
			exprs = append(exprs, e)
		}
		if p.peekIs(lexer.SEMICOLON) {
			p.nextToken()
		}
		p.nextToken()
	}
	if !p.curIs(lexer.RBRACE) {
		p.addError("expected '}' to close block")
	}
	return exprs
}

func (p *Parser) parseLetExpression() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	var ann ast.TypeExpr
	if p.peekIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		ann = p.parseTypeExpr()
	}
	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	init := p.parseExpression(LOWEST)
	return &ast.Let{Token: tok, Name: name, Annotation: ann, Init: init}
}

func (p *Parser) parseConditional() ast.Expression {
	tok := p.curToken
	cond := &ast.Conditional{Token: tok}
	for {
		if !p.expectPeek(lexer.LPAREN) {
			return nil
		}
		p.nextToken()
		guard := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RPAREN) {
			return nil
		}
		if !p.expectPeek(lexer.THEN) {
			return nil
		}
		p.nextToken()
		then := p.parseExpression(LOWEST)
		cond.Clauses = append(cond.Clauses, ast.CondClause{Guard: guard, Then: then})
		if p.peekIs(lexer.ELIF) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(lexer.ELSE) {
		return nil
	}
	p.nextToken()
	cond.Else = p.parseExpression(LOWEST)
	return cond
}

func (p *Parser) parseWhile() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &ast.While{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseForEach() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.nextToken()
	coll := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &ast.ForEach{Token: tok, Var: name, Collection: coll, Body: body}
}

func (p *Parser) parseLambda() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	var ret ast.TypeExpr
	if p.peekIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		ret = p.parseTypeExpr()
	}
	if !p.expectPeek(lexer.FATARROW) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Lambda{Token: tok, Params: params, ReturnType: ret, Body: body}
}

func (p *Parser) parseBinaryOp(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryOp{Token: tok, Op: op, Left: left, Right: right}
}

func (p *Parser) parseLogicalOp(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.LogicalOp{Token: tok, Op: op, Left: left, Right: right}
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// parseAssignOrFieldUpdate handles `name := value` and
// `target.field := value`, the latter having already reduced its
// target to a FieldAccess node by the time `:=` is seen.
func (p *Parser) parseAssignOrFieldUpdate(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(ASSIGN - 1)
	switch target := left.(type) {
	case *ast.Identifier:
		return &ast.Assignment{Token: tok, Name: target.Name, Value: value}
	case *ast.FieldAccess:
		return &ast.FieldUpdate{Token: tok, Target: target.Target, Field: target.Field, Value: value}
	default:
		p.addError("invalid assignment target")
		return nil
	}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseArgList(lexer.RPAREN)
	return &ast.Call{Token: tok, Callee: callee, Args: args}
}

func (p *Parser) parseIndex(target ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACK) {
		return nil
	}
	return &ast.IndexOp{Token: tok, Target: target, Index: idx}
}

func (p *Parser) parseFieldAccess(target ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	return &ast.FieldAccess{Token: tok, Target: target, Field: p.curToken.Literal}
}

func (p *Parser) parseMethodCall(target ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	method := p.curToken.Literal
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	args := p.parseArgList(lexer.RPAREN)
	return &ast.MethodCall{Token: tok, Target: target, Method: method, Args: args}
}
