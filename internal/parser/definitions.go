package parser

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/lexer"
)

// parseVarDef parses a top-level `let name[:Type] = init;` definition.
// PRE: curToken is LET.
func (p *Parser) parseVarDef() ast.Definition {
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
	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return &ast.VarDef{Token: tok, Name: name, Annotation: ann, Init: init}
}

// parseDataDef parses `data Name(field:Type, ...);`. PRE: curToken is DATA.
func (p *Parser) parseDataDef() ast.Definition {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	var fields []ast.FieldDef
	if !p.peekIs(lexer.RPAREN) {
		p.nextToken()
		fields = append(fields, p.parseFieldDef())
		for p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			fields = append(fields, p.parseFieldDef())
		}
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return &ast.DataDef{Token: tok, Name: name, Fields: fields}
}

func (p *Parser) parseFieldDef() ast.FieldDef {
	name := p.curToken.Literal
	if !p.expectPeek(lexer.COLON) {
		return ast.FieldDef{}
	}
	p.nextToken()
	return ast.FieldDef{Name: name, Type: p.parseTypeExpr()}
}

// parseFunDef parses `fun name(params):RetType { body }`.
// PRE: curToken is FUN.
func (p *Parser) parseFunDef() ast.Definition {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	ret := p.parseTypeExpr()
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return &ast.FunDef{Token: tok, Name: name, Params: params, ReturnType: ret, Body: body}
}

// parseMethodDef parses `method Target.name(params):RetType { body }`.
// PRE: curToken is METHOD.
func (p *Parser) parseMethodDef() ast.Definition {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	target := p.parseTypeExpr()
	if !p.expectPeek(lexer.DOT) {
		return nil
	}
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	ret := p.parseTypeExpr()
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &ast.MethodDef{Token: tok, Target: target, Name: name, Params: params, ReturnType: ret, Body: body}
}

// parseProductDef parses `product "name" { body }`. PRE: curToken is PRODUCT.
func (p *Parser) parseProductDef() *ast.ProductDef {
	tok := p.curToken
	if !p.expectPeek(lexer.STRING) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockBody()
	return &ast.ProductDef{Token: tok, Name: name, Body: body}
}

// parseParamList parses `(name:Type, ...)`, consuming the closing
// paren. PRE: curToken is '('.
func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParam())
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}
	p.expectPeek(lexer.RPAREN)
	return params
}

func (p *Parser) parseParam() ast.Param {
	name := p.curToken.Literal
	if !p.expectPeek(lexer.COLON) {
		return ast.Param{}
	}
	p.nextToken()
	return ast.Param{Name: name, Type: p.parseTypeExpr()}
}

// parseTypeExpr parses `Name`, `[T]`, or `(T1, T2) -> R`. PRE:
// curToken is the first token of the type.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	switch p.curToken.Type {
	case lexer.IDENT:
		return &ast.SimpleTypeExpr{Token: p.curToken, Name: p.curToken.Literal}
	case lexer.LBRACK:
		tok := p.curToken
		p.nextToken()
		elem := p.parseTypeExpr()
		if !p.expectPeek(lexer.RBRACK) {
			return nil
		}
		return &ast.VectorTypeExpr{Token: tok, Elem: elem}
	case lexer.LPAREN:
		tok := p.curToken
		var params []ast.TypeExpr
		if !p.peekIs(lexer.RPAREN) {
			p.nextToken()
			params = append(params, p.parseTypeExpr())
			for p.peekIs(lexer.COMMA) {
				p.nextToken()
				p.nextToken()
				params = append(params, p.parseTypeExpr())
			}
		}
		if !p.expectPeek(lexer.RPAREN) {
			return nil
		}
		if !p.expectPeek(lexer.ARROW) {
			return nil
		}
		p.nextToken()
		ret := p.parseTypeExpr()
		return &ast.FunctionTypeExpr{Token: tok, Params: params, Return: ret}
	default:
		p.addError("expected type expression, got " + p.curToken.Type.String())
		return nil
	}
}
