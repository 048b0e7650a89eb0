package parser

import (
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// parsePrimary parses the highest-precedence expressions: literals,
// column references, function calls, parenthesized/subquery expressions,
// CASE, CAST, and EXISTS.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Type {
	case token.NUMBER:
		lit := ast.NewLiteral(ast.NumberLiteral, p.cur.Literal)
		p.nextToken()
		return lit
	case token.STRING:
		lit := ast.NewLiteral(ast.StringLiteral, p.cur.Literal)
		p.nextToken()
		return lit
	case token.TRUE:
		p.nextToken()
		return &ast.True{}
	case token.FALSE:
		p.nextToken()
		return &ast.False{}
	case token.NULL:
		p.nextToken()
		return &ast.Null{}
	case token.CASE:
		return p.parseCaseExpr()
	case token.CAST:
		return p.parseCastExpr()
	case token.NOT:
		if p.checkPeek(token.EXISTS) {
			p.nextToken()
			return p.parseExistsExpr(true)
		}
		p.nextToken()
		return ast.NewNot(p.parsePrimary())
	case token.EXISTS:
		return p.parseExistsExpr(false)
	case token.STAR:
		p.nextToken()
		return &ast.Star{}
	case token.LPAREN:
		return p.parseParenExpr()
	case token.IDENTIFIER:
		return p.parseIdentifierExpr()
	default:
		p.addErrorf("unexpected token in expression: %s", p.cur.Type)
		p.nextToken()
		return nil
	}
}

// parseIdentifierExpr disambiguates a bare name into a function call, a
// qualified column reference, or a simple column reference using the
// three-token lookahead window.
func (p *Parser) parseIdentifierExpr() ast.Expr {
	name := p.cur.Literal
	quoted := p.cur.Quoted
	p.nextToken()

	if p.check(token.LPAREN) {
		return p.parseFunctionCall(name)
	}

	if p.check(token.DOT) {
		return p.parseQualifiedColumn(name, quoted)
	}

	return &ast.Column{Name: name, Quoted: quoted}
}

func (p *Parser) parseQualifiedColumn(first string, firstQuoted bool) ast.Expr {
	parts := []string{first}
	quoted := firstQuoted
	for p.match(token.DOT) {
		if p.check(token.STAR) {
			p.nextToken()
			return &ast.Star{Qualifier: strings.Join(parts, ".")}
		}
		if p.check(token.IDENTIFIER) {
			parts = append(parts, p.cur.Literal)
			quoted = p.cur.Quoted
			p.nextToken()
		} else {
			p.addErrorf(errExpectedIdent, p.cur.Type)
			break
		}
	}

	name := parts[len(parts)-1]
	qualifier := strings.Join(parts[:len(parts)-1], ".")
	return &ast.Column{Qualifier: qualifier, Name: name, Quoted: quoted}
}

func (p *Parser) parseFunctionCall(name string) ast.Expr {
	fn := &ast.Function{Name: strings.ToUpper(name)}
	p.expect(token.LPAREN)

	if p.check(token.STAR) {
		fn.Args = append(fn.Args, &ast.Star{})
		p.nextToken()
	} else if !p.check(token.RPAREN) {
		if p.match(token.DISTINCT) {
			fn.Distinct = true
		}
		fn.Args = p.parseExpressionList()
	}
	p.expect(token.RPAREN)

	if p.match(token.FILTER) {
		p.expect(token.LPAREN)
		p.expect(token.WHERE)
		fn.Filter = p.parseExpression()
		p.expect(token.RPAREN)
	}

	if p.match(token.OVER) {
		fn.Over = p.parseWindowSpec()
	}

	return fn
}

func (p *Parser) parseParenExpr() ast.Expr {
	if !p.enterDepth() {
		return nil
	}
	defer p.leaveDepth()

	p.expect(token.LPAREN)

	if p.check(token.SELECT) || p.check(token.WITH) {
		sub := &ast.Subquery{Query: p.parseStatement()}
		p.expect(token.RPAREN)
		return sub
	}

	expr := p.parseExpression()
	p.expect(token.RPAREN)
	return ast.NewParen(expr)
}

func (p *Parser) parseExistsExpr(negated bool) ast.Expr {
	p.nextToken() // consume EXISTS
	p.expect(token.LPAREN)
	exists := &ast.Exists{Query: &ast.Subquery{Query: p.parseStatement()}, Negated: negated}
	p.expect(token.RPAREN)
	return exists
}

func (p *Parser) parseCaseExpr() ast.Expr {
	if !p.enterDepth() {
		return nil
	}
	defer p.leaveDepth()

	p.expect(token.CASE)
	c := &ast.Case{}

	if !p.check(token.WHEN) {
		c.Operand = p.parseExpression()
	}

	for p.match(token.WHEN) {
		cond := p.parseExpression()
		p.expect(token.THEN)
		result := p.parseExpression()
		c.Whens = append(c.Whens, ast.When{Condition: cond, Result: result})
	}

	if p.match(token.ELSE) {
		c.Else = p.parseExpression()
	}

	p.expect(token.END)
	return c
}

func (p *Parser) parseCastExpr() ast.Expr {
	p.expect(token.CAST)
	p.expect(token.LPAREN)
	cast := &ast.Cast{}
	cast.Expr = p.parseExpression()
	p.expect(token.AS)
	cast.DataType = p.parseDataType()
	p.expect(token.RPAREN)
	return cast
}

// parseDataType parses a type name with optional parameters, e.g.
// VARCHAR(255) or DECIMAL(10, 2).
func (p *Parser) parseDataType() string {
	if !p.check(token.IDENTIFIER) {
		p.addErrorf(errExpectedIdent, p.cur.Type)
		return ""
	}
	name := p.cur.Literal
	p.nextToken()

	if p.match(token.LPAREN) {
		var params []string
		for {
			if p.check(token.NUMBER) || p.check(token.IDENTIFIER) {
				params = append(params, p.cur.Literal)
				p.nextToken()
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
		return name + "(" + strings.Join(params, ", ") + ")"
	}
	return name
}
