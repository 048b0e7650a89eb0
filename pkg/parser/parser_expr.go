package parser

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// parseExpression is the entry point for the precedence ladder.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseOrExpr()
}

func (p *Parser) parseOrExpr() ast.Expr {
	left := p.parseAndExpr()
	for p.match(token.OR) {
		left = ast.NewOr(left, p.parseAndExpr())
	}
	return left
}

func (p *Parser) parseAndExpr() ast.Expr {
	left := p.parseNotExpr()
	for p.match(token.AND) {
		left = ast.NewAnd(left, p.parseNotExpr())
	}
	return left
}

func (p *Parser) parseNotExpr() ast.Expr {
	if p.match(token.NOT) {
		return ast.NewNot(p.parseNotExpr())
	}
	return p.parseComparison()
}

// parseComparison handles both the standard binary comparison operators
// and the compound predicates (IN, BETWEEN, LIKE, IS [NOT] NULL) that all
// bind at the same precedence level in SQL.
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAddition()

	negated := false
	if p.check(token.NOT) && (p.checkPeek(token.IN) || p.checkPeek(token.BETWEEN) || p.checkPeek(token.LIKE)) {
		p.nextToken()
		negated = true
	}

	switch {
	case p.match(token.IN):
		return p.parseInExpr(left, negated)
	case p.match(token.BETWEEN):
		return p.parseBetweenExpr(left, negated)
	case p.match(token.LIKE):
		return p.parseLikeExpr(left, negated)
	}

	if p.match(token.IS) {
		isNot := p.match(token.NOT)
		switch {
		case p.match(token.NULL):
			return ast.NewIs(left, &ast.Null{}, isNot)
		case p.match(token.TRUE):
			return ast.NewIs(left, &ast.True{}, isNot)
		case p.match(token.FALSE):
			return ast.NewIs(left, &ast.False{}, isNot)
		default:
			p.addErrorf("expected NULL, TRUE, or FALSE after IS")
			return left
		}
	}

	switch p.cur.Type {
	case token.EQ:
		p.nextToken()
		return ast.NewEQ(left, p.parseAddition())
	case token.NEQ:
		p.nextToken()
		return ast.NewNEQ(left, p.parseAddition())
	case token.LT:
		p.nextToken()
		return ast.NewLT(left, p.parseAddition())
	case token.GT:
		p.nextToken()
		return ast.NewGT(left, p.parseAddition())
	case token.LTE:
		p.nextToken()
		return ast.NewLTE(left, p.parseAddition())
	case token.GTE:
		p.nextToken()
		return ast.NewGTE(left, p.parseAddition())
	}

	return left
}

func (p *Parser) parseInExpr(left ast.Expr, negated bool) ast.Expr {
	p.expect(token.LPAREN)
	in := &ast.In{Expr: left, Negated: negated}
	if p.check(token.SELECT) || p.check(token.WITH) {
		in.Query = &ast.Subquery{Query: p.parseStatement()}
	} else {
		in.List = p.parseExpressionList()
	}
	p.expect(token.RPAREN)
	return in
}

func (p *Parser) parseBetweenExpr(left ast.Expr, negated bool) ast.Expr {
	low := p.parseAddition()
	p.expect(token.AND)
	high := p.parseAddition()
	return &ast.Between{Expr: left, Low: low, High: high, Negated: negated}
}

func (p *Parser) parseLikeExpr(left ast.Expr, negated bool) ast.Expr {
	pattern := p.parseAddition()
	like := &ast.Like{Expr: left, Pattern: pattern, Negated: negated}
	if p.match(token.ESCAPE) {
		like.Escape = p.parseAddition()
	}
	return like
}

func (p *Parser) parseAddition() ast.Expr {
	left := p.parseMultiplication()
	for {
		switch p.cur.Type {
		case token.PLUS:
			p.nextToken()
			left = ast.NewAdd(left, p.parseMultiplication())
		case token.MINUS:
			p.nextToken()
			left = ast.NewSub(left, p.parseMultiplication())
		default:
			return left
		}
	}
}

func (p *Parser) parseMultiplication() ast.Expr {
	left := p.parseUnary()
	for {
		switch p.cur.Type {
		case token.STAR:
			p.nextToken()
			left = ast.NewMul(left, p.parseUnary())
		case token.SLASH:
			p.nextToken()
			left = ast.NewDiv(left, p.parseUnary())
		case token.PERCENT:
			p.nextToken()
			left = ast.NewMod(left, p.parseUnary())
		default:
			return left
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Type {
	case token.MINUS:
		p.nextToken()
		return ast.NewNeg(p.parseUnary())
	case token.PLUS:
		p.nextToken()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *Parser) parseExpressionList() []ast.Expr {
	var exprs []ast.Expr
	for {
		exprs = append(exprs, p.parseExpression())
		if !p.match(token.COMMA) {
			break
		}
	}
	return exprs
}
