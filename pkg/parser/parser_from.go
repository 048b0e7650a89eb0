package parser

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// parseFromClause parses the FROM clause's primary source and every
// chained JOIN, returning them separately since ast.Select keeps its
// join chain as a flat slice rather than a nested tree.
func (p *Parser) parseFromClause() (*ast.From, []*ast.Join) {
	from := &ast.From{Source: p.parseTableRef()}

	var joins []*ast.Join
	left := from.Source
	for {
		join := p.parseJoin(left)
		if join == nil {
			break
		}
		joins = append(joins, join)
		left = join
	}
	return from, joins
}

func (p *Parser) parseTableRef() ast.Expr {
	if p.check(token.LPAREN) {
		return p.parseDerivedTable()
	}
	return p.parseTableName()
}

func (p *Parser) parseTableName() ast.Expr {
	if !p.check(token.IDENTIFIER) {
		p.addErrorf(errExpectedIdent, p.cur.Type)
		return nil
	}

	parts := []string{p.cur.Literal}
	quoted := p.cur.Quoted
	p.nextToken()
	for p.match(token.DOT) {
		if p.check(token.IDENTIFIER) {
			parts = append(parts, p.cur.Literal)
			quoted = p.cur.Quoted
			p.nextToken()
		}
	}

	table := &ast.Table{Quoted: quoted}
	switch len(parts) {
	case 1:
		table.Name = parts[0]
	case 2:
		table.Schema, table.Name = parts[0], parts[1]
	default:
		table.Catalog, table.Schema, table.Name = parts[0], parts[1], parts[2]
	}

	table.Alias = p.parseOptionalAlias()
	return table
}

func (p *Parser) parseDerivedTable() ast.Expr {
	if !p.enterDepth() {
		return nil
	}
	defer p.leaveDepth()

	p.expect(token.LPAREN)
	sub := &ast.Subquery{Query: p.parseStatement()}
	p.expect(token.RPAREN)
	sub.Alias = p.parseOptionalAlias()
	return sub
}

// parseOptionalAlias consumes "[AS] identifier" if present, or returns
// the empty string. A bare identifier alias is only consumed when it
// cannot be confused with a join or clause keyword.
func (p *Parser) parseOptionalAlias() string {
	if p.match(token.AS) {
		if p.check(token.IDENTIFIER) {
			name := p.cur.Literal
			p.nextToken()
			return name
		}
		p.addErrorf(errExpectedIdent, p.cur.Type)
		return ""
	}
	if p.check(token.IDENTIFIER) && !isReservedForAlias(p.cur.Type) {
		name := p.cur.Literal
		p.nextToken()
		return name
	}
	return ""
}

// parseJoin parses a single join onto left, or returns nil if the
// current token doesn't start one.
func (p *Parser) parseJoin(left ast.Expr) *ast.Join {
	if p.match(token.COMMA) {
		return &ast.Join{Kind: ast.CrossJoin, Left: left, Right: p.parseTableRef()}
	}

	natural := p.match(token.NATURAL)

	kind, ok := p.matchJoinKind()
	if !ok {
		if natural {
			p.addErrorf("expected JOIN after NATURAL")
		}
		return nil
	}

	if !p.expect(token.JOIN) {
		return nil
	}
	if natural {
		kind = ast.NaturalJoin
	}

	join := &ast.Join{Kind: kind, Left: left, Right: p.parseTableRef()}
	p.parseJoinCondition(join, natural)
	return join
}

func (p *Parser) matchJoinKind() (ast.JoinKind, bool) {
	switch p.cur.Type {
	case token.JOIN:
		return ast.InnerJoin, true
	case token.INNER:
		p.nextToken()
		return ast.InnerJoin, true
	case token.LEFT:
		p.nextToken()
		p.match(token.OUTER)
		return ast.LeftJoin, true
	case token.RIGHT:
		p.nextToken()
		p.match(token.OUTER)
		return ast.RightJoin, true
	case token.FULL:
		p.nextToken()
		p.match(token.OUTER)
		return ast.FullJoin, true
	case token.CROSS:
		p.nextToken()
		return ast.CrossJoin, true
	}
	return 0, false
}

func (p *Parser) parseJoinCondition(join *ast.Join, natural bool) {
	switch {
	case natural:
		if p.check(token.ON) || p.check(token.USING) {
			p.addErrorf("NATURAL JOIN cannot have ON or USING clause")
		}
	case p.match(token.ON):
		join.On = p.parseExpression()
	case p.match(token.USING):
		p.expect(token.LPAREN)
		for {
			if p.check(token.IDENTIFIER) {
				join.Using = append(join.Using, p.cur.Literal)
				p.nextToken()
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
}
