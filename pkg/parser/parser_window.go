package parser

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// parseWindowSpec parses the OVER clause: either a named window reference
// or a full "(PARTITION BY ... ORDER BY ... frame)" specification.
func (p *Parser) parseWindowSpec() *ast.Window {
	if p.check(token.IDENTIFIER) {
		name := p.cur.Literal
		p.nextToken()
		return &ast.Window{Name: name}
	}

	p.expect(token.LPAREN)
	w := &ast.Window{}

	if p.match(token.PARTITION) {
		p.expect(token.BY)
		w.PartitionBy = p.parseExpressionList()
	}

	if p.match(token.ORDER) {
		p.expect(token.BY)
		w.OrderBy = p.parseOrderByList()
	}

	if p.check(token.ROWS) || p.check(token.RANGE) {
		w.Frame = p.parseFrameSpec()
	}

	p.expect(token.RPAREN)
	return w
}

func (p *Parser) parseFrameSpec() *ast.FrameSpec {
	frame := &ast.FrameSpec{}
	switch {
	case p.match(token.ROWS):
		frame.Unit = ast.RowsFrame
	case p.match(token.RANGE):
		frame.Unit = ast.RangeFrame
	}

	if p.match(token.BETWEEN) {
		frame.Start = p.parseFrameBound()
		p.expect(token.AND)
		frame.End = p.parseFrameBound()
	} else {
		frame.Start = p.parseFrameBound()
		frame.End = ast.FrameBound{Kind: ast.CurrentRow}
	}
	return frame
}

func (p *Parser) parseFrameBound() ast.FrameBound {
	switch {
	case p.match(token.UNBOUNDED):
		switch {
		case p.match(token.PRECEDING):
			return ast.FrameBound{Kind: ast.UnboundedPreceding}
		case p.match(token.FOLLOWING):
			return ast.FrameBound{Kind: ast.UnboundedFollowing}
		default:
			p.addErrorf("expected PRECEDING or FOLLOWING after UNBOUNDED")
			return ast.FrameBound{}
		}
	case p.match(token.CURRENT):
		p.expect(token.ROW)
		return ast.FrameBound{Kind: ast.CurrentRow}
	default:
		offset := p.parseExpression()
		switch {
		case p.match(token.PRECEDING):
			return ast.FrameBound{Kind: ast.Preceding, Offset: offset}
		case p.match(token.FOLLOWING):
			return ast.FrameBound{Kind: ast.Following, Offset: offset}
		default:
			p.addErrorf("expected PRECEDING or FOLLOWING")
			return ast.FrameBound{Offset: offset}
		}
	}
}

func (p *Parser) parseOrderByList() []*ast.OrderItem {
	var items []*ast.OrderItem
	for {
		items = append(items, p.parseOrderByItem())
		if !p.match(token.COMMA) {
			break
		}
	}
	return items
}

func (p *Parser) parseOrderByItem() *ast.OrderItem {
	item := &ast.OrderItem{Expr: p.parseExpression()}

	switch {
	case p.match(token.ASC):
		item.Direction = ast.Ascending
	case p.match(token.DESC):
		item.Direction = ast.Descending
	}

	if p.match(token.NULLS) {
		switch {
		case p.match(token.FIRST):
			item.Nulls = ast.NullsFirst
		case p.match(token.LAST):
			item.Nulls = ast.NullsLast
		}
	}
	return item
}
