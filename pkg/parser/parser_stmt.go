package parser

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// parseWithPrefixedStatement parses a WITH clause, then dispatches on
// whichever of SELECT, INSERT, UPDATE, or DELETE follows it, attaching
// the parsed CTE list to whichever statement kind comes back.
func (p *Parser) parseWithPrefixedStatement() ast.Stmt {
	with := p.parseWithClause()

	switch p.cur.Type {
	case token.INSERT:
		stmt := p.parseInsert()
		if ins, ok := stmt.(*ast.Insert); ok {
			ins.With = with
		}
		return stmt
	case token.UPDATE:
		stmt := p.parseUpdate()
		if upd, ok := stmt.(*ast.Update); ok {
			upd.With = with
		}
		return stmt
	case token.DELETE:
		stmt := p.parseDelete()
		if del, ok := stmt.(*ast.Delete); ok {
			del.With = with
		}
		return stmt
	default:
		stmt := p.parseSelectBody()
		if sel, ok := stmt.(*ast.Select); ok {
			sel.With = with
		}
		return stmt
	}
}

func (p *Parser) parseWithClause() *ast.With {
	p.expect(token.WITH)
	with := &ast.With{}
	with.Recursive = p.match(token.RECURSIVE)

	for {
		with.CTEs = append(with.CTEs, p.parseCTE())
		if !p.match(token.COMMA) {
			break
		}
	}
	return with
}

func (p *Parser) parseCTE() *ast.CTE {
	cte := &ast.CTE{}
	if !p.check(token.IDENTIFIER) {
		p.addErrorf(errExpectedIdent, p.cur.Type)
		return cte
	}
	cte.Name = p.cur.Literal
	p.nextToken()

	if p.match(token.LPAREN) {
		for {
			if p.check(token.IDENTIFIER) {
				cte.Columns = append(cte.Columns, p.cur.Literal)
				p.nextToken()
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}

	p.expect(token.AS)
	p.expect(token.LPAREN)
	cte.Query = p.parseStatement()
	p.expect(token.RPAREN)
	return cte
}

// parseSelectBody parses select_core (setop select_core)*, left-associative.
func (p *Parser) parseSelectBody() ast.Stmt {
	left := p.parseSelectCore()

	for {
		var kind ast.SetOpKind
		switch p.cur.Type {
		case token.UNION:
			kind = ast.Union
		case token.INTERSECT:
			kind = ast.Intersect
		case token.EXCEPT:
			kind = ast.Except
		default:
			return left
		}
		p.nextToken()
		all := p.match(token.ALL)
		if !all {
			p.match(token.DISTINCT)
		}
		right := p.parseSelectCore()
		left = &ast.SetOp{Kind: kind, All: all, Left: left, Right: right}
	}
}

func (p *Parser) parseSelectCore() ast.Stmt {
	p.expect(token.SELECT)
	sel := &ast.Select{}

	switch {
	case p.match(token.DISTINCT):
		sel.Distinct = true
	default:
		p.match(token.ALL)
	}

	sel.Columns = p.parseSelectList()

	if p.match(token.FROM) {
		sel.From, sel.Joins = p.parseFromClause()
	}

	if p.match(token.WHERE) {
		sel.Where = &ast.Where{Condition: p.parseExpression()}
	}

	if p.match(token.GROUP) {
		p.expect(token.BY)
		gb := &ast.GroupBy{}
		for {
			gb.Exprs = append(gb.Exprs, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
		sel.GroupBy = gb
	}

	if p.match(token.HAVING) {
		sel.Having = &ast.Having{Condition: p.parseExpression()}
	}

	if p.match(token.ORDER) {
		p.expect(token.BY)
		sel.OrderBy = p.parseOrderByList()
	}

	if p.match(token.LIMIT) {
		sel.Limit = &ast.Limit{Count: p.parseExpression()}
	}

	if p.match(token.OFFSET) {
		sel.Offset = &ast.Offset{Count: p.parseExpression()}
	}

	return sel
}

func (p *Parser) parseSelectList() []ast.Expr {
	var cols []ast.Expr
	for {
		cols = append(cols, p.parseSelectItem())
		if !p.match(token.COMMA) {
			break
		}
	}
	return cols
}

func (p *Parser) parseSelectItem() ast.Expr {
	if p.check(token.STAR) {
		p.nextToken()
		return &ast.Star{}
	}
	if p.check(token.IDENTIFIER) && p.checkPeek(token.DOT) && p.checkPeek2(token.STAR) {
		qualifier := p.cur.Literal
		p.nextToken()
		p.nextToken()
		p.nextToken()
		return &ast.Star{Qualifier: qualifier}
	}

	expr := p.parseExpression()

	if p.match(token.AS) {
		if p.check(token.IDENTIFIER) {
			name := p.cur.Literal
			p.nextToken()
			return &ast.Alias{Expr: expr, Name: name}
		}
		p.addErrorf(errExpectedIdent, p.cur.Type)
		return expr
	}
	if p.check(token.IDENTIFIER) && !isReservedForAlias(p.cur.Type) {
		name := p.cur.Literal
		p.nextToken()
		return &ast.Alias{Expr: expr, Name: name}
	}
	return expr
}

// ---------- DML/DDL statements ----------

func (p *Parser) parseInsert() ast.Stmt {
	p.expect(token.INSERT)
	p.expect(token.INTO)
	ins := &ast.Insert{Table: p.parseTableNameOnly()}

	if p.match(token.LPAREN) {
		for {
			if p.check(token.IDENTIFIER) {
				ins.Columns = append(ins.Columns, p.cur.Literal)
				p.nextToken()
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}

	if p.check(token.SELECT) || p.check(token.WITH) {
		sel := p.parseStatement()
		if s, ok := sel.(*ast.Select); ok {
			ins.Query = s
		}
		return ins
	}

	p.expect(token.VALUES)
	for {
		p.expect(token.LPAREN)
		var row []ast.Expr
		for {
			row = append(row, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
		ins.Values = append(ins.Values, row)
		if !p.match(token.COMMA) {
			break
		}
	}
	return ins
}

func (p *Parser) parseUpdate() ast.Stmt {
	p.expect(token.UPDATE)
	upd := &ast.Update{Table: p.parseTableNameOnly()}
	p.expect(token.SET)

	for {
		if !p.check(token.IDENTIFIER) {
			p.addErrorf(errExpectedIdent, p.cur.Type)
			break
		}
		col := p.cur.Literal
		p.nextToken()
		p.expect(token.EQ)
		upd.Assignments = append(upd.Assignments, ast.Assignment{Column: col, Value: p.parseExpression()})
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.match(token.WHERE) {
		upd.Where = &ast.Where{Condition: p.parseExpression()}
	}
	return upd
}

func (p *Parser) parseDelete() ast.Stmt {
	p.expect(token.DELETE)
	p.expect(token.FROM)
	del := &ast.Delete{Table: p.parseTableNameOnly()}
	if p.match(token.WHERE) {
		del.Where = &ast.Where{Condition: p.parseExpression()}
	}
	return del
}

func (p *Parser) parseCreate() ast.Stmt {
	p.expect(token.CREATE)
	create := &ast.Create{}
	create.View = p.match(token.VIEW)
	if !create.View {
		p.expect(token.TABLE)
	}

	if p.match(token.IF) {
		p.expect(token.NOT)
		p.expect(token.EXISTS)
		create.IfNotExists = true
	}

	create.Table = p.parseTableNameOnly()

	if p.match(token.AS) {
		sel := p.parseStatement()
		if s, ok := sel.(*ast.Select); ok {
			create.AsSelect = s
		}
		return create
	}

	p.expect(token.LPAREN)
	for {
		col := ast.ColumnDef{}
		if p.check(token.IDENTIFIER) {
			col.Name = p.cur.Literal
			p.nextToken()
		}
		col.DataType = p.parseDataType()
		if p.match(token.NOT) {
			p.expect(token.NULL)
			col.NotNull = true
		}
		create.Columns = append(create.Columns, col)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return create
}

func (p *Parser) parseDrop() ast.Stmt {
	p.expect(token.DROP)
	drop := &ast.Drop{}
	drop.View = p.match(token.VIEW)
	if !drop.View {
		p.expect(token.TABLE)
	}
	if p.match(token.IF) {
		p.expect(token.EXISTS)
		drop.IfExists = true
	}
	drop.Table = p.parseTableNameOnly()
	return drop
}

func (p *Parser) parseAlter() ast.Stmt {
	p.expect(token.ALTER)
	p.expect(token.TABLE)
	alter := &ast.Alter{Table: p.parseTableNameOnly()}

	switch {
	case p.match(token.ADD):
		p.match(token.COLUMN)
		alter.Action = ast.AddColumn
		if p.check(token.IDENTIFIER) {
			alter.Column.Name = p.cur.Literal
			p.nextToken()
		}
		alter.Column.DataType = p.parseDataType()
	case p.match(token.DROP):
		p.match(token.COLUMN)
		alter.Action = ast.DropColumn
		if p.check(token.IDENTIFIER) {
			alter.ColumnName = p.cur.Literal
			p.nextToken()
		}
	case p.match(token.RENAME):
		if p.match(token.TABLE) {
			alter.Action = ast.RenameTable
			if p.check(token.IDENTIFIER) {
				alter.NewName = p.cur.Literal
				p.nextToken()
			}
		} else {
			p.match(token.COLUMN)
			alter.Action = ast.RenameColumn
			if p.check(token.IDENTIFIER) {
				alter.ColumnName = p.cur.Literal
				p.nextToken()
			}
			p.expect(token.TO)
			if p.check(token.IDENTIFIER) {
				alter.NewName = p.cur.Literal
				p.nextToken()
			}
		}
	}
	return alter
}

func (p *Parser) parseTableNameOnly() *ast.Table {
	t, ok := p.parseTableName().(*ast.Table)
	if !ok {
		return &ast.Table{}
	}
	return t
}
