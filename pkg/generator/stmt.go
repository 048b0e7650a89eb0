package generator

import (
	"sort"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

// formatStmt dispatches on every top-level statement kind.
func (g *Generator) formatStmt(p *printer, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Select:
		g.formatSelect(p, s)
	case *ast.SetOp:
		g.formatSetOp(p, s)
	case *ast.Insert:
		g.formatInsert(p, s)
	case *ast.Update:
		g.formatUpdate(p, s)
	case *ast.Delete:
		g.formatDelete(p, s)
	case *ast.Create:
		g.formatCreate(p, s)
	case *ast.Drop:
		g.formatDrop(p, s)
	case *ast.Alter:
		g.formatAlter(p, s)
	}
}

func (g *Generator) formatSelect(p *printer, sel *ast.Select) {
	if sel.With != nil {
		g.formatWith(p, sel.With)
	}

	p.keyword("SELECT")
	if sel.Distinct {
		p.space()
		p.keyword("DISTINCT")
	}
	p.writeln()
	p.indent()
	p.formatList(len(sel.Columns), func(i int) { g.formatExpr(p, sel.Columns[i]) }, ",", true)
	p.dedent()

	if sel.From != nil {
		p.writeln()
		p.keyword("FROM")
		p.space()
		g.formatExpr(p, sel.From.Source)
	}

	for _, j := range sel.Joins {
		p.writeln()
		g.formatJoin(p, j)
	}

	if sel.Where != nil {
		p.writeln()
		p.keyword("WHERE")
		p.writeln()
		p.indent()
		g.formatExpr(p, sel.Where.Condition)
		p.dedent()
	}

	if sel.GroupBy != nil {
		p.writeln()
		p.keyword("GROUP")
		p.space()
		p.keyword("BY")
		p.writeln()
		p.indent()
		p.formatList(len(sel.GroupBy.Exprs), func(i int) { g.formatExpr(p, sel.GroupBy.Exprs[i]) }, ",", true)
		if sel.GroupBy.Rollup {
			p.space()
			p.keyword("WITH")
			p.space()
			p.keyword("ROLLUP")
		}
		if sel.GroupBy.Cube {
			p.space()
			p.keyword("WITH")
			p.space()
			p.keyword("CUBE")
		}
		p.dedent()
	}

	if sel.Having != nil {
		p.writeln()
		p.keyword("HAVING")
		p.writeln()
		p.indent()
		g.formatExpr(p, sel.Having.Condition)
		p.dedent()
	}

	if len(sel.Windows) > 0 {
		p.writeln()
		p.keyword("WINDOW")
		p.writeln()
		p.indent()
		names := make([]string, 0, len(sel.Windows))
		for name := range sel.Windows {
			names = append(names, name)
		}
		sort.Strings(names)
		p.formatList(len(names), func(i int) {
			p.write(g.formatIdentifier(names[i], false))
			p.space()
			p.keyword("AS")
			p.space()
			g.formatWindow(p, sel.Windows[names[i]])
		}, ",", true)
		p.dedent()
	}

	if len(sel.OrderBy) > 0 {
		p.writeln()
		p.keyword("ORDER")
		p.space()
		p.keyword("BY")
		p.writeln()
		p.indent()
		p.formatList(len(sel.OrderBy), func(i int) { g.formatOrderItem(p, sel.OrderBy[i]) }, ",", true)
		p.dedent()
	}

	if sel.Limit != nil {
		p.writeln()
		p.keyword("LIMIT")
		p.space()
		g.formatExpr(p, sel.Limit.Count)
	}

	if sel.Offset != nil {
		p.writeln()
		p.keyword("OFFSET")
		p.space()
		g.formatExpr(p, sel.Offset.Count)
	}
}

func (g *Generator) formatWith(p *printer, w *ast.With) {
	p.keyword("WITH")
	if w.Recursive {
		p.space()
		p.keyword("RECURSIVE")
	}
	p.writeln()
	p.indent()
	p.formatList(len(w.CTEs), func(i int) { g.formatCTE(p, w.CTEs[i]) }, ",", true)
	p.dedent()
	p.writeln()
}

func (g *Generator) formatCTE(p *printer, c *ast.CTE) {
	p.write(g.formatIdentifier(c.Name, false))
	if len(c.Columns) > 0 {
		p.write(" (")
		p.formatList(len(c.Columns), func(i int) { p.write(g.formatIdentifier(c.Columns[i], false)) }, ", ", false)
		p.write(")")
	}
	p.space()
	p.keyword("AS")
	p.write(" (")
	p.writeln()
	p.indent()
	g.formatSubqueryBody(p, c.Query)
	p.dedent()
	p.writeln()
	p.write(")")
}

func (g *Generator) formatJoin(p *printer, j *ast.Join) {
	switch j.Kind {
	case ast.InnerJoin:
		p.keyword("INNER")
		p.space()
		p.keyword("JOIN")
	case ast.LeftJoin:
		p.keyword("LEFT")
		p.space()
		p.keyword("JOIN")
	case ast.RightJoin:
		p.keyword("RIGHT")
		p.space()
		p.keyword("JOIN")
	case ast.FullJoin:
		p.keyword("FULL")
		p.space()
		p.keyword("JOIN")
	case ast.CrossJoin:
		p.keyword("CROSS")
		p.space()
		p.keyword("JOIN")
	case ast.NaturalJoin:
		p.keyword("NATURAL")
		p.space()
		p.keyword("JOIN")
	}
	p.space()
	g.formatExpr(p, j.Right)
	if len(j.Using) > 0 {
		p.writeln()
		p.indent()
		p.keyword("USING")
		p.write(" (")
		p.formatList(len(j.Using), func(i int) { p.write(g.formatIdentifier(j.Using[i], false)) }, ", ", false)
		p.write(")")
		p.dedent()
	} else if j.On != nil {
		p.writeln()
		p.indent()
		p.keyword("ON")
		p.space()
		g.formatExpr(p, j.On)
		p.dedent()
	}
}

func (g *Generator) formatSetOp(p *printer, s *ast.SetOp) {
	g.formatSubqueryBody(p, s.Left)
	p.writeln()
	switch s.Kind {
	case ast.Union:
		p.keyword("UNION")
	case ast.Intersect:
		p.keyword("INTERSECT")
	case ast.Except:
		p.keyword("EXCEPT")
	}
	if s.All {
		p.space()
		p.keyword("ALL")
	}
	p.writeln()
	g.formatSubqueryBody(p, s.Right)
}

func (g *Generator) formatInsert(p *printer, ins *ast.Insert) {
	if ins.With != nil {
		g.formatWith(p, ins.With)
	}
	p.keyword("INSERT")
	p.space()
	p.keyword("INTO")
	p.space()
	g.formatTableName(p, ins.Table)
	if len(ins.Columns) > 0 {
		p.write(" (")
		p.formatList(len(ins.Columns), func(i int) { p.write(g.formatIdentifier(ins.Columns[i], false)) }, ", ", false)
		p.write(")")
	}
	p.writeln()
	if ins.Query != nil {
		g.formatSelect(p, ins.Query)
		return
	}
	p.keyword("VALUES")
	p.space()
	p.formatList(len(ins.Values), func(i int) {
		p.write("(")
		row := ins.Values[i]
		p.formatList(len(row), func(j int) { g.formatExpr(p, row[j]) }, ", ", false)
		p.write(")")
	}, ", ", false)
}

func (g *Generator) formatUpdate(p *printer, u *ast.Update) {
	if u.With != nil {
		g.formatWith(p, u.With)
	}
	p.keyword("UPDATE")
	p.space()
	g.formatTableName(p, u.Table)
	p.writeln()
	p.keyword("SET")
	p.space()
	p.formatList(len(u.Assignments), func(i int) {
		a := u.Assignments[i]
		p.write(g.formatIdentifier(a.Column, false))
		p.write(" = ")
		g.formatExpr(p, a.Value)
	}, ", ", false)
	if u.Where != nil {
		p.writeln()
		p.keyword("WHERE")
		p.writeln()
		p.indent()
		g.formatExpr(p, u.Where.Condition)
		p.dedent()
	}
}

func (g *Generator) formatDelete(p *printer, d *ast.Delete) {
	if d.With != nil {
		g.formatWith(p, d.With)
	}
	p.keyword("DELETE")
	p.space()
	p.keyword("FROM")
	p.space()
	g.formatTableName(p, d.Table)
	if d.Where != nil {
		p.writeln()
		p.keyword("WHERE")
		p.writeln()
		p.indent()
		g.formatExpr(p, d.Where.Condition)
		p.dedent()
	}
}

func (g *Generator) formatCreate(p *printer, c *ast.Create) {
	p.keyword("CREATE")
	p.space()
	if c.View {
		p.keyword("VIEW")
	} else {
		p.keyword("TABLE")
	}
	p.space()
	if c.IfNotExists {
		p.keyword("IF")
		p.space()
		p.keyword("NOT")
		p.space()
		p.keyword("EXISTS")
		p.space()
	}
	g.formatTableName(p, c.Table)

	if c.AsSelect != nil {
		p.space()
		p.keyword("AS")
		p.writeln()
		g.formatSelect(p, c.AsSelect)
		return
	}

	p.write(" (")
	p.writeln()
	p.indent()
	p.formatList(len(c.Columns), func(i int) {
		col := c.Columns[i]
		p.write(g.formatIdentifier(col.Name, false))
		p.space()
		p.write(col.DataType)
		if col.PrimaryKey {
			p.space()
			p.keyword("PRIMARY")
			p.space()
			p.keyword("KEY")
		}
		if col.NotNull {
			p.space()
			p.keyword("NOT")
			p.space()
			p.keyword("NULL")
		}
	}, ",", true)
	p.dedent()
	p.writeln()
	p.write(")")
}

func (g *Generator) formatDrop(p *printer, d *ast.Drop) {
	p.keyword("DROP")
	p.space()
	if d.View {
		p.keyword("VIEW")
	} else {
		p.keyword("TABLE")
	}
	p.space()
	if d.IfExists {
		p.keyword("IF")
		p.space()
		p.keyword("EXISTS")
		p.space()
	}
	g.formatTableName(p, d.Table)
}

func (g *Generator) formatAlter(p *printer, a *ast.Alter) {
	p.keyword("ALTER")
	p.space()
	p.keyword("TABLE")
	p.space()
	g.formatTableName(p, a.Table)
	p.space()
	switch a.Action {
	case ast.AddColumn:
		p.keyword("ADD")
		p.space()
		p.keyword("COLUMN")
		p.space()
		p.write(g.formatIdentifier(a.Column.Name, false))
		p.space()
		p.write(a.Column.DataType)
		if a.Column.NotNull {
			p.space()
			p.keyword("NOT")
			p.space()
			p.keyword("NULL")
		}
	case ast.DropColumn:
		p.keyword("DROP")
		p.space()
		p.keyword("COLUMN")
		p.space()
		p.write(g.formatIdentifier(a.ColumnName, false))
	case ast.RenameColumn:
		p.keyword("RENAME")
		p.space()
		p.keyword("COLUMN")
		p.space()
		p.write(g.formatIdentifier(a.ColumnName, false))
		p.space()
		p.keyword("TO")
		p.space()
		p.write(g.formatIdentifier(a.NewName, false))
	case ast.RenameTable:
		p.keyword("RENAME")
		p.space()
		p.keyword("TO")
		p.space()
		p.write(g.formatIdentifier(a.NewName, false))
	}
}
