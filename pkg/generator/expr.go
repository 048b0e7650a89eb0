package generator

import (
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

// Precedence levels, lowest to highest, matching the parser's ladder
// (OR < AND < NOT < comparisons < additive < multiplicative < unary).
// Parens are inserted around a child whenever its own precedence is
// lower than the level its parent requires.
const (
	precOr = iota + 1
	precAnd
	precNot
	precComparison
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

func precedenceOf(e ast.Expr) int {
	switch e.(type) {
	case *ast.Or:
		return precOr
	case *ast.And:
		return precAnd
	case *ast.Not:
		return precNot
	case *ast.EQ, *ast.NEQ, *ast.GT, *ast.LT, *ast.GTE, *ast.LTE, *ast.Is,
		*ast.In, *ast.Between, *ast.Like:
		return precComparison
	case *ast.Add, *ast.Sub:
		return precAdditive
	case *ast.Mul, *ast.Div, *ast.Mod:
		return precMultiplicative
	case *ast.Neg:
		return precUnary
	default:
		return precPrimary
	}
}

func (g *Generator) formatExpr(p *printer, e ast.Expr) {
	g.formatExprMinPrec(p, e, 0)
}

// formatExprMinPrec renders e, wrapping it in parens if its precedence is
// below minPrec — i.e. it would be mis-parsed (or misread) sitting
// directly inside a context that requires at least minPrec.
func (g *Generator) formatExprMinPrec(p *printer, e ast.Expr, minPrec int) {
	if e == nil {
		return
	}
	if precedenceOf(e) < minPrec {
		p.write("(")
		g.formatExprMinPrec(p, e, 0)
		p.write(")")
		return
	}
	g.formatExprNode(p, e)
}

func (g *Generator) formatExprNode(p *printer, e ast.Expr) {
	switch v := e.(type) {
	case *ast.Literal:
		g.formatLiteral(p, v)
	case *ast.True:
		p.keyword("TRUE")
	case *ast.False:
		p.keyword("FALSE")
	case *ast.Null:
		p.keyword("NULL")
	case *ast.Star:
		if v.Qualifier != "" {
			p.write(g.formatIdentifier(v.Qualifier, false))
			p.write(".")
		}
		p.write("*")
	case *ast.Identifier:
		p.write(g.formatIdentifier(v.Name, v.Quoted))
	case *ast.Column:
		if v.Qualifier != "" {
			p.write(g.formatIdentifier(v.Qualifier, false))
			p.write(".")
		}
		p.write(g.formatIdentifier(v.Name, v.Quoted))
	case *ast.Table:
		g.formatTableName(p, v)
	case *ast.WorkspacePath:
		for i, part := range v.Parts {
			if i > 0 {
				p.write(".")
			}
			p.write(g.formatIdentifier(part, false))
		}
	case *ast.Alias:
		g.formatExpr(p, v.Expr)
		p.space()
		p.keyword("AS")
		p.space()
		p.write(g.formatIdentifier(v.Name, false))

	case *ast.Add:
		g.formatBinary(p, "+", v.Left, v.Right, precAdditive)
	case *ast.Sub:
		g.formatBinary(p, "-", v.Left, v.Right, precAdditive)
	case *ast.Mul:
		g.formatBinary(p, "*", v.Left, v.Right, precMultiplicative)
	case *ast.Div:
		g.formatBinary(p, "/", v.Left, v.Right, precMultiplicative)
	case *ast.Mod:
		g.formatBinary(p, "%", v.Left, v.Right, precMultiplicative)

	case *ast.EQ:
		g.formatBinary(p, "=", v.Left, v.Right, precComparison)
	case *ast.NEQ:
		g.formatBinary(p, "!=", v.Left, v.Right, precComparison)
	case *ast.GT:
		g.formatBinary(p, ">", v.Left, v.Right, precComparison)
	case *ast.LT:
		g.formatBinary(p, "<", v.Left, v.Right, precComparison)
	case *ast.GTE:
		g.formatBinary(p, ">=", v.Left, v.Right, precComparison)
	case *ast.LTE:
		g.formatBinary(p, "<=", v.Left, v.Right, precComparison)
	case *ast.Is:
		g.formatExprMinPrec(p, v.Left, precComparison+1)
		p.space()
		p.keyword("IS")
		if v.Negated {
			p.space()
			p.keyword("NOT")
		}
		p.space()
		g.formatExprMinPrec(p, v.Right, precComparison+1)

	case *ast.And:
		g.formatBinary(p, "AND", v.Left, v.Right, precAnd)
	case *ast.Or:
		g.formatBinary(p, "OR", v.Left, v.Right, precOr)
	case *ast.Not:
		p.keyword("NOT")
		p.space()
		g.formatExprMinPrec(p, v.Expr, precNot)
	case *ast.Neg:
		p.write("-")
		g.formatExprMinPrec(p, v.Expr, precUnary)
	case *ast.Paren:
		p.write("(")
		g.formatExpr(p, v.Expr)
		p.write(")")

	case *ast.In:
		g.formatInExpr(p, v)
	case *ast.Between:
		g.formatExprMinPrec(p, v.Expr, precComparison+1)
		if v.Negated {
			p.space()
			p.keyword("NOT")
		}
		p.space()
		p.keyword("BETWEEN")
		p.space()
		g.formatExprMinPrec(p, v.Low, precComparison+1)
		p.space()
		p.keyword("AND")
		p.space()
		g.formatExprMinPrec(p, v.High, precComparison+1)
	case *ast.Like:
		g.formatExprMinPrec(p, v.Expr, precComparison+1)
		if v.Negated {
			p.space()
			p.keyword("NOT")
		}
		p.space()
		p.keyword("LIKE")
		p.space()
		g.formatExprMinPrec(p, v.Pattern, precComparison+1)
		if v.Escape != nil {
			p.space()
			p.keyword("ESCAPE")
			p.space()
			g.formatExpr(p, v.Escape)
		}
	case *ast.Exists:
		if v.Negated {
			p.keyword("NOT")
			p.space()
		}
		p.keyword("EXISTS")
		p.write(" (")
		p.writeln()
		p.indent()
		g.formatSubqueryBody(p, v.Query.Query)
		p.dedent()
		p.writeln()
		p.write(")")

	case *ast.Function:
		g.formatFunction(p, v)
	case *ast.Cast:
		p.keyword("CAST")
		p.write("(")
		g.formatExpr(p, v.Expr)
		p.space()
		p.keyword("AS")
		p.space()
		p.write(v.DataType)
		p.write(")")

	case *ast.Subquery:
		p.write("(")
		p.writeln()
		p.indent()
		g.formatSubqueryBody(p, v.Query)
		p.dedent()
		p.writeln()
		p.write(")")
		if v.Alias != "" {
			p.space()
			p.write(g.formatIdentifier(v.Alias, false))
		}

	case *ast.Case:
		g.formatCase(p, v)
	}
}

func (g *Generator) formatBinary(p *printer, op string, left, right ast.Expr, prec int) {
	g.formatExprMinPrec(p, left, prec)
	p.space()
	if op == "AND" || op == "OR" {
		p.keyword(op)
	} else {
		p.write(op)
	}
	p.space()
	// Right side requires prec+1 so that e.g. "a - (b - c)" keeps its
	// parens (subtraction/division aren't associative for our purposes).
	g.formatExprMinPrec(p, right, prec+1)
}

func (g *Generator) formatLiteral(p *printer, lit *ast.Literal) {
	switch lit.Kind {
	case ast.StringLiteral:
		p.write("'")
		p.write(strings.ReplaceAll(lit.Text, "'", "''"))
		p.write("'")
	default:
		p.write(lit.Text)
	}
}

func (g *Generator) formatInExpr(p *printer, in *ast.In) {
	g.formatExprMinPrec(p, in.Expr, precComparison+1)
	if in.Negated {
		p.space()
		p.keyword("NOT")
	}
	p.space()
	p.keyword("IN")
	p.write(" (")
	if in.Query != nil {
		p.writeln()
		p.indent()
		g.formatSubqueryBody(p, in.Query.Query)
		p.dedent()
		p.writeln()
	} else {
		p.formatList(len(in.List), func(i int) { g.formatExpr(p, in.List[i]) }, ", ", false)
	}
	p.write(")")
}

func (g *Generator) formatFunction(p *printer, fn *ast.Function) {
	p.write(fn.Name)
	p.write("(")
	if fn.Distinct {
		p.keyword("DISTINCT")
		p.space()
	}
	hasStarArg := len(fn.Args) == 1
	if hasStarArg {
		if _, ok := fn.Args[0].(*ast.Star); ok {
			p.write("*")
		} else {
			hasStarArg = false
		}
	}
	if !hasStarArg {
		p.formatList(len(fn.Args), func(i int) { g.formatExpr(p, fn.Args[i]) }, ", ", false)
	}
	p.write(")")

	if fn.Filter != nil {
		p.space()
		p.keyword("FILTER")
		p.write(" (")
		p.keyword("WHERE")
		p.space()
		g.formatExpr(p, fn.Filter)
		p.write(")")
	}
	if fn.Over != nil {
		p.space()
		p.keyword("OVER")
		p.space()
		g.formatWindow(p, fn.Over)
	}
}

func (g *Generator) formatWindow(p *printer, w *ast.Window) {
	if w.Name != "" && len(w.PartitionBy) == 0 && len(w.OrderBy) == 0 && w.Frame == nil {
		p.write(w.Name)
		return
	}
	p.write("(")
	if len(w.PartitionBy) > 0 {
		p.keyword("PARTITION")
		p.space()
		p.keyword("BY")
		p.space()
		p.formatList(len(w.PartitionBy), func(i int) { g.formatExpr(p, w.PartitionBy[i]) }, ", ", false)
	}
	if len(w.OrderBy) > 0 {
		if len(w.PartitionBy) > 0 {
			p.space()
		}
		p.keyword("ORDER")
		p.space()
		p.keyword("BY")
		p.space()
		p.formatList(len(w.OrderBy), func(i int) { g.formatOrderItem(p, w.OrderBy[i]) }, ", ", false)
	}
	if w.Frame != nil {
		p.space()
		g.formatFrameSpec(p, w.Frame)
	}
	p.write(")")
}

func (g *Generator) formatFrameSpec(p *printer, f *ast.FrameSpec) {
	if f.Unit == ast.RowsFrame {
		p.keyword("ROWS")
	} else {
		p.keyword("RANGE")
	}
	p.space()
	p.keyword("BETWEEN")
	p.space()
	g.formatFrameBound(p, f.Start)
	p.space()
	p.keyword("AND")
	p.space()
	g.formatFrameBound(p, f.End)
}

func (g *Generator) formatFrameBound(p *printer, b ast.FrameBound) {
	switch b.Kind {
	case ast.UnboundedPreceding:
		p.keyword("UNBOUNDED")
		p.space()
		p.keyword("PRECEDING")
	case ast.UnboundedFollowing:
		p.keyword("UNBOUNDED")
		p.space()
		p.keyword("FOLLOWING")
	case ast.CurrentRow:
		p.keyword("CURRENT")
		p.space()
		p.keyword("ROW")
	case ast.Preceding:
		g.formatExpr(p, b.Offset)
		p.space()
		p.keyword("PRECEDING")
	case ast.Following:
		g.formatExpr(p, b.Offset)
		p.space()
		p.keyword("FOLLOWING")
	}
}

func (g *Generator) formatCase(p *printer, c *ast.Case) {
	p.keyword("CASE")
	if c.Operand != nil {
		p.space()
		g.formatExpr(p, c.Operand)
	}
	p.writeln()
	p.indent()
	for _, w := range c.Whens {
		p.keyword("WHEN")
		p.space()
		g.formatExpr(p, w.Condition)
		p.space()
		p.keyword("THEN")
		p.space()
		g.formatExpr(p, w.Result)
		p.writeln()
	}
	if c.Else != nil {
		p.keyword("ELSE")
		p.space()
		g.formatExpr(p, c.Else)
		p.writeln()
	}
	p.dedent()
	p.keyword("END")
}

func (g *Generator) formatTableName(p *printer, t *ast.Table) {
	parts := make([]string, 0, 3)
	if t.Catalog != "" {
		parts = append(parts, g.formatIdentifier(t.Catalog, false))
	}
	if t.Schema != "" {
		parts = append(parts, g.formatIdentifier(t.Schema, false))
	}
	parts = append(parts, g.formatIdentifier(t.Name, t.Quoted))
	p.write(strings.Join(parts, "."))
	if t.Alias != "" {
		p.space()
		p.write(g.formatIdentifier(t.Alias, false))
	}
}

func (g *Generator) formatOrderItem(p *printer, o *ast.OrderItem) {
	g.formatExpr(p, o.Expr)
	switch o.Direction {
	case ast.Ascending:
		// ASC is the default; omit it for cleaner output.
	case ast.Descending:
		p.space()
		p.keyword("DESC")
	}
	switch o.Nulls {
	case ast.NullsFirst:
		p.space()
		p.keyword("NULLS")
		p.space()
		p.keyword("FIRST")
	case ast.NullsLast:
		p.space()
		p.keyword("NULLS")
		p.space()
		p.keyword("LAST")
	}
}

// formatSubqueryBody renders the inner statement of a Subquery/In/Exists
// without the caller's own enclosing parens.
func (g *Generator) formatSubqueryBody(p *printer, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Select:
		g.formatSelect(p, s)
	case *ast.SetOp:
		g.formatSetOp(p, s)
	}
}
