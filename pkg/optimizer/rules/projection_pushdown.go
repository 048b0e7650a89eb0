package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(projectionPushdownRule{})
}

type projectionPushdownRule struct{}

func (projectionPushdownRule) ID() string   { return "projection_pushdown" }
func (projectionPushdownRule) Name() string { return "ProjectionPushdown" }

// Apply restricts a FROM-position subquery's projection to the columns
// the enclosing Select actually demands, when that demanded set is a
// proper subset the inner projection can satisfy directly. A "*" in
// either list is left alone rather than risk narrowing past what a
// sibling join or a later pass might still need.
func (r projectionPushdownRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok || sel.From == nil {
		return n
	}
	sub, ok := sel.From.Source.(*ast.Subquery)
	if !ok || sub.Alias == "" {
		return n
	}
	inner, ok := sub.Query.(*ast.Select)
	if !ok || hasStarProjection(inner.Columns) {
		return n
	}

	demanded := demandedColumns(sel, sub.Alias)
	if demanded == nil {
		return n
	}

	innerNames := make(map[string]ast.Expr)
	for _, c := range inner.Columns {
		name, expr, ok := columnNameAndExpr(c)
		if !ok {
			return n
		}
		innerNames[name] = expr
	}

	for name := range demanded {
		if _, ok := innerNames[name]; !ok {
			return n
		}
	}
	if len(demanded) == 0 || len(demanded) >= len(inner.Columns) {
		return n
	}

	newColumns := make([]ast.Expr, 0, len(demanded))
	for _, c := range inner.Columns {
		name, _, _ := columnNameAndExpr(c)
		if demanded[name] {
			newColumns = append(newColumns, c)
		}
	}

	newInner := *inner
	newInner.Columns = newColumns
	newSub := *sub
	newSub.Query = &newInner
	newFrom := *sel.From
	newFrom.Source = &newSub

	nv := *sel
	nv.From = &newFrom
	return &nv
}

func hasStarProjection(columns []ast.Expr) bool {
	for _, c := range columns {
		if _, ok := c.(*ast.Star); ok {
			return true
		}
	}
	return false
}

func columnNameAndExpr(c ast.Expr) (string, ast.Expr, bool) {
	switch v := c.(type) {
	case *ast.Column:
		return v.Name, v, true
	case *ast.Alias:
		return v.Name, v.Expr, true
	default:
		return "", nil, false
	}
}

// demandedColumns collects every column the outer Select references that
// is qualified by alias or unqualified; an unqualified column counts
// whatever other sources the outer Select has. Returns nil when the
// outer projection contains "*", since then every inner column is
// demanded and nothing can be pruned.
func demandedColumns(sel *ast.Select, alias string) map[string]bool {
	demanded := make(map[string]bool)
	var sawStar bool

	walk := func(e ast.Expr) {
		for n := range ast.FindAll(e, func(n ast.Node) bool {
			switch n.(type) {
			case *ast.Column, *ast.Star:
				return true
			}
			return false
		}) {
			switch col := n.(type) {
			case *ast.Star:
				if col.Qualifier == "" || col.Qualifier == alias {
					sawStar = true
				}
			case *ast.Column:
				if col.Qualifier == "" || col.Qualifier == alias {
					demanded[col.Name] = true
				}
			}
		}
	}

	for _, c := range sel.Columns {
		walk(c)
	}
	if sel.Where != nil {
		walk(sel.Where.Condition)
	}
	for _, j := range sel.Joins {
		if j.On != nil {
			walk(j.On)
		}
	}
	if sel.GroupBy != nil {
		for _, e := range sel.GroupBy.Exprs {
			walk(e)
		}
	}
	if sel.Having != nil {
		walk(sel.Having.Condition)
	}
	for _, o := range sel.OrderBy {
		walk(o.Expr)
	}

	if sawStar {
		return nil
	}
	return demanded
}
