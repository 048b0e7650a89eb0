package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(pushdownPredicatesRule{})
}

type pushdownPredicatesRule struct{}

func (pushdownPredicatesRule) ID() string   { return "pushdown_predicates" }
func (pushdownPredicatesRule) Name() string { return "PushdownPredicates" }

// Apply handles the single pattern spec.md names:
// SELECT ... FROM (SELECT ...) [alias] WHERE <pred>. When every column
// <pred> references is present in the subquery's own projection list, the
// predicate moves inside (AND-combined with any existing inner WHERE) and
// the outer WHERE is cleared.
func (r pushdownPredicatesRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok || sel.Where == nil || sel.From == nil || len(sel.Joins) > 0 {
		return n
	}
	sub, ok := sel.From.Source.(*ast.Subquery)
	if !ok {
		return n
	}
	inner, ok := sub.Query.(*ast.Select)
	if !ok {
		return n
	}
	if isAggregating(inner) {
		return n
	}

	pred := sel.Where.Condition
	if isCorrelated(pred, sub.Alias) {
		return n
	}
	rewritten, ok := rewriteThroughProjection(inner.Columns, pred)
	if !ok {
		return n
	}
	pred = rewritten

	newInner := *inner
	if inner.Where != nil {
		newInner.Where = &ast.Where{Condition: ast.NewAnd(inner.Where.Condition, pred)}
	} else {
		newInner.Where = &ast.Where{Condition: pred}
	}

	newSub := *sub
	newSub.Query = &newInner
	newFrom := *sel.From
	newFrom.Source = &newSub

	nv := *sel
	nv.From = &newFrom
	nv.Where = nil
	return &nv
}

func isAggregating(sel *ast.Select) bool {
	if sel.GroupBy != nil || sel.Having != nil || sel.Distinct {
		return true
	}
	for _, c := range sel.Columns {
		if containsAggregateCall(c) {
			return true
		}
	}
	return false
}

func containsAggregateCall(e ast.Expr) bool {
	found := false
	for range ast.FindAll(e, func(n ast.Node) bool {
		fn, ok := n.(*ast.Function)
		return ok && isAggregateName(fn.Name)
	}) {
		found = true
		break
	}
	return found
}

func isAggregateName(name string) bool {
	switch name {
	case "COUNT", "SUM", "AVG", "MIN", "MAX",
		"count", "sum", "avg", "min", "max":
		return true
	default:
		return false
	}
}

// isCorrelated reports whether pred references a column qualified by a
// name other than the subquery's own alias. Unqualified columns never
// make pred correlated.
func isCorrelated(pred ast.Expr, subAlias string) bool {
	for n := range ast.FindAll(pred, func(n ast.Node) bool {
		_, ok := n.(*ast.Column)
		return ok
	}) {
		col := n.(*ast.Column)
		if col.Qualifier != "" && col.Qualifier != subAlias {
			return true
		}
	}
	return false
}

// rewriteThroughProjection reports whether every column pred references is
// produced by projection, and returns pred with each such reference
// rewritten to the expression that actually produces it. A bare Column
// projection maps a name to itself; an Alias maps its outer name to the
// aliased expression, so a predicate written against "y" in
// "SELECT x AS y FROM t" pushes down as a predicate against "x", not
// against a "y" the inner query has never heard of. A bare "*" (or
// "alias.*") covers anything, unrewritten, since the inner names are
// passed through unchanged.
func rewriteThroughProjection(projection []ast.Expr, pred ast.Expr) (ast.Expr, bool) {
	mapping := make(map[string]ast.Expr)
	for _, col := range projection {
		switch c := col.(type) {
		case *ast.Star:
			return pred, true
		case *ast.Column:
			mapping[c.Name] = c
		case *ast.Alias:
			if _, ok := c.Expr.(*ast.Star); ok {
				return pred, true
			}
			mapping[c.Name] = c.Expr
		}
	}

	for n := range ast.FindAll(pred, func(n ast.Node) bool {
		_, ok := n.(*ast.Column)
		return ok
	}) {
		col := n.(*ast.Column)
		if mapping[col.Name] == nil {
			return nil, false
		}
	}

	rewritten := ast.Transform(pred, func(n ast.Node) ast.Node {
		col, ok := n.(*ast.Column)
		if !ok {
			return n
		}
		return mapping[col.Name]
	})
	return rewritten.(ast.Expr), true
}
