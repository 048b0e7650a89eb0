package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(mergeSubqueriesRule{})
}

type mergeSubqueriesRule struct{}

func (mergeSubqueriesRule) ID() string   { return "merge_subqueries" }
func (mergeSubqueriesRule) Name() string { return "MergeSubqueries" }

// Apply inlines a FROM-position subquery that is merely "SELECT ... FROM
// t" with none of GROUP BY / HAVING / DISTINCT / LIMIT / OFFSET and no
// aggregate calls in its projection: the subquery's single table takes
// the outer FROM's place, and its alias becomes the table's alias so
// outer references by that alias keep resolving. Anything riskier is
// left untouched.
func (r mergeSubqueriesRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok || sel.From == nil {
		return n
	}
	sub, ok := sel.From.Source.(*ast.Subquery)
	if !ok {
		return n
	}
	inner, ok := sub.Query.(*ast.Select)
	if !ok || !isMergeable(inner) {
		return n
	}
	table, ok := inner.From.Source.(*ast.Table)
	if !ok {
		return n
	}
	if !projectionIsPassthrough(inner.Columns) {
		return n
	}

	newTable := *table
	newTable.Alias = sub.Alias

	newFrom := *sel.From
	newFrom.Source = &newTable

	nv := *sel
	nv.From = &newFrom

	// A renamed passthrough column ("a AS x") means outer references to
	// "x" (or "s.x") must become references to the inner table's own
	// column "a" before anything is merged, since the inner table has no
	// column named "x". Rewrite those references in the outer select's own
	// clauses first; inner.Where already refers to inner's real columns
	// and must not be touched.
	if renames := passthroughRenames(inner.Columns); len(renames) > 0 {
		nv.Columns = make([]ast.Expr, len(sel.Columns))
		for i, c := range sel.Columns {
			nv.Columns[i] = renameColumnRefs(c, sub.Alias, renames)
		}
		if sel.Where != nil {
			nv.Where = &ast.Where{Condition: renameColumnRefs(sel.Where.Condition, sub.Alias, renames)}
		}
		if sel.GroupBy != nil {
			ngb := *sel.GroupBy
			ngb.Exprs = make([]ast.Expr, len(sel.GroupBy.Exprs))
			for i, e := range sel.GroupBy.Exprs {
				ngb.Exprs[i] = renameColumnRefs(e, sub.Alias, renames)
			}
			nv.GroupBy = &ngb
		}
		if sel.Having != nil {
			nv.Having = &ast.Having{Condition: renameColumnRefs(sel.Having.Condition, sub.Alias, renames)}
		}
		if len(sel.OrderBy) > 0 {
			nv.OrderBy = make([]*ast.OrderItem, len(sel.OrderBy))
			for i, o := range sel.OrderBy {
				no := *o
				no.Expr = renameColumnRefs(o.Expr, sub.Alias, renames)
				nv.OrderBy[i] = &no
			}
		}
	}

	if inner.Where != nil {
		if nv.Where != nil {
			nv.Where = &ast.Where{Condition: ast.NewAnd(nv.Where.Condition, inner.Where.Condition)}
		} else {
			nv.Where = inner.Where
		}
	}
	return &nv
}

// passthroughRenames collects the outer-visible name -> inner column name
// mapping for every projection entry that renames a bare column, e.g.
// "a AS x" contributes renames["x"] = "a". An identity alias ("a AS a")
// contributes nothing since no rewrite is needed.
func passthroughRenames(columns []ast.Expr) map[string]string {
	renames := make(map[string]string)
	for _, c := range columns {
		alias, ok := c.(*ast.Alias)
		if !ok {
			continue
		}
		col, ok := alias.Expr.(*ast.Column)
		if !ok || col.Name == alias.Name {
			continue
		}
		renames[alias.Name] = col.Name
	}
	return renames
}

// renameColumnRefs rewrites every Column in e whose qualifier matches alias
// (or is unqualified) and whose name is a key in renames to that renamed
// column's underlying name.
func renameColumnRefs(e ast.Expr, alias string, renames map[string]string) ast.Expr {
	if e == nil {
		return nil
	}
	return ast.Transform(e, func(n ast.Node) ast.Node {
		col, ok := n.(*ast.Column)
		if !ok {
			return n
		}
		if col.Qualifier != "" && col.Qualifier != alias {
			return n
		}
		newName, ok := renames[col.Name]
		if !ok {
			return n
		}
		nv := *col
		nv.Name = newName
		return &nv
	}).(ast.Expr)
}

func isMergeable(sel *ast.Select) bool {
	if sel.Distinct || sel.GroupBy != nil || sel.Having != nil ||
		sel.Limit != nil || sel.Offset != nil || sel.With != nil {
		return false
	}
	if sel.From == nil || len(sel.Joins) > 0 {
		return false
	}
	if _, ok := sel.From.Source.(*ast.Table); !ok {
		return false
	}
	for _, c := range sel.Columns {
		if containsAggregateCall(c) {
			return false
		}
	}
	return true
}

// projectionIsPassthrough reports whether the inner SELECT list is "*" or
// a plain list of bare columns/aliased bare columns — nothing computed,
// so merging can't change what the outer SELECT ultimately sees from
// that source.
func projectionIsPassthrough(columns []ast.Expr) bool {
	for _, c := range columns {
		switch v := c.(type) {
		case *ast.Star, *ast.Column:
			continue
		case *ast.Alias:
			if _, ok := v.Expr.(*ast.Column); !ok {
				return false
			}
		default:
			return false
		}
	}
	return true
}
