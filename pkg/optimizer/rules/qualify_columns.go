package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(qualifyColumnsRule{})
}

type qualifyColumnsRule struct{}

func (qualifyColumnsRule) ID() string   { return "qualify_columns" }
func (qualifyColumnsRule) Name() string { return "QualifyColumns" }

// Apply prepends the owning table/alias to an unqualified Column when
// exactly one FROM/JOIN source can supply it. Star is left untouched, and
// a column reachable from zero or from more than one source is left
// unqualified since qualifying it would be a guess.
func (r qualifyColumnsRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok {
		return n
	}
	sources := collectSources(sel)
	if len(sources) == 0 {
		return n
	}

	qualify := func(e ast.Expr) ast.Expr {
		return qualifyExpr(e, sources)
	}

	nv := *sel
	nv.Columns = qualifyAll(sel.Columns, qualify)
	if sel.Where != nil {
		nv.Where = &ast.Where{Condition: qualify(sel.Where.Condition)}
	}
	if sel.GroupBy != nil {
		ng := *sel.GroupBy
		ng.Exprs = qualifyAll(sel.GroupBy.Exprs, qualify)
		nv.GroupBy = &ng
	}
	if sel.Having != nil {
		nv.Having = &ast.Having{Condition: qualify(sel.Having.Condition)}
	}
	if len(sel.OrderBy) > 0 {
		items := make([]*ast.OrderItem, len(sel.OrderBy))
		for i, o := range sel.OrderBy {
			no := *o
			no.Expr = qualify(o.Expr)
			items[i] = &no
		}
		nv.OrderBy = items
	}
	return &nv
}

type tableSource struct {
	name    string
	columns map[string]bool // nil means "unknown columns" (a Star source)
}

// collectSources builds one tableSource per FROM/JOIN entry. A Subquery
// source contributes its own projected column names (best-effort: a "*"
// projection makes that source's columns unknown, so it never
// disambiguates but also never wrongly excludes a match).
func collectSources(sel *ast.Select) []tableSource {
	var sources []tableSource
	add := func(src ast.Expr) {
		switch t := src.(type) {
		case *ast.Table:
			name := t.Name
			if t.Alias != "" {
				name = t.Alias
			}
			sources = append(sources, tableSource{name: name, columns: nil})
		case *ast.Subquery:
			sources = append(sources, tableSource{name: t.Alias, columns: subqueryColumns(t)})
		}
	}
	if sel.From != nil {
		add(sel.From.Source)
	}
	for _, j := range sel.Joins {
		add(j.Right)
	}
	return sources
}

// subqueryColumns returns the names a FROM-position subquery's projection
// supplies (a bare column's name, or an aliased expression's alias), or
// nil ("unknown") when it projects a "*" or an unaliased computed
// expression.
func subqueryColumns(sub *ast.Subquery) map[string]bool {
	inner, ok := sub.Query.(*ast.Select)
	if !ok {
		return nil
	}
	cols := make(map[string]bool, len(inner.Columns))
	for _, c := range inner.Columns {
		name, _, ok := columnNameAndExpr(c)
		if !ok {
			return nil
		}
		cols[name] = true
	}
	return cols
}

func qualifyAll(exprs []ast.Expr, qualify func(ast.Expr) ast.Expr) []ast.Expr {
	if exprs == nil {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for i, e := range exprs {
		out[i] = qualify(e)
	}
	return out
}

// qualifyExpr walks e via ast.Transform so every Column nested anywhere
// within it (not just a bare top-level Column) gets a chance to be
// qualified.
func qualifyExpr(e ast.Expr, sources []tableSource) ast.Expr {
	return ast.Transform(e, func(n ast.Node) ast.Node {
		col, ok := n.(*ast.Column)
		if !ok || col.Qualifier != "" {
			return n
		}
		var match string
		matches := 0
		for _, src := range sources {
			if src.columns == nil || src.columns[col.Name] {
				matches++
				match = src.name
			}
		}
		if matches != 1 {
			return n
		}
		nv := *col
		nv.Qualifier = match
		return &nv
	}).(ast.Expr)
}
