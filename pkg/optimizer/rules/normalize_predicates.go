package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/generator"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(normalizePredicatesRule{})
}

type normalizePredicatesRule struct{}

func (normalizePredicatesRule) ID() string   { return "normalize_predicates" }
func (normalizePredicatesRule) Name() string { return "NormalizePredicates" }

func (r normalizePredicatesRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	switch v := n.(type) {
	case *ast.Not:
		inner := v.Expr
		if p, ok := inner.(*ast.Paren); ok {
			inner = p.Expr
		}
		if nested, ok := inner.(*ast.Not); ok {
			return nested.Expr
		}
		if and, ok := inner.(*ast.And); ok {
			return ast.NewOr(ast.NewNot(and.Left), ast.NewNot(and.Right))
		}
		if or, ok := inner.(*ast.Or); ok {
			return ast.NewAnd(ast.NewNot(or.Left), ast.NewNot(or.Right))
		}
	case *ast.And:
		if hasContradiction(v.Left, v.Right) {
			return &ast.False{}
		}
		return rebuild(flatten(v, isAnd), func(l, r ast.Expr) ast.Expr { return ast.NewAnd(l, r) }, &ast.True{})
	case *ast.Or:
		if hasTautology(v.Left, v.Right) {
			return &ast.True{}
		}
		return rebuild(flatten(v, isOr), func(l, r ast.Expr) ast.Expr { return ast.NewOr(l, r) }, &ast.False{})
	}
	return n
}

func isAnd(n ast.Expr) (ast.Expr, ast.Expr, bool) {
	if a, ok := n.(*ast.And); ok {
		return a.Left, a.Right, true
	}
	return nil, nil, false
}

func isOr(n ast.Expr) (ast.Expr, ast.Expr, bool) {
	if o, ok := n.(*ast.Or); ok {
		return o.Left, o.Right, true
	}
	return nil, nil, false
}

// flatten collects every leaf conjunct/disjunct of an AND/OR tree,
// deduplicating by canonical-form text so repeated leaves (however
// distant in the tree) collapse to one.
func flatten(root ast.Expr, split func(ast.Expr) (ast.Expr, ast.Expr, bool)) []ast.Expr {
	var leaves []ast.Expr
	seen := make(map[string]bool)

	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		if l, r, ok := split(e); ok {
			walk(l)
			walk(r)
			return
		}
		key := generator.Canonical(stmtWrap(e))
		if seen[key] {
			return
		}
		seen[key] = true
		leaves = append(leaves, e)
	}
	walk(root)
	return leaves
}

// rebuild folds leaves back into a left-associative chain via combine.
// identity is unreachable in practice (flatten never returns zero leaves
// for a non-empty tree) but guards the type signature.
func rebuild(leaves []ast.Expr, combine func(ast.Expr, ast.Expr) ast.Expr, identity ast.Expr) ast.Expr {
	if len(leaves) == 0 {
		return identity
	}
	result := leaves[0]
	for _, leaf := range leaves[1:] {
		result = combine(result, leaf)
	}
	return result
}

// hasContradiction reports whether one side is the negation of the other
// (x AND NOT x), detected structurally without needing a full flatten.
func hasContradiction(l, r ast.Expr) bool {
	return isNegationOf(l, r) || isNegationOf(r, l)
}

// hasTautology reports whether one side is the negation of the other
// (x OR NOT x).
func hasTautology(l, r ast.Expr) bool {
	return isNegationOf(l, r) || isNegationOf(r, l)
}

func isNegationOf(pos, neg ast.Expr) bool {
	n, ok := neg.(*ast.Not)
	if !ok {
		return false
	}
	return generator.Canonical(stmtWrap(pos)) == generator.Canonical(stmtWrap(n.Expr))
}

// stmtWrap lets a bare Expr be rendered through generator.Canonical, which
// takes an ast.Stmt; a throwaway single-column Select is the simplest
// vehicle that round-trips any expression unchanged.
func stmtWrap(e ast.Expr) ast.Stmt {
	return &ast.Select{Columns: []ast.Expr{e}}
}
