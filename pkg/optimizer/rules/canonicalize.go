package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(canonicalizeRule{})
}

type canonicalizeRule struct{}

func (canonicalizeRule) ID() string   { return "canonicalize" }
func (canonicalizeRule) Name() string { return "Canonicalize" }

func (r canonicalizeRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	switch v := n.(type) {
	case *ast.GT:
		if swapped, ok := swapLiteralComparison(v.Left, v.Right); ok {
			return ast.NewLT(swapped[0], swapped[1])
		}
	case *ast.LT:
		if swapped, ok := swapLiteralComparison(v.Left, v.Right); ok {
			return ast.NewGT(swapped[0], swapped[1])
		}
	case *ast.GTE:
		if swapped, ok := swapLiteralComparison(v.Left, v.Right); ok {
			return ast.NewLTE(swapped[0], swapped[1])
		}
	case *ast.LTE:
		if swapped, ok := swapLiteralComparison(v.Left, v.Right); ok {
			return ast.NewGTE(swapped[0], swapped[1])
		}
	case *ast.Not:
		return canonicalizeNot(v)
	}
	return n
}

// swapLiteralComparison reports whether left is a literal and right is a
// column (the "literal OP column" shape spec.md wants flipped), returning
// the operands in (column, literal) order for the inverted operator.
func swapLiteralComparison(left, right ast.Expr) ([2]ast.Expr, bool) {
	_, leftIsLit := left.(*ast.Literal)
	_, rightIsCol := right.(*ast.Column)
	if leftIsLit && rightIsCol {
		return [2]ast.Expr{right, left}, true
	}
	return [2]ast.Expr{}, false
}

func canonicalizeNot(v *ast.Not) ast.Node {
	inner := v.Expr
	if p, ok := inner.(*ast.Paren); ok {
		inner = p.Expr
	}
	switch e := inner.(type) {
	case *ast.GT:
		return ast.NewLTE(e.Left, e.Right)
	case *ast.LT:
		return ast.NewGTE(e.Left, e.Right)
	case *ast.GTE:
		return ast.NewLT(e.Left, e.Right)
	case *ast.LTE:
		return ast.NewGT(e.Left, e.Right)
	case *ast.EQ:
		return ast.NewNEQ(e.Left, e.Right)
	case *ast.NEQ:
		return ast.NewEQ(e.Left, e.Right)
	}
	return v
}
