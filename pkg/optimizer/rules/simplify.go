package rules

import (
	"strconv"
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(simplifyRule{})
}

type simplifyRule struct{}

func (simplifyRule) ID() string   { return "simplify" }
func (simplifyRule) Name() string { return "Simplify" }

func (r simplifyRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	switch v := n.(type) {
	case *ast.Not:
		return simplifyNot(v)
	case *ast.And:
		return simplifyAnd(v)
	case *ast.Or:
		return simplifyOr(v)
	case *ast.Add:
		return simplifyAdd(v)
	case *ast.Sub:
		return simplifySub(v)
	case *ast.Mul:
		return simplifyMul(v)
	case *ast.Div:
		return simplifyDiv(v)
	case *ast.Mod:
		return simplifyMod(v)
	case *ast.EQ:
		if same(v.Left, v.Right) {
			return &ast.True{}
		}
		if isNull(v.Left) || isNull(v.Right) {
			return &ast.Null{}
		}
	case *ast.NEQ:
		if same(v.Left, v.Right) {
			return &ast.False{}
		}
		if isNull(v.Left) || isNull(v.Right) {
			return &ast.Null{}
		}
	case *ast.GT, *ast.LT, *ast.GTE, *ast.LTE:
		if l, r, ok := comparisonOperands(v); ok {
			if isNull(l) || isNull(r) {
				return &ast.Null{}
			}
		}
	}
	return n
}

func simplifyNot(v *ast.Not) ast.Node {
	inner := unwrapParen(v.Expr)
	switch e := inner.(type) {
	case *ast.Not:
		return unwrapParen(e.Expr)
	case *ast.True:
		return &ast.False{}
	case *ast.False:
		return &ast.True{}
	case *ast.GT:
		return ast.NewLTE(e.Left, e.Right)
	case *ast.LT:
		return ast.NewGTE(e.Left, e.Right)
	case *ast.GTE:
		return ast.NewLT(e.Left, e.Right)
	case *ast.LTE:
		return ast.NewGT(e.Left, e.Right)
	}
	return v
}

func simplifyAnd(v *ast.And) ast.Node {
	l, r := unwrapParen(v.Left), unwrapParen(v.Right)
	if isTrue(l) {
		return v.Right
	}
	if isTrue(r) {
		return v.Left
	}
	if isFalse(l) || isFalse(r) {
		return &ast.False{}
	}
	if same(v.Left, v.Right) {
		return v.Left
	}
	return v
}

func simplifyOr(v *ast.Or) ast.Node {
	l, r := unwrapParen(v.Left), unwrapParen(v.Right)
	if isTrue(l) || isTrue(r) {
		return &ast.True{}
	}
	if isFalse(l) {
		return v.Right
	}
	if isFalse(r) {
		return v.Left
	}
	if same(v.Left, v.Right) {
		return v.Left
	}
	return v
}

func simplifyAdd(v *ast.Add) ast.Node {
	if isNull(v.Left) || isNull(v.Right) {
		return &ast.Null{}
	}
	if n, ok := foldNumeric(v.Left, v.Right, "+"); ok {
		return n
	}
	if isZero(v.Left) {
		return v.Right
	}
	if isZero(v.Right) {
		return v.Left
	}
	return v
}

func simplifySub(v *ast.Sub) ast.Node {
	if isNull(v.Left) || isNull(v.Right) {
		return &ast.Null{}
	}
	if n, ok := foldNumeric(v.Left, v.Right, "-"); ok {
		return n
	}
	if same(v.Left, v.Right) {
		return ast.NewLiteral(ast.NumberLiteral, "0")
	}
	if isZero(v.Right) {
		return v.Left
	}
	return v
}

func simplifyMul(v *ast.Mul) ast.Node {
	if isNull(v.Left) || isNull(v.Right) {
		return &ast.Null{}
	}
	if isZero(v.Left) || isZero(v.Right) {
		return ast.NewLiteral(ast.NumberLiteral, "0")
	}
	if n, ok := foldNumeric(v.Left, v.Right, "*"); ok {
		return n
	}
	if isOne(v.Left) {
		return v.Right
	}
	if isOne(v.Right) {
		return v.Left
	}
	return v
}

func simplifyDiv(v *ast.Div) ast.Node {
	if isNull(v.Left) || isNull(v.Right) {
		return &ast.Null{}
	}
	if isZero(v.Right) {
		return &ast.Null{}
	}
	if isZero(v.Left) {
		return ast.NewLiteral(ast.NumberLiteral, "0")
	}
	if same(v.Left, v.Right) {
		return ast.NewLiteral(ast.NumberLiteral, "1")
	}
	if n, ok := foldNumeric(v.Left, v.Right, "/"); ok {
		return n
	}
	if isOne(v.Right) {
		return v.Left
	}
	return v
}

func simplifyMod(v *ast.Mod) ast.Node {
	if isNull(v.Left) || isNull(v.Right) {
		return &ast.Null{}
	}
	if isZero(v.Right) {
		return &ast.Null{}
	}
	if n, ok := foldNumeric(v.Left, v.Right, "%"); ok {
		return n
	}
	return v
}

// comparisonOperands extracts the two operands from any of the four
// ordering comparisons, sharing NULL-propagation logic across them.
func comparisonOperands(n ast.Node) (ast.Expr, ast.Expr, bool) {
	switch v := n.(type) {
	case *ast.GT:
		return v.Left, v.Right, true
	case *ast.LT:
		return v.Left, v.Right, true
	case *ast.GTE:
		return v.Left, v.Right, true
	case *ast.LTE:
		return v.Left, v.Right, true
	}
	return nil, nil, false
}

func unwrapParen(e ast.Expr) ast.Expr {
	if p, ok := e.(*ast.Paren); ok {
		return unwrapParen(p.Expr)
	}
	return e
}

func isTrue(e ast.Expr) bool  { _, ok := unwrapParen(e).(*ast.True); return ok }
func isFalse(e ast.Expr) bool { _, ok := unwrapParen(e).(*ast.False); return ok }
func isNull(e ast.Expr) bool  { _, ok := unwrapParen(e).(*ast.Null); return ok }

func isZero(e ast.Expr) bool {
	lit, ok := unwrapParen(e).(*ast.Literal)
	if !ok || lit.Kind != ast.NumberLiteral {
		return false
	}
	f, err := strconv.ParseFloat(lit.Text, 64)
	return err == nil && f == 0
}

func isOne(e ast.Expr) bool {
	lit, ok := unwrapParen(e).(*ast.Literal)
	if !ok || lit.Kind != ast.NumberLiteral {
		return false
	}
	f, err := strconv.ParseFloat(lit.Text, 64)
	return err == nil && f == 1
}

// same reports whether a and b are the same syntactic expression: either
// referentially identical (same pointer), literals of the same kind with
// equal text, or Column nodes with the same qualifier and name. Any other
// pair of distinct nodes is not "same".
func same(a, b ast.Expr) bool {
	if a == b {
		return true
	}
	al, aok := a.(*ast.Literal)
	bl, bok := b.(*ast.Literal)
	if aok && bok {
		return al.Kind == bl.Kind && al.Text == bl.Text
	}
	ac, acok := a.(*ast.Column)
	bc, bcok := b.(*ast.Column)
	if acok && bcok {
		return ac.Qualifier == bc.Qualifier && ac.Name == bc.Name
	}
	return false
}

// foldNumeric constant-folds two numeric literal operands under op. It
// returns a *ast.Literal rendered as an integer when the result has no
// fractional part, else as a decimal text.
func foldNumeric(l, r ast.Expr, op string) (*ast.Literal, bool) {
	ll, lok := unwrapParen(l).(*ast.Literal)
	rl, rok := unwrapParen(r).(*ast.Literal)
	if !lok || !rok || ll.Kind != ast.NumberLiteral || rl.Kind != ast.NumberLiteral {
		return nil, false
	}
	lf, err := strconv.ParseFloat(ll.Text, 64)
	if err != nil {
		return nil, false
	}
	rf, err := strconv.ParseFloat(rl.Text, 64)
	if err != nil {
		return nil, false
	}

	var result float64
	switch op {
	case "+":
		result = lf + rf
	case "-":
		result = lf - rf
	case "*":
		result = lf * rf
	case "/":
		if rf == 0 {
			return nil, false
		}
		result = lf / rf
	case "%":
		if rf == 0 {
			return nil, false
		}
		result = float64(int64(lf) % int64(rf))
	default:
		return nil, false
	}

	if result == float64(int64(result)) {
		return ast.NewLiteral(ast.NumberLiteral, strconv.FormatInt(int64(result), 10)), true
	}
	text := strconv.FormatFloat(result, 'g', -1, 64)
	if !strings.Contains(text, ".") && !strings.ContainsAny(text, "eE") {
		text += ".0"
	}
	return ast.NewLiteral(ast.NumberLiteral, text), true
}
