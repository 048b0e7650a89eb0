package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

func TestTransformRewritesLeaves(t *testing.T) {
	tree := ast.NewAnd(
		ast.NewEQ(ast.NewIdentifier("a"), ast.NewLiteral(ast.NumberLiteral, "1")),
		ast.NewEQ(ast.NewIdentifier("b"), ast.NewLiteral(ast.NumberLiteral, "2")),
	)

	rewritten := ast.Transform(tree, func(n ast.Node) ast.Node {
		if lit, ok := n.(*ast.Literal); ok && lit.Kind == ast.NumberLiteral {
			return ast.NewLiteral(ast.NumberLiteral, "0")
		}
		return n
	})

	and, ok := rewritten.(*ast.And)
	require.True(t, ok)
	left, ok := and.Left.(*ast.EQ)
	require.True(t, ok)
	lit, ok := left.Right.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Text)
}

func TestTransformIsPostOrder(t *testing.T) {
	var order []string
	tree := ast.NewAdd(ast.NewIdentifier("x"), ast.NewIdentifier("y"))

	ast.Transform(tree, func(n ast.Node) ast.Node {
		switch v := n.(type) {
		case *ast.Identifier:
			order = append(order, v.Name)
		case *ast.Add:
			order = append(order, "add")
		}
		return n
	})

	assert.Equal(t, []string{"x", "y", "add"}, order)
}

func TestFindAllCollectsMatchingNodes(t *testing.T) {
	sel := &ast.Select{
		Columns: []ast.Expr{ast.NewIdentifier("a"), ast.NewIdentifier("b")},
		Where: &ast.Where{
			Condition: ast.NewAnd(
				ast.NewEQ(ast.NewIdentifier("a"), ast.NewLiteral(ast.NumberLiteral, "1")),
				ast.NewEQ(ast.NewIdentifier("b"), ast.NewLiteral(ast.NumberLiteral, "2")),
			),
		},
	}

	var names []string
	for n := range ast.FindAll(sel, func(n ast.Node) bool {
		_, ok := n.(*ast.Identifier)
		return ok
	}) {
		names = append(names, n.(*ast.Identifier).Name)
	}

	assert.Equal(t, []string{"a", "b", "a", "b"}, names)
}

func TestFindAllStopsEarly(t *testing.T) {
	tree := ast.NewAnd(
		ast.NewIdentifier("a"),
		ast.NewIdentifier("b"),
	)

	count := 0
	for range ast.FindAll(tree, func(ast.Node) bool { return true }) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestChildrenOfLeafIsEmpty(t *testing.T) {
	assert.Empty(t, ast.Children(ast.NewIdentifier("x")))
}
