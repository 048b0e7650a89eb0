package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

func TestProjectionPushdown_NarrowsToMentionedColumns(t *testing.T) {
	stmt := parseSQL(t, "SELECT s.a FROM (SELECT a, b, c FROM t) s")
	out := applyOnce(t, "projection_pushdown", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	sub, ok := sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
	inner := sub.Query.(*ast.Select)
	assert.Len(t, inner.Columns, 1)
}

func TestProjectionPushdown_PreservesStarOnEitherSide(t *testing.T) {
	stmt := parseSQL(t, "SELECT s.a FROM (SELECT * FROM t) s")
	out := applyOnce(t, "projection_pushdown", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	sub, ok := sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
	inner := sub.Query.(*ast.Select)
	_, isStar := inner.Columns[0].(*ast.Star)
	assert.True(t, isStar)
}

func TestProjectionPushdown_LeavesUnnarrowableAlone(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a, b FROM t) s")
	out := applyOnce(t, "projection_pushdown", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	sub, ok := sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
	inner := sub.Query.(*ast.Select)
	assert.Len(t, inner.Columns, 2)
}
